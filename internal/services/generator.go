package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"cloud.google.com/go/storage"
	"github.com/studyflowhq/reviewerflow/internal/feature"
	"github.com/studyflowhq/reviewerflow/internal/gcp"
	"github.com/studyflowhq/reviewerflow/internal/models"
	"github.com/studyflowhq/reviewerflow/internal/prompts"
	"github.com/studyflowhq/reviewerflow/internal/store"
)

// GeneratorConfig holds all configuration for the reviewer-generator service.
type GeneratorConfig struct {
	ProjectID       string
	VertexAIRegion  string
	GenerativeModel string
	// EnableAcronymValidation turns on the extra acronym validation stage.
	// Off by default: the stage re-checks keyPhrase/letter alignment but has
	// not proven itself worth the extra model call.
	EnableAcronymValidation bool
}

// GeneratorFunction holds the dependencies for the reviewer generation logic.
type GeneratorFunction struct {
	allocator *Allocator
	persister *Persister
	completer Completer
	extractor Extractor
	cleaner   Cleaner
	config    GeneratorConfig
}

func loadGeneratorConfig() (*GeneratorConfig, error) {
	projectID := gcp.GetEnv("PROJECT_ID", "")
	if projectID == "" {
		return nil, fmt.Errorf("PROJECT_ID environment variable must be set")
	}
	return &GeneratorConfig{
		ProjectID:               projectID,
		VertexAIRegion:          gcp.GetEnv("VERTEX_AI_REGION", "us-central1"),
		GenerativeModel:         gcp.GetEnv("GENERATIVE_MODEL", "gemini-1.5-pro"),
		EnableAcronymValidation: gcp.GetEnv("ENABLE_ACRONYM_VALIDATION", "false") == "true",
	}, nil
}

// NewGenerator creates a new GeneratorFunction instance wired to Firestore,
// GCS and Vertex AI.
func NewGenerator(ctx context.Context) (*GeneratorFunction, error) {
	config, err := loadGeneratorConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	firestoreClient, err := gcp.NewFirestoreClient(ctx, config.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	storageClient, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	vertexClient, err := gcp.NewVertexClient(ctx, config.ProjectID, config.VertexAIRegion, config.GenerativeModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex client: %w", err)
	}

	docStore := store.NewFirestoreStore(firestoreClient)
	return newGeneratorWith(docStore, vertexClient, NewGCSExtractor(storageClient, vertexClient), NewMarkdownCleaner(), *config), nil
}

// newGeneratorWith wires explicit collaborators. Tests use it directly.
func newGeneratorWith(s store.Store, completer Completer, extractor Extractor, cleaner Cleaner, config GeneratorConfig) *GeneratorFunction {
	return &GeneratorFunction{
		allocator: NewAllocator(s),
		persister: NewPersister(s),
		completer: completer,
		extractor: extractor,
		cleaner:   cleaner,
		config:    config,
	}
}

// Process handles one generation request end to end: text acquisition,
// gating, identifier allocation, the feature's stage pipeline, and the
// atomic persistence of the result. Stages run strictly sequentially; any
// stage failure aborts the request with nothing persisted.
func (f *GeneratorFunction) Process(ctx context.Context, req *models.GenerateRequest) (*models.GenerateResponse, error) {
	feat, err := feature.Parse(req.Feature)
	if err != nil {
		return nil, &InputError{Reason: err.Error()}
	}
	if req.UserID == "" {
		return nil, &InputError{Reason: "missing user id"}
	}
	logCtx := slog.With("userId", req.UserID, "feature", feat.String())

	// --- 1. Acquire the source text ---
	markdown := req.Markdown
	if markdown == "" && req.FileURI != "" {
		markdown, err = f.extractor.Extract(ctx, req.FileURI, req.MimeType)
		if err != nil {
			return nil, err
		}
	}

	// --- 2. Gate before any generation is attempted ---
	if err := ValidateContent(markdown); err != nil {
		return nil, err
	}

	sourceHint := req.MimeType
	if sourceHint == "" {
		sourceHint = req.SourceType
	}
	if feat == feature.Summarize || feat == feature.Explain {
		markdown = f.cleaner.Clean(markdown, sourceHint)
	}

	// Diagnostic mode: return the processed text without invoking generation.
	if req.MarkdownOnly {
		if feat == feature.Acronym || feat == feature.Terms {
			markdown = f.cleaner.Clean(markdown, sourceHint)
		}
		return &models.GenerateResponse{ProcessedMarkdown: markdown}, nil
	}

	// --- 3. Allocate the reviewer identifier ---
	id, err := f.allocator.Allocate(ctx, req.UserID, feat)
	if err != nil {
		return nil, err
	}
	logCtx = logCtx.With("reviewerId", id)
	logCtx.Info("Starting generation pipeline.")

	// --- 4. Run the feature's pipeline and persist its final result ---
	var payload any
	switch feat {
	case feature.Summarize:
		res, err := runStage[models.SummaryResult](ctx, f.completer, feat, "summarize", prompts.SummarizeSystem, contentPrompt(markdown), 0, nil)
		if err != nil {
			return nil, err
		}
		if err := f.persister.PersistEmbedded(ctx, req.UserID, feat, id, res); err != nil {
			return nil, err
		}
		payload = res

	case feature.Explain:
		res, err := runStage[models.ExplainResult](ctx, f.completer, feat, "explain", prompts.ExplainSystem, contentPrompt(markdown), 0, nil)
		if err != nil {
			return nil, err
		}
		if err := f.persister.PersistEmbedded(ctx, req.UserID, feat, id, res); err != nil {
			return nil, err
		}
		payload = res

	case feature.Acronym:
		res, err := f.runAcronymPipeline(ctx, markdown, sourceHint)
		if err != nil {
			return nil, err
		}
		if err := f.persister.PersistAcronym(ctx, req.UserID, id, res); err != nil {
			return nil, err
		}
		payload = *res

	case feature.Terms:
		res, err := f.runTermsPipeline(ctx, markdown)
		if err != nil {
			return nil, err
		}
		if err := f.persister.PersistQuiz(ctx, req.UserID, id, res); err != nil {
			return nil, err
		}
		payload = *res
	}

	logCtx.Info("Reviewer generated and persisted.")
	return &models.GenerateResponse{
		Artifacts: []models.Artifact{{ID: id, Payload: payload}},
	}, nil
}

// runAcronymPipeline executes the two-stage acronym flow. Stage 0
// restructures the raw material into a flat grouped term list (falling back
// to the local cleaner when the model returns nothing); stage 1 consumes
// that list verbatim and emits the acronym groups. The optional validation
// stage re-checks letter/keyPhrase alignment; if its own output fails to
// parse, the stage-1 result stands.
func (f *GeneratorFunction) runAcronymPipeline(ctx context.Context, markdown, sourceHint string) (*models.AcronymResult, error) {
	raw, err := f.completer.Complete(ctx, contentPrompt(markdown), prompts.AcronymRestructureSystem, 0)
	if err != nil {
		return nil, fmt.Errorf("acronym restructure stage: completion failed: %w", err)
	}
	grouped := StripFences(raw)
	if grouped == "" {
		slog.Warn("Empty restructure output from model. Falling back to local cleaner.")
		grouped = f.cleaner.Clean(markdown, sourceHint)
	}

	res, err := runStage[models.AcronymResult](ctx, f.completer, feature.Acronym, "groups", prompts.AcronymGroupsSystem, contentPrompt(grouped), 0, nil)
	if err != nil {
		return nil, err
	}

	if f.config.EnableAcronymValidation {
		serialized, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("serialize acronym result for validation: %w", err)
		}
		validated, err := runStage[models.AcronymResult](ctx, f.completer, feature.Acronym, "validate", prompts.AcronymValidateSystem, dataPrompt(string(serialized)), 0, nil)
		if err != nil {
			slog.Warn("Acronym validation stage failed; keeping unvalidated result.", "error", err)
		} else {
			res = validated
		}
	}
	return &res, nil
}

// runTermsPipeline executes the two-stage terms flow. Stage 2's content is
// stage 1's full structured result, serialized — not the original raw text.
func (f *GeneratorFunction) runTermsPipeline(ctx context.Context, markdown string) (*models.QuizResult, error) {
	extraction, err := runStage[models.TermExtraction](ctx, f.completer, feature.Terms, "extract", prompts.TermExtractSystem, contentPrompt(markdown), 0, nil)
	if err != nil {
		return nil, err
	}

	serialized, err := json.MarshalIndent(extraction, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize term extraction: %w", err)
	}

	quiz, err := runStage[models.QuizResult](ctx, f.completer, feature.Terms, "distractors", prompts.TermDistractorSystem, dataPrompt(string(serialized)), 0, nil)
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}
