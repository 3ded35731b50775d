package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/studyflowhq/reviewerflow/internal/gcp"
)

// Extractor turns an uploaded file reference into plain text or markdown.
// Used only when the request carries no inline text.
type Extractor interface {
	Extract(ctx context.Context, fileURI, mimeType string) (string, error)
}

// GCSExtractor resolves gs:// file references. Textual objects are read
// straight from the bucket; everything else (PDFs, slides, images) goes
// through the Vertex extractor model as a file part.
type GCSExtractor struct {
	storageClient *storage.Client
	vertexClient  *gcp.VertexClient
}

func NewGCSExtractor(storageClient *storage.Client, vertexClient *gcp.VertexClient) *GCSExtractor {
	return &GCSExtractor{storageClient: storageClient, vertexClient: vertexClient}
}

// refusalPhrases flag model responses that declined instead of extracting.
var refusalPhrases = []string{
	"i am unable to",
	"i cannot fulfill",
	"i cannot answer",
	"i cannot provide",
	"as a large language model",
}

func (e *GCSExtractor) Extract(ctx context.Context, fileURI, mimeType string) (string, error) {
	logCtx := slog.With("fileUri", fileURI, "mimeType", mimeType)
	logCtx.Info("Extracting text from uploaded file.")

	if isTextualMime(mimeType) {
		content, err := gcp.ReadGCSObject(ctx, e.storageClient, fileURI)
		if errors.Is(err, gcp.ErrObjectNotFound) {
			return "", &InputError{Reason: fmt.Sprintf("uploaded file not found: %s", fileURI)}
		}
		return content, err
	}

	raw, err := e.vertexClient.ExtractFile(ctx, fileURI, mimeType)
	if err != nil {
		logCtx.Error("Call to Vertex AI for extraction failed", "error", err)
		return "", fmt.Errorf("failed to extract content from file: %w", err)
	}

	markdown := strings.TrimSpace(raw)
	markdown = strings.TrimPrefix(markdown, "```markdown")
	markdown = StripFences(markdown)

	// Fail fast when the model refuses rather than extracts.
	lower := strings.ToLower(markdown)
	for _, phrase := range refusalPhrases {
		if strings.Contains(lower, phrase) {
			err := fmt.Errorf("extraction model refused to process the file")
			logCtx.Error("LLM refusal detected", "error", err, "response", markdown)
			return "", err
		}
	}

	if markdown == "" {
		logCtx.Warn("No content extracted from file. Treating as empty input.")
	}
	return markdown, nil
}

func isTextualMime(mimeType string) bool {
	mimeType = strings.ToLower(mimeType)
	return strings.HasPrefix(mimeType, "text/") ||
		mimeType == "application/json" ||
		strings.Contains(mimeType, "markdown")
}
