package gcp

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
)

// --- Extractor Model Prompts ---
const ExtractorSystemPrompt = "You are a document parser and markdown translator. Your task is to parse the content of an uploaded study-material file and translate it into markdown format. Accuracy, detail, and information preservation are of utmost importance."
const ExtractorUserPrompt = `You will be provided with a document file:

Follow these instructions to parse the document and translate its content into markdown format:

Text: Parse all text content directly into markdown text.
Lists: Parse all lists into markdown lists, maintaining the original structure and formatting.
Images: Replace each image with a descriptive text that accurately describes the image's content. Be as detailed as possible in your description.
Tables: Parse all tables into markdown tables. If a table contains merged cells, normalize the table by copying and appending the content from the parent cells into the normalized child cells. This ensures that as much information as possible is preserved.
Headers and Footers: Ignore any irrelevant content in the header and footer, such as the publishing company's name, logo, address, or page numbers. Focus on preserving the core content of the document.
Your primary goal is to maintain the integrity and completeness of the document's content in the markdown output. Ensure that all details and information are accurately translated and preserved.`

// VertexClient holds the pre-configured generative models for our app: one
// generator model the pipeline stages run against, and one extractor model
// for turning uploaded files into markdown.
type VertexClient struct {
	ExtractorModel *genai.GenerativeModel
	baseClient     *genai.Client
	modelName      string
}

// NewVertexClient creates a new client holding all necessary models.
func NewVertexClient(ctx context.Context, projectID, region, modelName string) (*VertexClient, error) {
	if projectID == "" || region == "" {
		return nil, fmt.Errorf("NewVertexClient: projectID and region cannot be empty")
	}
	if modelName == "" {
		modelName = "gemini-1.5-pro"
	}

	baseClient, err := genai.NewClient(ctx, projectID, region)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	// --- Configure the extractor model ---
	extractorModel := baseClient.GenerativeModel(modelName)
	extractorModel.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(ExtractorSystemPrompt)},
	}
	extractorModel.GenerationConfig = genai.GenerationConfig{
		Temperature: genai.Ptr[float32](0.0),
	}

	return &VertexClient{
		ExtractorModel: extractorModel,
		baseClient:     baseClient,
		modelName:      modelName,
	}, nil
}

// Complete runs one generation round-trip: content plus per-call system
// instructions and temperature in, raw text out. The pipeline treats the
// output as untrusted and parses it itself.
func (c *VertexClient) Complete(ctx context.Context, content, instructions string, temperature float32) (string, error) {
	model := c.baseClient.GenerativeModel(c.modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(instructions)},
	}
	model.GenerationConfig = genai.GenerationConfig{
		Temperature: genai.Ptr(temperature),
	}

	resp, err := model.GenerateContent(ctx, genai.Text(content))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return ExtractText(resp), nil
}

// ExtractFile asks the extractor model to translate the file at the given
// GCS URI into markdown.
func (c *VertexClient) ExtractFile(ctx context.Context, gcsURI, mimeType string) (string, error) {
	filePart := genai.FileData{
		MIMEType: mimeType,
		FileURI:  gcsURI,
	}
	resp, err := c.ExtractorModel.GenerateContent(ctx, filePart, genai.Text(ExtractorUserPrompt))
	if err != nil {
		return "", fmt.Errorf("extract file content: %w", err)
	}
	return ExtractText(resp), nil
}

// ExtractText robustly gets the concatenated text content out of a model
// response.
func ExtractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String()
}

func (c *VertexClient) Close() error {
	if c.baseClient != nil {
		return c.baseClient.Close()
	}
	return nil
}
