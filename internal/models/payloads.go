package models

import "encoding/json"

// These structs define the JSON payloads of the reviewer-generator HTTP
// function. Authentication happens upstream; the gateway forwards the
// verified user id in the request body.

// GenerateRequest is the input for the reviewer-generator function. Exactly
// one of Markdown and FileURI should be set; when FileURI is set, MimeType
// tells the extractor how to read it.
type GenerateRequest struct {
	UserID  string `json:"userId"`
	Feature string `json:"feature"`

	Markdown   string `json:"markdown,omitempty"`
	FileURI    string `json:"fileUri,omitempty"`
	MimeType   string `json:"mimeType,omitempty"`
	SourceType string `json:"sourceType,omitempty"`

	// MarkdownOnly short-circuits the pipeline after text acquisition and
	// cleaning, returning the processed markdown without generating anything.
	MarkdownOnly bool `json:"markdownOnly,omitempty"`
}

// GenerateResponse is the output of the reviewer-generator function.
type GenerateResponse struct {
	Artifacts         []Artifact `json:"artifacts,omitempty"`
	ProcessedMarkdown string     `json:"processedMarkdown,omitempty"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Artifact pairs an allocated identifier with the parsed pipeline result.
// It marshals flat: the payload's fields plus "id" at the top level.
type Artifact struct {
	ID      string
	Payload any
}

func (a Artifact) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(a.Payload)
	if err != nil {
		return nil, err
	}
	flat := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, err
	}
	flat["id"], err = json.Marshal(a.ID)
	if err != nil {
		return nil, err
	}
	return json.Marshal(flat)
}
