package services

import "strings"

const (
	// minWordCount is the smallest whitespace-delimited word count worth
	// sending to the model.
	minWordCount = 20
	// minLetterCount guards against inputs that clear the word count with
	// punctuation or numerals alone.
	minLetterCount = 50
)

// ValidateContent gates extracted text before any generation request is
// issued. The word and letter checks are independent; failing either one
// rejects the input.
func ValidateContent(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return &InputError{Reason: "no content to process"}
	}

	if len(strings.Fields(trimmed)) < minWordCount {
		return &InputError{Reason: "the text content is too short for this feature"}
	}

	var letters int
	for _, r := range trimmed {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
			letters++
		}
	}
	if letters < minLetterCount {
		return &InputError{Reason: "the text content is too short or meaningless for this feature"}
	}

	return nil
}
