package models

// These structs define the JSON the generation stages are required to emit.
// Each stage unmarshals the model's (fence-stripped) output into exactly one
// of them; anything that does not unmarshal is a stage failure.

// SummaryResult is the single-stage output of the summarize pipeline.
type SummaryResult struct {
	Title    string           `json:"title"`
	Sections []SummarySection `json:"sections"`
}

type SummarySection struct {
	Title        string    `json:"title"`
	Summary      string    `json:"summary"`
	Concepts     []Concept `json:"concepts"`
	KeyTakeaways []string  `json:"keyTakeaways"`
}

type Concept struct {
	Term        string `json:"term"`
	Explanation string `json:"explanation"`
	Example     string `json:"example,omitempty"`
}

// ExplainResult is the single-stage output of the explain pipeline.
type ExplainResult struct {
	Title    string           `json:"title"`
	Sections []ExplainSection `json:"sections"`
}

type ExplainSection struct {
	Title       string   `json:"title"`
	Explanation string   `json:"explanation"`
	Analogy     string   `json:"analogy"`
	Steps       []string `json:"steps"`
	KeyPoints   []string `json:"keyPoints"`
}

// AcronymResult is the stage-1 output of the acronym pipeline. The keyPhrase
// of each group carries one word per contents entry, each word starting with
// that entry's letter.
type AcronymResult struct {
	Title         string         `json:"title"`
	AcronymGroups []AcronymGroup `json:"acronymGroups"`
}

type AcronymGroup struct {
	ID        string       `json:"id"`
	KeyPhrase string       `json:"keyPhrase"`
	Title     string       `json:"title"`
	Contents  []LetterWord `json:"contents"`
}

type LetterWord struct {
	Letter string `json:"letter"`
	Word   string `json:"word"`
}

// TermExtraction is the stage-1 output of the terms pipeline: every
// extractable item paired with the definition found in the source text.
type TermExtraction struct {
	Title     string          `json:"title"`
	Questions []ExtractedTerm `json:"questions"`
}

type ExtractedTerm struct {
	ID         string `json:"id"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// QuizResult is the stage-2 output of the terms pipeline: each question keeps
// the correct definition verbatim and gains three distractors.
type QuizResult struct {
	Title     string         `json:"title"`
	Questions []QuizQuestion `json:"questions"`
}

type QuizQuestion struct {
	ID         string             `json:"id"`
	Term       string             `json:"term"`
	Definition []DefinitionOption `json:"definition"`
}

// DefinitionOption is one answer choice; Type is "correct" or "wrong".
type DefinitionOption struct {
	Text string `json:"text" firestore:"text"`
	Type string `json:"type" firestore:"type"`
}

const (
	DefinitionCorrect = "correct"
	DefinitionWrong   = "wrong"
)
