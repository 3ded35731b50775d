// Package feature enumerates the four supported reviewer kinds and the
// per-kind constants (identifier prefix, folder, counter field) that the
// allocator and persister key off.
package feature

import "fmt"

// Feature identifies one reviewer kind. The switch statements over it are
// exhaustive; adding a case means touching every one of them.
type Feature int

const (
	Acronym Feature = iota
	Terms
	Summarize
	Explain
)

// All lists every feature, in a stable order.
var All = []Feature{Acronym, Terms, Summarize, Explain}

// Parse maps the request selector string onto a Feature.
func Parse(s string) (Feature, error) {
	switch s {
	case "acronym":
		return Acronym, nil
	case "terms":
		return Terms, nil
	case "summarize":
		return Summarize, nil
	case "explain":
		return Explain, nil
	default:
		return 0, fmt.Errorf("unknown feature %q", s)
	}
}

func (f Feature) String() string {
	switch f {
	case Acronym:
		return "acronym"
	case Terms:
		return "terms"
	case Summarize:
		return "summarize"
	case Explain:
		return "explain"
	}
	return fmt.Sprintf("Feature(%d)", int(f))
}

// Prefix is the human-readable identifier prefix, e.g. "ac" + counter 3 → "ac3".
func (f Feature) Prefix() string {
	switch f {
	case Acronym:
		return "ac"
	case Terms:
		return "td"
	case Summarize:
		return "std"
	case Explain:
		return "ai"
	}
	return ""
}

// FolderID is the folder document under which the feature's reviewers live.
func (f Feature) FolderID() string {
	switch f {
	case Acronym:
		return "AcronymMnemonics"
	case Terms:
		return "TermsAndDefinitions"
	case Summarize:
		return "SummarizedReviewers"
	case Explain:
		return "SummarizedAIReviewers"
	}
	return ""
}

// CounterField is the field name of this feature's counter in the per-user
// counters document. Each feature owns exactly one field, so allocations for
// different features never contend on the same value.
func (f Feature) CounterField() string {
	switch f {
	case Acronym:
		return "acronymCounter"
	case Terms:
		return "termCounter"
	case Summarize:
		return "summarizationCounter"
	case Explain:
		return "aiCounter"
	}
	return ""
}
