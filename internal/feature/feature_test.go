package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	for _, f := range All {
		parsed, err := Parse(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("flashcards")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flashcards")
}

func TestFeatureConstants(t *testing.T) {
	cases := []struct {
		f       Feature
		prefix  string
		folder  string
		counter string
	}{
		{Acronym, "ac", "AcronymMnemonics", "acronymCounter"},
		{Terms, "td", "TermsAndDefinitions", "termCounter"},
		{Summarize, "std", "SummarizedReviewers", "summarizationCounter"},
		{Explain, "ai", "SummarizedAIReviewers", "aiCounter"},
	}
	for _, tc := range cases {
		t.Run(tc.f.String(), func(t *testing.T) {
			assert.Equal(t, tc.prefix, tc.f.Prefix())
			assert.Equal(t, tc.folder, tc.f.FolderID())
			assert.Equal(t, tc.counter, tc.f.CounterField())
		})
	}
}

func TestCounterFieldsAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range All {
		require.False(t, seen[f.CounterField()], "duplicate counter field for %s", f)
		seen[f.CounterField()] = true
	}
}
