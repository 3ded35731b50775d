package services

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyflowhq/reviewerflow/internal/models"
	"github.com/studyflowhq/reviewerflow/internal/store"
)

// studyText clears both gate thresholds: 30 words, 80+ letters.
const studyText = "Photosynthesis is the process by which green plants convert light energy into chemical energy stored as glucose " +
	"inside chloroplasts while releasing oxygen as a byproduct during the light dependent reactions"

func newTestGenerator(t *testing.T, c *fakeCompleter) (*GeneratorFunction, *store.MemoryStore) {
	t.Helper()
	mem := store.NewMemoryStore()
	g := newGeneratorWith(mem, c, &fakeExtractor{}, NewMarkdownCleaner(), GeneratorConfig{ProjectID: "test"})
	return g, mem
}

func TestProcessTermsEndToEnd(t *testing.T) {
	stage1 := `{"title":"X","questions":[{"id":"q1","term":"Photosynthesis","definition":"Process by which plants convert light into energy"}]}`
	stage2 := `{"title":"X","questions":[{"id":"q1","term":"Photosynthesis","definition":[` +
		`{"text":"Process by which plants convert light into energy","type":"correct"},` +
		`{"text":"A metabolic pathway in which animal cells break down stored fats to release usable heat across winter months in dormant species","type":"wrong"},` +
		`{"text":"The mechanism cells use to pump sodium ions outward against their concentration gradient using membrane transport proteins and chemical energy","type":"wrong"},` +
		`{"text":"The absorption of water through plant root membranes","type":"wrong"}]}]}`
	c := &fakeCompleter{responses: []string{stage1, stage2}}
	g, mem := newTestGenerator(t, c)

	res, err := g.Process(context.Background(), &models.GenerateRequest{
		UserID:   "u1",
		Feature:  "terms",
		Markdown: studyText,
	})
	require.NoError(t, err)
	require.Len(t, res.Artifacts, 1)
	assert.Equal(t, "td1", res.Artifacts[0].ID)

	// Stage 2 consumed stage 1's structured result, serialized — not the raw text.
	require.Equal(t, 2, c.callCount())
	assert.Contains(t, c.calls[1].Content, `"term": "Photosynthesis"`)
	assert.NotContains(t, c.calls[1].Content, "chloroplasts")

	q, ok := mem.Get(store.DocPath{"users", "u1", "folders", "TermsAndDefinitions", "reviewers", "td1", "questions", "q1"}).(models.QuestionRecord)
	require.True(t, ok)
	assert.Equal(t, "Photosynthesis", q.Term)
	require.Len(t, q.Definition, 4)

	var correct, wrong int
	for _, d := range q.Definition {
		switch d.Type {
		case models.DefinitionCorrect:
			correct++
			assert.Equal(t, "Process by which plants convert light into energy", d.Text)
		case models.DefinitionWrong:
			wrong++
			assert.NotEqual(t, "Process by which plants convert light into energy", d.Text)
		}
	}
	assert.Equal(t, 1, correct)
	assert.Equal(t, 3, wrong)
}

func TestProcessRejectsShortInputBeforeAnyCompletion(t *testing.T) {
	c := &fakeCompleter{}
	g, mem := newTestGenerator(t, c)

	_, err := g.Process(context.Background(), &models.GenerateRequest{
		UserID:   "u1",
		Feature:  "acronym",
		Markdown: "a b c",
	})
	require.Error(t, err)

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
	// The gate fires before the completion service and before allocation.
	assert.Equal(t, 0, c.callCount())
	assert.Equal(t, 0, mem.Len())
}

func TestProcessAcronymStageChaining(t *testing.T) {
	grouped := "# Energy Terms\n- Photosynthesis\n- Glucose"
	stage1 := `{"title":"Energy","acronymGroups":[{"id":"q1","keyPhrase":"Purple Giraffes","title":"Plant Energy","contents":[` +
		`{"letter":"P","word":"Photosynthesis"},{"letter":"G","word":"Glucose"}]}]}`
	c := &fakeCompleter{responses: []string{grouped, stage1}}
	g, mem := newTestGenerator(t, c)

	res, err := g.Process(context.Background(), &models.GenerateRequest{
		UserID:   "u1",
		Feature:  "acronym",
		Markdown: studyText,
	})
	require.NoError(t, err)
	assert.Equal(t, "ac1", res.Artifacts[0].ID)

	// Stage 1 consumed stage 0's output verbatim, not the original raw text.
	require.Equal(t, 2, c.callCount())
	assert.Contains(t, c.calls[1].Content, grouped)
	assert.NotContains(t, c.calls[1].Content, "chloroplasts")

	group, ok := mem.Get(store.DocPath{"users", "u1", "folders", "AcronymMnemonics", "reviewers", "ac1", "content", "q1"}).(models.AcronymGroupRecord)
	require.True(t, ok)

	// keyPhrase law: one word per contents entry, first letters aligned.
	words := strings.Fields(group.KeyPhrase)
	items := res.Artifacts[0].Payload.(models.AcronymResult).AcronymGroups[0].Contents
	require.Len(t, words, len(items))
	for i, w := range words {
		assert.Equal(t, strings.ToLower(items[i].Letter), strings.ToLower(w[:1]))
	}
}

func TestProcessAcronymFallbackToCleanerOnEmptyStage0(t *testing.T) {
	stage1 := `{"title":"Energy","acronymGroups":[]}`
	c := &fakeCompleter{responses: []string{"", stage1}}
	g, _ := newTestGenerator(t, c)

	_, err := g.Process(context.Background(), &models.GenerateRequest{
		UserID:   "u1",
		Feature:  "acronym",
		Markdown: studyText,
	})
	require.NoError(t, err)

	// Stage 1's content fell back to the locally cleaned original text.
	require.Equal(t, 2, c.callCount())
	assert.Contains(t, c.calls[1].Content, "chloroplasts")
}

func TestProcessStageParseFailureAbortsWithoutPersisting(t *testing.T) {
	c := &fakeCompleter{responses: []string{"I'd be happy to help, but..."}}
	g, mem := newTestGenerator(t, c)

	_, err := g.Process(context.Background(), &models.GenerateRequest{
		UserID:   "u1",
		Feature:  "summarize",
		Markdown: studyText,
	})
	require.Error(t, err)

	var stageErr *StageParseError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, "summarize", stageErr.Feature)
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(err))

	// The counter moved, but no reviewer document exists.
	for _, path := range mem.Paths() {
		assert.NotContains(t, path, "reviewers")
	}
}

func TestProcessSummarizeEmbedsResult(t *testing.T) {
	out := `{"title":"Plant energy","sections":[{"title":"PHOTOSYNTHESIS","summary":"How plants make glucose.","concepts":[],"keyTakeaways":["Light becomes chemical energy"]}]}`
	c := &fakeCompleter{responses: []string{out}}
	g, mem := newTestGenerator(t, c)

	res, err := g.Process(context.Background(), &models.GenerateRequest{
		UserID:   "u1",
		Feature:  "summarize",
		Markdown: studyText,
	})
	require.NoError(t, err)
	assert.Equal(t, "std1", res.Artifacts[0].ID)

	rec, ok := mem.Get(store.DocPath{"users", "u1", "folders", "SummarizedReviewers", "reviewers", "std1"}).(models.EmbeddedReviewerRecord)
	require.True(t, ok)
	require.Len(t, rec.Reviewers, 1)
	summary := rec.Reviewers[0].(models.SummaryResult)
	assert.Equal(t, "Plant energy", summary.Title)
}

func TestProcessMarkdownOnlySkipsGeneration(t *testing.T) {
	c := &fakeCompleter{}
	g, mem := newTestGenerator(t, c)

	res, err := g.Process(context.Background(), &models.GenerateRequest{
		UserID:       "u1",
		Feature:      "explain",
		Markdown:     studyText,
		MarkdownOnly: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.ProcessedMarkdown)
	assert.Empty(t, res.Artifacts)
	assert.Equal(t, 0, c.callCount())
	assert.Equal(t, 0, mem.Len())
}

func TestProcessUnknownFeature(t *testing.T) {
	g, _ := newTestGenerator(t, &fakeCompleter{})

	_, err := g.Process(context.Background(), &models.GenerateRequest{
		UserID:   "u1",
		Feature:  "flashcards",
		Markdown: studyText,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestProcessUsesExtractorWhenNoInlineText(t *testing.T) {
	out := `{"title":"T","sections":[]}`
	c := &fakeCompleter{responses: []string{out}}
	mem := store.NewMemoryStore()
	g := newGeneratorWith(mem, c, &fakeExtractor{text: studyText}, NewMarkdownCleaner(), GeneratorConfig{ProjectID: "test"})

	res, err := g.Process(context.Background(), &models.GenerateRequest{
		UserID:  "u1",
		Feature: "explain",
		FileURI: "gs://uploads/u1/notes.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "ai1", res.Artifacts[0].ID)
}
