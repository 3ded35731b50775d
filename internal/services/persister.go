package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/studyflowhq/reviewerflow/internal/feature"
	"github.com/studyflowhq/reviewerflow/internal/models"
	"github.com/studyflowhq/reviewerflow/internal/store"
)

// Persister maps a parsed pipeline result onto the reviewer document
// hierarchy and commits every record of one request as a single atomic
// batch. Either the whole reviewer becomes visible or none of it does.
type Persister struct {
	store store.Store
	now   func() time.Time
}

func NewPersister(s store.Store) *Persister {
	return &Persister{store: s, now: time.Now}
}

// reviewerPath is the root document of one reviewer:
// users/{uid}/folders/{folder}/reviewers/{id}.
func reviewerPath(userID string, f feature.Feature, id string) store.DocPath {
	return store.DocPath{"users", userID, "folders", f.FolderID(), "reviewers", id}
}

// PersistAcronym writes the reviewer record, one content record per group
// (keyed by the group's id) and one leaf record per letter/word pair (keyed
// by its zero-based position).
func (p *Persister) PersistAcronym(ctx context.Context, userID, id string, res *models.AcronymResult) error {
	base := reviewerPath(userID, feature.Acronym, id)
	now := p.now()

	writes := []store.Write{{
		Path: base,
		Data: models.ReviewerRecord{ID: id, Title: orUntitled(res.Title), CreatedAt: now, StartDate: now},
	}}
	for _, group := range res.AcronymGroups {
		groupPath := append(base.Clone(), "content", group.ID)
		writes = append(writes, store.Write{
			Path: groupPath,
			Data: models.AcronymGroupRecord{ID: group.ID, KeyPhrase: group.KeyPhrase, Title: group.Title},
		})
		for i, item := range group.Contents {
			writes = append(writes, store.Write{
				Path: append(groupPath.Clone(), "contents", strconv.Itoa(i)),
				Data: models.AcronymItemRecord{Letter: item.Letter, Word: item.Word},
			})
		}
	}
	return p.commit(ctx, writes)
}

// PersistQuiz writes the reviewer record and one question record per usable
// question. Definition entries missing text or type are dropped; a question
// with an empty term or an emptied definition list is skipped entirely.
// Questions without an id get an auto-generated key.
func (p *Persister) PersistQuiz(ctx context.Context, userID, id string, res *models.QuizResult) error {
	base := reviewerPath(userID, feature.Terms, id)
	now := p.now()

	writes := []store.Write{{
		Path: base,
		Data: models.ReviewerRecord{ID: id, Title: orUntitled(res.Title), CreatedAt: now, StartDate: now},
	}}
	for _, q := range res.Questions {
		term := strings.TrimSpace(q.Term)
		if term == "" {
			continue
		}
		var definitions []models.DefinitionOption
		for _, d := range q.Definition {
			if d.Text == "" || d.Type == "" {
				continue
			}
			definitions = append(definitions, models.DefinitionOption{Text: strings.TrimSpace(d.Text), Type: d.Type})
		}
		if len(definitions) == 0 {
			continue
		}

		key := q.ID
		if key == "" {
			key = uuid.NewString()
		}
		writes = append(writes, store.Write{
			Path: append(base.Clone(), "questions", key),
			Data: models.QuestionRecord{Term: term, Definition: definitions},
		})
	}
	return p.commit(ctx, writes)
}

// PersistEmbedded writes a summarize or explain reviewer as one record with
// the full parsed result embedded under a single-element reviewers list.
func (p *Persister) PersistEmbedded(ctx context.Context, userID string, f feature.Feature, id string, parsed any) error {
	now := p.now()
	writes := []store.Write{{
		Path: reviewerPath(userID, f, id),
		Data: models.EmbeddedReviewerRecord{ID: id, Reviewers: []any{parsed}, CreatedAt: now, StartDate: now},
	}}
	return p.commit(ctx, writes)
}

func (p *Persister) commit(ctx context.Context, writes []store.Write) error {
	if err := p.store.Commit(ctx, writes); err != nil {
		return &PersistenceError{Err: err}
	}
	return nil
}

func orUntitled(title string) string {
	if strings.TrimSpace(title) == "" {
		return "Untitled"
	}
	return title
}
