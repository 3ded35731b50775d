package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore implements Store on a Firestore database. Increment relies
// on RunTransaction for the read-modify-write guarantee; Commit relies on
// WriteBatch being atomic.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) Increment(ctx context.Context, path DocPath, field string, initial map[string]any) (int64, error) {
	if err := path.Validate(); err != nil {
		return 0, err
	}
	ref := s.doc(path)

	var next int64
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}

		var current int64
		exists := snap != nil && snap.Exists()
		if exists {
			if v, err := snap.DataAt(field); err == nil {
				if n, ok := v.(int64); ok {
					current = n
				}
			}
		}
		next = current + 1

		if !exists {
			data := make(map[string]any, len(initial)+1)
			for k, v := range initial {
				data[k] = v
			}
			data[field] = next
			return tx.Set(ref, data)
		}
		return tx.Update(ref, []firestore.Update{{Path: field, Value: next}})
	})
	if err != nil {
		return 0, fmt.Errorf("counter transaction for %s.%s: %w", path, field, err)
	}
	return next, nil
}

func (s *FirestoreStore) Commit(ctx context.Context, writes []Write) error {
	batch := s.client.Batch()
	for _, w := range writes {
		if err := w.Path.Validate(); err != nil {
			return err
		}
		batch.Set(s.doc(w.Path), w.Data)
	}
	if _, err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("batch commit of %d writes: %w", len(writes), err)
	}
	return nil
}

// doc resolves a validated DocPath to a document reference.
func (s *FirestoreStore) doc(path DocPath) *firestore.DocumentRef {
	ref := s.client.Collection(path[0]).Doc(path[1])
	for i := 2; i+1 < len(path); i += 2 {
		ref = ref.Collection(path[i]).Doc(path[i+1])
	}
	return ref
}
