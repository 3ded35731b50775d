package store

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store with the same atomicity guarantees as
// the Firestore implementation. It exists for tests, which use it to drive
// concurrent allocations and to simulate commit failures.
type MemoryStore struct {
	mu   sync.Mutex
	docs map[string]any

	commitErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]any)}
}

func (s *MemoryStore) Increment(ctx context.Context, path DocPath, field string, initial map[string]any) (int64, error) {
	if err := path.Validate(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, _ := s.docs[path.String()].(map[string]any)
	if doc == nil {
		doc = make(map[string]any, len(initial)+1)
		for k, v := range initial {
			doc[k] = v
		}
		s.docs[path.String()] = doc
	}

	var current int64
	if n, ok := doc[field].(int64); ok {
		current = n
	}
	next := current + 1
	doc[field] = next
	return next, nil
}

func (s *MemoryStore) Commit(ctx context.Context, writes []Write) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.commitErr != nil {
		err := s.commitErr
		s.commitErr = nil
		return err
	}
	for _, w := range writes {
		if err := w.Path.Validate(); err != nil {
			return err
		}
	}
	// All paths valid: apply the whole batch.
	for _, w := range writes {
		s.docs[w.Path.String()] = w.Data
	}
	return nil
}

// FailNextCommit makes the next Commit return err without applying any
// write, mirroring a failed atomic batch.
func (s *MemoryStore) FailNextCommit(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commitErr = err
}

// Get returns the stored document data for path, or nil if absent.
func (s *MemoryStore) Get(path DocPath) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs[path.String()]
}

// Paths returns the paths of all stored documents, unordered.
func (s *MemoryStore) Paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	paths := make([]string, 0, len(s.docs))
	for p := range s.docs {
		paths = append(paths, p)
	}
	return paths
}

// Len reports the number of stored documents.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}
