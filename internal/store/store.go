// Package store abstracts the two operations the pipeline needs from the
// document database: an atomic read-modify-write on a single counter
// document, and an all-or-nothing batch write of a document tree. The
// Firestore implementation is the production one; MemoryStore backs tests.
package store

import (
	"context"
	"fmt"
	"strings"
)

// DocPath addresses one document as alternating collection/document
// segments, e.g. {"users", uid, "meta", "counters"}.
type DocPath []string

func (p DocPath) String() string { return strings.Join(p, "/") }

// Clone returns a copy safe to append to without clobbering the original.
func (p DocPath) Clone() DocPath { return append(DocPath(nil), p...) }

// Validate checks that the path is a well-formed document path: a non-empty,
// even number of non-empty segments.
func (p DocPath) Validate() error {
	if len(p) == 0 || len(p)%2 != 0 {
		return fmt.Errorf("document path %q must have an even number of segments", p.String())
	}
	for _, seg := range p {
		if seg == "" {
			return fmt.Errorf("document path %q has an empty segment", p.String())
		}
	}
	return nil
}

// Write is one document write inside an atomic batch. Data may be a struct
// with firestore tags or a plain map.
type Write struct {
	Path DocPath
	Data any
}

// Store is the document database surface the pipeline runs against.
type Store interface {
	// Increment atomically adds 1 to the named integer field of the document
	// at path and returns the new value. If the document does not exist it is
	// created from initial (with the incremented field set to 1) in the same
	// atomic operation. Two concurrent calls for the same document and field
	// never observe the same pre-increment value.
	Increment(ctx context.Context, path DocPath, field string, initial map[string]any) (int64, error)

	// Commit applies every write atomically: either all documents are
	// committed or none are.
	Commit(ctx context.Context, writes []Write) error
}
