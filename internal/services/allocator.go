package services

import (
	"context"
	"fmt"

	"github.com/studyflowhq/reviewerflow/internal/feature"
	"github.com/studyflowhq/reviewerflow/internal/store"
)

// Allocator issues globally unique, monotonically increasing reviewer
// identifiers from the per-user counters document. Uniqueness under
// concurrent requests comes from the store's atomic Increment; identifiers
// are never reused, so deleting a reviewer leaves a gap.
type Allocator struct {
	store store.Store
}

func NewAllocator(s store.Store) *Allocator {
	return &Allocator{store: s}
}

// Allocate returns the next identifier for the user's feature category,
// e.g. "ac3". The counters document is created lazily, with all four
// counters zeroed, inside the same atomic operation as the first increment.
func (a *Allocator) Allocate(ctx context.Context, userID string, f feature.Feature) (string, error) {
	path := counterPath(userID)
	next, err := a.store.Increment(ctx, path, f.CounterField(), initialCounters())
	if err != nil {
		return "", fmt.Errorf("allocate %s identifier for user %s: %w", f, userID, err)
	}
	return fmt.Sprintf("%s%d", f.Prefix(), next), nil
}

func counterPath(userID string) store.DocPath {
	return store.DocPath{"users", userID, "meta", "counters"}
}

// initialCounters is the zeroed counters document, one field per feature.
// models.CounterRecord documents the resulting shape.
func initialCounters() map[string]any {
	fields := make(map[string]any, len(feature.All))
	for _, f := range feature.All {
		fields[f.CounterField()] = int64(0)
	}
	return fields
}
