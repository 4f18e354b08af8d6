// Package sequence issues human-readable identifiers from named counters.
package sequence

import (
	"context"
	"fmt"
	"registrar/pkg/serrors"
	"registrar/pkg/storage"
	"strings"
)

// Allocator hands out sequence numbers. Every number comes from a single
// atomic increment in the backing store, so concurrent allocators, in the same
// process or not, never observe the same value for a key.
type Allocator struct {
	counters storage.CounterStorage
}

// New creates an Allocator on top of counters. Pass a transactional storage
// handle to make the increment part of a larger atomic write.
func New(counters storage.CounterStorage) *Allocator {
	return &Allocator{counters: counters}
}

// Allocate increments the counter identified by key and returns its new value.
// The first allocation of a key returns 1. On failure no value is issued.
func (a *Allocator) Allocate(ctx context.Context, key string) (int64, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return 0, serrors.Invalid("key", "must not be empty")
	}

	seq, err := a.counters.NextSequence(ctx, key)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrUnavailable, err, "could not allocate sequence")
	}
	if seq < 1 {
		return 0, serrors.With(serrors.ErrInternal, "counter %q returned non-positive value %d", key, seq)
	}

	return seq, nil
}

// FormatCode renders "<prefix>-<seq>" with seq zero-padded to width digits.
// Values wider than width are never truncated.
func FormatCode(prefix string, seq int64, width int) string {
	return fmt.Sprintf("%s-%0*d", prefix, width, seq)
}
