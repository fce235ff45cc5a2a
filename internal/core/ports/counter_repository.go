package ports

import (
	"context"

	"swiftwash/internal/core/domain/model/counter"
)

// CounterRepository defines the persistence contract for daily sequence
// counters. Implementations must make Increment atomic with respect to
// concurrent callers on the same key, across processes and machines: two
// simultaneous increments of one key must never observe or return the
// same value.
type CounterRepository interface {
	// Increment atomically advances the counter for the given key by one
	// and returns the new value. A counter that does not exist yet is
	// created with value 1. The record's last-updated timestamp is set as
	// part of the same atomic operation.
	Increment(ctx context.Context, key counter.Key) (int, error)

	// Current returns the counter's present value without mutating it.
	// Returns 0 for a key that has never been incremented.
	Current(ctx context.Context, key counter.Key) (int, error)
}
