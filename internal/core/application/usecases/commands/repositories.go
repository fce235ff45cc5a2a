// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. Commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"swiftwash/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure the sequence counter's
// read-increment-write stays atomic with respect to concurrent allocators.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CounterRepoFactory provides access to the counter repository within
	// a transaction.
	CounterRepoFactory interface {
		CounterRepository() ports.CounterRepository
	}

	// CounterUoW manages transactions for sequence allocation.
	CounterUoW interface {
		TxManager
		CounterRepoFactory
	}

	// CounterUoWFactory creates new counter unit of work instances.
	CounterUoWFactory interface {
		Create() CounterUoW
	}
)
