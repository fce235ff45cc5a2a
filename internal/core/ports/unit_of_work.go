package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the counter
// store. It provides transaction control; client code must explicitly
// manage the transaction lifecycle.
//
// Sequence allocation relies on the store's isolation guarantee rather
// than any in-process lock, because allocators for the same key may run
// on different machines.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// CounterRepository returns a CounterRepository bound to the current
	// transaction. The repository will use the transaction started by Begin().
	CounterRepository() CounterRepository
}
