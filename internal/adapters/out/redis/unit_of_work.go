// Package redis adapts the Redis counter store to the unit of work
// contract used by command handlers. Redis INCR is already atomic, so
// the transaction boundary is a no-op; the adapter exists so the
// allocation flow stays identical across counter store backends.
package redis

import (
	"context"

	"swiftwash/internal/adapters/out/redis/counterrepo"
	"swiftwash/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// UnitOfWorkFactory creates UnitOfWork instances over a shared Redis
// client.
type UnitOfWorkFactory struct {
	client *redis.Client
}

// NewUnitOfWorkFactory creates a factory for Redis-backed unit of work
// instances.
func NewUnitOfWorkFactory(client *redis.Client) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{client: client}
}

// Create produces a new UnitOfWork instance.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{client: f.client}
}

// UnitOfWork satisfies the transaction contract over Redis. Begin,
// Commit and Rollback do nothing: each Increment is a single atomic
// server-side operation with nothing to roll back.
type UnitOfWork struct {
	client *redis.Client
}

// Begin is a no-op for the Redis backend.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	return nil
}

// Commit is a no-op for the Redis backend.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	return nil
}

// Rollback is a no-op for the Redis backend.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	return nil
}

// CounterRepository returns a CounterRepository backed by Redis INCR.
func (uow *UnitOfWork) CounterRepository() ports.CounterRepository {
	return counterrepo.NewRedisCounterRepository(uow.client)
}
