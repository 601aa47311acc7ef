package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances, one per workflow
// operation, so concurrent operations get isolated transactions.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents the transaction boundary around one order
// aggregate mutation. Two executors marking different items purchased
// concurrently serialize at this boundary, so neither can observe a stale
// completion state.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction started by Begin().
	OrderRepository() OrderRepository
}
