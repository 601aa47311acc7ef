// Package commands contains the workflow's write operations. Implements the
// Command pattern: each operation is a validated command object plus a
// handler that wraps authorize → load → precondition-check → mutate →
// persist inside one unit of work.
package commands

import (
	"context"

	"shoplist/internal/core/domain/model/actor"
	"shoplist/internal/core/ports"
	"shoplist/internal/pkg/errs"
)

// Unit of Work interfaces provide transaction management for command
// handlers. The order aggregate is the only unit of consistency in this
// workflow, so a single shape suffices.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages the transaction around one order aggregate
	// mutation.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)

// requireActiveActor rejects unconstructed and inactive principals. An
// inactive account is indistinguishable from an unknown one to every
// workflow operation.
func requireActiveActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if !a.IsActive() {
		return errs.NewObjectNotFoundError("actor", a.ID().String())
	}
	return nil
}
