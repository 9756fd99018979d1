package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command so that
// concurrent handlers never share transaction state.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary for a single business operation.
// The caller drives the lifecycle explicitly: Begin, then Commit or
// Rollback. Repositories obtained from it run inside that transaction.
type UnitOfWork interface {
	// Begin opens the transaction.
	Begin(ctx context.Context) error

	// Commit commits the transaction. Fails when none is active.
	Commit(ctx context.Context) error

	// Rollback aborts the transaction. Fails when none is active.
	Rollback(ctx context.Context) error

	// DriverRepository returns the driver repository bound to the
	// transaction started by Begin.
	DriverRepository() DriverRepository

	// OrderRepository returns the order repository bound to the
	// transaction started by Begin.
	OrderRepository() OrderRepository
}
