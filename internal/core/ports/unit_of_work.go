package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per order operation.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork groups the order writes of one operation into a single store transaction.
// The caller opens and closes it explicitly.
type UnitOfWork interface {
	// Begin opens the transaction. Calling it twice keeps the first transaction.
	Begin(ctx context.Context) error

	// Commit makes the writes visible. It fails when no transaction is open.
	Commit(ctx context.Context) error

	// Rollback discards the writes. It fails when no transaction is open,
	// which includes any call after a successful Commit.
	Rollback(ctx context.Context) error

	// OrderRepository returns an order store that writes inside the open transaction.
	OrderRepository() OrderRepository
}
