package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderReader defines the read side of order storage.
type OrderReader interface {
	// Get retrieves an order with its items by identifier.
	// Returns *errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByUser retrieves all orders of a user with their items,
	// most recently created first. Returns an empty slice when the user has no orders.
	GetAllByUser(ctx context.Context, userID int64) ([]*order.Order, error)
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	OrderReader

	// Add stores a new order and all of its items as one unit.
	// Identifiers and timestamps are assigned by the store; the stored aggregate is returned.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Update persists the status of an existing order. Last write wins; no version is checked.
	// Returns *errs.ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error
}
