package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// OrderEventPublisher announces committed order changes to other systems.
type OrderEventPublisher interface {
	// PublishOrderChanged sends the current state of a stored order.
	PublishOrderChanged(ctx context.Context, aggregate *order.Order) error
}
