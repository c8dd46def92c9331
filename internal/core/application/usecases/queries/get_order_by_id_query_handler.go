package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// GetOrderByIDQueryHandler loads a single order aggregate.
type GetOrderByIDQueryHandler struct {
	reader ports.OrderReader
}

// NewGetOrderByIDQueryHandler creates a handler reading through reader.
func NewGetOrderByIDQueryHandler(reader ports.OrderReader) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{reader: reader}
}

// Handle returns the order, or *errs.ObjectNotFoundError when it does not exist.
func (h GetOrderByIDQueryHandler) Handle(ctx context.Context, query GetOrderByIDQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.reader.Get(ctx, query.OrderID())
}
