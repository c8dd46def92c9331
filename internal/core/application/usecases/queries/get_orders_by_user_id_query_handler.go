package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// GetOrdersByUserIDQueryHandler lists a user's orders, most recently created first.
//
// Example:
//
//	handler := NewGetOrdersByUserIDQueryHandler(orderRepo)
//	orders, err := handler.Handle(ctx, NewGetOrdersByUserIDQuery(1))
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("user has %d orders\n", len(orders))
type GetOrdersByUserIDQueryHandler struct {
	reader ports.OrderReader
}

func NewGetOrdersByUserIDQueryHandler(reader ports.OrderReader) GetOrdersByUserIDQueryHandler {
	return GetOrdersByUserIDQueryHandler{reader: reader}
}

// Handle returns the orders; never nil on success.
func (h GetOrdersByUserIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByUserIDQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.reader.GetAllByUser(ctx, query.UserID())
	if err != nil {
		return nil, err
	}

	if orders == nil {
		orders = []*order.Order{}
	}
	return orders, nil
}
