package http

import (
	"time"

	"ordering/internal/core/domain/model/food"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
)

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	UserID int64              `json:"userId"`
	Items  []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	FoodID   int64 `json:"foodId"`
	Quantity int   `json:"quantity"`
}

// UpdateOrderStatusRequest is the body of PATCH /api/v1/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type OrderResponse struct {
	ID        string              `json:"id"`
	UserID    int64               `json:"userId"`
	Status    string              `json:"status"`
	Total     string              `json:"total"`
	Items     []OrderItemResponse `json:"items"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

type OrderItemResponse struct {
	ID       string `json:"id"`
	OrderID  string `json:"orderId"`
	FoodID   int64  `json:"foodId"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

type FoodResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Category  string `json:"category"`
	Available bool   `json:"available"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (r CreateOrderRequest) requestedItems() []services.RequestedItem {
	items := make([]services.RequestedItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, services.RequestedItem{
			FoodID:   item.FoodID,
			Quantity: item.Quantity,
		})
	}
	return items
}

func newOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ID:       item.ID().String(),
			OrderID:  item.OrderID().String(),
			FoodID:   item.FoodID(),
			Quantity: item.Quantity(),
			Price:    item.UnitPrice().String(),
		})
	}

	return OrderResponse{
		ID:        o.ID().String(),
		UserID:    o.UserID(),
		Status:    o.Status().String(),
		Total:     o.Total().String(),
		Items:     items,
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}

func newOrderListResponse(orders []*order.Order) OrderListResponse {
	response := OrderListResponse{Orders: make([]OrderResponse, 0, len(orders))}
	for _, o := range orders {
		response.Orders = append(response.Orders, newOrderResponse(o))
	}
	return response
}

func newFoodResponse(f *food.Food) FoodResponse {
	return FoodResponse{
		ID:        f.ID(),
		Name:      f.Name(),
		Price:     f.Price().String(),
		Category:  f.Category(),
		Available: f.Available(),
	}
}
