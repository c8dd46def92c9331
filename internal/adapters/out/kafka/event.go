package kafka

import (
	"time"

	"ordering/internal/core/domain/model/order"
)

// OrderChangedEvent is the message body published after an order was created or changed.
type OrderChangedEvent struct {
	OrderID    string                  `json:"orderId"`
	UserID     int64                   `json:"userId"`
	Status     string                  `json:"status"`
	Total      string                  `json:"total"`
	Items      []OrderChangedEventItem `json:"items"`
	CreatedAt  time.Time               `json:"createdAt"`
	UpdatedAt  time.Time               `json:"updatedAt"`
	OccurredAt time.Time               `json:"occurredAt"`
}

type OrderChangedEventItem struct {
	FoodID   int64  `json:"foodId"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

func NewOrderChangedEvent(o *order.Order, occurredAt time.Time) OrderChangedEvent {
	items := make([]OrderChangedEventItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderChangedEventItem{
			FoodID:   item.FoodID(),
			Quantity: item.Quantity(),
			Price:    item.UnitPrice().String(),
		})
	}

	return OrderChangedEvent{
		OrderID:    o.ID().String(),
		UserID:     o.UserID(),
		Status:     o.Status().String(),
		Total:      o.Total().String(),
		Items:      items,
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
		OccurredAt: occurredAt,
	}
}
