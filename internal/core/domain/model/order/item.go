package order

import (
	"ordering/internal/core/domain/model/kernel"
)

// Item is a line of an order. The unit price is a durable copy of the catalog price
// at creation time, so later catalog price changes never alter stored orders.
//
// Quantity is stored as requested; zero and negative values are not rejected here.
type Item struct {
	id        kernel.UUID
	orderID   kernel.UUID
	foodID    int64
	quantity  int
	unitPrice kernel.Money
}

// NewItem creates a line item that has not been stored yet.
func NewItem(foodID int64, quantity int, unitPrice kernel.Money) Item {
	return Item{
		foodID:    foodID,
		quantity:  quantity,
		unitPrice: unitPrice,
	}
}

// RestoreItem rebuilds a stored line item.
func RestoreItem(id, orderID kernel.UUID, foodID int64, quantity int, unitPrice kernel.Money) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}
	if err := orderID.Validate(); err != nil {
		return Item{}, err
	}
	return Item{
		id:        id,
		orderID:   orderID,
		foodID:    foodID,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

// ID returns the item identifier; zero until the order is stored.
func (i Item) ID() kernel.UUID {
	return i.id
}

// OrderID returns the owning order's identifier; zero until the order is stored.
func (i Item) OrderID() kernel.UUID {
	return i.orderID
}

func (i Item) FoodID() int64 {
	return i.foodID
}

func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the catalog price captured when the order was created.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// LineTotal returns unit price times quantity.
func (i Item) LineTotal() kernel.Money {
	return i.unitPrice.Times(i.quantity)
}
