// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate: one row in
// "orders" plus one row per line item in "order_items".
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by user and creation time for the per-user listing.
type OrderDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    int64           `gorm:"not null;index:idx_orders_user_created,priority:1"`
	Status    string          `gorm:"type:text;not null"`
	Total     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Items     []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time       `gorm:"not null;index:idx_orders_user_created,priority:2"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// BeforeCreate assigns the identifier and both timestamps of a new order.
// Timestamps are truncated to the precision Postgres stores.
func (d *OrderDTO) BeforeCreate(_ *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}

	now := storeNow()
	d.CreatedAt = now
	d.UpdatedAt = now
	return nil
}

// OrderItemDTO is one line item of an order. Line keeps the request order of the items.
type OrderItemDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Line     int             `gorm:"not null"`
	FoodID   int64           `gorm:"not null"`
	Quantity int             `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// BeforeCreate assigns the identifier of a new line item.
func (d *OrderItemDTO) BeforeCreate(_ *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

func storeNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// fromDomain converts an order aggregate to its database representation.
// A never stored order maps to zero identifiers, which BeforeCreate fills in.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	dto := OrderDTO{
		ID:        aggregate.ID().Bytes(),
		UserID:    aggregate.UserID(),
		Status:    aggregate.Status().String(),
		Total:     aggregate.Total().Decimal(),
		Items:     make([]OrderItemDTO, 0, len(items)),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}

	for line, item := range items {
		dto.Items = append(dto.Items, OrderItemDTO{
			ID:       item.ID().Bytes(),
			OrderID:  item.OrderID().Bytes(),
			Line:     line,
			FoodID:   item.FoodID(),
			Quantity: item.Quantity(),
			Price:    item.UnitPrice().Decimal(),
		})
	}

	return dto
}

// toDomain converts a database DTO with its preloaded items to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreItem(
			itemID,
			id,
			itemDTO.FoodID,
			itemDTO.Quantity,
			kernel.NewMoney(itemDTO.Price),
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.UserID,
		order.Status(dto.Status),
		kernel.NewMoney(dto.Total),
		items,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
	)
}
