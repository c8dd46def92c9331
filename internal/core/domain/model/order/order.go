package order

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the ordering domain: a user's request for one or more
// catalog items together with the price captured when it was placed.
//
// Order follows these invariants:
//   - Has a requesting user and at least one item
//   - Total equals the sum of the items' line totals at creation and is never recomputed
//   - Identity and timestamps are assigned by the order store
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is assigned by the order store; zero for an order that was never stored
	id kernel.UUID

	// userID identifies the requesting user and is not validated beyond presence
	userID int64

	// status is the current lifecycle state
	status Status

	// total is computed once at creation
	total kernel.Money

	// items are kept in request order
	items []Item

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a PENDING order for userID from priced line items.
//
// Example:
//
//	o, err := order.NewOrder(1, []order.Item{
//	    order.NewItem(1, 2, kernel.MustMoney("10.99")),
//	    order.NewItem(2, 1, kernel.MustMoney("8.99")),
//	})
//	// o.Total() is 30.97
func NewOrder(userID int64, items []Item) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setUserID(userID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.total = kernel.ZeroMoney()
	for _, item := range o.items {
		o.total = o.total.Add(item.LineTotal())
	}

	return o, nil
}

// RestoreOrder rebuilds a stored order. The stored total is taken as is.
func RestoreOrder(
	id kernel.UUID,
	userID int64,
	status Status,
	total kernel.Money,
	items []Item,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		status:        status,
		total:         total,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setUserID(userID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) UserID() int64 {
	return o.userID
}

func (o *Order) Status() Status {
	return o.status
}

// Total returns the amount computed when the order was created.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Items returns a copy of the order's line items in request order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus overwrites the status unconditionally. No transition rules are checked.
func (o *Order) ChangeStatus(status Status) {
	o.status = status
}

// Cancel moves a PENDING order to CANCELLED.
//
// Returns a PreconditionFailedError naming the current status for any other status;
// the order is left unchanged in that case.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setUserID(userID int64) error {
	if userID == 0 {
		return errs.NewValueIsRequiredError("userId")
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
