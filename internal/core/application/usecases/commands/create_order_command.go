package commands

import (
	"errors"

	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a user's request to place a multi-item order.
// Quantities are taken as given; only the presence of a user and of at least one item is checked.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(1, []services.RequestedItem{
//	    {FoodID: 1, Quantity: 2},
//	    {FoodID: 2, Quantity: 1},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID int64
	items  []services.RequestedItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order for userID.
// Returns *errs.ValueIsRequiredError for a zero userID or an empty item list.
func NewCreateOrderCommand(userID int64, items []services.RequestedItem) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the identifier of the requesting user.
func (c CreateOrderCommand) UserID() int64 {
	return c.userID
}

// Items returns a copy of the requested items in request order.
func (c CreateOrderCommand) Items() []services.RequestedItem {
	items := make([]services.RequestedItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setUserID(userID int64) error {
	if userID == 0 {
		return errs.NewValueIsRequiredError("userId")
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setItems(items []services.RequestedItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	c.items = make([]services.RequestedItem, len(items))
	copy(c.items, items)
	return nil
}
