package commands

import (
	"context"
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/food"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// ErrCatalogUnavailable marks a failed catalog lookup. The lookup error is attached as text only.
var ErrCatalogUnavailable = errors.New("catalog is unavailable")

// CreateOrderCommandHandler places new orders.
//
// The catalog is queried once per command with the distinct food ids of the request,
// strictly before the transaction is opened. Validation against the returned snapshots
// happens before any write, so a rejected request leaves no order or items behind.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalogClient)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// created.ID() and created.CreatedAt() are assigned by the store
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.FoodCatalog
	composer   services.OrderComposer
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and a FoodCatalog for pricing.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, catalog ports.FoodCatalog) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		composer:   services.NewOrderComposer(),
	}
}

// Handle validates the request against live catalog data, prices it and stores the
// order together with its items in one transaction.
//
// Returns the stored order, or:
//   - *errs.ObjectNotFoundError naming the first requested food id missing from the catalog
//   - *errs.PreconditionFailedError naming the first unavailable food id
//   - an error wrapping ErrCatalogUnavailable when the lookup itself failed
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	requested := cmd.Items()
	snapshots, err := h.catalog.GetFoodsByIDs(ctx, services.DistinctFoodIDs(requested))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err) //nolint:errorlint // lookup error must not unwrap
	}

	aggregate, err := h.composer.Compose(cmd.UserID(), requested, food.IndexSnapshots(snapshots))
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	created, err := uow.OrderRepository().Add(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
