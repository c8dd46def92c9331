// Package orchestrator exposes the five order operations to transport adapters.
//
// Every operation returns either its result or a *faults.Fault; nothing else crosses
// this boundary. Faults are logged here: client faults at WARN, Internal at ERROR
// together with the underlying error, which is never part of the fault message.
// Successful writes are announced through the order event publisher after commit;
// a failed announcement is logged and does not change the operation result.
package orchestrator

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/faults"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}

	UpdateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error)
	}

	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error)
	}

	GetOrderByIDHandler interface {
		Handle(ctx context.Context, query queries.GetOrderByIDQuery) (*order.Order, error)
	}

	GetOrdersByUserIDHandler interface {
		Handle(ctx context.Context, query queries.GetOrdersByUserIDQuery) ([]*order.Order, error)
	}
)

// Handlers groups the use case handlers the orchestrator dispatches to.
type Handlers struct {
	CreateOrder       CreateOrderHandler
	UpdateOrderStatus UpdateOrderStatusHandler
	CancelOrder       CancelOrderHandler
	GetOrderByID      GetOrderByIDHandler
	GetOrdersByUserID GetOrdersByUserIDHandler
}

// OrderOrchestrator validates requests, dispatches them to use case handlers and
// classifies their failures. It keeps no state between calls.
type OrderOrchestrator struct {
	handlers  Handlers
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
}

// New creates an orchestrator. The logger is scoped with component=order-orchestrator.
func New(handlers Handlers, publisher ports.OrderEventPublisher, logger *slog.Logger) *OrderOrchestrator {
	return &OrderOrchestrator{
		handlers:  handlers,
		publisher: publisher,
		logger:    logger.With("component", "order-orchestrator"),
	}
}

// CreateOrder places an order for userID. Items are priced from one batched catalog lookup.
func (o *OrderOrchestrator) CreateOrder(
	ctx context.Context,
	userID int64,
	items []services.RequestedItem,
) (*order.Order, error) {
	const op = "CreateOrder"

	cmd, err := commands.NewCreateOrderCommand(userID, items)
	if err != nil {
		return nil, o.fail(ctx, op, err)
	}

	created, err := o.handlers.CreateOrder.Handle(ctx, cmd)
	if err != nil {
		return nil, o.fail(ctx, op, err)
	}

	o.logger.InfoContext(ctx, "order created",
		"order_id", created.ID().String(),
		"user_id", created.UserID(),
		"items", len(created.Items()),
		"total", created.Total().String(),
	)
	o.publish(ctx, created)
	return created, nil
}

// GetOrderByID returns one order with its items.
func (o *OrderOrchestrator) GetOrderByID(ctx context.Context, id string) (*order.Order, error) {
	const op = "GetOrderByID"

	orderID, err := parseOrderID(id)
	if err != nil {
		return nil, o.fail(ctx, op, err)
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return nil, o.fail(ctx, op, err)
	}

	found, err := o.handlers.GetOrderByID.Handle(ctx, query)
	if err != nil {
		return nil, o.fail(ctx, op, err)
	}
	return found, nil
}

// GetOrdersByUserID lists the orders of userID, most recently created first.
func (o *OrderOrchestrator) GetOrdersByUserID(ctx context.Context, userID int64) ([]*order.Order, error) {
	const op = "GetOrdersByUserID"

	orders, err := o.handlers.GetOrdersByUserID.Handle(ctx, queries.NewGetOrdersByUserIDQuery(userID))
	if err != nil {
		return nil, o.fail(ctx, op, err)
	}
	return orders, nil
}

// UpdateOrderStatus overwrites the status of an order with any value, including
// values outside the known lifecycle states.
func (o *OrderOrchestrator) UpdateOrderStatus(ctx context.Context, id, status string) (*order.Order, error) {
	const op = "UpdateOrderStatus"

	orderID, err := parseOrderID(id)
	if err != nil {
		return nil, o.fail(ctx, op, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return nil, o.fail(ctx, op, err)
	}

	updated, err := o.handlers.UpdateOrderStatus.Handle(ctx, cmd)
	if err != nil {
		return nil, o.fail(ctx, op, err)
	}

	if !updated.Status().IsKnown() {
		o.logger.WarnContext(ctx, "order moved to unknown status",
			"order_id", updated.ID().String(),
			"status", updated.Status().String(),
		)
	}
	o.publish(ctx, updated)
	return updated, nil
}

// CancelOrder cancels a PENDING order.
func (o *OrderOrchestrator) CancelOrder(ctx context.Context, id string) (*order.Order, error) {
	const op = "CancelOrder"

	orderID, err := parseOrderID(id)
	if err != nil {
		return nil, o.fail(ctx, op, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return nil, o.fail(ctx, op, err)
	}

	cancelled, err := o.handlers.CancelOrder.Handle(ctx, cmd)
	if err != nil {
		return nil, o.fail(ctx, op, err)
	}

	o.publish(ctx, cancelled)
	return cancelled, nil
}

func (o *OrderOrchestrator) fail(ctx context.Context, op string, err error) *faults.Fault {
	fault := faults.Classify(err)

	if fault.Kind.IsClientFault() {
		o.logger.WarnContext(ctx, "operation rejected",
			"operation", op,
			"kind", fault.Kind.String(),
			"message", fault.Message,
		)
	} else {
		o.logger.ErrorContext(ctx, "operation failed",
			"operation", op,
			"kind", fault.Kind.String(),
			"error", err,
		)
	}

	return fault
}

func (o *OrderOrchestrator) publish(ctx context.Context, changed *order.Order) {
	if err := o.publisher.PublishOrderChanged(ctx, changed); err != nil {
		o.logger.WarnContext(ctx, "failed to publish order change",
			"order_id", changed.ID().String(),
			"status", changed.Status().String(),
			"error", err,
		)
	}
}

func parseOrderID(id string) (kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(id)
	if err == nil {
		err = orderID.Validate()
	}
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	return orderID, nil
}
