package http

import (
	"context"
	"net/http"
	"strconv"

	"ordering/internal/core/application/faults"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// OrderOrchestrator is the inbound port served by OrdersServer.
type OrderOrchestrator interface {
	CreateOrder(ctx context.Context, userID int64, items []services.RequestedItem) (*order.Order, error)
	GetOrderByID(ctx context.Context, id string) (*order.Order, error)
	GetOrdersByUserID(ctx context.Context, userID int64) ([]*order.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) (*order.Order, error)
	CancelOrder(ctx context.Context, id string) (*order.Order, error)
}

// OrdersServer translates the orders REST API into orchestrator calls.
type OrdersServer struct {
	orchestrator OrderOrchestrator
}

func NewOrdersServer(orchestrator OrderOrchestrator) *OrdersServer {
	return &OrdersServer{orchestrator: orchestrator}
}

// Register mounts the orders routes on e.
func (s *OrdersServer) Register(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/:id", s.GetOrder)
	v1.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	v1.POST("/orders/:id/cancel", s.CancelOrder)
	v1.GET("/users/:userId/orders", s.GetUserOrders)
}

// CreateOrder handles POST /api/v1/orders.
func (s *OrdersServer) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeFault(ctx, faults.NewInvalidArgument("invalid request: malformed body", err))
	}

	created, err := s.orchestrator.CreateOrder(ctx.Request().Context(), request.UserID, request.requestedItems())
	if err != nil {
		return writeFault(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newOrderResponse(created))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *OrdersServer) GetOrder(ctx echo.Context) error {
	found, err := s.orchestrator.GetOrderByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return writeFault(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderResponse(found))
}

// GetUserOrders handles GET /api/v1/users/:userId/orders.
func (s *OrdersServer) GetUserOrders(ctx echo.Context) error {
	userID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil {
		return writeFault(ctx, faults.NewInvalidArgument("invalid request: userId is invalid", err))
	}

	orders, err := s.orchestrator.GetOrdersByUserID(ctx.Request().Context(), userID)
	if err != nil {
		return writeFault(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderListResponse(orders))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *OrdersServer) UpdateOrderStatus(ctx echo.Context) error {
	var request UpdateOrderStatusRequest
	if err := (&echo.DefaultBinder{}).BindBody(ctx, &request); err != nil {
		return writeFault(ctx, faults.NewInvalidArgument("invalid request: malformed body", err))
	}

	updated, err := s.orchestrator.UpdateOrderStatus(ctx.Request().Context(), ctx.Param("id"), request.Status)
	if err != nil {
		return writeFault(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderResponse(updated))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *OrdersServer) CancelOrder(ctx echo.Context) error {
	cancelled, err := s.orchestrator.CancelOrder(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return writeFault(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderResponse(cancelled))
}
