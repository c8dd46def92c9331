package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"ordering/internal/core/application/faults"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/food"

	"github.com/labstack/echo/v4"
)

type (
	GetFoodByIDHandler interface {
		Handle(ctx context.Context, query queries.GetFoodByIDQuery) (*food.Food, error)
	}

	GetFoodsByIDsHandler interface {
		Handle(ctx context.Context, query queries.GetFoodsByIDsQuery) ([]*food.Food, error)
	}
)

// CatalogServer serves food lookups to the order service.
type CatalogServer struct {
	getFoodByIDHandler   GetFoodByIDHandler
	getFoodsByIDsHandler GetFoodsByIDsHandler
	logger               *slog.Logger
}

func NewCatalogServer(
	getFoodByIDHandler GetFoodByIDHandler,
	getFoodsByIDsHandler GetFoodsByIDsHandler,
	logger *slog.Logger,
) *CatalogServer {
	return &CatalogServer{
		getFoodByIDHandler:   getFoodByIDHandler,
		getFoodsByIDsHandler: getFoodsByIDsHandler,
		logger:               logger.With("component", "catalog-server"),
	}
}

// Register mounts the catalog routes on e.
func (s *CatalogServer) Register(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	v1.GET("/foods/:id", s.GetFood)
	v1.GET("/foods", s.GetFoods)
}

// GetFood handles GET /api/v1/foods/:id.
func (s *CatalogServer) GetFood(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return writeFault(ctx, faults.NewInvalidArgument("invalid request: id is invalid", err))
	}

	found, err := s.getFoodByIDHandler.Handle(ctx.Request().Context(), queries.NewGetFoodByIDQuery(id))
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newFoodResponse(found))
}

// GetFoods handles GET /api/v1/foods?ids=1&ids=2. Unknown ids are left out of the result.
func (s *CatalogServer) GetFoods(ctx echo.Context) error {
	raw := ctx.QueryParams()["ids"]
	ids := make([]int64, 0, len(raw))
	for _, value := range raw {
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return writeFault(ctx, faults.NewInvalidArgument("invalid request: ids is invalid", err))
		}
		ids = append(ids, id)
	}

	foods, err := s.getFoodsByIDsHandler.Handle(ctx.Request().Context(), queries.NewGetFoodsByIDsQuery(ids))
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]FoodResponse, 0, len(foods))
	for _, f := range foods {
		response = append(response, newFoodResponse(f))
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *CatalogServer) fail(ctx echo.Context, err error) error {
	if fault := faults.Classify(err); !fault.Kind.IsClientFault() {
		s.logger.ErrorContext(ctx.Request().Context(), "catalog lookup failed", "error", err)
	}
	return writeFault(ctx, err)
}
