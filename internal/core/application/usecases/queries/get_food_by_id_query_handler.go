package queries

import (
	"context"

	"ordering/internal/core/domain/model/food"
	"ordering/internal/core/ports"
)

// GetFoodByIDQueryHandler serves single catalog lookups of the catalog service.
type GetFoodByIDQueryHandler struct {
	repository ports.FoodRepository
}

func NewGetFoodByIDQueryHandler(repository ports.FoodRepository) GetFoodByIDQueryHandler {
	return GetFoodByIDQueryHandler{repository: repository}
}

// Handle returns the entry, or *errs.ObjectNotFoundError when it does not exist.
func (h GetFoodByIDQueryHandler) Handle(ctx context.Context, query GetFoodByIDQuery) (*food.Food, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.repository.Get(ctx, query.FoodID())
}
