package queries

import (
	"context"

	"ordering/internal/core/domain/model/food"
	"ordering/internal/core/ports"
)

// GetFoodsByIDsQueryHandler serves batch catalog lookups of the catalog service.
// Ids that do not exist are omitted from the result; a partial miss is not an error.
type GetFoodsByIDsQueryHandler struct {
	repository ports.FoodRepository
}

func NewGetFoodsByIDsQueryHandler(repository ports.FoodRepository) GetFoodsByIDsQueryHandler {
	return GetFoodsByIDsQueryHandler{repository: repository}
}

// Handle returns the existing entries. An empty id list returns an empty result
// without touching the store.
func (h GetFoodsByIDsQueryHandler) Handle(ctx context.Context, query GetFoodsByIDsQuery) ([]*food.Food, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ids := query.FoodIDs()
	if len(ids) == 0 {
		return []*food.Food{}, nil
	}

	return h.repository.GetByIDs(ctx, ids)
}
