package queries

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var ErrGetFoodsByIDsQueryIsNotConstructed = errors.New(
	"GetFoodsByIDsQuery must be created via NewGetFoodsByIDsQuery constructor",
)

// GetFoodsByIDsQuery retrieves a batch of catalog entries in one round trip.
type GetFoodsByIDsQuery struct {
	foodIDs []int64

	guard guard.ConstructorGuard
}

func NewGetFoodsByIDsQuery(foodIDs []int64) GetFoodsByIDsQuery {
	ids := make([]int64, len(foodIDs))
	copy(ids, foodIDs)

	return GetFoodsByIDsQuery{
		foodIDs: ids,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetFoodsByIDsQuery) Validate() error {
	return q.guard.Validate(ErrGetFoodsByIDsQueryIsNotConstructed)
}

// FoodIDs returns a copy of the requested ids.
func (q GetFoodsByIDsQuery) FoodIDs() []int64 {
	ids := make([]int64, len(q.foodIDs))
	copy(ids, q.foodIDs)
	return ids
}
