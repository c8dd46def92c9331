package queries

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var ErrGetFoodByIDQueryIsNotConstructed = errors.New(
	"GetFoodByIDQuery must be created via NewGetFoodByIDQuery constructor",
)

// GetFoodByIDQuery retrieves one catalog entry.
type GetFoodByIDQuery struct {
	foodID int64

	guard guard.ConstructorGuard
}

func NewGetFoodByIDQuery(foodID int64) GetFoodByIDQuery {
	return GetFoodByIDQuery{
		foodID: foodID,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetFoodByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetFoodByIDQueryIsNotConstructed)
}

func (q GetFoodByIDQuery) FoodID() int64 {
	return q.foodID
}
