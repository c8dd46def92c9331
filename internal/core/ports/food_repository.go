package ports

import (
	"context"

	"ordering/internal/core/domain/model/food"
)

// FoodRepository defines the persistence contract of the catalog service.
type FoodRepository interface {
	// Get retrieves a food item by id.
	// Returns *errs.ObjectNotFoundError when the item does not exist.
	Get(ctx context.Context, id int64) (*food.Food, error)

	// GetByIDs retrieves the existing items among ids, ordered by id.
	GetByIDs(ctx context.Context, ids []int64) ([]*food.Food, error)

	// Count returns the number of stored items.
	Count(ctx context.Context) (int64, error)

	// AddMany stores new items in one statement and returns them with their ids.
	AddMany(ctx context.Context, foods []*food.Food) ([]*food.Food, error)
}
