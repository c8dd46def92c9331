package ports

import (
	"context"

	"ordering/internal/core/domain/model/food"
)

// FoodCatalog is the read-only catalog lookup capability the ordering core depends on.
// Both operations are pure and idempotent from the caller's perspective.
type FoodCatalog interface {
	// GetFoodByID returns the snapshot of one food item.
	// Returns *errs.ObjectNotFoundError when the item does not exist.
	GetFoodByID(ctx context.Context, id int64) (food.Snapshot, error)

	// GetFoodsByIDs returns the snapshots of the requested items in one round trip.
	// Ids that do not exist are silently omitted; a partial miss is not an error.
	GetFoodsByIDs(ctx context.Context, ids []int64) ([]food.Snapshot, error)
}
