package services

import (
	"fmt"

	"ordering/internal/core/domain/model/food"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// RequestedItem is one {foodId, quantity} entry of an order request.
type RequestedItem struct {
	FoodID   int64
	Quantity int
}

// OrderComposer is a domain service that validates an order request against catalog
// snapshots and prices it.
//
// Business rules:
//   - Every requested food id must be present in the snapshots (NotFound otherwise)
//   - Every requested food item must be available (PreconditionFailed otherwise)
//   - The first offending item, in request order, aborts the whole order
//   - Unit prices are copied from the snapshots into the order items
//
// Example usage:
//
//	snapshots, err := catalog.GetFoodsByIDs(ctx, services.DistinctFoodIDs(requested))
//	if err != nil {
//	    return err
//	}
//	o, err := services.NewOrderComposer().Compose(userID, requested, food.IndexSnapshots(snapshots))
type OrderComposer struct{}

// NewOrderComposer creates a new OrderComposer instance.
func NewOrderComposer() OrderComposer {
	return OrderComposer{}
}

// Compose builds a PENDING order for userID.
//
// Returns:
//   - *order.Order: the priced, not yet stored order
//   - error: *errs.ObjectNotFoundError for a food id missing from snapshots,
//     *errs.PreconditionFailedError for an unavailable item, or an order validation error
func (c OrderComposer) Compose(userID int64, requested []RequestedItem, snapshots food.Snapshots) (*order.Order, error) {
	items := make([]order.Item, 0, len(requested))
	for _, r := range requested {
		snapshot, ok := snapshots.Find(r.FoodID)
		if !ok {
			return nil, errs.NewObjectNotFoundError("food", r.FoodID)
		}
		if !snapshot.Available() {
			return nil, errs.NewPreconditionFailedError(fmt.Sprintf("food with id %d is not available", r.FoodID))
		}
		items = append(items, order.NewItem(r.FoodID, r.Quantity, snapshot.Price()))
	}

	return order.NewOrder(userID, items)
}

// DistinctFoodIDs returns each requested food id once, in first-seen order.
func DistinctFoodIDs(requested []RequestedItem) []int64 {
	seen := make(map[int64]struct{}, len(requested))
	ids := make([]int64, 0, len(requested))
	for _, r := range requested {
		if _, ok := seen[r.FoodID]; ok {
			continue
		}
		seen[r.FoodID] = struct{}{}
		ids = append(ids, r.FoodID)
	}
	return ids
}
