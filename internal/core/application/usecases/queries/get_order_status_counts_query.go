package queries

import (
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrGetOrderStatusCountsQueryIsNotConstructed = errors.New(
	"GetOrderStatusCountsQuery must be created via NewGetOrderStatusCountsQuery constructor",
)

// GetOrderStatusCountsQuery counts stored orders per status value.
// This is a parameterless query used by the statistics job.
type GetOrderStatusCountsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderStatusCountsQuery() GetOrderStatusCountsQuery {
	return GetOrderStatusCountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusCountsQueryIsNotConstructed)
}

// GetOrderStatusCountsQueryResponse is the number of orders stored with one status value.
// Status values outside the known lifecycle states are reported as stored.
type GetOrderStatusCountsQueryResponse struct {
	Status order.Status
	Count  int64
}
