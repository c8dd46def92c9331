package queries

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var ErrGetOrdersByUserIDQueryIsNotConstructed = errors.New(
	"GetOrdersByUserIDQuery must be created via NewGetOrdersByUserIDQuery constructor",
)

// GetOrdersByUserIDQuery lists the orders of one user.
// Any user id is accepted; a user without orders yields an empty list.
type GetOrdersByUserIDQuery struct {
	userID int64

	guard guard.ConstructorGuard
}

func NewGetOrdersByUserIDQuery(userID int64) GetOrdersByUserIDQuery {
	return GetOrdersByUserIDQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByUserIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByUserIDQueryIsNotConstructed)
}

func (q GetOrdersByUserIDQuery) UserID() int64 {
	return q.userID
}
