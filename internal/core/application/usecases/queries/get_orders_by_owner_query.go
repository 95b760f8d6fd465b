package queries

import (
	"errors"

	"eatfit/internal/core/domain/model/kernel"
	"eatfit/internal/pkg/guard"
)

var (
	ErrGetOrdersByOwnerQueryIsNotConstructed = errors.New(
		"GetOrdersByOwnerQuery must be created via NewGetOrdersByOwnerQuery constructor",
	)
)

// GetOrdersByOwnerQuery retrieves the order history of one user,
// most-recently-created first.
//
// Example:
//
//	query, err := NewGetOrdersByOwnerQuery(ownerID)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
type GetOrdersByOwnerQuery struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersByOwnerQuery creates a query for a user's order history.
func NewGetOrdersByOwnerQuery(ownerID kernel.UUID) (GetOrdersByOwnerQuery, error) {
	query := GetOrdersByOwnerQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOwnerID(ownerID); err != nil {
		return GetOrdersByOwnerQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByOwnerQueryIsNotConstructed if validation fails.
func (q GetOrdersByOwnerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByOwnerQueryIsNotConstructed)
}

// OwnerID returns the identifier of the user whose orders are fetched.
func (q GetOrdersByOwnerQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

func (q *GetOrdersByOwnerQuery) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	q.ownerID = ownerID
	return nil
}
