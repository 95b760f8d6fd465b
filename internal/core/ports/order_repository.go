package ports

import (
	"context"

	"eatfit/internal/core/domain/model/kernel"
	"eatfit/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Only status and updatedAt ever change after creation.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no order with that id exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByOwner retrieves all orders placed by the given user,
	// ordered most-recently-created first. Returns an empty slice,
	// not an error, when the owner has no orders.
	GetByOwner(ctx context.Context, ownerID kernel.UUID) ([]*order.Order, error)
}
