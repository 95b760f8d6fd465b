package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByOwnerQueryHandler retrieves a user's order history from the
// database, most-recently-created first.
//
// Example:
//
//	handler := NewGetOrdersByOwnerQueryHandler(db)
//	query, _ := NewGetOrdersByOwnerQuery(ownerID)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("user has %d orders\n", len(orders))
type GetOrdersByOwnerQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByOwnerQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersByOwnerQueryHandler(db *gorm.DB) GetOrdersByOwnerQueryHandler {
	return GetOrdersByOwnerQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders of the given owner.
// An owner without orders yields an empty slice, not an error.
func (h GetOrdersByOwnerQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByOwnerQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			items,
			delivery_address,
			payment_method,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE owner_id = ?
		ORDER BY created_at DESC
	`, query.OwnerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		orderResp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
