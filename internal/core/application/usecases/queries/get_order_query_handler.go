package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"eatfit/internal/core/domain/model/kernel"
	"eatfit/internal/core/domain/model/order"
	"eatfit/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order row from the database and
// enforces the caller-asserted ownership check.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID, callerID)
//
//	resp, err := handler.Handle(ctx, query)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order id
//	case errors.Is(err, errs.ErrForbidden):
//	    // caller is not the owner
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the point lookup.
// Returns an ObjectNotFoundError for an unknown id and a ForbiddenError
// when the caller-asserted identity does not match the order's owner.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	resp, err := scanOrderRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
		}
		return OrderResponse{}, err
	}

	if !resp.OwnerID.IsEqual(query.CallerID()) {
		return OrderResponse{}, errs.NewForbiddenErrorWithCause("ownerId",
			fmt.Errorf("caller %s does not own order %s", query.CallerID(), query.OrderID()))
	}

	return resp, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanOrderRow maps one orders row onto the read model, deserializing the
// JSON items column.
func scanOrderRow(row rowScanner) (OrderResponse, error) {
	var (
		id        uuid.UUID
		ownerID   uuid.UUID
		itemsRaw  []byte
		address   string
		payment   int
		status    int
		createdAt time.Time
		updatedAt time.Time
	)

	if err := row.Scan(&id, &ownerID, &itemsRaw, &address, &payment, &status, &createdAt, &updatedAt); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	owner, err := kernel.UUIDFromBytes(ownerID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	var items []ItemResponse
	if err = json.Unmarshal(itemsRaw, &items); err != nil {
		return OrderResponse{}, fmt.Errorf("corrupt items column for order %s: %w", orderID, err)
	}

	return OrderResponse{
		ID:              orderID,
		OwnerID:         owner,
		Items:           items,
		DeliveryAddress: address,
		PaymentMethod:   order.PaymentMethod(payment),
		Status:          order.Status(status),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}, nil
}
