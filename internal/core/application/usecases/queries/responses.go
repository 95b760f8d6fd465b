// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read directly from the database, bypassing the lifecycle
// engine and the notification channel entirely.
package queries

import (
	"time"

	"eatfit/internal/core/domain/model/kernel"
	"eatfit/internal/core/domain/model/order"
)

// OrderResponse is the read-model projection of an order row.
type OrderResponse struct {
	ID              kernel.UUID
	OwnerID         kernel.UUID
	Items           []ItemResponse
	DeliveryAddress string
	PaymentMethod   order.PaymentMethod
	Status          order.Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ItemResponse is one order line in the read model.
// The json tags match the serialized shape of the items column.
type ItemResponse struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
	UnitPrice float64 `json:"unit_price"`
}
