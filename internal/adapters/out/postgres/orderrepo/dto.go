// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"eatfit/internal/core/domain/model/kernel"
	"eatfit/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The item list is stored as a JSON document inside the order row: items have
// no identity of their own and are always read and written with their order.
// OwnerID and Status carry indexes for the owner-history and status queries.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID         uuid.UUID `gorm:"type:uuid;index"`
	Items           []byte    `gorm:"type:jsonb"`
	DeliveryAddress string
	PaymentMethod   int
	Status          int `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// itemDTO is the JSON shape of one order line inside the items column.
type itemDTO struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
	UnitPrice float64 `json:"unit_price"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := make([]itemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemDTO{
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			Size:      item.Size(),
			UnitPrice: item.UnitPrice(),
		})
	}

	rawItems, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		OwnerID:         aggregate.OwnerID().Bytes(),
		Items:           rawItems,
		DeliveryAddress: aggregate.DeliveryAddress(),
		PaymentMethod:   int(aggregate.PaymentMethod()),
		Status:          int(aggregate.Status()),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and timestamps using RestoreOrder,
// so a corrupt row surfaces as a validation error instead of an invalid aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	var rawItems []itemDTO
	if err = json.Unmarshal(dto.Items, &rawItems); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(rawItems))
	for _, raw := range rawItems {
		item, itemErr := order.NewItem(raw.Name, raw.Quantity, raw.Size, raw.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		ownerID,
		items,
		dto.DeliveryAddress,
		order.PaymentMethod(dto.PaymentMethod),
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
