package order

import (
	"errors"
	"time"

	"eatfit/internal/core/domain/model/kernel"
	"eatfit/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a food order. It is the aggregate root that manages
// the order lifecycle from placement through fulfillment.
//
// Order follows these invariants:
//   - id is assigned once at construction and never changes
//   - ownerID, items, deliveryAddress and paymentMethod are immutable after creation
//   - items is non-empty and every item is individually valid
//   - status is always a member of the closed Status enumeration
//   - only status and updatedAt mutate over the order's life
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// ownerID identifies the user who placed the order. Referential
	// integrity with the user store is an external invariant.
	ownerID kernel.UUID

	// items are the order lines, immutable after creation
	items []Item

	// deliveryAddress is the destination address text
	deliveryAddress string

	// paymentMethod records how the order is paid
	paymentMethod PaymentMethod

	// status is the current fulfillment stage
	status Status

	// createdAt and updatedAt are maintained by the aggregate, not settable by callers
	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to create
// a valid Order for a new purchase; persistence rehydration goes through
// RestoreOrder instead.
//
// The order starts in the Placed status with createdAt and updatedAt set to
// the current time.
//
// Example:
//
//	item, _ := order.NewItem("Pizza", 1, "", 9.99)
//	o, err := order.NewOrder(kernel.NewUUID(), ownerID, []order.Item{item}, "12 Main St", order.UPI)
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	items []Item,
	deliveryAddress string,
	paymentMethod PaymentMethod,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Placed,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from its persisted representation.
// All fields, including status and timestamps, are validated so corrupt
// rows never produce an invalid aggregate.
func RestoreOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	items []Item,
	deliveryAddress string,
	paymentMethod PaymentMethod,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		o.setPaymentMethod(paymentMethod),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the identifier of the user who placed the order.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// Items returns a copy of the order's line items.
// The copy keeps callers from mutating the aggregate's state.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// DeliveryAddress returns the destination address text.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// PaymentMethod returns how the order is paid.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Status returns the current fulfillment stage of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last mutated.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus sets the order's status and advances updatedAt.
//
// The new status must be a member of the closed enumeration; beyond that,
// no transition restrictions apply. Any valid status may follow any other,
// which is what allows Cancelled from every state and lets a manual update
// overwrite the autonomous sequence (last write wins).
//
// Returns a validation error if newStatus is not a valid enumeration member.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOwnerID validates and sets the owning user's identifier.
// This is a private method used only during construction.
func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	o.ownerID = ownerID
	return nil
}

// setItems validates and sets the order's line items.
// Items must be non-empty and each item individually valid.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

// setDeliveryAddress validates and sets the destination address.
func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

// setPaymentMethod validates and sets the payment method.
func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}

// setStatus validates and sets the status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
