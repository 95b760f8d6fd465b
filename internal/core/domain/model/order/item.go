package order

import (
	"errors"
	"fmt"
	"math"

	"eatfit/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a value object describing one line of an order: a dish, how many
// of it, an optional size variant and the price per unit.
//
// Item is immutable after construction. The enclosing Order owns the only
// mutable state of the aggregate (its status).
type Item struct {
	// name is the dish name (non-empty)
	name string

	// quantity is the number of units ordered (positive)
	quantity int

	// size is an optional size variant, e.g. "Large" (may be empty)
	size string

	// unitPrice is the price per unit (non-negative)
	unitPrice float64

	// isConstructed ensures the item was created via NewItem
	isConstructed bool
}

// NewItem creates a validated order line item.
//
// Validation rules:
//   - name must be non-empty
//   - quantity must be positive
//   - unitPrice must be non-negative and finite
//
// size is optional and may be empty.
func NewItem(name string, quantity int, size string, unitPrice float64) (Item, error) {
	item := Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	item.size = size
	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// Name returns the dish name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Size returns the size variant, or an empty string when none was chosen.
func (i Item) Size() string {
	return i.size
}

// UnitPrice returns the price per unit.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 || math.IsNaN(unitPrice) || math.IsInf(unitPrice, 0) {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice is invalid",
			fmt.Errorf("%v is not a non-negative price", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}
