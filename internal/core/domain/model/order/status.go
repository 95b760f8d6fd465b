package order

import (
	"fmt"

	"eatfit/internal/pkg/errs"
)

// Status represents the fulfillment stage of an order.
//
// The enumeration is closed: only the five values below are ever persisted.
// Autonomous progression advances linearly through the first four stages:
//
//	Order Placed ──> Processing ──> Out for Delivery ──> Delivered
//
// Cancelled is reachable only through an explicit status update and has no
// autonomous successor. Manual updates are not restricted to this sequence:
// any valid status may follow any other, and a manual update may race with
// the autonomous schedule (last write wins).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status assigned to every new order.
	Placed

	// Processing indicates the restaurant is preparing the order.
	Processing

	// OutForDelivery indicates the order has left the restaurant.
	OutForDelivery

	// Delivered indicates the order reached the customer.
	// This is the terminal stage of the autonomous sequence.
	Delivered

	// Cancelled indicates the order was cancelled by an explicit update.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Placed:         "Order Placed",
		Processing:     "Processing",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:         "Order Placed",
		Processing:     "Processing",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// StatusFromString parses the wire representation of a status.
//
// Returns an error if the string does not name a member of the closed
// enumeration. Matching is exact, including case.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is a member of the closed enumeration.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Unknown" for invalid status values. This method implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Next returns the autonomous successor of the status.
//
// The second return value is false when the status has no autonomous
// successor: Delivered ends the sequence and Cancelled is never a source
// of autonomous transitions.
//
// Example:
//
//	next, ok := order.Placed.Next()
//	// next == order.Processing, ok == true
func (s Status) Next() (Status, bool) {
	switch s {
	case Placed:
		return Processing, true
	case Processing:
		return OutForDelivery, true
	case OutForDelivery:
		return Delivered, true
	default:
		return Unknown, false
	}
}

// IsFinal reports whether the status ends the order lifecycle in practice.
// Delivered terminates the autonomous sequence; Cancelled is terminal because
// no autonomous transition ever targets or leaves it.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}
