package order

import (
	"fmt"

	"eatfit/internal/pkg/errs"
)

// PaymentMethod represents how an order is paid for.
// The enumeration is closed and immutable after order creation.
type PaymentMethod int

const (
	// UnknownPaymentMethod represents an invalid or undefined payment method.
	UnknownPaymentMethod PaymentMethod = iota

	// CashOnDelivery means the courier collects payment at the door.
	CashOnDelivery

	// CreditCard means the order was paid by card.
	CreditCard

	// UPI means the order was paid through a UPI transfer.
	UPI
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		UnknownPaymentMethod: "Unknown",
		CashOnDelivery:       "Cash on Delivery",
		CreditCard:           "Credit Card",
		UPI:                  "UPI",
	}
}

func getValidPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // UnknownPaymentMethod is intentionally excluded as it's invalid
	return map[PaymentMethod]string{
		CashOnDelivery: "Cash on Delivery",
		CreditCard:     "Credit Card",
		UPI:            "UPI",
	}
}

// PaymentMethodFromString parses the wire representation of a payment method.
// Returns an error if the string does not name a member of the closed enumeration.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getValidPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return UnknownPaymentMethod, errs.NewValueIsInvalidErrorWithCause("paymentMethod is invalid",
		fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks if the PaymentMethod is a member of the closed enumeration.
func (m PaymentMethod) Validate() error {
	if _, ok := getValidPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod is invalid",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the human-readable name of the payment method.
// Returns "Unknown" for invalid values. Implements fmt.Stringer.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}
