// Package order provides domain entities and business logic for order management
// in the food-ordering system. It implements the Order aggregate root with
// lifecycle management and status changes.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items, and lifecycle
//   - Item: A value object describing one order line
//   - Status: The closed enumeration of fulfillment stages
//   - PaymentMethod: The closed enumeration of payment options
//
// Key business rules:
//   - Orders must have a valid identifier, owner, non-empty items, address and payment method
//   - Orders start in the "Order Placed" status
//   - Autonomous progression follows Order Placed -> Processing -> Out for Delivery -> Delivered
//   - Explicit status updates may set any valid status, including Cancelled, from any state
//   - Only status and updatedAt mutate after creation
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
