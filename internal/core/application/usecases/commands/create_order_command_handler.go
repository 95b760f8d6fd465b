package commands

import (
	"context"

	"eatfit/internal/core/domain/model/order"
	"eatfit/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
// Persists the new order in "Order Placed" status and, when autonomous
// progression is active, registers it with the lifecycle scheduler.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, scheduler)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), ownerID, items, "12 Main St", order.UPI)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	scheduler  ports.ProgressionScheduler
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence and a
// ProgressionScheduler (a no-op in manual-only mode).
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	scheduler ports.ProgressionScheduler,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		scheduler:  scheduler,
	}
}

// Handle processes the order creation command.
// Builds the aggregate, persists it within a transaction and schedules
// autonomous progression only after the commit succeeded, so the schedule
// can never outlive an order that was rolled back.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.OwnerID(),
		cmd.Items(),
		cmd.DeliveryAddress(),
		cmd.PaymentMethod(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.scheduler.Schedule(newOrder.ID())
	return nil
}
