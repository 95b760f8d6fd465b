package commands

import (
	"context"

	"eatfit/internal/core/domain/model/order"
	"eatfit/internal/core/ports"
)

// UpdateOrderStatusCommandHandler applies a status change to a stored order
// and broadcasts the change on the order's notification topic.
//
// The publish happens strictly after the store write committed, so a
// subscriber can never observe a status that was rolled back. Concurrent
// updates to the same order are not serialized: last write wins, and every
// successful write publishes its own event.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory, publisher)
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, order.Delivered)
//
//	updated, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order id
//	case err != nil:
//	    // store failure
//	default:
//	    fmt.Println("order is now", updated.Status())
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.StatusPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
// Requires an OrderUoWFactory for transactional persistence and a
// StatusPublisher for the post-commit broadcast.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.StatusPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status update command.
// Loads the order, applies the new status, persists it and publishes the
// change. Returns the updated aggregate, or an ObjectNotFoundError when the
// order id does not resolve.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.PublishStatus(ctx, aggregate.ID(), aggregate.Status())
	return aggregate, nil
}
