package ports

import (
	"context"

	"eatfit/internal/core/domain/model/kernel"
	"eatfit/internal/core/domain/model/order"
)

// StatusPublisher broadcasts order status changes to interested subscribers.
//
// A publish is fire-and-forget: delivery is best-effort, at-most-once per
// currently connected subscriber of the order's topic, with no replay for
// late joiners. Implementations must never be handed an event before the
// corresponding store write has committed.
type StatusPublisher interface {
	// PublishStatus announces that the order now has the given status.
	PublishStatus(ctx context.Context, orderID kernel.UUID, status order.Status)
}

// StatusPublisherFunc adapts a function to the StatusPublisher interface.
type StatusPublisherFunc func(ctx context.Context, orderID kernel.UUID, status order.Status)

func (f StatusPublisherFunc) PublishStatus(ctx context.Context, orderID kernel.UUID, status order.Status) {
	f(ctx, orderID, status)
}
