// Package progression implements the autonomous order lifecycle engine.
//
// When enabled, every newly created order is registered with an in-memory
// schedule that advances its status through the fixed sequence
// Order Placed -> Processing -> Out for Delivery -> Delivered, one step per
// configured interval. Each step goes through the regular status update
// command, so it writes the store first and publishes on the order's
// notification topic after the commit.
//
// Schedules are held only in process memory, keyed by order id, and are
// released when the sequence reaches Delivered or on shutdown. A restart
// abandons all in-flight schedules; no transition is persisted ahead of time
// or replayed. Manual status updates are not serialized against the
// schedule: both writers race on the same row with last-write-wins
// semantics, and each successful write publishes its own event.
package progression

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"eatfit/internal/core/application/usecases/commands"
	"eatfit/internal/core/domain/model/kernel"
	"eatfit/internal/core/domain/model/order"
)

// DefaultInterval is the spacing between autonomous status transitions.
const DefaultInterval = 5 * time.Second

// StatusUpdater applies one status change to a stored order.
// commands.UpdateOrderStatusCommandHandler is the production implementation.
type StatusUpdater interface {
	Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error)
}

// schedule is the cancellable handle for one order's autonomous sequence.
type schedule struct {
	next  order.Status
	dueAt time.Time
}

// Engine owns the autonomous progression schedules.
//
// It implements ports.ProgressionScheduler so the create-order command
// handler can register new orders without knowing whether autonomous
// progression is active. Due transitions fire from Tick, which the cron
// job calls once per second.
type Engine struct {
	updater  StatusUpdater
	interval time.Duration
	logger   *slog.Logger

	mu        sync.Mutex
	schedules map[kernel.UUID]*schedule
}

// NewEngine creates a progression engine advancing orders every interval.
// A non-positive interval falls back to DefaultInterval.
func NewEngine(updater StatusUpdater, interval time.Duration, logger *slog.Logger) *Engine {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Engine{
		updater:   updater,
		interval:  interval,
		logger:    logger.With("component", "progression_engine"),
		schedules: make(map[kernel.UUID]*schedule),
	}
}

// Schedule registers an order for autonomous progression.
// The first transition (to Processing) fires one interval after
// registration. Scheduling an already scheduled order is a no-op.
func (e *Engine) Schedule(orderID kernel.UUID) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.schedules[orderID]; exists {
		return
	}

	e.schedules[orderID] = &schedule{
		next:  order.Processing,
		dueAt: time.Now().Add(e.interval),
	}
}

// Cancel releases the schedule handle for one order, if present.
// In-flight transitions that already fired are unaffected.
func (e *Engine) Cancel(orderID kernel.UUID) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.schedules, orderID)
}

// Active returns the number of orders currently scheduled.
func (e *Engine) Active() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.schedules)
}

// Shutdown releases all schedule handles.
// In-flight sequences are abandoned, matching restart semantics.
func (e *Engine) Shutdown() {
	e.mu.Lock()
	count := len(e.schedules)
	e.schedules = make(map[kernel.UUID]*schedule)
	e.mu.Unlock()

	if count > 0 {
		e.logger.Info("Abandoned in-flight progression schedules", "count", count)
	}
}

// Tick fires every schedule whose deadline has passed as of now.
//
// A failed store write is logged and does not stop the sequence: the
// schedule still advances to its next step. When a fired transition was
// the sequence's last (Delivered), the handle is released.
func (e *Engine) Tick(ctx context.Context, now time.Time) {
	type due struct {
		orderID kernel.UUID
		status  order.Status
	}

	e.mu.Lock()
	fired := make([]due, 0)
	for orderID, s := range e.schedules {
		if s.dueAt.After(now) {
			continue
		}

		fired = append(fired, due{orderID: orderID, status: s.next})

		next, ok := s.next.Next()
		if !ok {
			delete(e.schedules, orderID)
			continue
		}
		s.next = next
		s.dueAt = s.dueAt.Add(e.interval)
	}
	e.mu.Unlock()

	for _, d := range fired {
		cmd, err := commands.NewUpdateOrderStatusCommand(d.orderID, d.status)
		if err != nil {
			e.logger.ErrorContext(ctx, "Invalid progression transition",
				"orderId", d.orderID.String(), "status", d.status.String(), "error", err)
			continue
		}

		if _, err = e.updater.Handle(ctx, cmd); err != nil {
			// The schedule already advanced; the next step will still fire.
			e.logger.ErrorContext(ctx, "Progression step failed",
				"orderId", d.orderID.String(), "status", d.status.String(), "error", err)
			continue
		}

		e.logger.InfoContext(ctx, "Order progressed",
			"orderId", d.orderID.String(), "status", d.status.String())
	}
}
