package ports

import (
	"eatfit/internal/core/domain/model/kernel"
)

// ProgressionScheduler registers newly created orders for autonomous status
// progression. In manual-only mode a no-op implementation is wired instead,
// so command handlers stay unaware of which lifecycle mode is active.
//
// Schedules live in process memory only: a restart abandons every in-flight
// schedule and no transition is ever replayed.
type ProgressionScheduler interface {
	// Schedule registers the order for autonomous progression starting
	// from its initial status.
	Schedule(orderID kernel.UUID)
}

// NoopProgressionScheduler is the manual-only mode scheduler: orders are
// never progressed autonomously and status changes happen only through
// explicit update requests.
type NoopProgressionScheduler struct{}

func (NoopProgressionScheduler) Schedule(kernel.UUID) {}
