package jobs

import (
	"context"
	"log/slog"
	"time"

	"eatfit/internal/core/application/progression"

	"github.com/robfig/cron/v3"
)

// OrderProgressionJob drives the autonomous lifecycle engine.
// Runs every second and fires all progression transitions that have
// come due since the previous tick.
type OrderProgressionJob struct {
	engine *progression.Engine
	cron   *cron.Cron
	logger *slog.Logger
}

// NewOrderProgressionJob creates the job ticking the progression engine.
func NewOrderProgressionJob(engine *progression.Engine, logger *slog.Logger) *OrderProgressionJob {
	return &OrderProgressionJob{
		engine: engine,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "order_progression_job"),
	}
}

// Start begins ticking the engine every second.
func (j *OrderProgressionJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.engine.Tick(context.Background(), time.Now())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order progression job started (running every second)")
	return nil
}

// Stop stops the job and abandons all in-flight schedules.
func (j *OrderProgressionJob) Stop() {
	j.cron.Stop()
	j.engine.Shutdown()
	j.logger.InfoContext(context.Background(), "Order progression job stopped")
}
