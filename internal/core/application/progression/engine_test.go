package progression

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eatfit/internal/core/application/usecases/commands"
	"eatfit/internal/core/domain/model/kernel"
	"eatfit/internal/core/domain/model/order"
)

type recordedStep struct {
	OrderID kernel.UUID
	Status  order.Status
}

type fakeStatusUpdater struct {
	mu    sync.Mutex
	steps []recordedStep
	err   error
}

func (f *fakeStatusUpdater) Handle(
	_ context.Context,
	cmd commands.UpdateOrderStatusCommand,
) (*order.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.steps = append(f.steps, recordedStep{OrderID: cmd.OrderID(), Status: cmd.Status()})
	return nil, f.err
}

func (f *fakeStatusUpdater) Steps() []recordedStep {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]recordedStep(nil), f.steps...)
}

func newTestEngine(t *testing.T, updater StatusUpdater, interval time.Duration) *Engine {
	t.Helper()
	return NewEngine(updater, interval, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestEngine_Schedule(t *testing.T) {
	t.Run("registers order once", func(t *testing.T) {
		// Given
		updater := &fakeStatusUpdater{}
		engine := newTestEngine(t, updater, time.Minute)
		orderID := kernel.NewUUID()

		// When
		engine.Schedule(orderID)
		engine.Schedule(orderID)

		// Then
		assert.Equal(t, 1, engine.Active())
	})

	t.Run("does not fire before the interval elapses", func(t *testing.T) {
		// Given
		updater := &fakeStatusUpdater{}
		engine := newTestEngine(t, updater, time.Minute)
		engine.Schedule(kernel.NewUUID())

		// When
		engine.Tick(t.Context(), time.Now())

		// Then
		assert.Empty(t, updater.Steps())
		assert.Equal(t, 1, engine.Active())
	})
}

func TestEngine_Tick(t *testing.T) {
	t.Run("advances a due order one step", func(t *testing.T) {
		// Given
		updater := &fakeStatusUpdater{}
		engine := newTestEngine(t, updater, time.Minute)
		orderID := kernel.NewUUID()
		engine.Schedule(orderID)

		// When
		engine.Tick(t.Context(), time.Now().Add(time.Minute))

		// Then
		steps := updater.Steps()
		require.Len(t, steps, 1)
		assert.Equal(t, orderID, steps[0].OrderID)
		assert.Equal(t, order.Processing, steps[0].Status)
		assert.Equal(t, 1, engine.Active())
	})

	t.Run("walks the full sequence and releases the handle", func(t *testing.T) {
		// Given
		updater := &fakeStatusUpdater{}
		engine := newTestEngine(t, updater, time.Minute)
		orderID := kernel.NewUUID()
		engine.Schedule(orderID)

		// When
		now := time.Now()
		for i := 1; i <= 4; i++ {
			engine.Tick(t.Context(), now.Add(time.Duration(i)*time.Minute))
		}

		// Then
		steps := updater.Steps()
		require.Len(t, steps, 3)
		assert.Equal(t, order.Processing, steps[0].Status)
		assert.Equal(t, order.OutForDelivery, steps[1].Status)
		assert.Equal(t, order.Delivered, steps[2].Status)
		assert.Equal(t, 0, engine.Active())
	})

	t.Run("fires multiple overdue steps across ticks only", func(t *testing.T) {
		// Given: a single tick far in the future fires one step per schedule pass
		updater := &fakeStatusUpdater{}
		engine := newTestEngine(t, updater, time.Minute)
		engine.Schedule(kernel.NewUUID())

		// When
		engine.Tick(t.Context(), time.Now().Add(time.Hour))
		engine.Tick(t.Context(), time.Now().Add(time.Hour))

		// Then
		steps := updater.Steps()
		require.Len(t, steps, 2)
		assert.Equal(t, order.Processing, steps[0].Status)
		assert.Equal(t, order.OutForDelivery, steps[1].Status)
	})

	t.Run("continues the sequence when a store write fails", func(t *testing.T) {
		// Given
		updater := &fakeStatusUpdater{err: errors.New("store unavailable")}
		engine := newTestEngine(t, updater, time.Minute)
		orderID := kernel.NewUUID()
		engine.Schedule(orderID)

		// When
		now := time.Now()
		engine.Tick(t.Context(), now.Add(time.Minute))
		engine.Tick(t.Context(), now.Add(2*time.Minute))

		// Then
		steps := updater.Steps()
		require.Len(t, steps, 2)
		assert.Equal(t, order.Processing, steps[0].Status)
		assert.Equal(t, order.OutForDelivery, steps[1].Status)
	})
}

func TestEngine_Cancel(t *testing.T) {
	t.Run("cancelled order no longer fires", func(t *testing.T) {
		// Given
		updater := &fakeStatusUpdater{}
		engine := newTestEngine(t, updater, time.Minute)
		orderID := kernel.NewUUID()
		engine.Schedule(orderID)

		// When
		engine.Cancel(orderID)
		engine.Tick(t.Context(), time.Now().Add(time.Hour))

		// Then
		assert.Empty(t, updater.Steps())
		assert.Equal(t, 0, engine.Active())
	})
}

func TestEngine_Shutdown(t *testing.T) {
	t.Run("abandons all schedules", func(t *testing.T) {
		// Given
		updater := &fakeStatusUpdater{}
		engine := newTestEngine(t, updater, time.Minute)
		engine.Schedule(kernel.NewUUID())
		engine.Schedule(kernel.NewUUID())

		// When
		engine.Shutdown()
		engine.Tick(t.Context(), time.Now().Add(time.Hour))

		// Then
		assert.Empty(t, updater.Steps())
		assert.Equal(t, 0, engine.Active())
	})
}
