package cmd

import (
	"log/slog"

	"eatfit/internal/adapters/in/ws"
	"eatfit/internal/adapters/out/postgres"
	"eatfit/internal/core/application/progression"
	"eatfit/internal/core/application/usecases/commands"
	"eatfit/internal/core/application/usecases/queries"
	"eatfit/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, use cases, and the lifecycle engine.
// The hub and the engine are process-wide singletons; handlers are cheap
// and constructed per call site.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hub        *ws.Hub
	engine     *progression.Engine
}

// NewCompositionRoot builds the object graph for the configured lifecycle
// mode. With OrderAutoProgress disabled the engine stays nil and new orders
// are never scheduled.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hub:        ws.NewHub(logger),
	}

	if config.OrderAutoProgress {
		root.engine = progression.NewEngine(
			root.CreateUpdateOrderStatusCommandHandler(),
			config.OrderProgressInterval,
			logger,
		)
	}

	return root
}

// Hub returns the WebSocket notification hub.
func (c *CompositionRoot) Hub() *ws.Hub {
	return c.hub
}

// Engine returns the progression engine, or nil in manual-only mode.
func (c *CompositionRoot) Engine() *progression.Engine {
	return c.engine
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})

	var scheduler ports.ProgressionScheduler = ports.NoopProgressionScheduler{}
	if c.engine != nil {
		scheduler = c.engine
	}

	return commands.NewCreateOrderCommandHandler(f, scheduler)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByOwnerQueryHandler() queries.GetOrdersByOwnerQueryHandler {
	return queries.NewGetOrdersByOwnerQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
