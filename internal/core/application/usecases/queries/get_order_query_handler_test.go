package queries_test

import (
	"context"
	"testing"
	"time"

	"eatfit/internal/adapters/out/postgres/orderrepo"
	"eatfit/internal/core/application/usecases/queries"
	"eatfit/internal/core/domain/model/kernel"
	"eatfit/internal/core/domain/model/order"
	"eatfit/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for seeding query tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}

type OrderQueryHandlersTestSuite struct {
	suite.Suite
	container       *postgres.PostgresContainer
	db              *gorm.DB
	getOrderHandler queries.GetOrderQueryHandler
	byOwnerHandler  queries.GetOrdersByOwnerQueryHandler
	orderRepo       *orderrepo.GormOrderRepository
}

func (suite *OrderQueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.getOrderHandler = queries.NewGetOrderQueryHandler(db)
	suite.byOwnerHandler = queries.NewGetOrdersByOwnerQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *OrderQueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderQueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *OrderQueryHandlersTestSuite) TestGetOrder_OwnerReadsOwnOrder() {
	ctx := context.Background()

	// Seed an order
	ownerID := kernel.NewUUID()
	seeded := suite.seedOrder(ownerID, time.Now().UTC())

	// Owner requests it
	query, err := queries.NewGetOrderQuery(seeded.ID(), ownerID)
	suite.Require().NoError(err)

	resp, err := suite.getOrderHandler.Handle(ctx, query)
	suite.Require().NoError(err)

	// The projection matches the seeded order
	suite.Equal(seeded.ID(), resp.ID)
	suite.Equal(ownerID, resp.OwnerID)
	suite.Equal(seeded.DeliveryAddress(), resp.DeliveryAddress)
	suite.Equal(seeded.PaymentMethod(), resp.PaymentMethod)
	suite.Equal(order.Placed, resp.Status)
	suite.Require().Len(resp.Items, 1)
	suite.Equal("Veg Thali", resp.Items[0].Name)
	suite.Equal(2, resp.Items[0].Quantity)
	suite.InDelta(7.80, resp.Items[0].UnitPrice, 0.001)
}

func (suite *OrderQueryHandlersTestSuite) TestGetOrder_NonOwner_ReturnsForbidden() {
	ctx := context.Background()

	// Seed an order owned by someone else
	seeded := suite.seedOrder(kernel.NewUUID(), time.Now().UTC())

	// A different user requests it
	query, err := queries.NewGetOrderQuery(seeded.ID(), kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.getOrderHandler.Handle(ctx, query)

	// The request is rejected without leaking the order
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrForbidden)
}

func (suite *OrderQueryHandlersTestSuite) TestGetOrder_UnknownID_ReturnsNotFound() {
	ctx := context.Background()

	query, err := queries.NewGetOrderQuery(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.getOrderHandler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueryHandlersTestSuite) TestGetOrdersByOwner_NewestFirst() {
	ctx := context.Background()

	// Seed three orders with staggered creation times, inserted out of order
	ownerID := kernel.NewUUID()
	base := time.Now().UTC().Add(-time.Hour)
	oldest := suite.seedOrder(ownerID, base)
	newest := suite.seedOrder(ownerID, base.Add(30*time.Minute))
	middle := suite.seedOrder(ownerID, base.Add(15*time.Minute))

	// And one order belonging to someone else
	suite.seedOrder(kernel.NewUUID(), base.Add(45*time.Minute))

	query, err := queries.NewGetOrdersByOwnerQuery(ownerID)
	suite.Require().NoError(err)

	resp, err := suite.byOwnerHandler.Handle(ctx, query)
	suite.Require().NoError(err)

	// Only the owner's orders, newest first
	suite.Require().Len(resp, 3)
	suite.Equal(newest.ID(), resp[0].ID)
	suite.Equal(middle.ID(), resp[1].ID)
	suite.Equal(oldest.ID(), resp[2].ID)
}

func (suite *OrderQueryHandlersTestSuite) TestGetOrdersByOwner_NoOrders_ReturnsEmptySlice() {
	ctx := context.Background()

	query, err := queries.NewGetOrdersByOwnerQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	resp, err := suite.byOwnerHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Empty(resp)
}

// seedOrder persists an order with the given owner and creation time.
func (suite *OrderQueryHandlersTestSuite) seedOrder(ownerID kernel.UUID, createdAt time.Time) *order.Order {
	item, err := order.NewItem("Veg Thali", 2, "", 7.80)
	suite.Require().NoError(err)

	seeded, err := order.RestoreOrder(
		kernel.NewUUID(), ownerID, []order.Item{item}, "14 Rose Street",
		order.CashOnDelivery, order.Placed, createdAt, createdAt)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), seeded))
	return seeded
}

func TestOrderQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueryHandlersTestSuite))
}
