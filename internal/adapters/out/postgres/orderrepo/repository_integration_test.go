package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"shoplist/internal/adapters/out/postgres/orderrepo"
	"shoplist/internal/core/domain/model/kernel"
	"shoplist/internal/core/domain/model/order"
	"shoplist/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker
// interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence against a
// real PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_PersistsOrderAndProducts() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("Bread", "Milk")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertRowCount(&orderrepo.OrderDTO{}, 1)
	suite.assertRowCount(&orderrepo.ItemDTO{}, 2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAggregate() {
	ctx := context.Background()

	original := suite.createTestOrder("Bread", "Milk")
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.CustomerID(), retrieved.CustomerID())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Nil(retrieved.CompletedAt())
	suite.Require().Len(retrieved.Items(), 2)

	names := []string{retrieved.Items()[0].Name(), retrieved.Items()[1].Name()}
	suite.ElementsMatch([]string{"Bread", "Milk"}, names)
	for _, item := range retrieved.Items() {
		suite.False(item.IsPurchased())
		suite.Nil(item.PurchasedAt())
		suite.Nil(item.PurchasedBy())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByItemID_ReturnsOwningOrder() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("Bread", "Milk")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	itemID := testOrder.Items()[1].ID()
	retrieved, err := suite.repository.GetByItemID(ctx, itemID)
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Len(retrieved.Items(), 2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByItemID_UnknownProduct_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByItemID(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsPurchaseMarksAndStatus() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("Bread", "Milk")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	executorID := kernel.NewUUID()
	suite.Require().NoError(testOrder.Start())
	suite.Require().NoError(testOrder.SetItemPurchased(testOrder.Items()[0].ID(), true, executorID))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, retrieved.Status())
	suite.Equal(1, retrieved.PurchasedCount())

	purchased, err := retrieved.Item(testOrder.Items()[0].ID())
	suite.Require().NoError(err)
	suite.True(purchased.IsPurchased())
	suite.NotNil(purchased.PurchasedAt())
	suite.Require().NotNil(purchased.PurchasedBy())
	suite.True(purchased.PurchasedBy().IsEqual(executorID))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_RevertedPurchaseClearsColumns() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("Bread", "Milk")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	executorID := kernel.NewUUID()
	itemID := testOrder.Items()[0].ID()
	suite.Require().NoError(testOrder.Start())
	suite.Require().NoError(testOrder.SetItemPurchased(itemID, true, executorID))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	suite.Require().NoError(testOrder.SetItemPurchased(itemID, false, executorID))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	reverted, err := retrieved.Item(itemID)
	suite.Require().NoError(err)
	suite.False(reverted.IsPurchased())
	suite.Nil(reverted.PurchasedAt())
	suite.Nil(reverted.PurchasedBy())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AutoCompletedOrder_PersistsCompletedAt() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("Bread")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Start())
	suite.Require().NoError(testOrder.SetItemPurchased(testOrder.Items()[0].ID(), true, kernel.NewUUID()))
	suite.Require().Equal(order.Completed, testOrder.Status())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Completed, retrieved.Status())
	suite.NotNil(retrieved.CompletedAt())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	nonExistent := suite.createTestOrder("Bread")
	err := suite.repository.Update(ctx, nonExistent)
	suite.Require().Error(err)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_InvalidUUID_ReturnsValidationError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.UUID{})
	suite.Nil(retrieved)
	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
}

// createTestOrder creates a pending order with one unpurchased item per
// name.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(names ...string) *order.Order {
	orderID := kernel.NewUUID()
	items := make([]*order.Item, 0, len(names))
	for _, name := range names {
		item, err := order.NewItem(kernel.NewUUID(), orderID, name, 1, "")
		suite.Require().NoError(err)
		items = append(items, item)
	}

	testOrder, err := order.NewOrder(orderID, kernel.NewUUID(), items)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertRowCount(model any, expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
