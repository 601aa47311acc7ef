package queries_test

import (
	"context"
	"testing"
	"time"

	"shoplist/internal/adapters/out/postgres/orderrepo"
	"shoplist/internal/core/application/usecases/queries"
	"shoplist/internal/core/domain/model/actor"
	"shoplist/internal/core/domain/model/kernel"
	"shoplist/internal/core/domain/model/order"
	"shoplist/internal/core/domain/services"
	"shoplist/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderSummaryQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderSummaryQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderSummaryQueryHandler(db, services.NewAccessGate())
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TestHandle_PendingOrderHasNoProgress() {
	owner := newTestActor(suite.T(), actor.Customer)
	testOrder := suite.createOrder(owner.ID(), "Bread", "Milk", "Eggs")

	query, err := queries.NewGetOrderSummaryQuery(testOrder.ID(), owner)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), result.ID)
	suite.Equal(owner.ID(), result.CustomerID)
	suite.Equal("pending", result.Status)
	suite.EqualValues(3, result.TotalProducts)
	suite.EqualValues(0, result.PurchasedProducts)
	suite.False(result.IsCompletable)
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TestHandle_CountsPurchasedProducts() {
	owner := newTestActor(suite.T(), actor.Customer)
	executorID := kernel.NewUUID()
	testOrder := suite.createOrder(owner.ID(), "Bread", "Milk")
	suite.Require().NoError(testOrder.Start())
	suite.Require().NoError(testOrder.SetItemPurchased(testOrder.Items()[0].ID(), true, executorID))
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), testOrder))

	query, err := queries.NewGetOrderSummaryQuery(testOrder.ID(), owner)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("in_progress", result.Status)
	suite.EqualValues(2, result.TotalProducts)
	suite.EqualValues(1, result.PurchasedProducts)
	suite.False(result.IsCompletable)
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TestHandle_FullyPurchasedOrderIsCompletable() {
	owner := newTestActor(suite.T(), actor.Customer)
	executorID := kernel.NewUUID()
	testOrder := suite.createOrder(owner.ID(), "Bread")
	suite.Require().NoError(testOrder.Start())
	suite.Require().NoError(testOrder.SetItemPurchased(testOrder.Items()[0].ID(), true, executorID))
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), testOrder))

	query, err := queries.NewGetOrderSummaryQuery(testOrder.ID(), owner)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("completed", result.Status)
	suite.EqualValues(1, result.TotalProducts)
	suite.EqualValues(1, result.PurchasedProducts)
	suite.True(result.IsCompletable)
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TestHandle_OtherCustomerIsForbidden() {
	testOrder := suite.createOrder(kernel.NewUUID(), "Bread")
	stranger := newTestActor(suite.T(), actor.Customer)

	query, err := queries.NewGetOrderSummaryQuery(testOrder.ID(), stranger)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrForbidden)
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TestHandle_ExecutorSeesCompletedOrderSummary() {
	executor := newTestActor(suite.T(), actor.Executor)
	testOrder := suite.createOrder(kernel.NewUUID(), "Bread", "Milk")
	suite.Require().NoError(testOrder.Start())
	suite.Require().NoError(testOrder.SetItemPurchased(testOrder.Items()[0].ID(), true, executor.ID()))
	suite.Require().NoError(testOrder.SetItemPurchased(testOrder.Items()[1].ID(), true, executor.ID()))
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), testOrder))

	query, err := queries.NewGetOrderSummaryQuery(testOrder.ID(), executor)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("completed", result.Status)
	suite.EqualValues(2, result.TotalProducts)
	suite.EqualValues(2, result.PurchasedProducts)
	suite.True(result.IsCompletable)
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TestHandle_ExecutorSeesCancelledOrderSummary() {
	executor := newTestActor(suite.T(), actor.Executor)
	testOrder := suite.createOrder(kernel.NewUUID(), "Bread")
	suite.Require().NoError(testOrder.Cancel())
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), testOrder))

	query, err := queries.NewGetOrderSummaryQuery(testOrder.ID(), executor)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("cancelled", result.Status)
	suite.EqualValues(0, result.PurchasedProducts)
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TestHandle_OrderNotFound() {
	a := newTestActor(suite.T(), actor.Admin)

	query, err := queries.NewGetOrderSummaryQuery(kernel.NewUUID(), a)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderSummaryQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderSummaryQuery constructor")
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) createOrder(customerID kernel.UUID, names ...string) *order.Order {
	orderID := kernel.NewUUID()
	items := make([]*order.Item, 0, len(names))
	for _, name := range names {
		item, err := order.NewItem(kernel.NewUUID(), orderID, name, 1, "")
		suite.Require().NoError(err)
		items = append(items, item)
	}

	testOrder, err := order.NewOrder(orderID, customerID, items)
	suite.Require().NoError(err)

	err = suite.orderRepo.Add(context.Background(), testOrder)
	suite.Require().NoError(err)
	return testOrder
}

func TestGetOrderSummaryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderSummaryQueryHandlerTestSuite))
}
