package cmd

import (
	"log/slog"

	"shoplist/internal/adapters/in/http"
	"shoplist/internal/adapters/out/postgres"
	"shoplist/internal/core/application/usecases/commands"
	"shoplist/internal/core/application/usecases/queries"
	"shoplist/internal/core/domain/services"
	"shoplist/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires the application graph: database, access gate,
// command and query handlers, HTTP server and background jobs.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gate       services.AccessGate
	logger     *slog.Logger
}

// NewCompositionRoot creates the application graph on top of an open
// database connection.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gate:       services.NewAccessGate(),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

// CreateCreateOrderCommandHandler builds the order submission handler.
func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.gate)
}

// CreateStartOrderCommandHandler builds the order start handler.
func (c *CompositionRoot) CreateStartOrderCommandHandler() commands.StartOrderCommandHandler {
	return commands.NewStartOrderCommandHandler(c.orderUoWFactory(), c.gate)
}

// CreateCancelOrderCommandHandler builds the order cancellation handler.
func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.gate)
}

// CreatePurchaseItemCommandHandler builds the purchase mark handler.
func (c *CompositionRoot) CreatePurchaseItemCommandHandler() commands.PurchaseItemCommandHandler {
	return commands.NewPurchaseItemCommandHandler(c.orderUoWFactory(), c.gate)
}

// CreateCompleteOrderCommandHandler builds the explicit completion handler.
func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory(), c.gate)
}

// CreateGetOrderQueryHandler builds the order detail view handler.
func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.gate)
}

// CreateGetOrderSummaryQueryHandler builds the order summary handler.
func (c *CompositionRoot) CreateGetOrderSummaryQueryHandler() queries.GetOrderSummaryQueryHandler {
	return queries.NewGetOrderSummaryQueryHandler(c.gormDB, c.gate)
}

// CreateGetCustomerOrdersQueryHandler builds the customer listing handler.
func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

// CreateGetActiveOrdersQueryHandler builds the active backlog handler.
func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB, c.gate)
}

// CreateGetOrdersByStatusQueryHandler builds the status board handler.
func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB, c.gate)
}

// CreateHTTPServer assembles the REST server with every handler wired in.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		http.NewHeaderIdentityProvider(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateStartOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreatePurchaseItemCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetOrderSummaryQueryHandler(),
		c.CreateGetCustomerOrdersQueryHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
		c.CreateGetOrdersByStatusQueryHandler(),
	)
}

// CreateBacklogReportJob builds the periodic backlog report.
func (c *CompositionRoot) CreateBacklogReportJob() *jobs.BacklogReportJob {
	handler := queries.NewGetOrderStatusCountsQueryHandler(c.gormDB)
	return jobs.NewBacklogReportJob(handler, c.logger)
}

// FuncOrderUoWFactory adapts a closure to the OrderUoWFactory interface.
type FuncOrderUoWFactory func() commands.OrderUoW

// Create returns a fresh unit of work.
func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
