// Package http exposes the fulfillment workflow over a REST API built on
// echo. Handlers translate requests into commands and queries, and map
// workflow errors onto HTTP statuses.
package http

import (
	"net/http"

	"shoplist/internal/core/application/usecases/commands"
	"shoplist/internal/core/application/usecases/queries"
	"shoplist/internal/core/domain/model/kernel"
	"shoplist/internal/core/domain/model/order"
	"shoplist/internal/core/ports"
	"shoplist/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	identity ports.IdentityProvider

	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	startOrderHandler    commands.StartOrderCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler
	purchaseItemHandler  commands.PurchaseItemCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getOrderSummaryHandler   queries.GetOrderSummaryQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	getActiveOrdersHandler   queries.GetActiveOrdersQueryHandler
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	identity ports.IdentityProvider,
	createOrderHandler commands.CreateOrderCommandHandler,
	startOrderHandler commands.StartOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	purchaseItemHandler commands.PurchaseItemCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrderSummaryHandler queries.GetOrderSummaryQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
) *Server {
	return &Server{
		identity:                 identity,
		createOrderHandler:       createOrderHandler,
		startOrderHandler:        startOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		purchaseItemHandler:      purchaseItemHandler,
		completeOrderHandler:     completeOrderHandler,
		getOrderHandler:          getOrderHandler,
		getOrderSummaryHandler:   getOrderSummaryHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
		getActiveOrdersHandler:   getActiveOrdersHandler,
		getOrdersByStatusHandler: getOrdersByStatusHandler,
	}
}

// RegisterRoutes wires the REST surface onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()
	e.Use(ActorMiddleware())

	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetMyOrders)
	api.GET("/orders/:orderID", s.GetOrder)
	api.GET("/orders/:orderID/summary", s.GetOrderSummary)
	api.PUT("/orders/:orderID/cancel", s.CancelOrder)

	executor := api.Group("/executor")
	executor.GET("/orders", s.GetActiveOrders)
	executor.GET("/orders/status/:status", s.GetOrdersByStatus)
	executor.GET("/orders/:orderID", s.GetOrder)
	executor.GET("/orders/:orderID/summary", s.GetOrderSummary)
	executor.PUT("/orders/:orderID/start", s.StartOrder)
	executor.PUT("/orders/:orderID/complete", s.CompleteOrder)
	executor.PUT("/products/:productID/purchase", s.PurchaseProduct)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// pathUUID parses a UUID path parameter, reporting a malformed value as a
// validation error rather than a server fault.
func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// CreateOrder handles POST /api/v1/orders - submits a new shopping order.
func (s *Server) CreateOrder(c echo.Context) error {
	a, err := s.identity.CurrentActor(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	var req CreateOrderRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err = c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	lines := make([]commands.ItemLine, 0, len(req.Products))
	for _, p := range req.Products {
		lines = append(lines, commands.ItemLine{
			Name:     p.Name,
			Quantity: p.Quantity,
			Note:     p.Notes,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), a, lines)
	if err != nil {
		return respondError(c, err)
	}

	created, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orderViewFromDomain(created))
}

// GetMyOrders handles GET /api/v1/orders - lists the customer's orders.
func (s *Server) GetMyOrders(c echo.Context) error {
	a, err := s.identity.CurrentActor(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetCustomerOrdersQuery(a)
	if err != nil {
		return respondError(c, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, orderViewFromQuery(o))
	}
	return c.JSON(http.StatusOK, views)
}

// GetOrder handles the order detail routes.
func (s *Server) GetOrder(c echo.Context) error {
	a, err := s.identity.CurrentActor(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, a)
	if err != nil {
		return respondError(c, err)
	}

	resp, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orderViewFromQuery(resp))
}

// GetOrderSummary handles the purchase progress routes.
func (s *Server) GetOrderSummary(c echo.Context) error {
	a, err := s.identity.CurrentActor(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetOrderSummaryQuery(orderID, a)
	if err != nil {
		return respondError(c, err)
	}

	resp, err := s.getOrderSummaryHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, summaryViewFromQuery(resp))
}

// CancelOrder handles PUT /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	a, err := s.identity.CurrentActor(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, a)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.cancelOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orderViewFromDomain(updated))
}

// GetActiveOrders handles GET /api/v1/executor/orders - the active backlog.
func (s *Server) GetActiveOrders(c echo.Context) error {
	a, err := s.identity.CurrentActor(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetActiveOrdersQuery(a)
	if err != nil {
		return respondError(c, err)
	}

	orders, err := s.getActiveOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, orderViewFromQuery(o))
	}
	return c.JSON(http.StatusOK, views)
}

// GetOrdersByStatus handles GET /api/v1/executor/orders/status/:status.
func (s *Server) GetOrdersByStatus(c echo.Context) error {
	a, err := s.identity.CurrentActor(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	status, err := order.StatusFromString(c.Param("status"))
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetOrdersByStatusQuery(a, status)
	if err != nil {
		return respondError(c, err)
	}

	orders, err := s.getOrdersByStatusHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, orderViewFromQuery(o))
	}
	return c.JSON(http.StatusOK, views)
}

// StartOrder handles PUT /api/v1/executor/orders/:orderID/start.
func (s *Server) StartOrder(c echo.Context) error {
	a, err := s.identity.CurrentActor(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewStartOrderCommand(orderID, a)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.startOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orderViewFromDomain(updated))
}

// CompleteOrder handles PUT /api/v1/executor/orders/:orderID/complete.
func (s *Server) CompleteOrder(c echo.Context) error {
	a, err := s.identity.CurrentActor(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, a)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.completeOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orderViewFromDomain(updated))
}

// PurchaseProduct handles PUT /api/v1/executor/products/:productID/purchase.
func (s *Server) PurchaseProduct(c echo.Context) error {
	a, err := s.identity.CurrentActor(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	productID, err := pathUUID(c, "productID")
	if err != nil {
		return respondError(c, err)
	}

	var req PurchaseRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err = c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid purchase data: " + err.Error(),
		})
	}

	cmd, err := commands.NewPurchaseItemCommand(productID, a, *req.Purchased)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.purchaseItemHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orderViewFromDomain(updated))
}
