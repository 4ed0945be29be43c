package http

import (
	"net/http"

	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/application/usecases/queries"
	"grubdash/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server handles the order routes.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderHandler      queries.GetOrderQueryHandler
	listOrdersHandler    queries.ListOrdersQueryHandler
	statusSummaryHandler queries.GetOrderStatusSummaryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	statusSummaryHandler queries.GetOrderStatusSummaryQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:   createOrderHandler,
		updateOrderHandler:   updateOrderHandler,
		deleteOrderHandler:   deleteOrderHandler,
		getOrderHandler:      getOrderHandler,
		listOrdersHandler:    listOrdersHandler,
		statusSummaryHandler: statusSummaryHandler,
	}
}

// RegisterRoutes attaches the order routes with their handler chains.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/orders", s.ListOrders)
	e.POST("/orders", s.CreateOrder, s.isValid)
	e.GET("/orders/summary", s.GetOrderStatusSummary)
	e.GET("/orders/:orderId", s.GetOrder, s.orderExists)
	e.PUT("/orders/:orderId", s.UpdateOrder, s.orderExists, s.isValid)
	e.DELETE("/orders/:orderId", s.DeleteOrder, s.orderExists)
}

// ListOrders handles GET /orders - retrieves every order.
func (s *Server) ListOrders(c echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(c.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse[[]orderResponse]{Data: newOrderListResponse(orders)})
}

// CreateOrder handles POST /orders - places a new order.
func (s *Server) CreateOrder(c echo.Context) error {
	details := c.Get(detailsKey).(order.Details)

	cmd, err := commands.NewCreateOrderCommand(details)
	if err != nil {
		return err
	}

	created, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dataResponse[orderResponse]{Data: newOrderResponse(created)})
}

// GetOrder handles GET /orders/:orderId - returns the order resolved by orderExists.
func (s *Server) GetOrder(c echo.Context) error {
	o := c.Get(orderKey).(*order.Order)

	return c.JSON(http.StatusOK, dataResponse[orderResponse]{Data: newOrderResponse(o)})
}

// UpdateOrder handles PUT /orders/:orderId - replaces the order content.
func (s *Server) UpdateOrder(c echo.Context) error {
	orderID := c.Get(orderIDKey).(string)
	draft := c.Get(draftKey).(order.Draft)
	details := c.Get(detailsKey).(order.Details)

	cmd, err := commands.NewUpdateOrderCommand(orderID, draft.ID, details, draft.Status)
	if err != nil {
		return err
	}

	updated, err := s.updateOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse[orderResponse]{Data: newOrderResponse(updated)})
}

// DeleteOrder handles DELETE /orders/:orderId - removes a pending order.
func (s *Server) DeleteOrder(c echo.Context) error {
	cmd, err := commands.NewDeleteOrderCommand(c.Get(orderIDKey).(string))
	if err != nil {
		return err
	}

	if err = s.deleteOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// GetOrderStatusSummary handles GET /orders/summary - counts orders per status.
func (s *Server) GetOrderStatusSummary(c echo.Context) error {
	summary, err := s.statusSummaryHandler.Handle(c.Request().Context(), queries.NewGetOrderStatusSummaryQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse[statusSummaryResponse]{Data: newStatusSummaryResponse(summary)})
}
