// Package http exposes the order lifecycle over a REST API.
package http

import (
	"errors"
	"net/http"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderItem is one line of an order creation request.
// UnitPrice accepts a JSON number or a decimal string.
type NewOrderItem struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// NewOrder is the body of an order creation request.
type NewOrder struct {
	CustomerID string         `json:"customerId"`
	Items      []NewOrderItem `json:"items"`
}

// OrderItem is one line of an order response.
type OrderItem struct {
	ID        string          `json:"id,omitempty"`
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Order is the JSON representation of an order.
type Order struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customerId"`
	Items       []OrderItem     `json:"items"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	confirmOrderHandler commands.ConfirmOrderCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler
	deliverOrderHandler commands.DeliverOrderCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		confirmOrderHandler:      confirmOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		deliverOrderHandler:      deliverOrderHandler,
		getOrderHandler:          getOrderHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
	}
}

// RegisterRoutes mounts every order route under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.GET("/orders/customer/:customerId", s.GetCustomerOrders)
	api.POST("/orders/:orderId/confirm", s.ConfirmOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.POST("/orders/:orderId/deliver", s.DeliverOrder)
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	args := lo.Map(body.Items, func(item NewOrderItem, _ int) commands.NewItemArgs {
		return commands.NewItemArgs{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	})

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), body.CustomerID, args)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	event, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, Order{
		ID:         event.OrderID,
		CustomerID: event.CustomerID,
		Items: lo.Map(event.Items, func(item order.CreatedEventItem, _ int) OrderItem {
			return OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				Subtotal:  item.Subtotal,
			}
		}),
		Status:      order.Pending.String(),
		TotalAmount: event.TotalAmount,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.CreatedAt,
	})
}

// GetOrder handles GET /api/v1/orders/:orderId - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, toOrderDTO(response))
}

// GetCustomerOrders handles GET /api/v1/orders/customer/:customerId.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	query, err := queries.NewGetCustomerOrdersQuery(ctx.Param("customerId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer id",
		})
	}

	responses, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, lo.Map(responses,
		func(response queries.OrderResponse, _ int) Order {
			return toOrderDTO(response)
		}))
}

// ConfirmOrder handles POST /api/v1/orders/:orderId/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewConfirmOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd)
	}, "Failed to confirm order")
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewCancelOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	}, "Failed to cancel order")
}

// DeliverOrder handles POST /api/v1/orders/:orderId/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewDeliverOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd)
	}, "Failed to deliver order")
}

// transition runs one lifecycle command against the order named in the path
// and answers 204 on success.
func (s *Server) transition(ctx echo.Context, run func(kernel.UUID) error, failureMessage string) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	if err = run(orderID); err != nil {
		return s.errorResponse(ctx, err, failureMessage)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// errorResponse maps domain errors to HTTP status codes: missing orders
// answer 404, invalid input and illegal transitions answer 400, everything
// else is a 500.
func (s *Server) errorResponse(ctx echo.Context, err error, message string) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrInvalidState):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: message + ": " + err.Error(),
	})
}

func toOrderDTO(response queries.OrderResponse) Order {
	return Order{
		ID:         response.ID,
		CustomerID: response.CustomerID,
		Items: lo.Map(response.Items, func(item queries.OrderItemResponse, _ int) OrderItem {
			return OrderItem{
				ID:        item.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				Subtotal:  item.Subtotal,
			}
		}),
		Status:      response.Status,
		TotalAmount: response.TotalAmount,
		CreatedAt:   response.CreatedAt,
		UpdatedAt:   response.UpdatedAt,
	}
}
