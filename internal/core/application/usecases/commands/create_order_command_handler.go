package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
	"orders/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Persists the new order transactionally and publishes the creation event
// after a successful commit.
//
// Publishing is best effort: a publish failure after the order is committed
// is logged and does not fail the command, so the stored order remains the
// source of truth.
type CreateOrderCommandHandler struct {
	uowFactory     OrderUoWFactory
	eventPublisher ports.OrderEventPublisher
	logger         *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and a publisher
// for the OrderCreated integration event.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	eventPublisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// Handle processes the order creation command and returns the creation event
// describing the persisted order.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (order.CreatedEvent, error) {
	if err := cmd.Validate(); err != nil {
		return order.CreatedEvent{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.CreatedEvent{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderService := services.NewOrderService(uow.OrderRepository())
	event, err := orderService.CreateOrder(ctx, cmd.OrderID(), cmd.CustomerID(), cmd.Items())
	if err != nil {
		return order.CreatedEvent{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.CreatedEvent{}, err
	}

	if err = h.eventPublisher.PublishOrderCreated(ctx, event); err != nil {
		h.logger.Error("failed to publish OrderCreated event",
			"orderId", event.OrderID,
			"error", err,
		)
	}

	return event, nil
}
