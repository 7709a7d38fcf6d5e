package commands

import (
	"context"

	"orders/internal/core/domain/services"
)

// CancelOrderCommandHandler handles order cancellation.
// Delivered and already cancelled orders reject the transition.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderService := services.NewOrderService(uow.OrderRepository())
	if err := orderService.CancelOrder(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
