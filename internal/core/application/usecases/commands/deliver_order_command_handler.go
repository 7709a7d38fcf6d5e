package commands

import (
	"context"

	"orders/internal/core/domain/services"
)

// DeliverOrderCommandHandler handles the CONFIRMED to DELIVERED transition.
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeliverOrderCommandHandler creates a handler for order delivery.
func NewDeliverOrderCommandHandler(uowFactory OrderUoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery command.
func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
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
	if err := orderService.DeliverOrder(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
