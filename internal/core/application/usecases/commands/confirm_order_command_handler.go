package commands

import (
	"context"

	"orders/internal/core/domain/services"
)

// ConfirmOrderCommandHandler handles order confirmation.
// Loads the order, applies the PENDING to CONFIRMED transition and persists
// the result within a single transaction.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command. Not-found and invalid-state
// failures from the domain propagate unchanged for the caller to classify.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
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
	if err := orderService.ConfirmOrder(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
