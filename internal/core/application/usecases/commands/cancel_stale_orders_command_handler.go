package commands

import (
	"context"
	"log/slog"
	"time"
)

// CancelStaleOrdersCommandHandler cancels abandoned PENDING orders.
// Each stale order goes through the normal cancel transition so terminal
// orders can never be touched; all cancellations of one run share a single
// transaction.
//
// An order that fails to cancel is logged and skipped, it does not abort
// the run.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewCancelStaleOrdersCommandHandler creates a handler for stale order cleanup.
func NewCancelStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	logger *slog.Logger,
) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle cancels every PENDING order whose last update is older than the
// command's TTL.
func (h CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) error {
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

	orderRepo := uow.OrderRepository()
	cutoff := time.Now().UTC().Add(-cmd.TTL())
	staleOrders, err := orderRepo.GetStalePending(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, staleOrder := range staleOrders {
		if err = staleOrder.Cancel(); err != nil {
			h.logger.Warn("skipping stale order that cannot be cancelled",
				"orderId", staleOrder.ID().String(),
				"error", err,
			)
			continue
		}

		if err = orderRepo.Save(ctx, staleOrder); err != nil {
			return err
		}

		h.logger.Info("cancelled stale pending order",
			"orderId", staleOrder.ID().String(),
			"updatedAt", staleOrder.UpdatedAt(),
		)
	}

	return uow.Commit(ctx)
}
