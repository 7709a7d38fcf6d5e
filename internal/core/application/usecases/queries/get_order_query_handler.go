package queries

import (
	"context"

	"orders/internal/core/ports"
)

// GetOrderQueryHandler loads a single order through the repository.
// A missing order surfaces as the repository's not-found error.
type GetOrderQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler backed by the given repository.
func NewGetOrderQueryHandler(orderRepository ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orderRepository: orderRepository}
}

// Handle executes the query and maps the aggregate to its response.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	aggregate, err := h.orderRepository.Get(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	return NewOrderResponse(aggregate), nil
}
