package queries

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"

	"github.com/samber/lo"
)

// GetCustomerOrdersQueryHandler loads all orders of one customer.
// A customer without orders yields an empty response, not an error.
type GetCustomerOrdersQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetCustomerOrdersQueryHandler creates a handler backed by the given repository.
func NewGetCustomerOrdersQueryHandler(orderRepository ports.OrderRepository) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{orderRepository: orderRepository}
}

// Handle executes the query and maps every aggregate to its response.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepository.GetByCustomer(ctx, query.CustomerID())
	if err != nil {
		return nil, err
	}

	return lo.Map(orders, func(o *order.Order, _ int) OrderResponse {
		return NewOrderResponse(o)
	}), nil
}
