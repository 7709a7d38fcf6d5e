package services

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// OrderService is the domain service driving the order lifecycle. Every
// state-changing operation performs exactly one load and one save against
// the repository; the transactional boundary around those calls belongs to
// the caller (the use-case layer binds the repository to its unit of work).
//
// The service does not publish integration events itself. CreateOrder returns
// the creation event to its caller and publishing is the caller's concern.
type OrderService struct {
	orderRepository ports.OrderRepository
}

// NewOrderService creates an OrderService backed by the given repository.
func NewOrderService(orderRepository ports.OrderRepository) OrderService {
	return OrderService{orderRepository: orderRepository}
}

// CreateOrder constructs a new PENDING order with the given items, persists it
// and returns the creation event describing the stored snapshot.
//
// An empty item list is rejected before any Order is constructed. The use-case
// layer validates this too; the check here keeps the rule enforced for every
// caller of the service.
func (s OrderService) CreateOrder(
	ctx context.Context,
	id kernel.UUID,
	customerID string,
	items []order.Item,
) (order.CreatedEvent, error) {
	if len(items) == 0 {
		return order.CreatedEvent{}, errs.NewValueIsRequiredError("items")
	}

	aggregate, err := order.NewOrder(id, customerID)
	if err != nil {
		return order.CreatedEvent{}, err
	}

	for _, item := range items {
		if err = aggregate.AddItem(item); err != nil {
			return order.CreatedEvent{}, err
		}
	}

	if err = s.orderRepository.Save(ctx, aggregate); err != nil {
		return order.CreatedEvent{}, err
	}

	return order.NewCreatedEvent(aggregate), nil
}

// ConfirmOrder loads the order, confirms it and persists the result.
// Invalid-state failures from the aggregate propagate unchanged.
func (s OrderService) ConfirmOrder(ctx context.Context, id kernel.UUID) error {
	return s.transition(ctx, id, (*order.Order).Confirm)
}

// CancelOrder loads the order, cancels it and persists the result.
func (s OrderService) CancelOrder(ctx context.Context, id kernel.UUID) error {
	return s.transition(ctx, id, (*order.Order).Cancel)
}

// DeliverOrder loads the order, delivers it and persists the result.
func (s OrderService) DeliverOrder(ctx context.Context, id kernel.UUID) error {
	return s.transition(ctx, id, (*order.Order).Deliver)
}

// GetOrder loads a single order by id. A missing order surfaces as the
// repository's not-found error.
func (s OrderService) GetOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return s.orderRepository.Get(ctx, id)
}

// GetCustomerOrders returns all orders placed by the customer.
// A customer without orders yields an empty slice, not an error.
func (s OrderService) GetCustomerOrders(ctx context.Context, customerID string) ([]*order.Order, error) {
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerId")
	}
	return s.orderRepository.GetByCustomer(ctx, customerID)
}

// transition runs a single load, one aggregate operation and one save.
func (s OrderService) transition(
	ctx context.Context,
	id kernel.UUID,
	op func(*order.Order) error,
) error {
	if err := id.Validate(); err != nil {
		return err
	}

	aggregate, err := s.orderRepository.Get(ctx, id)
	if err != nil {
		return err
	}

	if err = op(aggregate); err != nil {
		return err
	}

	return s.orderRepository.Save(ctx, aggregate)
}
