package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Save(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCustomer(ctx context.Context, customerID string) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetStalePending(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func mustItem(t *testing.T, productID string, quantity int, price string) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), productID, quantity, decimal.RequireFromString(price))
	require.NoError(t, err)
	return item
}

func pendingOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, "c1")
	require.NoError(t, err)
	require.NoError(t, o.AddItem(mustItem(t, "p1", 2, "10.00")))
	return o
}

func TestOrderService_CreateOrder(t *testing.T) {
	ctx := t.Context()

	t.Run("creates, saves and returns creation event", func(t *testing.T) {
		id := kernel.NewUUID()
		items := []order.Item{mustItem(t, "p1", 2, "10.00"), mustItem(t, "p2", 1, "5.00")}

		repo := new(MockOrderRepository)
		repo.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

		svc := services.NewOrderService(repo)
		event, err := svc.CreateOrder(ctx, id, "c1", items)

		require.NoError(t, err)
		assert.Equal(t, order.CreatedEventType, event.EventType)
		assert.Equal(t, id.String(), event.OrderID)
		assert.Equal(t, "c1", event.CustomerID)
		assert.Len(t, event.Items, 2)
		assert.True(t, event.TotalAmount.Equal(decimal.RequireFromString("25.00")))
		assert.False(t, event.CreatedAt.IsZero())

		saved := repo.Calls[0].Arguments.Get(1).(*order.Order)
		assert.Equal(t, order.Pending, saved.Status())
		repo.AssertExpectations(t)
	})

	t.Run("rejects empty item list before touching the repository", func(t *testing.T) {
		repo := new(MockOrderRepository)
		svc := services.NewOrderService(repo)

		_, err := svc.CreateOrder(ctx, kernel.NewUUID(), "c1", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects empty customer id", func(t *testing.T) {
		repo := new(MockOrderRepository)
		svc := services.NewOrderService(repo)

		_, err := svc.CreateOrder(ctx, kernel.NewUUID(), "", []order.Item{mustItem(t, "p1", 1, "1.00")})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects unconstructed item", func(t *testing.T) {
		repo := new(MockOrderRepository)
		svc := services.NewOrderService(repo)

		_, err := svc.CreateOrder(ctx, kernel.NewUUID(), "c1", []order.Item{{}})

		require.Error(t, err)
		assert.Equal(t, order.ErrItemIsNotConstructed, err)
	})

	t.Run("propagates save failure", func(t *testing.T) {
		repo := new(MockOrderRepository)
		repo.On("Save", ctx, mock.Anything).Return(errors.New("save error")).Once()

		svc := services.NewOrderService(repo)
		_, err := svc.CreateOrder(ctx, kernel.NewUUID(), "c1", []order.Item{mustItem(t, "p1", 1, "1.00")})

		require.Error(t, err)
		repo.AssertExpectations(t)
	})
}

func TestOrderService_ConfirmOrder(t *testing.T) {
	ctx := t.Context()

	t.Run("loads, confirms and saves exactly once", func(t *testing.T) {
		id := kernel.NewUUID()
		aggregate := pendingOrder(t, id)

		repo := new(MockOrderRepository)
		mock.InOrder(
			repo.On("Get", ctx, id).Return(aggregate, nil).Once(),
			repo.On("Save", ctx, aggregate).Return(nil).Once(),
		)

		svc := services.NewOrderService(repo)
		require.NoError(t, svc.ConfirmOrder(ctx, id))

		assert.Equal(t, order.Confirmed, aggregate.Status())
		repo.AssertExpectations(t)
	})

	t.Run("propagates not found without saving", func(t *testing.T) {
		id := kernel.NewUUID()

		repo := new(MockOrderRepository)
		repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("orderId", id)).Once()

		svc := services.NewOrderService(repo)
		err := svc.ConfirmOrder(ctx, id)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("propagates invalid state without saving", func(t *testing.T) {
		id := kernel.NewUUID()
		aggregate, _ := order.NewOrder(id, "c1") // empty, cannot confirm

		repo := new(MockOrderRepository)
		repo.On("Get", ctx, id).Return(aggregate, nil).Once()

		svc := services.NewOrderService(repo)
		err := svc.ConfirmOrder(ctx, id)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects invalid order id", func(t *testing.T) {
		repo := new(MockOrderRepository)
		svc := services.NewOrderService(repo)

		var invalidID kernel.UUID
		err := svc.ConfirmOrder(ctx, invalidID)

		require.Error(t, err)
		repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestOrderService_CancelOrder(t *testing.T) {
	ctx := t.Context()

	t.Run("cancels a pending order", func(t *testing.T) {
		id := kernel.NewUUID()
		aggregate, _ := order.NewOrder(id, "c1")

		repo := new(MockOrderRepository)
		mock.InOrder(
			repo.On("Get", ctx, id).Return(aggregate, nil).Once(),
			repo.On("Save", ctx, aggregate).Return(nil).Once(),
		)

		svc := services.NewOrderService(repo)
		require.NoError(t, svc.CancelOrder(ctx, id))

		assert.Equal(t, order.Cancelled, aggregate.Status())
		repo.AssertExpectations(t)
	})

	t.Run("cannot cancel a delivered order", func(t *testing.T) {
		id := kernel.NewUUID()
		aggregate := pendingOrder(t, id)
		require.NoError(t, aggregate.Confirm())
		require.NoError(t, aggregate.Deliver())

		repo := new(MockOrderRepository)
		repo.On("Get", ctx, id).Return(aggregate, nil).Once()

		svc := services.NewOrderService(repo)
		err := svc.CancelOrder(ctx, id)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestOrderService_DeliverOrder(t *testing.T) {
	ctx := t.Context()

	t.Run("delivers a confirmed order", func(t *testing.T) {
		id := kernel.NewUUID()
		aggregate := pendingOrder(t, id)
		require.NoError(t, aggregate.Confirm())

		repo := new(MockOrderRepository)
		mock.InOrder(
			repo.On("Get", ctx, id).Return(aggregate, nil).Once(),
			repo.On("Save", ctx, aggregate).Return(nil).Once(),
		)

		svc := services.NewOrderService(repo)
		require.NoError(t, svc.DeliverOrder(ctx, id))

		assert.Equal(t, order.Delivered, aggregate.Status())
		repo.AssertExpectations(t)
	})

	t.Run("cannot deliver a pending order", func(t *testing.T) {
		id := kernel.NewUUID()
		aggregate := pendingOrder(t, id)

		repo := new(MockOrderRepository)
		repo.On("Get", ctx, id).Return(aggregate, nil).Once()

		svc := services.NewOrderService(repo)
		err := svc.DeliverOrder(ctx, id)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestOrderService_GetOrder(t *testing.T) {
	ctx := t.Context()

	t.Run("returns the loaded order", func(t *testing.T) {
		id := kernel.NewUUID()
		aggregate := pendingOrder(t, id)

		repo := new(MockOrderRepository)
		repo.On("Get", ctx, id).Return(aggregate, nil).Once()

		svc := services.NewOrderService(repo)
		got, err := svc.GetOrder(ctx, id)

		require.NoError(t, err)
		assert.True(t, got.IsEqual(aggregate))
	})

	t.Run("propagates not found", func(t *testing.T) {
		id := kernel.NewUUID()

		repo := new(MockOrderRepository)
		repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("orderId", id)).Once()

		svc := services.NewOrderService(repo)
		got, err := svc.GetOrder(ctx, id)

		require.Error(t, err)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrderService_GetCustomerOrders(t *testing.T) {
	ctx := t.Context()

	t.Run("returns all customer orders", func(t *testing.T) {
		first := pendingOrder(t, kernel.NewUUID())
		second := pendingOrder(t, kernel.NewUUID())

		repo := new(MockOrderRepository)
		repo.On("GetByCustomer", ctx, "c1").Return([]*order.Order{first, second}, nil).Once()

		svc := services.NewOrderService(repo)
		got, err := svc.GetCustomerOrders(ctx, "c1")

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("customer without orders yields empty slice", func(t *testing.T) {
		repo := new(MockOrderRepository)
		repo.On("GetByCustomer", ctx, "nobody").Return([]*order.Order{}, nil).Once()

		svc := services.NewOrderService(repo)
		got, err := svc.GetCustomerOrders(ctx, "nobody")

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("rejects empty customer id", func(t *testing.T) {
		repo := new(MockOrderRepository)
		svc := services.NewOrderService(repo)

		_, err := svc.GetCustomerOrders(ctx, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		repo.AssertNotCalled(t, "GetByCustomer", mock.Anything, mock.Anything)
	})
}
