// Package queries contains read operations in the CQRS architecture.
// Queries load orders through the repository port, so every returned order
// has passed the domain's reconstruction path; no raw projection can leak
// an unreachable state.
package queries

import (
	"time"

	"orders/internal/core/domain/model/order"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// OrderItemResponse represents a single order line in a query response.
type OrderItemResponse struct {
	ID        string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// OrderResponse represents a complete order in a query response.
type OrderResponse struct {
	ID          string
	CustomerID  string
	Items       []OrderItemResponse
	Status      string
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewOrderResponse maps an order aggregate to its query response.
func NewOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:         o.ID().String(),
		CustomerID: o.CustomerID(),
		Items: lo.Map(o.Items(), func(item order.Item, _ int) OrderItemResponse {
			return OrderItemResponse{
				ID:        item.ID().String(),
				ProductID: item.ProductID(),
				Quantity:  item.Quantity(),
				UnitPrice: item.UnitPrice(),
				Subtotal:  item.Subtotal(),
			}
		}),
		Status:      o.Status().String(),
		TotalAmount: o.TotalAmount(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}
