package order

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// CreatedEventType identifies the integration event emitted when an order
// is created.
const CreatedEventType = "OrderCreated"

// CreatedEventItem is the event representation of a single order line.
type CreatedEventItem struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CreatedEvent is the integration event produced when a new order has been
// persisted. It carries a snapshot of the order at creation time; monetary
// amounts serialize as decimal strings and the timestamp as RFC 3339.
//
// The domain only produces this event; handing it to a message transport is
// the caller's responsibility.
type CreatedEvent struct {
	EventType   string             `json:"eventType"`
	OrderID     string             `json:"orderId"`
	CustomerID  string             `json:"customerId"`
	Items       []CreatedEventItem `json:"items"`
	TotalAmount decimal.Decimal    `json:"totalAmount"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// NewCreatedEvent builds the creation event from a freshly created order.
func NewCreatedEvent(o *Order) CreatedEvent {
	return CreatedEvent{
		EventType:  CreatedEventType,
		OrderID:    o.ID().String(),
		CustomerID: o.CustomerID(),
		Items: lo.Map(o.Items(), func(item Item, _ int) CreatedEventItem {
			return CreatedEventItem{
				ProductID: item.ProductID(),
				Quantity:  item.Quantity(),
				UnitPrice: item.UnitPrice(),
				Subtotal:  item.Subtotal(),
			}
		}),
		TotalAmount: o.TotalAmount(),
		CreatedAt:   o.CreatedAt(),
	}
}
