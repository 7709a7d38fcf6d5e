// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The stored status, total and timestamps are treated as untrusted derived
// state: loading goes through the domain's restore path, which recomputes the
// total and replays the transitions to the stored status.
//
// The timestamp columns carry the domain's audit trail, so GORM's automatic
// create/update tracking is disabled for them.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID  string          `gorm:"index"`
	Items       []ItemDTO       `gorm:"foreignKey:OrderID;references:ID"`
	Status      string          `gorm:"index"`
	TotalAmount decimal.Decimal `gorm:"type:numeric"`
	CreatedAt   time.Time       `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime:false;index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents a single order line in the child table.
// Lines have no lifecycle of their own; saving an order replaces them wholesale.
type ItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	ProductID string          `gorm:"index"`
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric"`
	Subtotal  decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	return OrderDTO{
		ID:         orderID,
		CustomerID: aggregate.CustomerID(),
		Items: lo.Map(aggregate.Items(), func(item order.Item, _ int) ItemDTO {
			return ItemDTO{
				ID:        item.ID().Bytes(),
				OrderID:   orderID,
				ProductID: item.ProductID(),
				Quantity:  item.Quantity(),
				UnitPrice: item.UnitPrice(),
				Subtotal:  item.Subtotal(),
			}
		}),
		Status:      aggregate.Status().String(),
		TotalAmount: aggregate.TotalAmount(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate via the
// domain's restore path. Items re-validate and the total is recomputed, so a
// row describing an unreachable state fails to load.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(itemID, itemDTO.ProductID, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.CustomerID, items, status, dto.CreatedAt, dto.UpdatedAt)
}
