package orderrepo

import (
	"context"
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Save persists the order as an upsert: the head row is inserted or replaced
// and the item rows are replaced wholesale. The aggregate owns its items, so
// the stored lines always mirror the current in-memory set.
func (r *GormOrderRepository) Save(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	tx := r.db.WithContext(ctx)

	if err := tx.Omit("Items").Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto).Error; err != nil {
		return err
	}

	if err := tx.Where("order_id = ?", dto.ID).Delete(&ItemDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Items) > 0 {
		if err := tx.Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCustomer retrieves all orders of one customer, oldest first.
func (r *GormOrderRepository) GetByCustomer(ctx context.Context, customerID string) ([]*order.Order, error) {
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerId")
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at").
		Find(&dtos, "customer_id = ?", customerID).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetStalePending retrieves all PENDING orders last updated strictly before the cutoff.
func (r *GormOrderRepository) GetStalePending(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("updated_at").
		Find(&dtos, "status = ? AND updated_at < ?", order.Pending.String(), cutoff).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// Exists reports whether an order with the given ID is stored.
func (r *GormOrderRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes the order and its items.
// Returns an ObjectNotFoundError when no order with the ID exists.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	tx := r.db.WithContext(ctx)
	if err := tx.Where("order_id = ?", id.Bytes()).Delete(&ItemDTO{}).Error; err != nil {
		return err
	}

	result := tx.Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

func (r *GormOrderRepository) toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
