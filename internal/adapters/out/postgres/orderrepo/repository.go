package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// orderNumberBase is the sequence start for human-readable order numbers.
const orderNumberBase = 1001

// GormOrderRepository implements ports.OrderRepository using GORM.
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

// Add saves a new order and its vehicle bindings to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. The vehicle binding rows
// are replaced wholesale; bindings only ever change on assignment, which
// runs inside a unit of work transaction.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Select("*") forces zero values (cleared queue slot, false flags)
	// to be written.
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "Vehicles").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Delete(&OrderVehicleDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Vehicles) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Vehicles).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, including its vehicle bindings.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Vehicles").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllQueued retrieves every order waiting for a vehicle, sorted by
// queue position ascending.
func (r *GormOrderRepository) GetAllQueued(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Vehicles").
		Where("status = ?", order.WaitingForVehicle.String()).
		Order("queue_position").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllActive retrieves every order currently being executed, including
// legacy statuses that behave like en_route.
func (r *GormOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	activeStatuses := []string{
		order.EnRoute.String(),
		order.AtSite.String(),
		order.Pouring.String(),
		order.Approved.String(),
		order.Assigned.String(),
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Vehicles").
		Where("status IN ?", activeStatuses).
		Order("start_time").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// NextOrderNumber produces the next sequential order number, e.g.
// "ORD-1007". Drawn from the row count, so it must run inside the same
// transaction as the insert it numbers.
func (r *GormOrderRepository) NextOrderNumber(ctx context.Context) (string, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Count(&count).Error; err != nil {
		return "", err
	}

	return fmt.Sprintf("ORD-%d", orderNumberBase+count), nil
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		restored, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, restored)
	}
	return orders, nil
}
