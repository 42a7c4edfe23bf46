package purchaserepo

import (
	"context"
	"errors"

	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/kernel"
	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/purchase"
	"github.com/NotMikev/awesome-pizza-manager/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPurchaseRepository implements PurchaseRepository using GORM.
type GormPurchaseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(code kernel.Code, aggregate any)
}

// NewGormPurchaseRepository creates a new GORM purchase repository.
func NewGormPurchaseRepository(db *gorm.DB, tracker aggregateTracker) *GormPurchaseRepository {
	return &GormPurchaseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new purchase to the database.
func (r *GormPurchaseRepository) Add(ctx context.Context, aggregate *purchase.Purchase) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.Code(), aggregate)
	return nil
}

// Update persists a status transition, conditioned on the row still holding
// the expected source status. The write touches zero rows and reports not
// found when a concurrent caller moved the purchase first, so a claim can
// never be applied twice.
func (r *GormPurchaseRepository) Update(ctx context.Context, aggregate *purchase.Purchase, from purchase.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PurchaseDTO{}).
		Where("code = ? AND status = ?", dto.Code, int(from)).
		Updates(map[string]any{
			"status":     dto.Status,
			"updated_at": dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("code", dto.Code)
	}

	r.tracker.TrackAggregate(aggregate.Code(), aggregate)
	return nil
}

// GetByCode retrieves a purchase by its code, in any status.
func (r *GormPurchaseRepository) GetByCode(ctx context.Context, code kernel.Code) (*purchase.Purchase, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto PurchaseDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("code", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCodeInStatus retrieves a purchase by code only when it currently holds
// the given status. Any other status is reported as not found.
func (r *GormPurchaseRepository) GetByCodeInStatus(
	ctx context.Context,
	code kernel.Code,
	status purchase.Status,
) (*purchase.Purchase, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto PurchaseDTO
	err := r.db.WithContext(ctx).First(&dto, "code = ? AND status = ?", code.String(), int(status)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("code", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOldestInStatus retrieves the purchase with the earliest creation time
// among those in the given status. Ties break by insertion order.
func (r *GormPurchaseRepository) GetOldestInStatus(ctx context.Context, status purchase.Status) (*purchase.Purchase, error) {
	var dto PurchaseDTO
	err := r.db.WithContext(ctx).
		Order("created_at, id").
		First(&dto, "status = ?", int(status)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("status", status.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
