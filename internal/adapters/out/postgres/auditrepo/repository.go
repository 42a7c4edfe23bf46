package auditrepo

import (
	"context"
	"errors"

	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/audit"
	"github.com/NotMikev/awesome-pizza-manager/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAuditLogRepository implements AuditLogRepository using GORM.
type GormAuditLogRepository struct {
	db *gorm.DB
}

// NewGormAuditLogRepository creates a new GORM audit log repository.
func NewGormAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// Add appends a new audit record to the log.
func (r *GormAuditLogRepository) Add(ctx context.Context, record *audit.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByCorrelationID retrieves the record written for the call that returned
// the given correlation id.
func (r *GormAuditLogRepository) GetByCorrelationID(ctx context.Context, correlationID string) (*audit.Record, error) {
	if correlationID == "" {
		return nil, errs.NewValueIsRequiredError("correlationId")
	}

	var dto RecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "correlation_id = ?", correlationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("correlationId", correlationID)
		}
		return nil, err
	}

	return toDomain(dto)
}
