// Package auditrepo provides data transfer objects and mapping functions for the API audit log.
// The log is append-only: every audited HTTP call produces exactly one row, keyed by the
// correlation id the caller received, and rows are never updated or deleted.
package auditrepo

import (
	"time"

	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/audit"
)

// RecordDTO represents the database structure for persisting audit records.
// Body columns are TEXT so captured payloads are never truncated; they stay
// nullable because body capture is best-effort.
type RecordDTO struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	CorrelationID  string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Timestamp      time.Time `gorm:"not null"`
	Method         string    `gorm:"type:varchar(16);not null"`
	Path           string    `gorm:"type:varchar(512);not null"`
	RequestBody    *string   `gorm:"type:text"`
	ResponseStatus int       `gorm:"not null"`
	ResponseBody   *string   `gorm:"type:text"`
	FailureDetail  *string   `gorm:"type:text"`
}

// TableName specifies the database table name for audit records.
// Overrides GORM's default naming convention to use "api_audit_log".
func (RecordDTO) TableName() string {
	return "api_audit_log"
}

// fromDomain converts an audit record to its database representation.
func fromDomain(record *audit.Record) RecordDTO {
	return RecordDTO{
		CorrelationID:  record.CorrelationID(),
		Timestamp:      record.Timestamp(),
		Method:         record.Method(),
		Path:           record.Path(),
		RequestBody:    record.RequestBody(),
		ResponseStatus: record.ResponseStatus(),
		ResponseBody:   record.ResponseBody(),
		FailureDetail:  record.FailureDetail(),
	}
}

// toDomain converts a database DTO to an audit record.
func toDomain(dto RecordDTO) (*audit.Record, error) {
	return audit.NewRecord(
		dto.CorrelationID,
		dto.Timestamp.UTC(),
		dto.Method,
		dto.Path,
		dto.RequestBody,
		dto.ResponseStatus,
		dto.ResponseBody,
		dto.FailureDetail,
	)
}
