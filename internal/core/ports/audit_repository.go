package ports

import (
	"context"

	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/audit"
)

// AuditLogRepository defines the persistence contract for audit records.
// The store is append-only; records are never updated or deleted.
type AuditLogRepository interface {
	// Add persists a new audit record.
	Add(ctx context.Context, record *audit.Record) error

	// GetByCorrelationID retrieves the record written for the call that
	// returned the given correlation id. Used for diagnostics and testing.
	GetByCorrelationID(ctx context.Context, correlationID string) (*audit.Record, error)
}
