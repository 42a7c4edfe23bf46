package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/NotMikev/awesome-pizza-manager/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAuditRecordQueryHandler reads audit trail entries from the database.
type GetAuditRecordQueryHandler struct {
	db *gorm.DB
}

// NewGetAuditRecordQueryHandler creates a handler for audit trail lookups.
// Requires a GORM database connection for query execution.
func NewGetAuditRecordQueryHandler(db *gorm.DB) GetAuditRecordQueryHandler {
	return GetAuditRecordQueryHandler{db: db}
}

// Handle executes the lookup. Returns an error unwrapping to
// errs.ErrObjectNotFound when no entry carries the queried correlation id.
func (h GetAuditRecordQueryHandler) Handle(
	ctx context.Context,
	query GetAuditRecordQuery,
) (GetAuditRecordQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAuditRecordQueryResponse{}, err
	}

	var resp GetAuditRecordQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			correlation_id,
			timestamp,
			method,
			path,
			request_body,
			response_status,
			response_body,
			failure_detail
		FROM api_audit_log
		WHERE correlation_id = ?
	`, query.CorrelationID()).Row()

	err := row.Scan(
		&resp.CorrelationID,
		&resp.Timestamp,
		&resp.Method,
		&resp.Path,
		&resp.RequestBody,
		&resp.ResponseStatus,
		&resp.ResponseBody,
		&resp.FailureDetail,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetAuditRecordQueryResponse{},
			errs.NewObjectNotFoundError("correlationId", query.CorrelationID())
	}
	if err != nil {
		return GetAuditRecordQueryResponse{}, err
	}

	return resp, nil
}
