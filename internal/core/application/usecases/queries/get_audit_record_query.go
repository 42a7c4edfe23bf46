package queries

import (
	"errors"
	"time"

	"github.com/NotMikev/awesome-pizza-manager/internal/pkg/errs"
	"github.com/NotMikev/awesome-pizza-manager/internal/pkg/guard"
)

var ErrGetAuditRecordQueryIsNotConstructed = errors.New(
	"GetAuditRecordQuery must be created via NewGetAuditRecordQuery constructor",
)

// GetAuditRecordQuery retrieves the audit trail entry of one API call by the
// correlation id the caller received in the X-Correlation-Id response header.
type GetAuditRecordQuery struct {
	correlationID string

	guard guard.ConstructorGuard
}

// NewGetAuditRecordQuery creates a query for the audit entry with the given
// correlation id. The correlation id is required.
func NewGetAuditRecordQuery(correlationID string) (GetAuditRecordQuery, error) {
	if correlationID == "" {
		return GetAuditRecordQuery{}, errs.NewValueIsRequiredError("correlationId")
	}

	return GetAuditRecordQuery{
		correlationID: correlationID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAuditRecordQuery) Validate() error {
	return q.guard.Validate(ErrGetAuditRecordQueryIsNotConstructed)
}

// CorrelationID returns the correlation id being looked up.
func (q GetAuditRecordQuery) CorrelationID() string {
	return q.correlationID
}

// GetAuditRecordQueryResponse represents one audit trail entry. Body and
// failure fields are nil when nothing was captured for them.
type GetAuditRecordQueryResponse struct {
	CorrelationID  string
	Timestamp      time.Time
	Method         string
	Path           string
	RequestBody    *string
	ResponseStatus int
	ResponseBody   *string
	FailureDetail  *string
}
