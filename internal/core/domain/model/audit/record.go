package audit

import (
	"errors"
	"time"

	"github.com/NotMikev/awesome-pizza-manager/internal/pkg/errs"
)

var (
	// ErrRecordIsNotConstructed is returned when a Record instance was not created
	// through the NewRecord factory method.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")
)

// Record is one immutable audit entry describing a single inbound API call.
//
// The correlation id is the join key between the HTTP exchange (where it is
// returned as a response header) and this record. Exactly one Record exists
// per audited call, written once after the call completes and never mutated.
//
// Body captures are best-effort: a nil requestBody or responseBody means
// capture legitimately failed or the call simply had no body.
type Record struct {
	correlationID  string
	timestamp      time.Time
	method         string
	path           string
	requestBody    *string
	responseStatus int
	responseBody   *string
	failureDetail  *string

	isConstructed bool
}

// NewRecord creates an audit Record with validation.
//
// correlationID, method and path are required; requestBody, responseBody and
// failureDetail are nullable by design.
func NewRecord(
	correlationID string,
	timestamp time.Time,
	method string,
	path string,
	requestBody *string,
	responseStatus int,
	responseBody *string,
	failureDetail *string,
) (*Record, error) {
	r := &Record{
		timestamp:      timestamp,
		requestBody:    requestBody,
		responseStatus: responseStatus,
		responseBody:   responseBody,
		failureDetail:  failureDetail,
		isConstructed:  true,
	}

	if err := errors.Join(
		r.setCorrelationID(correlationID),
		r.setMethod(method),
		r.setPath(path),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Record instance was properly constructed through NewRecord.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}

	return nil
}

// CorrelationID returns the per-call unique token linking this record to the
// X-Correlation-Id header the caller received.
func (r *Record) CorrelationID() string {
	return r.correlationID
}

// Timestamp returns the time the record was captured.
func (r *Record) Timestamp() time.Time {
	return r.timestamp
}

// Method returns the HTTP method of the audited call.
func (r *Record) Method() string {
	return r.method
}

// Path returns the request path of the audited call.
func (r *Record) Path() string {
	return r.path
}

// RequestBody returns the captured request body, nil when capture failed
// or the request had no body.
func (r *Record) RequestBody() *string {
	return r.requestBody
}

// ResponseStatus returns the HTTP status code returned to the caller.
func (r *Record) ResponseStatus() int {
	return r.responseStatus
}

// ResponseBody returns the captured response body, nil when capture failed
// or the response had no body.
func (r *Record) ResponseBody() *string {
	return r.responseBody
}

// FailureDetail returns the description of the error raised while processing
// the call, nil when the call completed without one.
func (r *Record) FailureDetail() *string {
	return r.failureDetail
}

func (r *Record) setCorrelationID(correlationID string) error {
	if correlationID == "" {
		return errs.NewValueIsRequiredError("correlationId")
	}
	r.correlationID = correlationID
	return nil
}

func (r *Record) setMethod(method string) error {
	if method == "" {
		return errs.NewValueIsRequiredError("method")
	}
	r.method = method
	return nil
}

func (r *Record) setPath(path string) error {
	if path == "" {
		return errs.NewValueIsRequiredError("path")
	}
	r.path = path
	return nil
}
