package queries

import (
	"errors"

	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/kernel"
	"github.com/NotMikev/awesome-pizza-manager/internal/pkg/guard"
)

var ErrCheckPurchaseStatusQueryIsNotConstructed = errors.New(
	"CheckPurchaseStatusQuery must be created via NewCheckPurchaseStatusQuery constructor",
)

// CheckPurchaseStatusQuery retrieves the current state of one order by its
// code, in any status. This is the customer-facing tracking lookup.
//
// Example:
//
//	code, _ := kernel.CodeFromString(rawCode)
//	query, _ := NewCheckPurchaseStatusQuery(code)
//	handler := NewCheckPurchaseStatusQueryHandler(db)
//
//	status, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown code
//	}
type CheckPurchaseStatusQuery struct {
	code kernel.Code

	guard guard.ConstructorGuard
}

// NewCheckPurchaseStatusQuery creates a query to look up the order with the
// given code. Validates the code.
func NewCheckPurchaseStatusQuery(code kernel.Code) (CheckPurchaseStatusQuery, error) {
	if err := code.Validate(); err != nil {
		return CheckPurchaseStatusQuery{}, err
	}

	return CheckPurchaseStatusQuery{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CheckPurchaseStatusQuery) Validate() error {
	return q.guard.Validate(ErrCheckPurchaseStatusQueryIsNotConstructed)
}

// Code returns the handle of the order being tracked.
func (q CheckPurchaseStatusQuery) Code() kernel.Code {
	return q.code
}
