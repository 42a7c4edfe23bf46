package queries

import (
	"errors"
	"time"

	"github.com/NotMikev/awesome-pizza-manager/internal/pkg/guard"
)

var ErrGetPendingPurchasesQueryIsNotConstructed = errors.New(
	"GetPendingPurchasesQuery must be created via NewGetPendingPurchasesQuery constructor",
)

// GetPendingPurchasesQuery retrieves every order still waiting to be taken,
// oldest first. The queue monitor job uses it to report queue depth.
type GetPendingPurchasesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingPurchasesQuery creates a query to list the pending order queue.
// This is a parameterless query; selection is always every NEW order.
func NewGetPendingPurchasesQuery() GetPendingPurchasesQuery {
	return GetPendingPurchasesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingPurchasesQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingPurchasesQueryIsNotConstructed)
}

// GetPendingPurchasesQueryResponse represents one queued order awaiting a
// pizzaiolo, in queue position order.
type GetPendingPurchasesQueryResponse struct {
	Code      string
	Item      string
	CreatedAt time.Time
}
