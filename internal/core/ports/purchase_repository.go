package ports

import (
	"context"

	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/kernel"
	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/purchase"
)

// PurchaseRepository defines the persistence contract for purchase aggregates.
// Lookups that find nothing return an error unwrapping to errs.ErrObjectNotFound.
type PurchaseRepository interface {
	// Add persists a new purchase aggregate to storage.
	// Storage assigns the internal identifier on first save; the code stays
	// the only externally visible handle.
	Add(ctx context.Context, aggregate *purchase.Purchase) error

	// Update persists a status transition, conditioned on the row still being
	// in the expected source status. When the row was concurrently moved out
	// of that status the write touches zero rows and Update reports
	// errs.ErrObjectNotFound, so no two callers can claim the same purchase.
	Update(ctx context.Context, aggregate *purchase.Purchase, from purchase.Status) error

	// GetByCode retrieves a purchase by its external handle, in any status.
	GetByCode(ctx context.Context, code kernel.Code) (*purchase.Purchase, error)

	// GetByCodeInStatus retrieves a purchase by handle only when it currently
	// holds the given status. A purchase in any other status is reported as
	// not found, indistinguishable from an unknown code.
	GetByCodeInStatus(ctx context.Context, code kernel.Code, status purchase.Status) (*purchase.Purchase, error)

	// GetOldestInStatus retrieves the purchase with the earliest creation time
	// among those in the given status; ties break by insertion order.
	GetOldestInStatus(ctx context.Context, status purchase.Status) (*purchase.Purchase, error)
}
