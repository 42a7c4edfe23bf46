package queries

import (
	"context"

	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/purchase"

	"gorm.io/gorm"
)

// GetPendingPurchasesQueryHandler lists the pending order queue from the
// database. Ordering matches the dequeue rule: earliest createdAt first,
// ties broken by insertion order.
type GetPendingPurchasesQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingPurchasesQueryHandler creates a handler for queue listing.
// Requires a GORM database connection for query execution.
func NewGetPendingPurchasesQueryHandler(db *gorm.DB) GetPendingPurchasesQueryHandler {
	return GetPendingPurchasesQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders in NEW status.
// Returns an empty slice when the queue is empty.
func (h GetPendingPurchasesQueryHandler) Handle(
	ctx context.Context,
	query GetPendingPurchasesQuery,
) ([]GetPendingPurchasesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pending := make([]GetPendingPurchasesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			code,
			item,
			created_at
		FROM purchases
		WHERE status = ?
		ORDER BY created_at, id
	`, purchase.New).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPendingPurchasesQueryResponse

		if err = rows.Scan(&resp.Code, &resp.Item, &resp.CreatedAt); err != nil {
			return nil, err
		}

		pending = append(pending, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pending, nil
}
