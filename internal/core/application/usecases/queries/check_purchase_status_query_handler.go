package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/purchase"
	"github.com/NotMikev/awesome-pizza-manager/internal/pkg/errs"

	"gorm.io/gorm"
)

// CheckPurchaseStatusQueryResponse represents one order as the tracking API
// reports it. Status is the wire name (NEW, IN_PROGRESS or READY).
type CheckPurchaseStatusQueryResponse struct {
	Code      string
	Item      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CheckPurchaseStatusQueryHandler reads order state straight from the
// database, bypassing the aggregate. Read models never mutate rows, so no
// unit of work is involved.
type CheckPurchaseStatusQueryHandler struct {
	db *gorm.DB
}

// NewCheckPurchaseStatusQueryHandler creates a handler for order tracking lookups.
// Requires a GORM database connection for query execution.
func NewCheckPurchaseStatusQueryHandler(db *gorm.DB) CheckPurchaseStatusQueryHandler {
	return CheckPurchaseStatusQueryHandler{db: db}
}

// Handle executes the lookup. Returns an error unwrapping to
// errs.ErrObjectNotFound when no order carries the queried code.
func (h CheckPurchaseStatusQueryHandler) Handle(
	ctx context.Context,
	query CheckPurchaseStatusQuery,
) (CheckPurchaseStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckPurchaseStatusQueryResponse{}, err
	}

	var resp CheckPurchaseStatusQueryResponse
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			code,
			item,
			status,
			created_at,
			updated_at
		FROM purchases
		WHERE code = ?
	`, query.Code().String()).Row()

	err := row.Scan(&resp.Code, &resp.Item, &status, &resp.CreatedAt, &resp.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return CheckPurchaseStatusQueryResponse{},
			errs.NewObjectNotFoundError("code", query.Code().String())
	}
	if err != nil {
		return CheckPurchaseStatusQueryResponse{}, err
	}

	resp.Status = purchase.Status(status).String()
	return resp, nil
}
