package commands

import (
	"context"
	"time"

	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/purchase"
)

// CreatePurchaseCommandHandler handles the business logic for placing orders.
// Creates a new purchase in New status with createdAt equal to updatedAt.
type CreatePurchaseCommandHandler struct {
	uowFactory PurchaseUoWFactory
}

// NewCreatePurchaseCommandHandler creates a handler for order placement.
// Requires a PurchaseUoWFactory for transactional persistence.
func NewCreatePurchaseCommandHandler(uowFactory PurchaseUoWFactory) CreatePurchaseCommandHandler {
	return CreatePurchaseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command and returns the persisted purchase.
// Uses a transaction to ensure the purchase is properly persisted or rolled back on error.
func (h CreatePurchaseCommandHandler) Handle(ctx context.Context, cmd CreatePurchaseCommand) (*purchase.Purchase, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	p, err := purchase.NewPurchase(cmd.Code(), cmd.Item(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PurchaseRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
