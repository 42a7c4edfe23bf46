package commands

import (
	"context"
	"errors"
	"time"

	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/purchase"
	"github.com/NotMikev/awesome-pizza-manager/internal/pkg/errs"
)

// MarkPurchaseReadyCommandHandler finishes preparation of an order.
//
// The lookup requires the purchase to currently be IN_PROGRESS; an unknown
// code and a purchase in any other status produce the same not-found failure.
type MarkPurchaseReadyCommandHandler struct {
	uowFactory PurchaseUoWFactory
}

// NewMarkPurchaseReadyCommandHandler creates a handler for the ready transition.
func NewMarkPurchaseReadyCommandHandler(uowFactory PurchaseUoWFactory) MarkPurchaseReadyCommandHandler {
	return MarkPurchaseReadyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle transitions the purchase with the command's code from IN_PROGRESS to
// READY. Fails with a not-found error when the code is unknown or the purchase
// is not IN_PROGRESS.
func (h MarkPurchaseReadyCommandHandler) Handle(ctx context.Context, cmd MarkPurchaseReadyCommand) (*purchase.Purchase, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PurchaseRepository()

	p, err := repo.GetByCodeInStatus(ctx, cmd.Code(), purchase.InProgress)
	if err != nil {
		return nil, err
	}

	if err = p.MarkReady(time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, p, purchase.InProgress); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewObjectNotFoundError("code", cmd.Code().String())
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
