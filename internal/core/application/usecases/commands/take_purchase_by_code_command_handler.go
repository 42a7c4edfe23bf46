package commands

import (
	"context"
	"errors"
	"time"

	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/purchase"
	"github.com/NotMikev/awesome-pizza-manager/internal/pkg/errs"
)

// TakePurchaseByCodeCommandHandler claims one specific pending order.
//
// The lookup requires the purchase to currently be NEW: an unknown code and a
// purchase already taken or ready produce the same not-found failure, so a
// caller learns nothing about orders it does not hold. The status write is
// conditioned on NEW exactly as in the queue dequeue; a lost race also
// surfaces as not found because the specific purchase is simply gone.
type TakePurchaseByCodeCommandHandler struct {
	uowFactory PurchaseUoWFactory
}

// NewTakePurchaseByCodeCommandHandler creates a handler for targeted claims.
func NewTakePurchaseByCodeCommandHandler(uowFactory PurchaseUoWFactory) TakePurchaseByCodeCommandHandler {
	return TakePurchaseByCodeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle claims the purchase with the command's code and transitions it to
// IN_PROGRESS. Fails with a not-found error when the code is unknown or the
// purchase is not NEW.
func (h TakePurchaseByCodeCommandHandler) Handle(ctx context.Context, cmd TakePurchaseByCodeCommand) (*purchase.Purchase, error) {
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

	p, err := repo.GetByCodeInStatus(ctx, cmd.Code(), purchase.New)
	if err != nil {
		return nil, err
	}

	if err = p.Take(time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, p, purchase.New); err != nil {
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
