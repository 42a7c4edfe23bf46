package commands

import (
	"context"
	"errors"
	"time"

	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/purchase"
	"github.com/NotMikev/awesome-pizza-manager/internal/pkg/errs"
)

// ErrNoPendingPurchases is returned when the pending queue holds no purchase
// in NEW status. Unwraps to errs.ErrObjectNotFound.
var ErrNoPendingPurchases = errs.NewObjectNotFoundError("purchase", "no purchase in NEW status found")

// errLostClaimRace marks a conditional status write that touched zero rows
// because a concurrent caller claimed the same purchase first.
var errLostClaimRace = errors.New("purchase was claimed concurrently")

// takeNextMaxAttempts bounds candidate re-selection after lost claim races.
const takeNextMaxAttempts = 3

// TakeNextPurchaseCommandHandler dequeues the oldest pending order.
//
// The selection is FIFO over NEW purchases: earliest createdAt wins, ties break
// by insertion order, so repeated calls under no new arrivals drain the queue
// in creation order. The status write is conditioned on the purchase still
// being NEW; a caller that loses the race re-selects a candidate a bounded
// number of times before giving up with ErrNoPendingPurchases. No two
// concurrent callers can ever take the same purchase.
//
// Example:
//
//	handler := commands.NewTakeNextPurchaseCommandHandler(uowFactory)
//	taken, err := handler.Handle(ctx, commands.NewTakeNextPurchaseCommand())
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // queue is empty
//	}
type TakeNextPurchaseCommandHandler struct {
	uowFactory PurchaseUoWFactory
}

// NewTakeNextPurchaseCommandHandler creates a handler for queue dequeue operations.
func NewTakeNextPurchaseCommandHandler(uowFactory PurchaseUoWFactory) TakeNextPurchaseCommandHandler {
	return TakeNextPurchaseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle claims the oldest NEW purchase and transitions it to IN_PROGRESS.
// Returns ErrNoPendingPurchases when the queue is empty or every candidate
// was lost to concurrent callers.
func (h TakeNextPurchaseCommandHandler) Handle(ctx context.Context, cmd TakeNextPurchaseCommand) (*purchase.Purchase, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < takeNextMaxAttempts; attempt++ {
		p, err := h.takeOldest(ctx)
		if errors.Is(err, errLostClaimRace) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return p, nil
	}

	return nil, ErrNoPendingPurchases
}

func (h TakeNextPurchaseCommandHandler) takeOldest(ctx context.Context) (*purchase.Purchase, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PurchaseRepository()

	p, err := repo.GetOldestInStatus(ctx, purchase.New)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrNoPendingPurchases
	}
	if err != nil {
		return nil, err
	}

	if err = p.Take(time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, p, purchase.New); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errLostClaimRace
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
