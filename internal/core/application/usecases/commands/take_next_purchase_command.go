package commands

import (
	"errors"

	"github.com/NotMikev/awesome-pizza-manager/internal/pkg/guard"
)

var ErrTakeNextPurchaseCommandIsNotConstructed = errors.New(
	"TakeNextPurchaseCommand must be created via NewTakeNextPurchaseCommand constructor",
)

// TakeNextPurchaseCommand represents a pizzaiolo's request for the next order
// in the queue. It carries no parameters; selection is always oldest-first.
type TakeNextPurchaseCommand struct {
	guard guard.ConstructorGuard
}

// NewTakeNextPurchaseCommand creates a command to claim the oldest pending order.
func NewTakeNextPurchaseCommand() TakeNextPurchaseCommand {
	return TakeNextPurchaseCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c TakeNextPurchaseCommand) Validate() error {
	return c.guard.Validate(ErrTakeNextPurchaseCommandIsNotConstructed)
}
