package commands

import (
	"errors"

	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/kernel"
	"github.com/NotMikev/awesome-pizza-manager/internal/pkg/guard"
)

var ErrTakePurchaseByCodeCommandIsNotConstructed = errors.New(
	"TakePurchaseByCodeCommand must be created via NewTakePurchaseByCodeCommand constructor",
)

// TakePurchaseByCodeCommand represents a pizzaiolo's request to claim a
// specific pending order instead of the oldest one.
type TakePurchaseByCodeCommand struct { //nolint:recvcheck //using for validation
	code kernel.Code

	guard guard.ConstructorGuard
}

// NewTakePurchaseByCodeCommand creates a command to claim the order with the
// given code. Validates the code.
func NewTakePurchaseByCodeCommand(code kernel.Code) (TakePurchaseByCodeCommand, error) {
	cmd := TakePurchaseByCodeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCode(code); err != nil {
		return TakePurchaseByCodeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TakePurchaseByCodeCommand) Validate() error {
	return c.guard.Validate(ErrTakePurchaseByCodeCommandIsNotConstructed)
}

// Code returns the handle of the order to claim.
func (c TakePurchaseByCodeCommand) Code() kernel.Code {
	return c.code
}

func (c *TakePurchaseByCodeCommand) setCode(code kernel.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}

	c.code = code
	return nil
}
