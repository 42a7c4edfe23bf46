package commands

import (
	"errors"

	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/kernel"
	"github.com/NotMikev/awesome-pizza-manager/internal/pkg/guard"
)

var ErrMarkPurchaseReadyCommandIsNotConstructed = errors.New(
	"MarkPurchaseReadyCommand must be created via NewMarkPurchaseReadyCommand constructor",
)

// MarkPurchaseReadyCommand represents the request to finish preparation of an
// order currently in progress.
type MarkPurchaseReadyCommand struct { //nolint:recvcheck //using for validation
	code kernel.Code

	guard guard.ConstructorGuard
}

// NewMarkPurchaseReadyCommand creates a command to mark the order with the
// given code as ready. Validates the code.
func NewMarkPurchaseReadyCommand(code kernel.Code) (MarkPurchaseReadyCommand, error) {
	cmd := MarkPurchaseReadyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCode(code); err != nil {
		return MarkPurchaseReadyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPurchaseReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkPurchaseReadyCommandIsNotConstructed)
}

// Code returns the handle of the order to mark ready.
func (c MarkPurchaseReadyCommand) Code() kernel.Code {
	return c.code
}

func (c *MarkPurchaseReadyCommand) setCode(code kernel.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}

	c.code = code
	return nil
}
