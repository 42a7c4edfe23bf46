package commands

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/kernel"
	"github.com/NotMikev/awesome-pizza-manager/internal/pkg/errs"
	"github.com/NotMikev/awesome-pizza-manager/internal/pkg/guard"
)

var (
	ErrCreatePurchaseCommandIsNotConstructed = errors.New(
		"CreatePurchaseCommand must be created via NewCreatePurchaseCommand constructor",
	)

	// itemPattern mirrors the public API contract: letters, digits, spaces and hyphens.
	itemPattern = regexp.MustCompile(`^[a-zA-Z0-9\s-]+$`)
)

const (
	itemMinLength = 3
	itemMaxLength = 50
)

// CreatePurchaseCommand represents a request to place a new pizza order.
// The code is generated at the boundary so the caller of Handle already
// knows the handle of the purchase being created.
//
// Example:
//
//	cmd, err := commands.NewCreatePurchaseCommand(kernel.NewCode(), "Margherita")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := commands.NewCreatePurchaseCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, cmd)
type CreatePurchaseCommand struct { //nolint:recvcheck //using for validation
	code kernel.Code
	item string

	guard guard.ConstructorGuard
}

// NewCreatePurchaseCommand creates a command to place a new pizza order.
// Validates that the code is valid and the item satisfies the API contract:
// required, 3 to 50 characters, letters/digits/spaces/hyphens only.
func NewCreatePurchaseCommand(code kernel.Code, item string) (CreatePurchaseCommand, error) {
	cmd := CreatePurchaseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCode(code),
		cmd.setItem(item),
	); err != nil {
		return CreatePurchaseCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePurchaseCommand) Validate() error {
	return c.guard.Validate(ErrCreatePurchaseCommandIsNotConstructed)
}

// Code returns the handle the new purchase will carry.
func (c CreatePurchaseCommand) Code() kernel.Code {
	return c.code
}

// Item returns the pizza ordered.
func (c CreatePurchaseCommand) Item() string {
	return c.item
}

func (c *CreatePurchaseCommand) setCode(code kernel.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}

	c.code = code
	return nil
}

func (c *CreatePurchaseCommand) setItem(item string) error {
	trimmed := strings.TrimSpace(item)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("item")
	}
	if len(trimmed) < itemMinLength || len(trimmed) > itemMaxLength {
		return errs.NewValueIsOutOfRangeError("itemLength", len(trimmed), itemMinLength, itemMaxLength)
	}
	if !itemPattern.MatchString(trimmed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"item",
			fmt.Errorf("%q may only contain letters, numbers, spaces and hyphens", trimmed),
		)
	}

	c.item = trimmed
	return nil
}
