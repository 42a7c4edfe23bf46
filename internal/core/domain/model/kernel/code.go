package kernel

import (
	"github.com/NotMikev/awesome-pizza-manager/internal/pkg/errs"

	"github.com/google/uuid"
)

// maxCodeLength bounds the external handle so it always fits the persisted column.
const maxCodeLength = 50

// ErrCodeIsNotConstructed indicates that a Code was not created through NewCode
// or CodeFromString. This error is returned when validating a zero-value Code.
var ErrCodeIsNotConstructed = errs.NewValueIsRequiredError("code must be created via NewCode or CodeFromString")

// Code is a value object representing the external handle of a purchase.
// Customers and pizzaiolos refer to orders by this code; the numeric primary
// key of the persisted row is never exposed.
//
// Codes are opaque text: freshly generated ones are UUID-backed, but a code
// received from a caller is accepted as-is (non-empty, bounded length) so that
// an unknown or mistyped code simply fails the lookup instead of the parse.
//
// Code is immutable and safe to copy.
type Code struct {
	value string
}

// NewCode generates a fresh unique code for a newly placed purchase.
func NewCode() Code {
	return Code{value: uuid.NewString()}
}

// CodeFromString creates a Code from its textual form, as received on the API
// boundary. It rejects empty codes and codes longer than the persisted column.
func CodeFromString(s string) (Code, error) {
	if s == "" {
		return Code{}, errs.NewValueIsRequiredError("code")
	}
	if len(s) > maxCodeLength {
		return Code{}, errs.NewValueIsOutOfRangeError("codeLength", len(s), 1, maxCodeLength)
	}
	return Code{value: s}, nil
}

// String returns the textual form of the code.
func (c Code) String() string {
	return c.value
}

// IsEqual compares two codes for equality.
func (c Code) IsEqual(other Code) bool {
	return c.value == other.value
}

// Validate checks that the Code was properly constructed.
// Returns ErrCodeIsNotConstructed for a zero value.
func (c Code) Validate() error {
	if c.value == "" {
		return ErrCodeIsNotConstructed
	}
	return nil
}
