package purchase

import (
	"fmt"

	"github.com/NotMikev/awesome-pizza-manager/internal/pkg/errs"
)

// Status represents the lifecycle state of a purchase.
// It implements a strictly forward-moving state machine:
//
//	New ──> InProgress ──> Ready
//
// No transition ever skips a state or moves backward. Ready is terminal.
//
// Status is a value object that validates state transitions and provides
// the wire representation used by the API and by persistence.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status when a purchase is first placed.
	// Purchases in this status form the pending queue.
	New

	// InProgress indicates a pizzaiolo has taken the purchase and is preparing it.
	InProgress

	// Ready indicates the purchase is ready for pickup.
	// This is a final state with no further transitions allowed.
	Ready
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		New:        "NEW",
		InProgress: "IN_PROGRESS",
		Ready:      "READY",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:        "NEW",
		InProgress: "IN_PROGRESS",
		Ready:      "READY",
	}
}

// StatusFromString parses the wire representation of a status.
// Returns an error for any text that is not NEW, IN_PROGRESS or READY.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: New, InProgress, Ready.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status: "NEW", "IN_PROGRESS"
// or "READY" for valid statuses and "UNKNOWN" for anything else.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Take transitions the status to InProgress.
//
// Valid transitions:
//   - New -> InProgress (a pizzaiolo claims the purchase)
//
// Invalid transitions:
//   - InProgress -> InProgress (already claimed)
//   - Ready -> InProgress (preparation already finished)
//   - Unknown -> InProgress (invalid initial state)
//
// Returns:
//   - (InProgress, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Take() (Status, error) {
	if s != New {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to take", s.String()),
		)
	}

	return InProgress, nil
}

// MarkReady transitions the status to Ready.
//
// Valid transitions:
//   - InProgress -> Ready (preparation finished)
//
// Invalid transitions:
//   - New -> Ready (must be taken first)
//   - Ready -> Ready (already ready)
//   - Unknown -> Ready (invalid initial state)
//
// Returns:
//   - (Ready, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) MarkReady() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to mark ready", s.String()),
		)
	}

	return Ready, nil
}
