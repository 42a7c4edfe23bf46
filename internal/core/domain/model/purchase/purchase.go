package purchase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/kernel"
	"github.com/NotMikev/awesome-pizza-manager/internal/pkg/errs"
)

var (
	// ErrPurchaseIsNotConstructed is returned when a Purchase instance was not created
	// through the NewPurchase or RestorePurchase factory methods.
	ErrPurchaseIsNotConstructed = errors.New("Purchase must be created via NewPurchase or RestorePurchase")
)

// Purchase represents a pizza order in the system. It is the aggregate root that
// manages the order lifecycle from placement through preparation to readiness.
//
// Purchase follows these invariants:
//   - Must have a valid code (the external handle)
//   - Must have a non-blank item (the pizza ordered), immutable after creation
//   - Status moves only forward: New -> InProgress -> Ready
//   - updatedAt is never before createdAt
//   - Can only be created through NewPurchase or RestorePurchase
//
// The Purchase struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Purchase struct {
	// code is the external handle of the purchase, never the storage primary key
	code kernel.Code

	// item is the pizza ordered, set once at creation
	item string

	// status is the current state in the purchase lifecycle
	status Status

	// createdAt is set once when the purchase is placed
	createdAt time.Time

	// updatedAt is bumped on every status transition
	updatedAt time.Time

	// isConstructed ensures the purchase was created via a factory method
	isConstructed bool
}

// NewPurchase creates a new Purchase in New status with validation. This is the
// way a freshly placed order enters the system.
//
// Parameters:
//   - code: freshly generated external handle (must be valid)
//   - item: the pizza ordered (must not be blank)
//   - now: placement time; createdAt and updatedAt are both set to it
//
// Returns:
//   - *Purchase: the created purchase if all validations pass
//   - error: validation error if any parameter is invalid
func NewPurchase(code kernel.Code, item string, now time.Time) (*Purchase, error) {
	p := &Purchase{
		status:        New,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setCode(code),
		p.setItem(item),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePurchase rebuilds a Purchase from its persisted state.
// Used by repositories when loading rows back into the domain; all invariants
// are re-checked so corrupted rows never become live aggregates.
func RestorePurchase(code kernel.Code, item string, status Status, createdAt, updatedAt time.Time) (*Purchase, error) {
	p := &Purchase{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setCode(code),
		p.setItem(item),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	if updatedAt.Before(createdAt) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"updatedAt is invalid",
			fmt.Errorf("%s is before createdAt %s", updatedAt, createdAt),
		)
	}

	return p, nil
}

// Validate ensures the Purchase instance was properly constructed through a factory.
// This prevents bypassing validation by directly instantiating the struct.
func (p *Purchase) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPurchaseIsNotConstructed
	}

	return nil
}

// IsEqual compares two purchases by their codes.
func (p *Purchase) IsEqual(other *Purchase) bool {
	return other != nil && p.code.IsEqual(other.code)
}

// Code returns the purchase's external handle.
func (p *Purchase) Code() kernel.Code {
	return p.code
}

// Item returns the pizza ordered.
func (p *Purchase) Item() string {
	return p.item
}

// Status returns the current status of the purchase.
func (p *Purchase) Status() Status {
	return p.status
}

// CreatedAt returns the placement time of the purchase.
func (p *Purchase) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the time of the last status transition.
func (p *Purchase) UpdatedAt() time.Time {
	return p.updatedAt
}

// Take transitions the purchase to InProgress, representing a pizzaiolo
// beginning preparation.
//
// Business rules enforced:
//   - The purchase must be in New status
//   - updatedAt is bumped to now
//
// Returns an error if the transition is not allowed from the current status.
func (p *Purchase) Take(now time.Time) error {
	newStatus, err := p.status.Take()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.updatedAt = now
	return nil
}

// MarkReady transitions the purchase to Ready, its final state.
//
// Business rules enforced:
//   - The purchase must be in InProgress status
//   - updatedAt is bumped to now
//
// Returns an error if the transition is not allowed from the current status.
func (p *Purchase) MarkReady(now time.Time) error {
	newStatus, err := p.status.MarkReady()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.updatedAt = now
	return nil
}

// setCode validates and sets the purchase's external handle.
// This is a private method used only during construction.
func (p *Purchase) setCode(code kernel.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}
	p.code = code
	return nil
}

// setItem validates and sets the pizza ordered.
// Blank items are rejected defensively; the full item constraints are enforced
// at the application boundary.
func (p *Purchase) setItem(item string) error {
	if strings.TrimSpace(item) == "" {
		return errs.NewValueIsRequiredError("item")
	}
	p.item = item
	return nil
}

// setStatus validates and sets the status during restoration.
func (p *Purchase) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}
