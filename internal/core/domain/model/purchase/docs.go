// Package purchase provides domain entities and business logic for the pizza
// order lifecycle. It implements the Purchase aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Purchase: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Purchases must have a valid code and a non-blank item
//   - Status follows a strictly forward workflow: New -> InProgress -> Ready
//   - A purchase can be taken only once; Ready is terminal
//   - updatedAt is bumped on every transition and is never before createdAt
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package purchase
