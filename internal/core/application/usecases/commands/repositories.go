// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/NotMikev/awesome-pizza-manager/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PurchaseRepoFactory provides access to the purchase repository within a transaction.
	PurchaseRepoFactory interface {
		PurchaseRepository() ports.PurchaseRepository
	}

	// AuditRepoFactory provides access to the audit log repository within a transaction.
	AuditRepoFactory interface {
		AuditLogRepository() ports.AuditLogRepository
	}

	// PurchaseUoW manages transactions for purchase lifecycle operations.
	PurchaseUoW interface {
		TxManager
		PurchaseRepoFactory
	}

	// PurchaseUoWFactory creates new purchase unit of work instances.
	PurchaseUoWFactory interface {
		Create() PurchaseUoW
	}

	// AuditUoW manages transactions for audit log writes.
	AuditUoW interface {
		TxManager
		AuditRepoFactory
	}

	// AuditUoWFactory creates new audit unit of work instances.
	AuditUoWFactory interface {
		Create() AuditUoW
	}
)
