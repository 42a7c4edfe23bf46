package commands

import (
	"context"
)

// LogAPICallCommandHandler handles appending audit records for completed API calls.
// Each call produces exactly one record; records are never updated afterwards.
type LogAPICallCommandHandler struct {
	uowFactory AuditUoWFactory
}

// NewLogAPICallCommandHandler creates a handler for audit record persistence.
func NewLogAPICallCommandHandler(uowFactory AuditUoWFactory) LogAPICallCommandHandler {
	return LogAPICallCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle appends the audit record carried by the command.
func (h LogAPICallCommandHandler) Handle(ctx context.Context, cmd LogAPICallCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.AuditLogRepository().Add(ctx, cmd.Record()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
