package commands

import (
	"errors"

	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/audit"
	"github.com/NotMikev/awesome-pizza-manager/internal/pkg/guard"
)

var ErrLogAPICallCommandIsNotConstructed = errors.New(
	"LogAPICallCommand must be created via NewLogAPICallCommand constructor",
)

// LogAPICallCommand carries one completed audit record to be appended to the
// audit log.
type LogAPICallCommand struct { //nolint:recvcheck //using for validation
	record *audit.Record

	guard guard.ConstructorGuard
}

// NewLogAPICallCommand creates a command to append the given audit record.
// Validates the record.
func NewLogAPICallCommand(record *audit.Record) (LogAPICallCommand, error) {
	cmd := LogAPICallCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRecord(record); err != nil {
		return LogAPICallCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LogAPICallCommand) Validate() error {
	return c.guard.Validate(ErrLogAPICallCommandIsNotConstructed)
}

// Record returns the audit record to append.
func (c LogAPICallCommand) Record() *audit.Record {
	return c.record
}

func (c *LogAPICallCommand) setRecord(record *audit.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	c.record = record
	return nil
}
