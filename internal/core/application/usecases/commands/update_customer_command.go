package commands

import (
	"errors"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/order"
	"intake/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand sets one or more customer contact fields.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	fields    map[order.CustomerField]string

	guard guard.ConstructorGuard
}

func NewUpdateCustomerCommand(
	sessionID kernel.UUID,
	fields map[order.CustomerField]string,
) (UpdateCustomerCommand, error) {
	cmd := UpdateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setFields(fields),
	); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return cmd, nil
}

func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

func (c UpdateCustomerCommand) SessionID() kernel.UUID { return c.sessionID }

// Value returns the new value of field and whether the command sets it.
func (c UpdateCustomerCommand) Value(field order.CustomerField) (string, bool) {
	value, ok := c.fields[field]
	return value, ok
}

func (c *UpdateCustomerCommand) setSessionID(sessionID kernel.UUID) error {
	if err := validateSessionID(sessionID); err != nil {
		return err
	}
	c.sessionID = sessionID
	return nil
}

func (c *UpdateCustomerCommand) setFields(fields map[order.CustomerField]string) error {
	if len(fields) == 0 {
		return ErrNothingToUpdate
	}
	copied := make(map[order.CustomerField]string, len(fields))
	for field, value := range fields {
		if err := field.Validate(); err != nil {
			return err
		}
		copied[field] = value
	}
	c.fields = copied
	return nil
}
