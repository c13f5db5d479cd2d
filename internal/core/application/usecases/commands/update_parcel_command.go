package commands

import (
	"errors"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/order"
	"intake/internal/pkg/guard"
)

var ErrUpdateParcelCommandIsNotConstructed = errors.New(
	"UpdateParcelCommand must be created via NewUpdateParcelCommand constructor",
)

// UpdateParcelCommand sets parcel text fields and, optionally, the category.
// order.UnknownCategory means the category is left unchanged.
type UpdateParcelCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	fields    map[order.ParcelField]string
	category  order.Category

	guard guard.ConstructorGuard
}

func NewUpdateParcelCommand(
	sessionID kernel.UUID,
	fields map[order.ParcelField]string,
	category order.Category,
) (UpdateParcelCommand, error) {
	cmd := UpdateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setChanges(fields, category),
	); err != nil {
		return UpdateParcelCommand{}, err
	}

	return cmd, nil
}

func (c UpdateParcelCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelCommandIsNotConstructed)
}

func (c UpdateParcelCommand) SessionID() kernel.UUID { return c.sessionID }

// Category returns the new category, or order.UnknownCategory when it is not changed.
func (c UpdateParcelCommand) Category() order.Category { return c.category }

// Value returns the new value of field and whether the command sets it.
func (c UpdateParcelCommand) Value(field order.ParcelField) (string, bool) {
	value, ok := c.fields[field]
	return value, ok
}

func (c *UpdateParcelCommand) setSessionID(sessionID kernel.UUID) error {
	if err := validateSessionID(sessionID); err != nil {
		return err
	}
	c.sessionID = sessionID
	return nil
}

func (c *UpdateParcelCommand) setChanges(fields map[order.ParcelField]string, category order.Category) error {
	if len(fields) == 0 && category == order.UnknownCategory {
		return ErrNothingToUpdate
	}
	if category != order.UnknownCategory {
		if err := category.Validate(); err != nil {
			return err
		}
	}
	copied := make(map[order.ParcelField]string, len(fields))
	for field, value := range fields {
		if err := field.Validate(); err != nil {
			return err
		}
		copied[field] = value
	}
	c.fields = copied
	c.category = category
	return nil
}
