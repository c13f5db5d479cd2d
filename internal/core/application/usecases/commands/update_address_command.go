package commands

import (
	"errors"
	"fmt"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/order"
	"intake/internal/pkg/errs"
	"intake/internal/pkg/guard"
)

var ErrUpdateAddressCommandIsNotConstructed = errors.New(
	"UpdateAddressCommand must be created via NewUpdateAddressCommand constructor",
)

// AddressTarget selects which address of the order a command edits.
type AddressTarget int

const (
	PickupAddress AddressTarget = iota + 1
	DeliveryAddress
)

func (t AddressTarget) String() string {
	switch t {
	case PickupAddress:
		return "pickup"
	case DeliveryAddress:
		return "delivery"
	}
	return "unknown"
}

// UpdateAddressCommand sets one or more fields of the pickup or delivery address.
// Fields absent from the map keep their value; an empty string clears a field.
//
// Example:
//
//	cmd, err := NewUpdateAddressCommand(sessionID, PickupAddress, map[order.AddressField]string{
//	    order.Street:     "12 Rue des Lilas",
//	    order.PostalCode: "69003",
//	})
type UpdateAddressCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	target    AddressTarget
	fields    map[order.AddressField]string

	guard guard.ConstructorGuard
}

func NewUpdateAddressCommand(
	sessionID kernel.UUID,
	target AddressTarget,
	fields map[order.AddressField]string,
) (UpdateAddressCommand, error) {
	cmd := UpdateAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setTarget(target),
		cmd.setFields(fields),
	); err != nil {
		return UpdateAddressCommand{}, err
	}

	return cmd, nil
}

func (c UpdateAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAddressCommandIsNotConstructed)
}

func (c UpdateAddressCommand) SessionID() kernel.UUID { return c.sessionID }
func (c UpdateAddressCommand) Target() AddressTarget  { return c.target }

// Value returns the new value of field and whether the command sets it.
func (c UpdateAddressCommand) Value(field order.AddressField) (string, bool) {
	value, ok := c.fields[field]
	return value, ok
}

func (c *UpdateAddressCommand) setSessionID(sessionID kernel.UUID) error {
	if err := validateSessionID(sessionID); err != nil {
		return err
	}
	c.sessionID = sessionID
	return nil
}

func (c *UpdateAddressCommand) setTarget(target AddressTarget) error {
	if target != PickupAddress && target != DeliveryAddress {
		return errs.NewValueIsInvalidErrorWithCause("address target", fmt.Errorf("%d is not an address target", target))
	}
	c.target = target
	return nil
}

func (c *UpdateAddressCommand) setFields(fields map[order.AddressField]string) error {
	if len(fields) == 0 {
		return ErrNothingToUpdate
	}
	copied := make(map[order.AddressField]string, len(fields))
	for field, value := range fields {
		if err := field.Validate(); err != nil {
			return err
		}
		copied[field] = value
	}
	c.fields = copied
	return nil
}
