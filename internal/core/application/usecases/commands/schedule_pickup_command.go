package commands

import (
	"errors"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/order"
	"intake/internal/pkg/guard"
)

var ErrSchedulePickupCommandIsNotConstructed = errors.New(
	"SchedulePickupCommand must be created via NewSchedulePickupCommand constructor",
)

// SchedulePickupCommand sets the pickup date (YYYY-MM-DD) and time slot (HH:MM).
// Either part may be empty while the customer has not chosen it yet.
type SchedulePickupCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	date      string
	time      string

	guard guard.ConstructorGuard
}

func NewSchedulePickupCommand(sessionID kernel.UUID, date, time string) (SchedulePickupCommand, error) {
	cmd := SchedulePickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setTime(time),
	); err != nil {
		return SchedulePickupCommand{}, err
	}
	cmd.date = date

	return cmd, nil
}

func (c SchedulePickupCommand) Validate() error {
	return c.guard.Validate(ErrSchedulePickupCommandIsNotConstructed)
}

func (c SchedulePickupCommand) SessionID() kernel.UUID { return c.sessionID }
func (c SchedulePickupCommand) Date() string           { return c.date }
func (c SchedulePickupCommand) Time() string           { return c.time }

func (c *SchedulePickupCommand) setSessionID(sessionID kernel.UUID) error {
	if err := validateSessionID(sessionID); err != nil {
		return err
	}
	c.sessionID = sessionID
	return nil
}

func (c *SchedulePickupCommand) setTime(value string) error {
	if err := order.ValidatePickupTime(value); err != nil {
		return err
	}
	c.time = value
	return nil
}
