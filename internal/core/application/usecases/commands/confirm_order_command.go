package commands

import (
	"errors"

	"intake/internal/core/domain/model/kernel"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand confirms the order shown on the summary.
type ConfirmOrderCommand struct{ sessionCommand }

func NewConfirmOrderCommand(sessionID kernel.UUID) (ConfirmOrderCommand, error) {
	base, err := newSessionCommand(sessionID)
	return ConfirmOrderCommand{base}, err
}

func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}
