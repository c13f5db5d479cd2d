package commands

import (
	"errors"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/pkg/guard"
)

var ErrStartSessionCommandIsNotConstructed = errors.New(
	"StartSessionCommand must be created via NewStartSessionCommand constructor",
)

// StartSessionCommand opens a new wizard session with the given id.
//
// Example:
//
//	sessionID := kernel.NewUUID()
//	cmd, err := NewStartSessionCommand(sessionID)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to start session: %w", err)
//	}
type StartSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewStartSessionCommand(sessionID kernel.UUID) (StartSessionCommand, error) {
	cmd := StartSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return StartSessionCommand{}, err
	}

	return cmd, nil
}

func (c StartSessionCommand) Validate() error {
	return c.guard.Validate(ErrStartSessionCommandIsNotConstructed)
}

func (c StartSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *StartSessionCommand) setSessionID(sessionID kernel.UUID) error {
	if err := validateSessionID(sessionID); err != nil {
		return err
	}
	c.sessionID = sessionID
	return nil
}
