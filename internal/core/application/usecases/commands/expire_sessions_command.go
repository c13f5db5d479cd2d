package commands

import (
	"errors"
	"fmt"
	"time"

	"intake/internal/pkg/errs"
	"intake/internal/pkg/guard"
)

var ErrExpireSessionsCommandIsNotConstructed = errors.New(
	"ExpireSessionsCommand must be created via NewExpireSessionsCommand constructor",
)

// ExpireSessionsCommand removes sessions that were not written for longer than idleFor.
type ExpireSessionsCommand struct { //nolint:recvcheck //using for validation
	idleFor time.Duration

	guard guard.ConstructorGuard
}

func NewExpireSessionsCommand(idleFor time.Duration) (ExpireSessionsCommand, error) {
	cmd := ExpireSessionsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setIdleFor(idleFor); err != nil {
		return ExpireSessionsCommand{}, err
	}

	return cmd, nil
}

func (c ExpireSessionsCommand) Validate() error {
	return c.guard.Validate(ErrExpireSessionsCommandIsNotConstructed)
}

func (c ExpireSessionsCommand) IdleFor() time.Duration {
	return c.idleFor
}

func (c *ExpireSessionsCommand) setIdleFor(idleFor time.Duration) error {
	if idleFor <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("idleFor", fmt.Errorf("%s is not positive", idleFor))
	}
	c.idleFor = idleFor
	return nil
}
