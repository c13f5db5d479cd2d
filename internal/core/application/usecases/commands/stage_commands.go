package commands

import (
	"errors"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/pkg/guard"
)

var (
	ErrProceedToSummaryCommandIsNotConstructed = errors.New(
		"ProceedToSummaryCommand must be created via NewProceedToSummaryCommand constructor",
	)
	ErrReturnToFormCommandIsNotConstructed = errors.New(
		"ReturnToFormCommand must be created via NewReturnToFormCommand constructor",
	)
	ErrStartNewOrderCommandIsNotConstructed = errors.New(
		"StartNewOrderCommand must be created via NewStartNewOrderCommand constructor",
	)
	ErrDiscardSessionCommandIsNotConstructed = errors.New(
		"DiscardSessionCommand must be created via NewDiscardSessionCommand constructor",
	)
)

// sessionCommand is the common shape of commands that only name a session.
type sessionCommand struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func newSessionCommand(sessionID kernel.UUID) (sessionCommand, error) {
	if err := validateSessionID(sessionID); err != nil {
		return sessionCommand{}, err
	}
	return sessionCommand{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

func (c sessionCommand) SessionID() kernel.UUID { return c.sessionID }

// ProceedToSummaryCommand validates the form and moves to the summary.
type ProceedToSummaryCommand struct{ sessionCommand }

func NewProceedToSummaryCommand(sessionID kernel.UUID) (ProceedToSummaryCommand, error) {
	base, err := newSessionCommand(sessionID)
	return ProceedToSummaryCommand{base}, err
}

func (c ProceedToSummaryCommand) Validate() error {
	return c.guard.Validate(ErrProceedToSummaryCommandIsNotConstructed)
}

// ReturnToFormCommand goes back from the summary to the form.
type ReturnToFormCommand struct{ sessionCommand }

func NewReturnToFormCommand(sessionID kernel.UUID) (ReturnToFormCommand, error) {
	base, err := newSessionCommand(sessionID)
	return ReturnToFormCommand{base}, err
}

func (c ReturnToFormCommand) Validate() error {
	return c.guard.Validate(ErrReturnToFormCommandIsNotConstructed)
}

// StartNewOrderCommand resets a confirmed session to an empty form.
type StartNewOrderCommand struct{ sessionCommand }

func NewStartNewOrderCommand(sessionID kernel.UUID) (StartNewOrderCommand, error) {
	base, err := newSessionCommand(sessionID)
	return StartNewOrderCommand{base}, err
}

func (c StartNewOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartNewOrderCommandIsNotConstructed)
}

// DiscardSessionCommand drops a session, for example when its tab is closed.
type DiscardSessionCommand struct{ sessionCommand }

func NewDiscardSessionCommand(sessionID kernel.UUID) (DiscardSessionCommand, error) {
	base, err := newSessionCommand(sessionID)
	return DiscardSessionCommand{base}, err
}

func (c DiscardSessionCommand) Validate() error {
	return c.guard.Validate(ErrDiscardSessionCommandIsNotConstructed)
}
