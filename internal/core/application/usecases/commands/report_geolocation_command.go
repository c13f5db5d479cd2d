package commands

import (
	"errors"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/wizard"
	"intake/internal/pkg/guard"
)

var (
	ErrReportGeolocationCommandIsNotConstructed = errors.New(
		"ReportGeolocationCommand must be created via a NewReportGeolocation constructor",
	)
	ErrGeolocationOutcomeIsInvalid = errors.New("geolocation outcome must be either a position or a failure")
)

// ReportGeolocationCommand carries the result of the browser geolocation request:
// either a position or the reason it failed.
type ReportGeolocationCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	position  kernel.Coordinates
	failure   wizard.GeolocationFailure

	guard guard.ConstructorGuard
}

// NewReportGeolocationPositionCommand reports a successful position fix.
func NewReportGeolocationPositionCommand(
	sessionID kernel.UUID,
	position kernel.Coordinates,
) (ReportGeolocationCommand, error) {
	cmd := ReportGeolocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		position.Validate(),
	); err != nil {
		return ReportGeolocationCommand{}, err
	}
	cmd.position = position

	return cmd, nil
}

// NewReportGeolocationFailureCommand reports a failed position request.
func NewReportGeolocationFailureCommand(
	sessionID kernel.UUID,
	failure wizard.GeolocationFailure,
) (ReportGeolocationCommand, error) {
	cmd := ReportGeolocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		failure.Validate(),
	); err != nil {
		return ReportGeolocationCommand{}, err
	}
	cmd.failure = failure

	return cmd, nil
}

func (c ReportGeolocationCommand) Validate() error {
	if err := c.guard.Validate(ErrReportGeolocationCommandIsNotConstructed); err != nil {
		return err
	}
	if (c.position.Validate() == nil) == (c.failure != wizard.UnknownGeolocationFailure) {
		return ErrGeolocationOutcomeIsInvalid
	}
	return nil
}

func (c ReportGeolocationCommand) SessionID() kernel.UUID { return c.sessionID }

// Position returns the reported position and whether the request succeeded.
func (c ReportGeolocationCommand) Position() (kernel.Coordinates, bool) {
	return c.position, c.position.Validate() == nil
}

// Failure returns the failure reason, wizard.UnknownGeolocationFailure on success.
func (c ReportGeolocationCommand) Failure() wizard.GeolocationFailure { return c.failure }

func (c *ReportGeolocationCommand) setSessionID(sessionID kernel.UUID) error {
	if err := validateSessionID(sessionID); err != nil {
		return err
	}
	c.sessionID = sessionID
	return nil
}
