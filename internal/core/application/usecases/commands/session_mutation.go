package commands

import (
	"context"
	"errors"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/order"
	"intake/internal/core/domain/model/wizard"
	"intake/internal/core/ports"
)

// ErrNothingToUpdate is returned by update commands built without any field.
var ErrNothingToUpdate = errors.New("at least one field must be provided")

// mutateSession loads the session, applies change and stores the result.
//
// A failed validation still changes the session (the form error is recorded), so it
// is stored before the error is returned. Any other error leaves the stored session untouched.
func mutateSession(
	ctx context.Context,
	repo ports.SessionRepository,
	id kernel.UUID,
	change func(s *wizard.Session) error,
) (*wizard.Session, error) {
	session, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	changeErr := change(session)
	var validationErr *order.ValidationError
	if changeErr != nil && !errors.As(changeErr, &validationErr) {
		return nil, changeErr
	}

	if err = repo.Update(ctx, session); err != nil {
		return nil, err
	}

	return session, changeErr
}

func validateSessionID(id kernel.UUID) error {
	return id.Validate()
}
