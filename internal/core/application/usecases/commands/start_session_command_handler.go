package commands

import (
	"context"

	"intake/internal/core/domain/model/wizard"
	"intake/internal/core/ports"
)

// StartSessionCommandHandler creates an empty session in the Form stage.
type StartSessionCommandHandler struct {
	repo      ports.SessionRepository
	estimator wizard.Estimator
}

// NewStartSessionCommandHandler creates the handler. The estimator is attached to every
// new session and keeps its route estimate up to date.
func NewStartSessionCommandHandler(
	repo ports.SessionRepository,
	estimator wizard.Estimator,
) StartSessionCommandHandler {
	return StartSessionCommandHandler{
		repo:      repo,
		estimator: estimator,
	}
}

func (h StartSessionCommandHandler) Handle(ctx context.Context, cmd StartSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	session, err := wizard.NewSession(cmd.SessionID(), h.estimator)
	if err != nil {
		return err
	}

	return h.repo.Add(ctx, session)
}
