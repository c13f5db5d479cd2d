package commands

import (
	"context"

	"intake/internal/core/domain/model/wizard"
	"intake/internal/core/ports"
)

// ProceedToSummaryCommandHandler runs the form validation. On failure the first
// violated rule is stored as the session form error and returned as *order.ValidationError.
type ProceedToSummaryCommandHandler struct {
	repo ports.SessionRepository
}

func NewProceedToSummaryCommandHandler(repo ports.SessionRepository) ProceedToSummaryCommandHandler {
	return ProceedToSummaryCommandHandler{repo: repo}
}

func (h ProceedToSummaryCommandHandler) Handle(ctx context.Context, cmd ProceedToSummaryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := mutateSession(ctx, h.repo, cmd.SessionID(), (*wizard.Session).ProceedToSummary)
	return err
}

type ReturnToFormCommandHandler struct {
	repo ports.SessionRepository
}

func NewReturnToFormCommandHandler(repo ports.SessionRepository) ReturnToFormCommandHandler {
	return ReturnToFormCommandHandler{repo: repo}
}

func (h ReturnToFormCommandHandler) Handle(ctx context.Context, cmd ReturnToFormCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := mutateSession(ctx, h.repo, cmd.SessionID(), (*wizard.Session).ReturnToForm)
	return err
}

type StartNewOrderCommandHandler struct {
	repo ports.SessionRepository
}

func NewStartNewOrderCommandHandler(repo ports.SessionRepository) StartNewOrderCommandHandler {
	return StartNewOrderCommandHandler{repo: repo}
}

func (h StartNewOrderCommandHandler) Handle(ctx context.Context, cmd StartNewOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := mutateSession(ctx, h.repo, cmd.SessionID(), (*wizard.Session).StartNewOrder)
	return err
}

type DiscardSessionCommandHandler struct {
	repo ports.SessionRepository
}

func NewDiscardSessionCommandHandler(repo ports.SessionRepository) DiscardSessionCommandHandler {
	return DiscardSessionCommandHandler{repo: repo}
}

func (h DiscardSessionCommandHandler) Handle(ctx context.Context, cmd DiscardSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.repo.Delete(ctx, cmd.SessionID())
}
