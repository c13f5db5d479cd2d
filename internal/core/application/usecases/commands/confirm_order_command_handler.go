package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"intake/internal/core/domain/model/order"
	"intake/internal/core/domain/model/wizard"
	"intake/internal/core/ports"
)

// ErrConfirmationAborted is recorded as form error when the confirmation sequence
// stops unexpectedly.
var ErrConfirmationAborted = errors.New("la confirmation a été interrompue de manière inattendue")

// Dispatcher sends the confirmation notifications and returns the failed channels.
type Dispatcher interface {
	Dispatch(ctx context.Context, details order.OrderDetails, message string) []wizard.Channel
}

// ConfirmOrderCommandHandler runs the confirmation sequence:
//
//  1. mark the session as confirming and freeze the order details
//  2. generate the confirmation message; on failure record it and stay on the summary
//  3. send the SMS and email notifications concurrently
//  4. store the message and the notification warning and move to Confirmed
//
// The session is stored after step 1, so a concurrent confirmation of the same session
// is rejected with wizard.ErrConfirmationInProgress instead of generating twice.
//
// Example:
//
//	err := handler.Handle(ctx, cmd)
//	var generationErr *ports.GenerationError
//	if errors.As(err, &generationErr) {
//	    // session stays in Summary with the failure as form error
//	}
type ConfirmOrderCommandHandler struct {
	repo       ports.SessionRepository
	generator  ports.ConfirmationGenerator
	dispatcher Dispatcher
	logger     *slog.Logger
}

func NewConfirmOrderCommandHandler(
	repo ports.SessionRepository,
	generator ports.ConfirmationGenerator,
	dispatcher Dispatcher,
	logger *slog.Logger,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		repo:       repo,
		generator:  generator,
		dispatcher: dispatcher,
		logger:     logger.With("component", "order-confirmation"),
	}
}

func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var details order.OrderDetails
	session, err := mutateSession(ctx, h.repo, cmd.SessionID(), func(s *wizard.Session) error {
		var beginErr error
		details, beginErr = s.BeginConfirmation()
		return beginErr
	})
	if err != nil {
		return err
	}

	// The session is marked as confirming from here on. The sequence runs to completion
	// and the session is stored again even if the caller goes away.
	persistCtx := context.WithoutCancel(ctx)
	defer h.releaseOnPanic(persistCtx, session)

	message, err := h.generator.Generate(persistCtx, details)
	if err != nil {
		h.logger.ErrorContext(ctx, "confirmation message generation failed",
			"session_id", cmd.SessionID().String(),
			"error", err)
		if failErr := session.FailConfirmation(err); failErr != nil {
			return failErr
		}
		if updateErr := h.repo.Update(persistCtx, session); updateErr != nil {
			return updateErr
		}
		return err
	}

	failed := h.dispatcher.Dispatch(persistCtx, details, message)

	if err = session.CompleteConfirmation(message, failed); err != nil {
		return err
	}
	if err = h.repo.Update(persistCtx, session); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order confirmed",
		"session_id", cmd.SessionID().String(),
		"failed_notifications", len(failed))
	return nil
}

// releaseOnPanic clears the confirming flag when generation or dispatch panics, so the
// customer can retry, then lets the panic continue.
func (h ConfirmOrderCommandHandler) releaseOnPanic(ctx context.Context, session *wizard.Session) {
	r := recover()
	if r == nil {
		return
	}

	h.logger.ErrorContext(ctx, "order confirmation panicked",
		"session_id", session.ID().String(),
		"panic", fmt.Sprint(r))
	if session.IsConfirming() {
		if err := session.FailConfirmation(ErrConfirmationAborted); err == nil {
			if err = h.repo.Update(ctx, session); err != nil {
				h.logger.ErrorContext(ctx, "failed to release aborted confirmation",
					"session_id", session.ID().String(),
					"error", err)
			}
		}
	}
	panic(r)
}
