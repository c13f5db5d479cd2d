package commands

import (
	"context"
	"errors"
	"time"

	"intake/internal/core/domain/model/wizard"
	"intake/internal/core/ports"
)

// SchedulePickupCommandHandler stores the pickup date and time. The date is checked
// against today's date from the handler clock, so past days are refused.
type SchedulePickupCommandHandler struct {
	repo ports.SessionRepository
	now  func() time.Time
}

// NewSchedulePickupCommandHandler creates the handler. A nil clock uses time.Now.
func NewSchedulePickupCommandHandler(repo ports.SessionRepository, now func() time.Time) SchedulePickupCommandHandler {
	if now == nil {
		now = time.Now
	}
	return SchedulePickupCommandHandler{repo: repo, now: now}
}

func (h SchedulePickupCommandHandler) Handle(ctx context.Context, cmd SchedulePickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	today := h.now()
	_, err := mutateSession(ctx, h.repo, cmd.SessionID(), func(s *wizard.Session) error {
		return errors.Join(
			s.SetPickupDate(cmd.Date(), today),
			s.SetPickupTime(cmd.Time()),
		)
	})
	return err
}
