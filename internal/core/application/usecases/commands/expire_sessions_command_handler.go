package commands

import (
	"context"
	"time"

	"intake/internal/core/ports"
)

// ExpireSessionsCommandHandler drops idle sessions so abandoned tabs do not keep
// memory forever. It is run periodically by the session expiry job.
type ExpireSessionsCommandHandler struct {
	repo ports.SessionRepository
	now  func() time.Time
}

// NewExpireSessionsCommandHandler creates the handler. A nil clock uses time.Now.
func NewExpireSessionsCommandHandler(repo ports.SessionRepository, now func() time.Time) ExpireSessionsCommandHandler {
	if now == nil {
		now = time.Now
	}
	return ExpireSessionsCommandHandler{repo: repo, now: now}
}

// Handle returns the number of removed sessions.
func (h ExpireSessionsCommandHandler) Handle(ctx context.Context, cmd ExpireSessionsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	return h.repo.DeleteIdleSince(ctx, h.now().Add(-cmd.IdleFor()))
}
