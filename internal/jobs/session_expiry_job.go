package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"intake/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SessionExpiryJob removes wizard sessions that stayed idle for longer than the TTL.
type SessionExpiryJob struct {
	handler  commands.ExpireSessionsCommandHandler
	schedule string
	ttl      time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionExpiryJob creates the job. schedule is a cron spec or descriptor such as "@every 1m".
func NewSessionExpiryJob(
	handler commands.ExpireSessionsCommandHandler,
	schedule string,
	ttl time.Duration,
	logger *slog.Logger,
) *SessionExpiryJob {
	return &SessionExpiryJob{
		handler:  handler,
		schedule: schedule,
		ttl:      ttl,
		cron:     cron.New(),
		logger:   logger.With("component", "session_expiry_job"),
	}
}

// Start registers the sweep under the configured schedule and starts the scheduler.
func (j *SessionExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("Session expiry job started", "schedule", j.schedule, "ttl", j.ttl)
	return nil
}

// Run performs a single sweep and returns the number of removed sessions.
func (j *SessionExpiryJob) Run(ctx context.Context) int {
	cmd, err := commands.NewExpireSessionsCommand(j.ttl)
	if err != nil {
		j.logger.ErrorContext(ctx, "Session expiry job misconfigured", "error", err)
		return 0
	}

	removed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Session expiry job failed", "error", err)
		return 0
	}
	if removed > 0 {
		j.logger.InfoContext(ctx, "Expired idle sessions", "count", removed)
	}
	return removed
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *SessionExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Session expiry job stopped")
}
