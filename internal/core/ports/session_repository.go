package ports

import (
	"context"
	"time"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/wizard"
)

// SessionRepository stores wizard sessions between requests.
//
// Implementations keep their own copies: callers may freely mutate what Get returns
// and must call Update to persist the change. Update uses optimistic versioning and
// fails with errs.VersionIsInvalidError when the stored session moved on since it was
// read, and with errs.ObjectNotFoundError when it no longer exists.
type SessionRepository interface {
	Add(ctx context.Context, session *wizard.Session) error

	Get(ctx context.Context, id kernel.UUID) (*wizard.Session, error)

	Update(ctx context.Context, session *wizard.Session) error

	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteIdleSince removes sessions last written before cutoff and returns how many were removed.
	DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error)
}
