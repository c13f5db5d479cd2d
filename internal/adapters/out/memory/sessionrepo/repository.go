// Package sessionrepo keeps wizard sessions in process memory.
package sessionrepo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/wizard"
	"intake/internal/pkg/errs"
)

// Repository implements ports.SessionRepository with optimistic versioning.
// Callers always receive copies, so a session read by one request is never
// changed by another one.
type Repository struct {
	mu       sync.RWMutex
	sessions map[kernel.UUID]record
	now      func() time.Time
}

// NewRepository creates an empty repository. A nil clock defaults to time.Now.
func NewRepository(now func() time.Time) *Repository {
	if now == nil {
		now = time.Now
	}
	return &Repository{sessions: make(map[kernel.UUID]record), now: now}
}

// Add stores a new session.
func (r *Repository) Add(ctx context.Context, s *wizard.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[s.ID()]; exists {
		return errs.NewValueIsInvalidErrorWithCause("sessionId",
			fmt.Errorf("session %s already exists", s.ID()))
	}
	r.sessions[s.ID()] = toRecord(s, r.now())
	return nil
}

// Get returns a copy of the stored session.
func (r *Repository) Get(ctx context.Context, id kernel.UUID) (*wizard.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.sessions[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("sessionId", id.String())
	}
	return rec.toDomain(), nil
}

// Update replaces the stored session when s carries the stored version, then
// increments the version of s. A stale copy yields errs.VersionIsInvalidError.
func (r *Repository) Update(ctx context.Context, s *wizard.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.sessions[s.ID()]
	if !ok {
		return errs.NewObjectNotFoundError("sessionId", s.ID().String())
	}
	if stored := rec.session.Version(); stored != s.Version() {
		return errs.NewVersionIsInvalidErrorWithCause("session",
			fmt.Errorf("stored version is %d, got %d", stored, s.Version()))
	}

	s.IncrementVersion()
	r.sessions[s.ID()] = toRecord(s, r.now())
	return nil
}

// Delete removes a session. Deleting an unknown session is an ObjectNotFoundError.
func (r *Repository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return errs.NewObjectNotFoundError("sessionId", id.String())
	}
	delete(r.sessions, id)
	return nil
}

// DeleteIdleSince removes every session last written before cutoff, except those
// in the middle of a confirmation, and returns how many were removed.
func (r *Repository) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, rec := range r.sessions {
		if rec.savedAt.Before(cutoff) && !rec.session.IsConfirming() {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of stored sessions.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
