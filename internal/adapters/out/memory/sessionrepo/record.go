package sessionrepo

import (
	"time"

	"intake/internal/core/domain/model/wizard"
)

// record is the stored form of a session: an isolated copy plus the time it was last written.
type record struct {
	session *wizard.Session
	savedAt time.Time
}

func toRecord(s *wizard.Session, savedAt time.Time) record {
	return record{session: s.Clone(), savedAt: savedAt}
}

func (r record) toDomain() *wizard.Session {
	return r.session.Clone()
}
