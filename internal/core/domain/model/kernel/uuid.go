package kernel

import (
	"fmt"

	"intake/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not initialized through one of the
// constructor functions. It is returned when validating a zero-value (nil) UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UUID must be created via NewUUID, UUIDFromString, UUIDFromBytes or UUIDFromGoogle")

// UUID is the identifier value object used for wizard sessions.
// It wraps github.com/google/uuid so the rest of the domain never depends on
// the library directly.
//
// The zero value is invalid; use NewUUID, UUIDFromString, UUIDFromBytes or UUIDFromGoogle.
//
// Example:
//
//	sessionID := kernel.NewUUID()
//	parsed, err := kernel.UUIDFromString(sessionID.String())
//	if err != nil {
//	    return fmt.Errorf("invalid session ID: %w", err)
//	}
//	fmt.Println(parsed.IsEqual(sessionID)) // true
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) UUID.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its textual form. The hyphenated, braced,
// urn-prefixed and hyphen-less forms accepted by uuid.Parse are all supported.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from exactly 16 bytes. The nil UUID is rejected
// with ErrUUIDIsNotConstructed.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUIDFromGoogle(id)
}

// UUIDFromGoogle adopts an already parsed uuid.UUID, typically a path parameter
// decoded by the HTTP layer. The nil UUID is rejected with ErrUUIDIsNotConstructed.
func UUIDFromGoogle(id uuid.UUID) (UUID, error) {
	newID := UUID{id: id}
	if err := newID.Validate(); err != nil {
		return UUID{}, err
	}
	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID value.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both UUIDs hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero value.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
