// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries to detect instances that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// guarded value was not constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the embedding value was created by its
// constructor. The zero value reports "not constructed".
//
// Example:
//
//	type SetPickupTimeCommand struct {
//	    sessionID kernel.UUID
//	    time      string
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c SetPickupTimeCommand) Validate() error {
//	    return c.guard.Validate(ErrSetPickupTimeCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
