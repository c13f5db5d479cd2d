package wizard

import (
	"errors"
	"fmt"

	"intake/internal/pkg/errs"
)

// ErrStageTransitionIsInvalid is wrapped by StageTransitionError.
var ErrStageTransitionIsInvalid = errors.New("stage transition is invalid")

// Stage is the step of the intake wizard a session is in.
//
// State transitions:
//
//	Form ──Proceed──> Summary ──Confirm──> Confirmed
//	  ^                  │                    │
//	  └──────Back────────┘                    │
//	  └────────────────Reset──────────────────┘
type Stage int

const (
	// Unknown represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	Unknown Stage = iota

	// Form is the editing stage. Order details are mutable only here.
	Form

	// Summary shows the frozen order details for review before confirmation.
	Summary

	// Confirmed is reached once a confirmation message was produced.
	// The only way out is starting a new order.
	Confirmed
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		Unknown:   "unknown",
		Form:      "form",
		Summary:   "summary",
		Confirmed: "confirmed",
	}
}

// StageTransitionError reports a transition that the wizard does not allow from the current stage.
type StageTransitionError struct {
	From   Stage
	Action string
}

func (e *StageTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s from %s", ErrStageTransitionIsInvalid, e.Action, e.From)
}

func (e *StageTransitionError) Unwrap() error {
	return ErrStageTransitionIsInvalid
}

// Validate checks that the stage is one of Form, Summary, Confirmed.
func (s Stage) Validate() error {
	if _, ok := getStageStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// String returns the lowercase stage name, "unknown" for invalid values.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Proceed moves Form to Summary.
func (s Stage) Proceed() (Stage, error) {
	return s.transition(Form, Summary, "proceed to summary")
}

// Back moves Summary to Form.
func (s Stage) Back() (Stage, error) {
	return s.transition(Summary, Form, "return to form")
}

// Confirm moves Summary to Confirmed.
func (s Stage) Confirm() (Stage, error) {
	return s.transition(Summary, Confirmed, "confirm")
}

// Reset moves Confirmed back to Form for a new order.
func (s Stage) Reset() (Stage, error) {
	return s.transition(Confirmed, Form, "start a new order")
}

func (s Stage) transition(from, to Stage, action string) (Stage, error) {
	if s != from {
		return Unknown, &StageTransitionError{From: s, Action: action}
	}
	return to, nil
}
