// Package wizard models the order intake wizard of one browser tab.
//
// A Session walks through three stages:
//
//	Form -> Summary -> Confirmed -> (new order) Form
//
// While in Form the customer edits the order details field by field and the session
// keeps a simulated route estimate in sync with the addresses and the parcel weight.
// Leaving the form runs the validation rules of package order; from then on the details
// are frozen. Confirmation is split into Begin, Fail and Complete steps so that the
// slow work (message generation, notifications) can run outside the session while
// the session still rejects a second concurrent confirmation.
package wizard
