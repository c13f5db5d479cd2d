// Package queries contains the read side of the wizard: the session view and the
// static form options. Query handlers return read models and never change state.
package queries
