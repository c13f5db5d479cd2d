// Package commands contains the wizard operations that change session state.
// Every command is built through its constructor, which checks its arguments, and
// is executed by a handler that loads the session, applies the change through the
// wizard.Session methods and stores it back.
package commands
