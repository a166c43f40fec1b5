package session

import (
	"errors"
	"fmt"
)

// ErrInvalidAction is wrapped by every rejected action whose precondition
// does not hold (submit while checked, continue before checking, ...).
var ErrInvalidAction = errors.New("invalid action")

// ErrNoQuestions indicates the working set is empty.
var ErrNoQuestions = errors.New("no questions available")

// Action names a user action for error reporting and journaling.
type Action string

const (
	ActionSubmit    Action = "submit"
	ActionContinue  Action = "continue"
	ActionConfigure Action = "configure"
	ActionStart     Action = "start"
	ActionRestart   Action = "restart"
	ActionSummary   Action = "summary"
)

// ActionError describes an action rejected in the current state.
type ActionError struct {
	Mode   Mode
	Action Action
	Reason string
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s: cannot %s: %s", e.Mode, e.Action, e.Reason)
}

func (e *ActionError) Unwrap() error { return ErrInvalidAction }

func reject(mode Mode, action Action, reason string) error {
	return &ActionError{Mode: mode, Action: action, Reason: reason}
}
