package store

import (
	"context"
	"fmt"
	"time"
)

// Session actions recorded in the journal.
const (
	ActionSessionStart     = "session_start"
	ActionSessionEnd       = "session_end"
	ActionModeChanged      = "mode_changed"
	ActionCategoryChanged  = "category_changed"
	ActionExamStarted      = "exam_started"
	ActionExamFinished     = "exam_finished"
	ActionExamRestarted    = "exam_restarted"
	ActionLearningComplete = "learning_complete"
)

// Event kinds returned by RecentEvents.
const (
	KindSession = "session"
	KindAnswer  = "answer"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int    // max results (0 = unlimited)
	SessionID string // only events of this session ("" = all)
	After     int64  // sequence > After
}

// SessionEventData captures a session lifecycle event. Correct and Total
// carry the score for exam_finished and session_end.
type SessionEventData struct {
	SessionID string
	Action    string
	Mode      string
	Category  string
	Correct   int
	Total     int
}

// AnswerEventData captures a single submitted answer.
type AnswerEventData struct {
	SessionID     string
	Mode          string
	Category      string
	QuestionText  string
	Selected      string
	CorrectChoice string
	Correct       bool
}

// Event is one journal row of either kind, as listed by RecentEvents.
type Event struct {
	Sequence  int64
	Timestamp time.Time
	Kind      string
	SessionID string
	Mode      string
	Category  string

	// Session events.
	Action string
	Total  int

	// Answer events.
	QuestionText  string
	Selected      string
	CorrectChoice string

	// Correct is the answer's correctness for answer events and the
	// number of correct answers for session events.
	Correct int
}

// EventRepo provides append and query access to journal events.
type EventRepo interface {
	// AppendSessionEvent records a session lifecycle event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records a submitted answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// RecentEvents returns events of both kinds, newest first.
	RecentEvents(ctx context.Context, opts QueryOpts) ([]Event, error)

	// AnswerStats returns how many answers were recorded for a session and
	// how many of them were correct.
	AnswerStats(ctx context.Context, sessionID string) (answered, correct int, err error)
}

// Describe returns a one-line, human-readable description of the event.
func (e Event) Describe() string {
	switch e.Kind {
	case KindAnswer:
		mark := "✗"
		if e.Correct != 0 {
			mark = "✓"
		}
		return fmt.Sprintf("%s %s [%s] %q → %q", mark, e.Mode, e.Category, e.QuestionText, e.Selected)
	default:
		switch e.Action {
		case ActionExamFinished, ActionSessionEnd, ActionLearningComplete:
			return fmt.Sprintf("%s %s [%s] %d/%d", e.Action, e.Mode, e.Category, e.Correct, e.Total)
		}
		return fmt.Sprintf("%s %s [%s]", e.Action, e.Mode, e.Category)
	}
}
