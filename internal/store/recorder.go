package store

import "context"

// Recorder appends journal events for one run of the program. A nil
// Recorder, or one without a repo, records nothing.
type Recorder struct {
	repo      EventRepo
	sessionID string
}

// NewRecorder creates a Recorder tagging every event with sessionID.
func NewRecorder(repo EventRepo, sessionID string) *Recorder {
	return &Recorder{repo: repo, sessionID: sessionID}
}

// Enabled reports whether events are actually written.
func (r *Recorder) Enabled() bool {
	return r != nil && r.repo != nil
}

// SessionID returns the identifier of this run.
func (r *Recorder) SessionID() string {
	if r == nil {
		return ""
	}
	return r.sessionID
}

// Repo returns the underlying repository, or nil when disabled.
func (r *Recorder) Repo() EventRepo {
	if r == nil {
		return nil
	}
	return r.repo
}

// Session records a lifecycle event.
func (r *Recorder) Session(ctx context.Context, action, mode, category string, correct, total int) error {
	if !r.Enabled() {
		return nil
	}
	return r.repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: r.sessionID,
		Action:    action,
		Mode:      mode,
		Category:  category,
		Correct:   correct,
		Total:     total,
	})
}

// Answer records a submitted answer.
func (r *Recorder) Answer(ctx context.Context, data AnswerEventData) error {
	if !r.Enabled() {
		return nil
	}
	data.SessionID = r.sessionID
	return r.repo.AppendAnswerEvent(ctx, data)
}
