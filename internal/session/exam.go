package session

import (
	"fmt"
	"slices"

	"github.com/abhisek/mcqdrill/internal/catalog"
)

// ExamResult records one submitted exam answer.
type ExamResult struct {
	Question catalog.Question
	Selected string
	Correct  bool
}

// ExamSession presents a fixed number of questions drawn from the front
// of the working set and scores them at the end.
type ExamSession struct {
	// workingSet is shared with the controller and never modified here.
	workingSet []catalog.Question

	started        bool
	finished       bool
	requestedCount int

	// questions is a snapshot taken at Start.
	questions []catalog.Question
	index     int
	results   []ExamResult
}

func newExamSession(ws []catalog.Question, defaultCount int) *ExamSession {
	e := &ExamSession{workingSet: ws}
	if len(ws) > 0 {
		e.requestedCount = clamp(defaultCount, 1, len(ws))
	}
	return e
}

func (e *ExamSession) Mode() Mode     { return ModeExam }
func (e *ExamSession) isModeSession() {}

// Configure sets the number of questions for the next Start, clamped to
// [1, working set size]. It returns the effective count.
func (e *ExamSession) Configure(count int) (int, error) {
	if e.started {
		return 0, reject(ModeExam, ActionConfigure, "test already started")
	}
	if len(e.workingSet) == 0 {
		return 0, ErrNoQuestions
	}
	e.requestedCount = clamp(count, 1, len(e.workingSet))
	return e.requestedCount, nil
}

// Start snapshots the first requestedCount questions and begins the test.
func (e *ExamSession) Start() error {
	if e.started {
		return reject(ModeExam, ActionStart, "test already started")
	}
	if len(e.workingSet) == 0 || e.requestedCount == 0 {
		return ErrNoQuestions
	}

	e.questions = slices.Clone(e.workingSet[:e.requestedCount])
	e.index = 0
	e.results = nil
	e.started = true
	e.finished = false
	return nil
}

// Current returns the question being asked.
func (e *ExamSession) Current() (catalog.Question, error) {
	if !e.started || e.finished {
		return catalog.Question{}, ErrNoQuestions
	}
	return e.questions[e.index], nil
}

// SubmitAndAdvance records choice for the current question and moves on.
// Recording and advancing happen in one step; there is no checked state.
func (e *ExamSession) SubmitAndAdvance(choice string) (ExamResult, error) {
	if !e.started {
		return ExamResult{}, reject(ModeExam, ActionSubmit, "test not started")
	}
	if e.finished {
		return ExamResult{}, reject(ModeExam, ActionSubmit, "test already finished")
	}
	q := e.questions[e.index]
	if !q.HasChoice(choice) {
		return ExamResult{}, reject(ModeExam, ActionSubmit, fmt.Sprintf("%q is not a choice for this question", choice))
	}

	r := ExamResult{
		Question: q,
		Selected: choice,
		Correct:  Evaluate(q, choice).Correct,
	}
	e.results = append(e.results, r)
	e.index++
	if e.index >= len(e.questions) {
		e.finished = true
	}
	return r, nil
}

// Summary returns the scored results. Valid only once finished.
func (e *ExamSession) Summary() (ExamSummary, error) {
	if !e.finished {
		return ExamSummary{}, reject(ModeExam, ActionSummary, "test not finished")
	}
	return buildExamSummary(e.results), nil
}

// Restart returns to the pre-start state without redrawing questions.
func (e *ExamSession) Restart() error {
	if !e.started {
		return reject(ModeExam, ActionRestart, "test not started")
	}
	e.started = false
	e.finished = false
	e.questions = nil
	e.index = 0
	e.results = nil
	return nil
}

// Started reports whether the test is running or finished.
func (e *ExamSession) Started() bool { return e.started }

// Finished reports whether every drawn question has been answered.
func (e *ExamSession) Finished() bool { return e.finished }

// RequestedCount returns the number of questions the next Start draws.
func (e *ExamSession) RequestedCount() int { return e.requestedCount }

// Questions returns a copy of the drawn questions.
func (e *ExamSession) Questions() []catalog.Question {
	return slices.Clone(e.questions)
}

// Results returns a copy of the recorded results in submission order.
func (e *ExamSession) Results() []ExamResult {
	return slices.Clone(e.results)
}

func (e *ExamSession) view() *ExamView {
	v := &ExamView{
		Started:        e.started,
		Finished:       e.finished,
		RequestedCount: e.requestedCount,
		MaxCount:       len(e.workingSet),
		Index:          e.index,
		Total:          len(e.questions),
	}
	if q, err := e.Current(); err == nil {
		v.Question = q.Text
		v.Choices = q.ChoiceList()
	}
	if e.finished {
		sum := buildExamSummary(e.results)
		v.Summary = &sum
	}
	return v
}

// ExamSummary is the scored outcome of a finished test.
type ExamSummary struct {
	Correct int
	Total   int
	Items   []SummaryItem
}

// SummaryItem describes one answered exam question.
type SummaryItem struct {
	Number        int
	Question      string
	Selected      string
	CorrectChoice string
	Explanation   string
	Correct       bool
}

// Score returns the fraction of correct answers (0 for an empty summary).
func (s ExamSummary) Score() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

func buildExamSummary(results []ExamResult) ExamSummary {
	sum := ExamSummary{Total: len(results)}
	for i, r := range results {
		if r.Correct {
			sum.Correct++
		}
		sum.Items = append(sum.Items, SummaryItem{
			Number:        i + 1,
			Question:      r.Question.Text,
			Selected:      r.Selected,
			CorrectChoice: r.Question.CorrectChoice(),
			Explanation:   r.Question.Explanation,
			Correct:       r.Correct,
		})
	}
	return sum
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
