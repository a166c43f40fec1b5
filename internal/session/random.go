package session

import (
	"fmt"

	"github.com/abhisek/mcqdrill/internal/catalog"
)

// RandomSession cycles through the working set forever in its shuffled
// order. It has no completion state.
type RandomSession struct {
	questions []catalog.Question
	index     int

	pendingAnswer string
	feedback      *Feedback
	checked       bool

	answered int
	correct  int
}

func newRandomSession(ws []catalog.Question) *RandomSession {
	return &RandomSession{questions: ws}
}

func (r *RandomSession) Mode() Mode     { return ModeRandom }
func (r *RandomSession) isModeSession() {}

// Current returns the question on display.
func (r *RandomSession) Current() (catalog.Question, error) {
	if len(r.questions) == 0 {
		return catalog.Question{}, ErrNoQuestions
	}
	return r.questions[r.index], nil
}

// Submit checks choice against the current question.
func (r *RandomSession) Submit(choice string) (Feedback, error) {
	if r.checked {
		return Feedback{}, reject(ModeRandom, ActionSubmit, "answer already checked, continue first")
	}
	q, err := r.Current()
	if err != nil {
		return Feedback{}, err
	}
	if !q.HasChoice(choice) {
		return Feedback{}, reject(ModeRandom, ActionSubmit, fmt.Sprintf("%q is not a choice for this question", choice))
	}

	fb := Evaluate(q, choice)
	r.pendingAnswer = choice
	r.feedback = &fb
	r.checked = true
	r.answered++
	if fb.Correct {
		r.correct++
	}
	return fb, nil
}

// Continue moves to the next question, wrapping to the start.
func (r *RandomSession) Continue() error {
	if !r.checked {
		return reject(ModeRandom, ActionContinue, "answer not checked yet")
	}
	r.index = (r.index + 1) % len(r.questions)
	r.pendingAnswer = ""
	r.feedback = nil
	r.checked = false
	return nil
}

// Index returns the position of the current question in the working set.
func (r *RandomSession) Index() int { return r.index }

// Checked reports whether the current answer has been checked.
func (r *RandomSession) Checked() bool { return r.checked }

func (r *RandomSession) view() *RandomView {
	v := &RandomView{
		Checked:  r.checked,
		Selected: r.pendingAnswer,
		Answered: r.answered,
		Correct:  r.correct,
	}
	if r.feedback != nil {
		fb := *r.feedback
		v.Feedback = &fb
	}
	if q, err := r.Current(); err == nil {
		v.Question = q.Text
		v.Choices = q.ChoiceList()
	}
	return v
}
