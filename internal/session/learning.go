package session

import (
	"fmt"
	"slices"

	"github.com/abhisek/mcqdrill/internal/catalog"
)

// LearningSession walks every question once. A question answered
// incorrectly is requeued at the end until its latest attempt is correct.
type LearningSession struct {
	// queue is a private copy of the working set; the head is always
	// the question on display.
	queue  []catalog.Question
	cursor int

	pendingAnswer string
	feedback      *Feedback
	checked       bool

	// repeatBuffer collects wrong answers until the next continue.
	repeatBuffer []catalog.Question

	total    int
	answered int
	correct  int
}

func newLearningSession(ws []catalog.Question) *LearningSession {
	return &LearningSession{
		queue: slices.Clone(ws),
		total: len(ws),
	}
}

func (l *LearningSession) Mode() Mode     { return ModeLearning }
func (l *LearningSession) isModeSession() {}

// Current returns the question on display.
func (l *LearningSession) Current() (catalog.Question, error) {
	if len(l.queue) == 0 {
		return catalog.Question{}, ErrNoQuestions
	}
	return l.queue[l.cursor], nil
}

// Submit checks choice against the current question. The queue is not
// modified until Continue.
func (l *LearningSession) Submit(choice string) (Feedback, error) {
	if l.Complete() {
		return Feedback{}, reject(ModeLearning, ActionSubmit, "learning session is complete")
	}
	if l.checked {
		return Feedback{}, reject(ModeLearning, ActionSubmit, "answer already checked, continue first")
	}
	q, err := l.Current()
	if err != nil {
		return Feedback{}, err
	}
	if !q.HasChoice(choice) {
		return Feedback{}, reject(ModeLearning, ActionSubmit, fmt.Sprintf("%q is not a choice for this question", choice))
	}

	fb := Evaluate(q, choice)
	l.pendingAnswer = choice
	l.feedback = &fb
	l.checked = true
	l.answered++
	if fb.Correct {
		l.correct++
	}
	return fb, nil
}

// Continue drops the checked question from the queue head, requeueing it
// at the end if it was answered incorrectly.
func (l *LearningSession) Continue() error {
	if !l.checked {
		return reject(ModeLearning, ActionContinue, "answer not checked yet")
	}

	q := l.queue[l.cursor]
	if l.feedback != nil && !l.feedback.Correct {
		l.repeatBuffer = append(l.repeatBuffer, q)
	}
	l.queue = slices.Delete(l.queue, l.cursor, l.cursor+1)
	l.queue = append(l.queue, l.repeatBuffer...)
	l.repeatBuffer = nil

	l.cursor = 0
	l.pendingAnswer = ""
	l.feedback = nil
	l.checked = false
	return nil
}

// Checked reports whether the current answer has been checked.
func (l *LearningSession) Checked() bool { return l.checked }

// Feedback returns the feedback for the checked answer, or nil.
func (l *LearningSession) Feedback() *Feedback { return l.feedback }

// Remaining returns the number of questions still queued.
func (l *LearningSession) Remaining() int { return len(l.queue) }

// Complete reports whether every question has been answered correctly.
// A session built from an empty working set is never complete.
func (l *LearningSession) Complete() bool {
	return l.total > 0 && len(l.queue) == 0
}

// Queue returns a copy of the queued questions, head first.
func (l *LearningSession) Queue() []catalog.Question {
	return slices.Clone(l.queue)
}

func (l *LearningSession) view() *LearningView {
	v := &LearningView{
		Remaining: len(l.queue),
		Total:     l.total,
		Complete:  l.Complete(),
		Checked:   l.checked,
		Selected:  l.pendingAnswer,
		Answered:  l.answered,
		Correct:   l.correct,
	}
	if l.feedback != nil {
		fb := *l.feedback
		v.Feedback = &fb
	}
	if q, err := l.Current(); err == nil {
		v.Question = q.Text
		v.Choices = q.ChoiceList()
	}
	return v
}
