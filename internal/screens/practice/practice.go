package practice

import (
	"context"
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mcqdrill/internal/router"
	"github.com/abhisek/mcqdrill/internal/screen"
	"github.com/abhisek/mcqdrill/internal/screens/summary"
	"github.com/abhisek/mcqdrill/internal/session"
	"github.com/abhisek/mcqdrill/internal/store"
	"github.com/abhisek/mcqdrill/internal/ui/components"
	"github.com/abhisek/mcqdrill/internal/ui/layout"
)

// PracticeScreen drives the active mode of a shared session.
type PracticeScreen struct {
	sess     *session.Session
	recorder *store.Recorder

	choices    components.ChoiceList
	countInput components.CountInput

	// notice is a transient message for a rejected action.
	notice string
	// warning reports a failed journal write; the quiz carries on.
	warning string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen over sess. recorder may be nil.
func New(sess *session.Session, recorder *store.Recorder) *PracticeScreen {
	p := &PracticeScreen{
		sess:     sess,
		recorder: recorder,
	}
	p.resetWidgets()
	return p
}

func (p *PracticeScreen) Init() tea.Cmd {
	return p.countInput.Init()
}

func (p *PracticeScreen) Title() string {
	return p.sess.Mode().String()
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	v := p.sess.View()
	switch {
	case v.Empty:
		return []layout.KeyHint{
			{Key: "c", Description: "Category"},
			{Key: "Esc", Description: "Back"},
		}
	case v.Exam != nil && !v.Exam.Started:
		return []layout.KeyHint{
			{Key: "0-9", Description: "Questions"},
			{Key: "Enter", Description: "Start"},
			{Key: "m", Description: "Mode"},
			{Key: "c", Description: "Category"},
			{Key: "Esc", Description: "Back"},
		}
	case v.Exam != nil && v.Exam.Finished:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Review"},
			{Key: "r", Description: "Restart"},
			{Key: "Esc", Description: "Back"},
		}
	case v.Learning != nil && v.Learning.Complete:
		return []layout.KeyHint{
			{Key: "m", Description: "Mode"},
			{Key: "c", Description: "Category"},
			{Key: "Esc", Description: "Back"},
		}
	case p.checked(v):
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Back"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "1-4", Description: "Answer"},
		{Key: "Enter", Description: "Submit"},
		{Key: "m", Description: "Mode"},
		{Key: "c", Description: "Category"},
	}
	if v.Exam != nil {
		hints = append(hints, layout.KeyHint{Key: "r", Description: "Restart"})
	}
	return hints
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if p.inPreStart() {
			var cmd tea.Cmd
			p.countInput, cmd = p.countInput.Update(msg)
			return p, cmd
		}
		return p, nil
	}
	return p.handleKey(kmsg)
}

func (p *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	p.notice = ""

	switch key {
	case "m":
		return p.switchMode()
	case "c":
		return p.switchCategory()
	}

	v := p.sess.View()
	if v.Empty {
		return p, nil
	}

	switch {
	case v.Exam != nil:
		return p.handleExamKey(msg, v.Exam)
	case v.Learning != nil && v.Learning.Complete:
		return p, nil
	case p.checked(v):
		switch key {
		case "enter", "space", " ":
			return p.continueQuestion()
		}
		return p, nil
	}
	return p.handleAnswerKey(msg)
}

func (p *PracticeScreen) handleExamKey(msg tea.KeyMsg, ev *session.ExamView) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if key == "r" && ev.Started {
		return p.restartExam()
	}

	switch {
	case !ev.Started:
		if key == "enter" {
			return p.startExam()
		}
		var cmd tea.Cmd
		p.countInput, cmd = p.countInput.Update(msg)
		return p, cmd
	case ev.Finished:
		if key == "enter" {
			return p, p.pushSummary()
		}
		return p, nil
	}
	return p.handleAnswerKey(msg)
}

// handleAnswerKey handles cursor movement and answer selection while a
// question is open.
func (p *PracticeScreen) handleAnswerKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch key := msg.String(); key {
	case "enter":
		return p.submit(p.choices.Current())
	case "1", "2", "3", "4":
		i, _ := strconv.Atoi(key)
		if i > len(p.choices.Options) {
			return p, nil
		}
		p.choices.Cursor = i - 1
		return p.submit(p.choices.Current())
	}
	var cmd tea.Cmd
	p.choices, cmd = p.choices.Update(msg)
	return p, cmd
}

func (p *PracticeScreen) submit(choice string) (screen.Screen, tea.Cmd) {
	out, err := p.sess.Submit(choice)
	if err != nil {
		p.notice = err.Error()
		return p, nil
	}

	p.journalErr(p.recorder.Answer(context.Background(), store.AnswerEventData{
		Mode:          out.Mode.Slug(),
		Category:      p.sess.Category(),
		QuestionText:  out.Question.Text,
		Selected:      out.Selected,
		CorrectChoice: out.Question.CorrectChoice(),
		Correct:       out.Correct,
	}))

	if out.Mode == session.ModeExam {
		p.resetChoices()
		if out.Finished {
			return p, p.finishExam()
		}
		return p, nil
	}

	p.choices.Reveal(out.Selected, out.Question.CorrectChoice())
	return p, nil
}

func (p *PracticeScreen) continueQuestion() (screen.Screen, tea.Cmd) {
	if err := p.sess.Continue(); err != nil {
		p.notice = err.Error()
		return p, nil
	}
	p.resetChoices()

	if lv := p.sess.View().Learning; lv != nil && lv.Complete {
		p.journalErr(p.recorder.Session(context.Background(), store.ActionLearningComplete,
			session.ModeLearning.Slug(), p.sess.Category(), lv.Correct, lv.Answered))
	}
	return p, nil
}

func (p *PracticeScreen) startExam() (screen.Screen, tea.Cmd) {
	n, set, err := p.countInput.Count()
	if err != nil {
		p.countInput.Reject()
		p.notice = err.Error()
		return p, nil
	}
	if set {
		if _, err := p.sess.Configure(n); err != nil {
			p.countInput.Reject()
			p.notice = err.Error()
			return p, nil
		}
	}
	if err := p.sess.Start(); err != nil {
		p.notice = err.Error()
		return p, nil
	}
	p.resetChoices()

	ev := p.sess.View().Exam
	p.journalErr(p.recorder.Session(context.Background(), store.ActionExamStarted,
		session.ModeExam.Slug(), p.sess.Category(), 0, ev.Total))
	return p, nil
}

func (p *PracticeScreen) finishExam() tea.Cmd {
	sum, err := p.sess.Summary()
	if err != nil {
		p.notice = err.Error()
		return nil
	}
	p.journalErr(p.recorder.Session(context.Background(), store.ActionExamFinished,
		session.ModeExam.Slug(), p.sess.Category(), sum.Correct, sum.Total))
	return p.pushSummary()
}

func (p *PracticeScreen) restartExam() (screen.Screen, tea.Cmd) {
	if err := p.sess.Restart(); err != nil {
		p.notice = err.Error()
		return p, nil
	}
	p.resetWidgets()
	p.journalErr(p.recorder.Session(context.Background(), store.ActionExamRestarted,
		session.ModeExam.Slug(), p.sess.Category(), 0, 0))
	return p, p.countInput.Init()
}

func (p *PracticeScreen) pushSummary() tea.Cmd {
	sum, err := p.sess.Summary()
	if err != nil {
		return nil
	}
	scr := summary.New(sum, p.sess.Category())
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: scr}
	}
}

func (p *PracticeScreen) switchMode() (screen.Screen, tea.Cmd) {
	if err := p.sess.SetMode(p.sess.Mode().Next()); err != nil {
		p.notice = err.Error()
		return p, nil
	}
	p.resetWidgets()
	p.journalErr(p.recorder.Session(context.Background(), store.ActionModeChanged,
		p.sess.Mode().Slug(), p.sess.Category(), 0, 0))
	return p, p.countInput.Init()
}

func (p *PracticeScreen) switchCategory() (screen.Screen, tea.Cmd) {
	if err := p.sess.NextCategory(); err != nil {
		p.notice = err.Error()
		return p, nil
	}
	p.resetWidgets()
	p.journalErr(p.recorder.Session(context.Background(), store.ActionCategoryChanged,
		p.sess.Mode().Slug(), p.sess.Category(), 0, 0))
	return p, p.countInput.Init()
}

func (p *PracticeScreen) journalErr(err error) {
	if err != nil {
		p.warning = "journal: " + err.Error()
	}
}

func (p *PracticeScreen) resetWidgets() {
	p.resetChoices()
	def, limit := 0, 0
	if ev := p.sess.View().Exam; ev != nil {
		def, limit = ev.RequestedCount, ev.MaxCount
	}
	p.countInput = components.NewCountInput(def, limit)
}

func (p *PracticeScreen) resetChoices() {
	var opts []string
	v := p.sess.View()
	switch {
	case v.Learning != nil:
		opts = v.Learning.Choices
	case v.Exam != nil:
		opts = v.Exam.Choices
	case v.Random != nil:
		opts = v.Random.Choices
	}
	p.choices = components.NewChoiceList(opts)
}

func (p *PracticeScreen) inPreStart() bool {
	ev := p.sess.View().Exam
	return ev != nil && !ev.Started
}

func (p *PracticeScreen) checked(v session.View) bool {
	switch {
	case v.Learning != nil:
		return v.Learning.Checked
	case v.Random != nil:
		return v.Random.Checked
	}
	return false
}
