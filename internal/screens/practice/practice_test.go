package practice

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mcqdrill/internal/catalog"
	"github.com/abhisek/mcqdrill/internal/router"
	"github.com/abhisek/mcqdrill/internal/screen"
	"github.com/abhisek/mcqdrill/internal/session"
	"github.com/abhisek/mcqdrill/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	sessionEvents []store.SessionEventData
	answerEvents  []store.AnswerEventData
	err           error
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	if m.err != nil {
		return m.err
	}
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	if m.err != nil {
		return m.err
	}
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) RecentEvents(_ context.Context, _ store.QueryOpts) ([]store.Event, error) {
	return nil, nil
}
func (m *mockEventRepo) AnswerStats(_ context.Context, _ string) (int, int, error) {
	return len(m.answerEvents), 0, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestion(text, correct, wrong string) catalog.Question {
	return catalog.Question{
		Text:         text,
		Choices:      [catalog.ChoiceCount]string{correct, wrong, wrong + "?", wrong + "!"},
		CorrectIndex: 0,
		Explanation:  "because " + correct,
	}
}

func testPracticeScreen(t *testing.T) (*PracticeScreen, *mockEventRepo) {
	t.Helper()
	cat, err := catalog.New(
		[]string{"Networking", "Storage"},
		map[string][]catalog.Question{
			"Networking": {testQuestion("port?", "443", "80"), testQuestion("layer?", "Network", "Physical")},
			"Storage":    {testQuestion("mirror?", "RAID 1", "RAID 0")},
		},
	)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	// nil shuffler keeps catalog order for predictable tests.
	sess, err := session.New(cat, session.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	repo := &mockEventRepo{}
	return New(sess, store.NewRecorder(repo, "test-run")), repo
}

func send(p *PracticeScreen, msgs ...tea.Msg) (*PracticeScreen, tea.Cmd) {
	var scr screen.Screen = p
	var cmd tea.Cmd
	for _, m := range msgs {
		scr, cmd = scr.Update(m)
	}
	return scr.(*PracticeScreen), cmd
}

func TestPracticeScreen_Title(t *testing.T) {
	p, _ := testPracticeScreen(t)
	if p.Title() != "Learning" {
		t.Errorf("Title = %q, want Learning", p.Title())
	}
}

func TestPracticeScreen_LearningNumberKeySubmits(t *testing.T) {
	p, repo := testPracticeScreen(t)

	p, _ = send(p, keyPress('2'))

	lv := p.sess.View().Learning
	if !lv.Checked {
		t.Fatal("expected question to be checked after pressing 2")
	}
	if lv.Feedback == nil || lv.Feedback.Correct {
		t.Errorf("Feedback = %+v, want incorrect", lv.Feedback)
	}
	if len(repo.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(repo.answerEvents))
	}
	ev := repo.answerEvents[0]
	if ev.SessionID != "test-run" || ev.Selected != "80" || ev.CorrectChoice != "443" || ev.Correct {
		t.Errorf("answer event = %+v", ev)
	}

	view := p.View(100, 30)
	if !strings.Contains(view, "Incorrect. because 443") {
		t.Errorf("view missing feedback:\n%s", view)
	}
}

func TestPracticeScreen_LearningRequeueFlow(t *testing.T) {
	p, _ := testPracticeScreen(t)

	// Wrong on the first question, then continue: it moves to the back.
	p, _ = send(p, keyPress('2'), specialKey(tea.KeyEnter))
	lv := p.sess.View().Learning
	if lv.Question != "layer?" {
		t.Errorf("Question = %q, want layer?", lv.Question)
	}
	if lv.Remaining != 3 {
		t.Errorf("Remaining = %d, want 3", lv.Remaining)
	}

	// Arrow down then back up, Enter submits the first choice (correct).
	p, _ = send(p, specialKey(tea.KeyDown), specialKey(tea.KeyUp), specialKey(tea.KeyEnter))
	if fb := p.sess.View().Learning.Feedback; fb == nil || !fb.Correct {
		t.Errorf("Feedback = %+v, want correct", fb)
	}
}

func TestPracticeScreen_CheckedQuestionIgnoresDigits(t *testing.T) {
	p, repo := testPracticeScreen(t)

	p, _ = send(p, keyPress('1'))
	// A checked question ignores digit keys rather than re-submitting.
	p, _ = send(p, keyPress('2'))
	if len(repo.answerEvents) != 1 {
		t.Errorf("answer events = %d, want 1", len(repo.answerEvents))
	}
}

func TestPracticeScreen_ModeSwitchResets(t *testing.T) {
	p, repo := testPracticeScreen(t)
	p, _ = send(p, keyPress('1'))

	p, _ = send(p, keyPress('m'))
	if p.sess.Mode() != session.ModeExam {
		t.Fatalf("Mode = %v, want Test-Exam", p.sess.Mode())
	}
	if p.Title() != "Test-Exam" {
		t.Errorf("Title = %q, want Test-Exam", p.Title())
	}

	p, _ = send(p, keyPress('m'), keyPress('m'))
	if lv := p.sess.View().Learning; lv == nil || lv.Checked || lv.Answered != 0 {
		t.Errorf("learning view = %+v, want fresh session", lv)
	}

	if len(repo.sessionEvents) != 3 {
		t.Fatalf("session events = %d, want 3", len(repo.sessionEvents))
	}
	if repo.sessionEvents[0].Action != store.ActionModeChanged {
		t.Errorf("Action = %q, want %q", repo.sessionEvents[0].Action, store.ActionModeChanged)
	}
}

func TestPracticeScreen_CategorySwitch(t *testing.T) {
	p, _ := testPracticeScreen(t)

	p, _ = send(p, keyPress('c'))
	if p.sess.Category() != "Networking" {
		t.Errorf("Category = %q, want Networking", p.sess.Category())
	}
	p, _ = send(p, keyPress('c'))
	if p.sess.Category() != "Storage" {
		t.Errorf("Category = %q, want Storage", p.sess.Category())
	}
}

func TestPracticeScreen_ExamFlow(t *testing.T) {
	p, repo := testPracticeScreen(t)
	p, _ = send(p, keyPress('m'))

	// Type a count of 2 and start.
	p, _ = send(p, keyPress('2'), specialKey(tea.KeyEnter))
	ev := p.sess.View().Exam
	if !ev.Started || ev.Total != 2 {
		t.Fatalf("exam view = %+v, want started with 2 questions", ev)
	}

	// Answer: first correct, second wrong. The last answer finishes.
	p, _ = send(p, keyPress('1'))
	if p.sess.View().Exam.Index != 1 {
		t.Errorf("Index = %d, want 1", p.sess.View().Exam.Index)
	}
	p, cmd := send(p, keyPress('2'))
	if cmd == nil {
		t.Fatal("expected summary push after final answer")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if push.Screen.Title() != "Test Summary" {
		t.Errorf("pushed %q, want Test Summary", push.Screen.Title())
	}

	sum, err := p.sess.Summary()
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.Correct != 1 || sum.Total != 2 {
		t.Errorf("score = %d/%d, want 1/2", sum.Correct, sum.Total)
	}

	var actions []string
	for _, e := range repo.sessionEvents {
		actions = append(actions, e.Action)
	}
	want := []string{store.ActionModeChanged, store.ActionExamStarted, store.ActionExamFinished}
	if strings.Join(actions, ",") != strings.Join(want, ",") {
		t.Errorf("actions = %v, want %v", actions, want)
	}
	if last := repo.sessionEvents[2]; last.Correct != 1 || last.Total != 2 {
		t.Errorf("exam_finished score = %d/%d, want 1/2", last.Correct, last.Total)
	}

	// Restart returns to the pre-start screen.
	p, _ = send(p, keyPress('r'))
	if ev := p.sess.View().Exam; ev.Started || ev.RequestedCount != 2 {
		t.Errorf("exam view after restart = %+v, want pre-start with count 2", ev)
	}
}

func TestPracticeScreen_ExamCountIsClamped(t *testing.T) {
	p, _ := testPracticeScreen(t)
	p, _ = send(p, keyPress('m'), keyPress('9'), specialKey(tea.KeyEnter))

	if ev := p.sess.View().Exam; ev.Total != 3 {
		t.Errorf("Total = %d, want 3 (clamped to working set)", ev.Total)
	}
}

func TestPracticeScreen_JournalFailureIsWarning(t *testing.T) {
	p, repo := testPracticeScreen(t)
	repo.err = errors.New("disk full")

	p, _ = send(p, keyPress('1'))
	if !p.sess.View().Learning.Checked {
		t.Error("quiz should continue when the journal fails")
	}
	if !strings.Contains(p.View(100, 30), "journal: disk full") {
		t.Error("expected journal warning in view")
	}
}

func TestPracticeScreen_WithoutRecorder(t *testing.T) {
	p, _ := testPracticeScreen(t)
	p.recorder = nil

	p, _ = send(p, keyPress('1'), specialKey(tea.KeyEnter))
	if p.warning != "" {
		t.Errorf("warning = %q, want none", p.warning)
	}
}

func TestPracticeScreen_LearningCompletion(t *testing.T) {
	p, repo := testPracticeScreen(t)
	p, _ = send(p, keyPress('c'), keyPress('c')) // Storage: one question

	p, _ = send(p, keyPress('1'), specialKey(tea.KeyEnter))
	if !p.sess.View().Learning.Complete {
		t.Fatal("expected learning session to be complete")
	}
	last := repo.sessionEvents[len(repo.sessionEvents)-1]
	if last.Action != store.ActionLearningComplete {
		t.Errorf("Action = %q, want %q", last.Action, store.ActionLearningComplete)
	}
	if !strings.Contains(p.View(100, 30), "All questions answered correctly!") {
		t.Error("expected completion message")
	}
}

func TestPracticeScreen_KeyHints(t *testing.T) {
	p, _ := testPracticeScreen(t)
	if len(p.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
	p, _ = send(p, keyPress('1'))
	if hints := p.KeyHints(); hints[0].Description != "Continue" {
		t.Errorf("KeyHints()[0] = %+v, want Continue", hints[0])
	}
}
