package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mcqdrill/internal/catalog"
	"github.com/abhisek/mcqdrill/internal/router"
	"github.com/abhisek/mcqdrill/internal/session"
	"github.com/abhisek/mcqdrill/internal/store"
)

type mockEventRepo struct {
	sessionEvents []store.SessionEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendAnswerEvent(context.Context, store.AnswerEventData) error { return nil }
func (m *mockEventRepo) RecentEvents(context.Context, store.QueryOpts) ([]store.Event, error) {
	return nil, nil
}
func (m *mockEventRepo) AnswerStats(context.Context, string) (int, int, error) { return 0, 0, nil }

func question(text string) catalog.Question {
	return catalog.Question{
		Text:    text,
		Choices: [catalog.ChoiceCount]string{"a", "b", "c", "d"},
	}
}

func testHome(t *testing.T, recorder *store.Recorder) *HomeScreen {
	t.Helper()
	cat, err := catalog.New(
		[]string{"Networking", "Storage"},
		map[string][]catalog.Question{
			"Networking": {question("n1"), question("n2")},
			"Storage":    {question("s1")},
		},
	)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	sess, err := session.New(cat, session.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	return New(sess, recorder)
}

func TestHomeScreen_MenuLabels(t *testing.T) {
	h := testHome(t, nil)
	want := []string{"LEARNING", "TEST-EXAM", "RANDOM", "JOURNAL", "QUIT"}
	if got := h.menu.Labels(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("menu labels = %v, want %v", got, want)
	}
}

func TestHomeScreen_CycleCategory(t *testing.T) {
	repo := &mockEventRepo{}
	h := testHome(t, store.NewRecorder(repo, "run"))

	h.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if h.sess.Category() != "Networking" {
		t.Errorf("Category = %q, want Networking", h.sess.Category())
	}
	h.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	h.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if h.sess.Category() != "Storage" {
		t.Errorf("Category = %q, want Storage (wrapped)", h.sess.Category())
	}
	if len(repo.sessionEvents) != 3 {
		t.Errorf("session events = %d, want 3", len(repo.sessionEvents))
	}
}

func TestHomeScreen_SelectModePushesPractice(t *testing.T) {
	repo := &mockEventRepo{}
	h := testHome(t, store.NewRecorder(repo, "run"))

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if push.Screen.Title() != "Test-Exam" {
		t.Errorf("pushed %q, want Test-Exam", push.Screen.Title())
	}
	if h.sess.Mode() != session.ModeExam {
		t.Errorf("Mode = %v, want Test-Exam", h.sess.Mode())
	}
	if len(repo.sessionEvents) != 1 || repo.sessionEvents[0].Action != store.ActionModeChanged {
		t.Errorf("session events = %+v, want one mode_changed", repo.sessionEvents)
	}
}

func TestHomeScreen_SameModeKeepsProgress(t *testing.T) {
	repo := &mockEventRepo{}
	h := testHome(t, store.NewRecorder(repo, "run"))

	if _, err := h.sess.Submit("a"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !h.sess.View().Learning.Checked {
		t.Error("re-entering the active mode should not reset it")
	}
	if len(repo.sessionEvents) != 0 {
		t.Errorf("session events = %d, want 0", len(repo.sessionEvents))
	}
}

func TestHomeScreen_JournalDisabledShowsNotice(t *testing.T) {
	h := testHome(t, nil)
	for range 3 {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if !strings.Contains(push.Screen.View(80, 20), "turned off") {
		t.Error("expected the journal-disabled notice")
	}
}

func TestHomeScreen_JournalEnabled(t *testing.T) {
	h := testHome(t, store.NewRecorder(&mockEventRepo{}, "run"))
	for range 3 {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if push.Screen.Title() != "Journal" {
		t.Errorf("pushed %q, want Journal", push.Screen.Title())
	}
}

func TestHomeScreen_ViewShowsStats(t *testing.T) {
	h := testHome(t, nil)
	view := h.View(120, 40)
	for _, want := range []string{"3 QUESTIONS", "2 CATEGORIES", "All", "LEARNING"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	compact := h.View(60, 20)
	if !strings.Contains(compact, "?3") {
		t.Error("compact view should use the short stats bar")
	}
}
