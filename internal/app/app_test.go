package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mcqdrill/internal/catalog"
	"github.com/abhisek/mcqdrill/internal/router"
	"github.com/abhisek/mcqdrill/internal/session"
)

func testOptions(t *testing.T, skipSplash bool) Options {
	t.Helper()
	cat, err := catalog.New(
		[]string{"Networking"},
		map[string][]catalog.Question{
			"Networking": {{Text: "port?", Choices: [catalog.ChoiceCount]string{"443", "80", "22", "21"}}},
		},
	)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	sess, err := session.New(cat, session.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	return Options{Session: sess, SkipSplash: skipSplash}
}

func TestNewAppModel_InitialScreen(t *testing.T) {
	m := newAppModel(testOptions(t, false))
	if m.router.Active().Title() != "" {
		t.Errorf("splash title = %q, want empty welcome title", m.router.Active().Title())
	}
	if m.Init() == nil {
		t.Error("welcome screen should start its animation")
	}

	m = newAppModel(testOptions(t, true))
	if m.router.Active().Title() != "Home" {
		t.Errorf("initial title = %q, want Home", m.router.Active().Title())
	}
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := newAppModel(testOptions(t, true))
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestAppModel_EscPopsOnlyAboveRoot(t *testing.T) {
	m := newAppModel(testOptions(t, true))
	if _, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape}); cmd != nil {
		t.Error("esc on the root screen should do nothing")
	}

	// Enter on LEARNING pushes the practice screen.
	next, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = next.(AppModel)
	m.Update(cmd())
	if m.router.Depth() != 2 {
		t.Fatalf("Depth = %d, want 2", m.router.Depth())
	}

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestAppModel_ViewShowsModeAndCategory(t *testing.T) {
	m := newAppModel(testOptions(t, true))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(AppModel)

	content := m.render()
	for _, want := range []string{"mcqdrill", "Learning", "All", "Category"} {
		if !strings.Contains(content, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
