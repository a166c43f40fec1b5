package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mcqdrill/internal/router"
	"github.com/abhisek/mcqdrill/internal/screen"
	"github.com/abhisek/mcqdrill/internal/screens/journal"
	"github.com/abhisek/mcqdrill/internal/screens/notice"
	"github.com/abhisek/mcqdrill/internal/screens/practice"
	"github.com/abhisek/mcqdrill/internal/session"
	"github.com/abhisek/mcqdrill/internal/store"
	"github.com/abhisek/mcqdrill/internal/ui/components"
	"github.com/abhisek/mcqdrill/internal/ui/layout"
)

// HomeScreen is the main menu: pick a category, then a mode.
type HomeScreen struct {
	sess     *session.Session
	recorder *store.Recorder

	menu components.Menu

	// warning reports a failed journal write.
	warning string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen over sess. recorder may be nil.
func New(sess *session.Session, recorder *store.Recorder) *HomeScreen {
	h := &HomeScreen{
		sess:     sess,
		recorder: recorder,
	}

	var items []components.MenuItem
	for _, m := range session.Modes() {
		items = append(items, components.MenuItem{
			Label:  strings.ToUpper(m.String()),
			Action: func() tea.Cmd { return h.startMode(m) },
		})
	}
	items = append(items,
		components.MenuItem{Label: "JOURNAL", Action: h.openJournal},
		components.MenuItem{Label: "QUIT", Action: func() tea.Cmd { return tea.Quit }},
	)
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→", Description: "Category"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "left", "h":
			h.cycleCategory(-1)
			return h, nil
		case "right", "l":
			h.cycleCategory(1)
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) cycleCategory(step int) {
	choices := h.sess.Catalog().Choices()
	i := 0
	for j, c := range choices {
		if c == h.sess.Category() {
			i = j
			break
		}
	}
	next := choices[(i+step+len(choices))%len(choices)]
	if err := h.sess.SetCategory(next); err != nil {
		h.warning = err.Error()
		return
	}
	h.record(store.ActionCategoryChanged)
}

func (h *HomeScreen) startMode(m session.Mode) tea.Cmd {
	changed := h.sess.Mode() != m
	if err := h.sess.SetMode(m); err != nil {
		h.warning = err.Error()
		return nil
	}
	if changed {
		h.record(store.ActionModeChanged)
	}
	scr := practice.New(h.sess, h.recorder)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: scr}
	}
}

func (h *HomeScreen) openJournal() tea.Cmd {
	var scr screen.Screen
	if h.recorder.Enabled() {
		scr = journal.New(h.recorder.Repo(), store.QueryOpts{})
	} else {
		scr = notice.New("Journal", "The journal is turned off.\n\nRun without --no-journal to record your answers.")
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: scr}
	}
}

func (h *HomeScreen) record(action string) {
	err := h.recorder.Session(context.Background(), action,
		h.sess.Mode().Slug(), h.sess.Category(), 0, 0)
	if err != nil {
		h.warning = "journal: " + err.Error()
	}
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactWidth(width) || layout.IsCompactHeight(height)

	cw := components.ContentWidth(width)
	cat := h.sess.Catalog()

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderStatsBar(
		cat.Count(h.sess.Category()), len(cat.Categories()), h.sess.Mode().String(), cw, compact))
	sections = append(sections, renderCategoryPicker(h.sess.Category(), cw))

	if compact {
		sections = append(sections, renderArcadeMenuCompact(h.menu.Labels(), h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(h.menu.Labels(), h.menu.Selected, cw))
	}
	if h.warning != "" {
		sections = append(sections, renderWarning(h.warning, cw))
	}

	content := strings.Join(sections, "\n\n")
	return components.CabinetFrame(content, width, height)
}
