package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mcqdrill/internal/router"
	"github.com/abhisek/mcqdrill/internal/screen"
	"github.com/abhisek/mcqdrill/internal/screens/home"
	"github.com/abhisek/mcqdrill/internal/screens/welcome"
	"github.com/abhisek/mcqdrill/internal/session"
	"github.com/abhisek/mcqdrill/internal/store"
	"github.com/abhisek/mcqdrill/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	// Session is the single quiz session shared by every screen.
	Session *session.Session

	// Recorder journals the run. nil disables the journal.
	Recorder *store.Recorder

	// SkipSplash starts on the home screen instead of the welcome animation.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	sess   *session.Session
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the welcome or home screen.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Session, opts.Recorder)
	}

	var initial screen.Screen
	if opts.SkipSplash {
		initial = homeFactory()
	} else {
		cat := opts.Session.Catalog()
		initial = welcome.New(homeFactory, welcome.Stats{
			Categories: len(cat.Categories()),
			Questions:  cat.Len(),
		})
	}

	return AppModel{
		router: router.New(initial),
		sess:   opts.Session,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current window size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.sess.Mode().String(), m.sess.Category(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	content := m.router.View(m.width, layout.ContentHeight(m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program. The run is journaled with a
// session_start and a session_end event carrying the answer tally.
func Run(ctx context.Context, opts Options) error {
	if opts.Session == nil {
		return fmt.Errorf("app: nil session")
	}

	rec := opts.Recorder
	if err := rec.Session(ctx, store.ActionSessionStart,
		opts.Session.Mode().Slug(), opts.Session.Category(), 0, 0); err != nil {
		fmt.Fprintln(os.Stderr, "Journal unavailable:", err)
	}

	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
	}

	if rec.Enabled() {
		answered, correct, serr := rec.Repo().AnswerStats(ctx, rec.SessionID())
		if serr == nil {
			serr = rec.Session(ctx, store.ActionSessionEnd,
				opts.Session.Mode().Slug(), opts.Session.Category(), correct, answered)
		}
		if serr != nil {
			fmt.Fprintln(os.Stderr, "Journal unavailable:", serr)
		}
	}
	return err
}
