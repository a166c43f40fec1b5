package journal

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcqdrill/internal/router"
	"github.com/abhisek/mcqdrill/internal/screen"
	"github.com/abhisek/mcqdrill/internal/store"
	"github.com/abhisek/mcqdrill/internal/ui/layout"
	"github.com/abhisek/mcqdrill/internal/ui/theme"
)

// DefaultLimit is the number of events listed.
const DefaultLimit = 50

type journalLoadedMsg struct {
	Events []store.Event
	Err    error
}

// JournalScreen lists recent journal events, newest first.
type JournalScreen struct {
	eventRepo store.EventRepo
	opts      store.QueryOpts

	events   []store.Event
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*JournalScreen)(nil)
var _ screen.KeyHintProvider = (*JournalScreen)(nil)

// New creates a JournalScreen. An empty opts.SessionID lists every run.
func New(eventRepo store.EventRepo, opts store.QueryOpts) *JournalScreen {
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	return &JournalScreen{
		eventRepo: eventRepo,
		opts:      opts,
		expanded:  make(map[int]bool),
	}
}

func (s *JournalScreen) Init() tea.Cmd {
	return func() tea.Msg {
		events, err := s.eventRepo.RecentEvents(context.Background(), s.opts)
		return journalLoadedMsg{Events: events, Err: err}
	}
}

func (s *JournalScreen) Title() string {
	return "Journal"
}

func (s *JournalScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *JournalScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case journalLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.events = msg.Events
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.events)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *JournalScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading journal...")
	}
	if len(s.events) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing recorded yet. Answer a question!")
	}

	var b strings.Builder
	b.WriteString("\n")

	// Keep the selection on screen; each row takes one line.
	start := 0
	if height > 4 && s.selected >= height-4 {
		start = s.selected - (height - 5)
	}

	for i := start; i < len(s.events); i++ {
		ev := s.events[i]

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %s", prefix, ev.Timestamp.Format("Jan 02 15:04"), ev.Describe())

		style := lipgloss.NewStyle().Foreground(eventColor(ev))
		if i == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(details(ev))))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func details(ev store.Event) string {
	if ev.Kind == store.KindAnswer {
		return fmt.Sprintf("    correct answer: %s   run %s", ev.CorrectChoice, shortID(ev.SessionID))
	}
	return fmt.Sprintf("    run %s   #%d", shortID(ev.SessionID), ev.Sequence)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func eventColor(ev store.Event) color.Color {
	if ev.Kind != store.KindAnswer {
		return theme.Secondary
	}
	if ev.Correct != 0 {
		return theme.Success
	}
	return theme.Error
}
