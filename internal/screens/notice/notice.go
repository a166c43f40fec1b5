package notice

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcqdrill/internal/screen"
	"github.com/abhisek/mcqdrill/internal/ui/components"
	"github.com/abhisek/mcqdrill/internal/ui/theme"
)

// NoticeScreen shows a fixed message, e.g. for a feature that is turned off.
type NoticeScreen struct {
	title   string
	message string
}

var _ screen.Screen = (*NoticeScreen)(nil)

// New creates a new NoticeScreen with the given title and message.
func New(title, message string) *NoticeScreen {
	return &NoticeScreen{title: title, message: message}
}

func (n *NoticeScreen) Init() tea.Cmd {
	return nil
}

func (n *NoticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return n, nil
}

func (n *NoticeScreen) View(width, height int) string {
	card := components.ArcadeCard(
		lipgloss.NewStyle().Foreground(theme.Text).Render(n.message),
		components.ContentWidth(width),
	)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (n *NoticeScreen) Title() string {
	return n.title
}
