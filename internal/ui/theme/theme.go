// Package theme holds the shared palette and text styles.
package theme

import (
	"charm.land/lipgloss/v2"
)

var (
	Primary   = lipgloss.Color("#6366F1") // Indigo: frames, selection
	Secondary = lipgloss.Color("#0EA5E9") // Sky: category, progress
	Accent    = lipgloss.Color("#F59E0B") // Amber: mode, warnings
	Success   = lipgloss.Color("#10B981") // correct answers
	Error     = lipgloss.Color("#EF4444") // wrong answers
	Text      = lipgloss.Color("#F1F5F9")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0B1120")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")

	ArcadeYellow = lipgloss.Color("#FDE047") // highlighted menu button
	ArcadeCyan   = lipgloss.Color("#67E8F9") // stats bar frame
)

var (
	Title   = lipgloss.NewStyle().Bold(true).Foreground(Primary).Align(lipgloss.Center)
	Body    = lipgloss.NewStyle().Foreground(Text)
	Hint    = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
	Warning = lipgloss.NewStyle().Foreground(Accent)
)

// Choice rows and answer feedback.
var (
	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Correct    = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect  = lipgloss.NewStyle().Foreground(Error).Bold(true)
)

var (
	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)
)
