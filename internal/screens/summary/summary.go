package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcqdrill/internal/router"
	"github.com/abhisek/mcqdrill/internal/screen"
	"github.com/abhisek/mcqdrill/internal/session"
	"github.com/abhisek/mcqdrill/internal/ui/layout"
	"github.com/abhisek/mcqdrill/internal/ui/theme"
)

// SummaryScreen displays the result of a finished test.
type SummaryScreen struct {
	summary  session.ExamSummary
	category string
	offset   int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary session.ExamSummary, category string) *SummaryScreen {
	return &SummaryScreen{summary: summary, category: category}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Test Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: "Back to test"},
		{Key: "h", Description: "Home"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "h":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			if s.offset < len(s.summary.Items)-1 {
				s.offset++
			}
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Test complete!"))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Category: %s        Score: %d / %d        %.0f%%",
		s.category, sum.Correct, sum.Total, sum.Score()*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	cw := min(width-8, 70)
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(cw, 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Answers")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, item := range sum.Items[s.offset:] {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, RenderItem(item, cw)))
		b.WriteString("\n\n")
	}

	return b.String()
}

// RenderItem renders one answered question: its text, the selection, and
// for a wrong answer the correct choice with the explanation.
func RenderItem(item session.SummaryItem, width int) string {
	mark := theme.Correct.Render("✓")
	if !item.Correct {
		mark = theme.Incorrect.Render("✗")
	}

	block := lipgloss.NewStyle().Width(width)

	var lines []string
	lines = append(lines, block.Render(fmt.Sprintf("%s %d. %s", mark, item.Number, item.Question)))
	lines = append(lines, block.Foreground(theme.TextDim).Render("   Your answer: "+item.Selected))
	if !item.Correct {
		lines = append(lines, block.Foreground(theme.Success).Render("   Correct answer: "+item.CorrectChoice))
		if item.Explanation != "" {
			lines = append(lines, block.Foreground(theme.Text).Render("   "+item.Explanation))
		}
	}
	return strings.Join(lines, "\n")
}
