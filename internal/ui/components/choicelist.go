package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcqdrill/internal/ui/theme"
)

var choiceLabels = []string{"A", "B", "C", "D"}

// ChoiceList renders a question's answer choices with a movable cursor.
// It holds no answer state; the caller marks the outcome with Reveal.
type ChoiceList struct {
	Options []string
	Cursor  int

	revealed bool
	chosen   string
	correct  string
}

// NewChoiceList creates a choice list with the cursor on the first option.
func NewChoiceList(options []string) ChoiceList {
	return ChoiceList{Options: options}
}

// Update moves the cursor on up/down. Other keys are ignored.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.revealed {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	}
	return c, nil
}

// Current returns the option under the cursor.
func (c ChoiceList) Current() string {
	if c.Cursor < 0 || c.Cursor >= len(c.Options) {
		return ""
	}
	return c.Options[c.Cursor]
}

// Reveal marks the chosen option and, when known, the correct one.
func (c *ChoiceList) Reveal(chosen, correct string) {
	c.revealed = true
	c.chosen = chosen
	c.correct = correct
}

// View renders the options, one per line.
func (c ChoiceList) View() string {
	var b strings.Builder
	for i, opt := range c.Options {
		label := fmt.Sprint(i + 1)
		if i < len(choiceLabels) {
			label = choiceLabels[i]
		}
		prefix := "  "
		if i == c.Cursor && !c.revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s.  %s", prefix, i+1, label, opt)

		var style lipgloss.Style
		switch {
		case c.revealed && c.correct != "" && opt == c.correct:
			style = theme.Correct
		case c.revealed && opt == c.chosen:
			style = theme.Incorrect
		case c.revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == c.Cursor:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
