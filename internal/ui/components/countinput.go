package components

import (
	"errors"
	"fmt"
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcqdrill/internal/ui/theme"
)

// ErrNotANumber is returned by CountInput.Count for input that does not parse.
var ErrNotANumber = errors.New("enter a number of questions")

// CountInput is a digits-only field for a question count. An empty field
// means "keep the default", which is shown as the placeholder.
type CountInput struct {
	Model textinput.Model
	Max   int

	rejected bool
}

// NewCountInput creates a focused input showing def as its placeholder.
func NewCountInput(def, limit int) CountInput {
	ti := textinput.New()
	ti.Placeholder = strconv.Itoa(def)
	ti.CharLimit = len(strconv.Itoa(limit)) + 1
	ti.SetWidth(ti.CharLimit + 1)
	ti.Focus()
	return CountInput{Model: ti, Max: limit}
}

func (c CountInput) Init() tea.Cmd {
	return c.Model.Focus()
}

// Update forwards editing keys to the text field. Printable non-digits are dropped.
func (c CountInput) Update(msg tea.Msg) (CountInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return c, nil
		}
		c.rejected = false
	}

	var cmd tea.Cmd
	c.Model, cmd = c.Model.Update(msg)
	return c, cmd
}

// Count returns the typed count. set is false when the field is empty.
func (c CountInput) Count() (n int, set bool, err error) {
	v := c.Model.Value()
	if v == "" {
		return 0, false, nil
	}
	n, err = strconv.Atoi(v)
	if err != nil {
		return 0, false, ErrNotANumber
	}
	return n, true, nil
}

// Reject marks the current value as refused until the next edit.
func (c *CountInput) Reject() {
	c.rejected = true
}

func (c CountInput) View() string {
	view := c.Model.View()
	if c.Max > 0 {
		view += lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(" / %d", c.Max))
	}
	if c.rejected {
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
	return view
}
