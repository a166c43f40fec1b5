package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestChoiceList_CursorBounds(t *testing.T) {
	c := NewChoiceList([]string{"a", "b", "c"})

	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if c.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0 after up at top", c.Cursor)
	}
	for i := 0; i < 5; i++ {
		c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if c.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2 after moving past bottom", c.Cursor)
	}
	if c.Current() != "c" {
		t.Errorf("Current() = %q, want c", c.Current())
	}
}

func TestChoiceList_RevealFreezesCursor(t *testing.T) {
	c := NewChoiceList([]string{"a", "b"})
	c.Reveal("b", "a")

	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if c.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0 once revealed", c.Cursor)
	}
	if !strings.Contains(c.View(), "2) B.  b") {
		t.Errorf("View() missing labelled option:\n%s", c.View())
	}
}

func TestMenu_WrapsAndRunsAction(t *testing.T) {
	ran := ""
	item := func(label string) MenuItem {
		return MenuItem{Label: label, Action: func() tea.Cmd {
			ran = label
			return nil
		}}
	}
	m := NewMenu([]MenuItem{item("LEARNING"), item("TEST-EXAM"), item("QUIT")})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 2 {
		t.Errorf("Selected = %d, want 2 after up at the top", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 0 {
		t.Errorf("Selected = %d, want 0 after down at the bottom", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if ran != "TEST-EXAM" {
		t.Errorf("ran %q, want TEST-EXAM", ran)
	}
	if !strings.Contains(m.View(), "▸ TEST-EXAM") {
		t.Errorf("View() should mark the selected item:\n%s", m.View())
	}
	if got := strings.Join(m.Labels(), ","); got != "LEARNING,TEST-EXAM,QUIT" {
		t.Errorf("Labels() = %s", got)
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		done, total int
		want        float64
	}{
		{0, 0, 0},
		{1, 4, 0.25},
		{6, 4, 1},
		{-1, 4, 0},
	}
	for _, tt := range tests {
		p := NewProgressBar(tt.done, tt.total, 30)
		if got := p.Fraction(); got != tt.want {
			t.Errorf("Fraction(%d/%d) = %v, want %v", tt.done, tt.total, got, tt.want)
		}
	}
	if !strings.Contains(NewProgressBar(2, 5, 30).View(), "2/5") {
		t.Error("View() should show the counter")
	}
}

func TestCountInput(t *testing.T) {
	c := NewCountInput(5, 12)
	if _, set, err := c.Count(); set || err != nil {
		t.Errorf("empty Count() = set %v, err %v; want unset", set, err)
	}
	if !strings.Contains(c.View(), "/ 12") {
		t.Errorf("View() should show the maximum:\n%s", c.View())
	}

	c, _ = c.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if c.Model.Value() != "" {
		t.Errorf("Value() = %q, want empty after non-digit", c.Model.Value())
	}
	c, _ = c.Update(tea.KeyPressMsg{Code: '7', Text: "7"})
	n, set, err := c.Count()
	if err != nil || !set || n != 7 {
		t.Errorf("Count() = %d, %v, %v; want 7, true, nil", n, set, err)
	}

	c.Reject()
	if !strings.Contains(c.View(), "✗") {
		t.Error("rejected input should be marked")
	}
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	if strings.Contains(c.View(), "✗") {
		t.Error("editing should clear the rejection")
	}
}

func TestArcadeButton_MarksSelection(t *testing.T) {
	if !strings.Contains(ArcadeButton("START TEST", true, 18), "▸ START TEST") {
		t.Error("selected button should carry the marker")
	}
	if strings.Contains(ArcadeButton("QUIT", false, 18), "▸") {
		t.Error("unselected button should not carry the marker")
	}
}

func TestContentWidth_Clamps(t *testing.T) {
	tests := []struct {
		frame, want int
	}{
		{10, 20},
		{50, 44},
		{200, 66},
	}
	for _, tt := range tests {
		if got := ContentWidth(tt.frame); got != tt.want {
			t.Errorf("ContentWidth(%d) = %d, want %d", tt.frame, got, tt.want)
		}
	}
}
