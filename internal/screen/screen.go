// Package screen defines the contract between the router and the views
// stacked on top of the shared quiz session.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mcqdrill/internal/ui/layout"
)

// Screen is one view on the router stack. Screens read and mutate the
// session they were built with; the router only forwards messages.
type Screen interface {
	Init() tea.Cmd

	// Update handles a message the app did not consume itself.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body between the header and the footer.
	View(width, height int) string

	// Title is shown in the header. Empty hides it.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
