package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/upskill-labs/upskill/internal/ui/layout"
)

// Screen is implemented by every routable screen in the application.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface for screens that contribute
// their own footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
