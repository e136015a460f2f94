// Package screen defines the contract between the router and the
// individual TUI screens.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/szymonw/studylog/internal/ui/layout"
)

// Screen is one view in the navigation stack. The router owns the
// outer frame; View only renders the content area.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string

	// Title labels the screen in the header bar.
	Title() string
}

// KeyHintProvider lets a screen publish its own footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
