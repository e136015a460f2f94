package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/szymonw/studylog/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with studylog styling and a focus
// flag so forms can move between several inputs.
type TextInput struct {
	Model     textinput.Model
	focused   bool
	submitted bool
	valid     bool
}

// NewTextInput creates a new styled text input.
func NewTextInput(placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{Model: ti}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return nil
}

// Update handles messages. Input is ignored while unfocused.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if !t.focused {
		return t, nil
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Focus directs keystrokes to this input.
func (t *TextInput) Focus() tea.Cmd {
	t.focused = true
	return t.Model.Focus()
}

// Blur stops the input from receiving keystrokes.
func (t *TextInput) Blur() {
	t.focused = false
	t.Model.Blur()
}

// Focused reports whether this input receives keystrokes.
func (t TextInput) Focused() bool {
	return t.focused
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input content.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
	t.Model.CursorEnd()
}

// Submit marks the input as submitted with a validation result.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}

// Reset clears the value and any submitted marker.
func (t *TextInput) Reset() {
	t.Model.Reset()
	t.submitted = false
	t.valid = false
}
