package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/szymonw/studylog/internal/ui/theme"
)

// MultiSelect is a checkbox list for picking any number of options.
type MultiSelect struct {
	Options []string
	Checked map[int]bool
	Cursor  int
	focused bool
}

// NewMultiSelect creates a multi-select over the given options.
func NewMultiSelect(options []string) MultiSelect {
	return MultiSelect{
		Options: options,
		Checked: make(map[int]bool),
	}
}

// Init returns nil.
func (m MultiSelect) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and toggling. Input is ignored
// while unfocused.
func (m MultiSelect) Update(msg tea.Msg) (MultiSelect, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "space", " ", "x":
		m.Checked[m.Cursor] = !m.Checked[m.Cursor]
	}

	return m, nil
}

// View renders the checkbox list.
func (m MultiSelect) View() string {
	var s string
	for i, opt := range m.Options {
		box := "[ ]"
		if m.Checked[i] {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s", box, opt)

		switch {
		case m.focused && i == m.Cursor:
			s += theme.Selected.Render("  ▸ "+line) + "\n"
		case m.Checked[i]:
			s += lipgloss.NewStyle().Foreground(theme.Success).Render("    "+line) + "\n"
		default:
			s += theme.Unselected.Render("    "+line) + "\n"
		}
	}
	return s
}

// Focus directs keystrokes to this component.
func (m *MultiSelect) Focus() {
	m.focused = true
}

// Blur stops the component from receiving keystrokes.
func (m *MultiSelect) Blur() {
	m.focused = false
}

// Focused reports whether this component receives keystrokes.
func (m MultiSelect) Focused() bool {
	return m.focused
}

// Values returns the checked option labels in display order.
func (m MultiSelect) Values() []string {
	var out []string
	for i, opt := range m.Options {
		if m.Checked[i] {
			out = append(out, opt)
		}
	}
	return out
}

// Clear unchecks everything and resets the cursor.
func (m *MultiSelect) Clear() {
	m.Checked = make(map[int]bool)
	m.Cursor = 0
}
