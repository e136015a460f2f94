package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/szymonw/studylog/internal/ui/theme"
)

// MenuItem is one row of a vertical menu. Action runs when the row is
// chosen; disabled rows render dimmed and are skipped by the cursor.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a keyboard-driven vertical menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu builds a menu with the cursor on the first enabled row.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	m.Selected = m.next(-1, 1)
	return m
}

func (m Menu) Init() tea.Cmd {
	return nil
}

// next returns the first enabled index walking from start+step in
// steps of step, or start's clamped value when none is found.
func (m Menu) next(start, step int) int {
	for i := start + step; i >= 0 && i < len(m.Items); i += step {
		if !m.Items[i].Disabled {
			return i
		}
	}
	if start < 0 {
		return 0
	}
	return start
}

// Update moves the cursor on up/down (or k/j) and fires the selected
// row's action on enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.Selected = m.next(m.Selected, -1)
	case "down", "j":
		m.Selected = m.next(m.Selected, 1)
	case "enter":
		if m.Selected < 0 || m.Selected >= len(m.Items) {
			break
		}
		if item := m.Items[m.Selected]; item.Action != nil && !item.Disabled {
			return m, item.Action()
		}
	}

	return m, nil
}

func (m Menu) View() string {
	var b strings.Builder
	dimmed := lipgloss.NewStyle().Foreground(theme.TextDim)
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			b.WriteString(dimmed.Render("    " + item.Label))
		case i == m.Selected:
			b.WriteString(theme.Selected.Render("  ▸ " + item.Label))
		default:
			b.WriteString(theme.Unselected.Render("    " + item.Label))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
