package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wolfchan/internal/ui/theme"
)

// MenuItem is one selectable row.
type MenuItem struct {
	ID       string
	Label    string
	Detail   string
	Icon     string
	Disabled bool
}

// Menu is a vertical list with a cursor. Number keys jump straight to
// an item.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

// Current returns the item under the cursor.
func (m Menu) Current() (MenuItem, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Items) || m.Items[m.Selected].Disabled {
		return MenuItem{}, false
	}
	return m.Items[m.Selected], true
}

// Update moves the cursor. chosen is true when the user confirmed the
// current item with enter or a number key.
func (m Menu) Update(msg tea.Msg) (next Menu, chosen bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, false
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "enter":
		_, ok := m.Current()
		return m, ok
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			i := int(key[0] - '1')
			if i < len(m.Items) && !m.Items[i].Disabled {
				m.Selected = i
				return m, true
			}
		}
	}
	return m, false
}

// View renders the menu at the given width.
func (m Menu) View(width int) string {
	var b strings.Builder
	for i, item := range m.Items {
		label := item.Label
		if item.Icon != "" {
			label = item.Icon + "  " + label
		}
		var row string
		switch {
		case item.Disabled:
			row = theme.Locked.Render("    " + label)
		case i == m.Selected:
			row = theme.Selected.Render("  ▸ " + label)
		default:
			row = theme.Unselected.Render("    " + label)
		}
		b.WriteString(row)
		if item.Detail != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Width(max(width-6, 10)).
				PaddingLeft(6).
				Render(item.Detail))
		}
		if i < len(m.Items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
