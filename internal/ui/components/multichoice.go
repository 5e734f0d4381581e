package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wolfchan/internal/ui/theme"
)

// MultiChoice renders four lettered options with a cursor. The owner
// decides correctness and calls Reveal.
type MultiChoice struct {
	Options  []string
	Cursor   int
	revealed bool
	chosen   int
	correct  int
}

// NewMultiChoice creates a selector over options.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{Options: options, chosen: -1, correct: -1}
}

// Update moves the cursor. It returns the chosen index when the user
// presses enter or a letter key, or -1.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, int) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || m.revealed {
		return m, -1
	}
	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "enter":
		return m, m.Cursor
	default:
		if len(key) == 1 {
			i := int(strings.ToLower(key)[0]) - 'a'
			if i >= 0 && i < len(m.Options) {
				m.Cursor = i
				return m, i
			}
		}
	}
	return m, -1
}

// Reveal colours the correct option and the user's pick. chosen may be
// -1 when time ran out.
func (m *MultiChoice) Reveal(chosen, correct int) {
	m.revealed = true
	m.chosen = chosen
	m.correct = correct
}

// View renders the options.
func (m MultiChoice) View() string {
	lines := make([]string, 0, len(m.Options))
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor && !m.revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%c)  %s", prefix, 'A'+i, opt)

		var style lipgloss.Style
		switch {
		case m.revealed && i == m.correct:
			style = theme.Correct
		case m.revealed && i == m.chosen:
			style = theme.Incorrect
		case m.revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Cursor:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		lines = append(lines, style.Render(line))
	}
	return strings.Join(lines, "\n")
}
