package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wolfchan/internal/ui/theme"
)

// Button is a key-labelled control hint such as "[space] Start".
type Button struct {
	Key    string
	Label  string
	Active bool
}

// View renders the button.
func (b Button) View() string {
	key := lipgloss.NewStyle().Bold(true).Render("[" + b.Key + "]")
	if b.Active {
		return lipgloss.NewStyle().
			Foreground(theme.Text).
			Background(theme.Primary).
			Padding(0, 1).
			Render(key + " " + b.Label)
	}
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(key + " " + b.Label)
}

// Buttons renders a row of buttons separated by two spaces.
func Buttons(bs ...Button) string {
	views := make([]string, 0, len(bs)*2)
	for i, b := range bs {
		if i > 0 {
			views = append(views, "  ")
		}
		views = append(views, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}
