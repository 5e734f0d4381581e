package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wolfchan/internal/ui/theme"
)

// ContentWidth is the inner width used for cards in a frame of the given
// width.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 64)
}

// Card wraps content in a rounded border at width cw.
func Card(content string, cw int) string {
	return theme.Card.
		Width(cw).
		Align(lipgloss.Center).
		Render(content)
}

// TitledCard is a Card with a bold heading line.
func TitledCard(title, content string, cw int) string {
	return Card(theme.Title.Render(title)+"\n\n"+content, cw)
}
