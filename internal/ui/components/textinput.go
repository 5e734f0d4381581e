package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wolfchan/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a result mark.
type TextInput struct {
	Model  textinput.Model
	marked bool
	ok     bool
}

// NewTextInput creates a focused input.
func NewTextInput(placeholder string, limit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "♪ "
	if limit > 0 {
		ti.CharLimit = limit
	}
	ti.Focus()
	return TextInput{Model: ti}
}

// Init starts the cursor blink.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update forwards msg to the input unless it is marked.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.marked {
		return t, nil
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input with its mark.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.marked {
		if t.ok {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the typed text.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Mark freezes the input and shows a result mark.
func (t *TextInput) Mark(ok bool) {
	t.marked = true
	t.ok = ok
}

// Clear empties and unfreezes the input.
func (t *TextInput) Clear() {
	t.Model.Reset()
	t.marked = false
}
