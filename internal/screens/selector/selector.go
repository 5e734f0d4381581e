// Package selector is the game menu shown when a game trigger fires.
package selector

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wolfchan/internal/games"
	"github.com/abhisek/wolfchan/internal/screen"
	"github.com/abhisek/wolfchan/internal/ui/components"
	"github.com/abhisek/wolfchan/internal/ui/layout"
	"github.com/abhisek/wolfchan/internal/ui/theme"
)

// SelectedMsg reports the game the user picked.
type SelectedMsg struct {
	Game games.ID
}

// Screen lists the available games.
type Screen struct {
	menu components.Menu
	err  string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a selector over the given catalog entries.
func New(available []games.Info) *Screen {
	items := make([]components.MenuItem, len(available))
	for i, g := range available {
		items[i] = components.MenuItem{ID: string(g.ID), Label: g.Name, Detail: g.Description, Icon: g.Icon}
	}
	return &Screen{menu: components.NewMenu(items)}
}

// SetError shows why the last pick could not start.
func (s *Screen) SetError(err error) {
	s.err = ""
	if err != nil {
		s.err = err.Error()
	}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Game Time" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "Esc", Description: "Skip"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var chosen bool
	s.menu, chosen = s.menu.Update(msg)
	if !chosen {
		return s, nil
	}
	item, _ := s.menu.Current()
	id := games.ID(item.ID)
	return s, func() tea.Msg { return SelectedMsg{Game: id} }
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	body := theme.Title.Render("🎮 Time for a quick game!") + "\n" +
		theme.Subtitle.Render("The timer waits while you play") + "\n\n"
	if len(s.menu.Items) == 0 {
		body += theme.Hint.Render("No games are enabled. Press esc to keep working.")
	} else {
		body += s.menu.View(cw)
	}
	if s.err != "" {
		body += "\n\n" + theme.Incorrect.Render(s.err)
	}
	return layout.Center(components.Card(body, cw), width, height)
}
