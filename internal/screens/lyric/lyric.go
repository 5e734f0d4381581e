// Package lyric is the finish-the-lyric game screen.
package lyric

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wolfchan/internal/games"
	"github.com/abhisek/wolfchan/internal/lyric"
	"github.com/abhisek/wolfchan/internal/screen"
	"github.com/abhisek/wolfchan/internal/ui/components"
	"github.com/abhisek/wolfchan/internal/ui/layout"
	"github.com/abhisek/wolfchan/internal/ui/theme"
)

type tickMsg struct{ owner *Screen }

// Screen runs one lyric game.
type Screen struct {
	done     *games.Completion
	interval time.Duration

	genres components.Menu
	genre  string
	game   *lyric.Game
	input  components.TextInput
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a lyric screen.
func New(done *games.Completion) *Screen {
	items := make([]components.MenuItem, len(lyric.Genres))
	for i, g := range lyric.Genres {
		items[i] = components.MenuItem{ID: g, Label: g}
	}
	return &Screen{
		done:     done,
		interval: time.Second,
		genres:   components.NewMenu(items),
		input:    components.NewTextInput("Type the missing words...", 60),
	}
}

func (s *Screen) Game() games.ID { return games.Lyric }

// Release has nothing to free; lyrics are text only.
func (s *Screen) Release() {}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Finish the Lyric" }

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.game == nil {
		return []layout.KeyHint{{Key: "↑↓", Description: "Genre"}, {Key: "Enter", Description: "Start"}, {Key: "Esc", Description: "Skip game"}}
	}
	if s.game.Revealing() {
		return []layout.KeyHint{{Key: "Enter", Description: "Next"}, {Key: "Esc", Description: "Quit"}}
	}
	return []layout.KeyHint{{Key: "Enter", Description: "Submit"}, {Key: "Esc", Description: "Quit"}}
}

func (s *Screen) tick() tea.Cmd {
	return tea.Tick(s.interval, func(time.Time) tea.Msg { return tickMsg{owner: s} })
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.owner != s || s.game == nil {
			return s, nil
		}
		s.game.Tick()
		s.afterRound()
		if s.game.Done() {
			return s, nil
		}
		return s, s.tick()

	case tea.KeyMsg:
		if s.game == nil {
			var chosen bool
			s.genres, chosen = s.genres.Update(msg)
			if !chosen {
				return s, nil
			}
			item, _ := s.genres.Current()
			s.genre = item.ID
			s.game = lyric.NewGame(lyric.Lines(s.genre))
			return s, tea.Batch(s.input.Init(), s.tick())
		}
		if msg.String() == "enter" {
			if s.game.Revealing() {
				s.game.Skip()
				s.afterRound()
				return s, nil
			}
			if correct, ok := s.game.Guess(s.input.Value()); ok {
				s.input.Mark(correct)
			}
			return s, nil
		}
	}

	if s.game != nil && !s.game.Revealing() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// afterRound clears the input for the next line or finishes the game.
func (s *Screen) afterRound() {
	if s.game.Done() {
		s.done.Complete(games.Score(s.game.Score()))
		return
	}
	if !s.game.Revealing() {
		s.input.Clear()
	}
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if s.game == nil {
		body := theme.Subtitle.Render("Choose a genre") + "\n\n" + s.genres.View(cw)
		return layout.Center(components.Card(body, cw), width, height)
	}

	line := s.game.Current()
	var b strings.Builder
	fmt.Fprintf(&b, "%s  ·  Round %d of %d  ·  Score %d\n\n",
		s.genre, min(s.game.Round()+1, s.game.Rounds()), s.game.Rounds(), s.game.Score())
	b.WriteString(theme.Hint.Render(line.Song))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Width(cw - 6).Render(line.Prompt))
	b.WriteString("\n\n")
	b.WriteString(s.input.View())

	if s.game.Revealing() {
		b.WriteString("\n\n")
		if s.game.LastCorrect() {
			b.WriteString(theme.Correct.Render("Correct! You got the lyrics right!"))
		} else {
			b.WriteString(theme.Incorrect.Render(fmt.Sprintf("Not quite... the answer was %q", line.Answer)))
		}
	}
	return layout.Center(components.Card(b.String(), cw), width, height)
}
