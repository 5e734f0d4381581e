// Package jump is the platform-jumping game screen.
package jump

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wolfchan/internal/games"
	"github.com/abhisek/wolfchan/internal/jump"
	"github.com/abhisek/wolfchan/internal/screen"
	"github.com/abhisek/wolfchan/internal/ui/layout"
	"github.com/abhisek/wolfchan/internal/ui/theme"
)

// Frame pacing: two physics steps per 33ms frame.
const (
	frameInterval = 33 * time.Millisecond
	stepsPerFrame = 2
)

type frameMsg struct{ owner *Screen }

// Screen runs the jump game.
type Screen struct {
	done    *games.Completion
	world   *jump.World
	started bool
	running bool // frame loop active
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a jump screen. A nil rng seeds randomly.
func New(done *games.Completion, rng *rand.Rand) *Screen {
	return &Screen{done: done, world: jump.NewWorld(rng)}
}

func (s *Screen) Game() games.ID { return games.Jump }

// Release stops the frame loop.
func (s *Screen) Release() { s.running = false }

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Sky Jump" }

func (s *Screen) KeyHints() []layout.KeyHint {
	switch {
	case !s.started:
		return []layout.KeyHint{{Key: "Space", Description: "Start"}, {Key: "Esc", Description: "Skip game"}}
	case s.world.Over():
		return []layout.KeyHint{{Key: "R", Description: "Play again"}, {Key: "Enter", Description: "Back to timer"}}
	}
	return []layout.KeyHint{{Key: "←→", Description: "Move"}, {Key: "Esc", Description: "Quit"}}
}

func (s *Screen) frame() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{owner: s} })
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if msg.owner != s || !s.running {
			return s, nil
		}
		for i := 0; i < stepsPerFrame; i++ {
			s.world.Step()
		}
		if s.world.Over() {
			s.running = false
			return s, nil
		}
		return s, s.frame()

	case tea.KeyMsg:
		switch msg.String() {
		case "space":
			if !s.started {
				s.started = true
				return s, s.startLoop()
			}
		case "left", "h", "a":
			s.world.Left()
		case "right", "l", "d":
			s.world.Right()
		case "r":
			if s.world.Over() {
				s.world.Restart()
				return s, s.startLoop()
			}
		case "enter":
			if s.world.Over() {
				s.done.Complete(games.Score(s.world.Best()))
			}
		}
	}
	return s, nil
}

func (s *Screen) startLoop() tea.Cmd {
	if s.running {
		return nil
	}
	s.running = true
	return s.frame()
}

func (s *Screen) View(width, height int) string {
	cols := min(max(width-10, 20), 50)
	rows := max(height-6, 8)

	status := fmt.Sprintf("Score %d   High score %d", s.world.Score(), s.world.Best())
	field := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(Render(s.world, cols, rows))

	var footer string
	switch {
	case !s.started:
		footer = theme.Hint.Render("Press space to start. Jump on platforms to climb!")
	case s.world.Over():
		footer = theme.Incorrect.Render("Game over!") + "  " + theme.Hint.Render("r to play again, enter to finish")
	}
	body := lipgloss.JoinVertical(lipgloss.Center, theme.Body.Render(status), field, footer)
	return layout.Center(body, width, height)
}

// Render rasterises the world onto a cols x rows character grid.
func Render(w *jump.World, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	grid := make([][]rune, rows)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", cols))
	}
	sx := float64(cols) / jump.Width
	sy := float64(rows) / jump.Height

	for _, p := range w.Platforms {
		y := int(p.Y * sy)
		if y < 0 || y >= rows {
			continue
		}
		x0 := max(int(p.X*sx), 0)
		x1 := min(int((p.X+jump.PlatformWidth)*sx), cols)
		for x := x0; x < x1; x++ {
			grid[y][x] = '▀'
		}
	}

	px := int((w.Player.X + jump.PlayerWidth/2) * sx)
	py := int((w.Player.Y + jump.PlayerHeight) * sy)
	if px >= 0 && px < cols {
		if py-1 >= 0 && py-1 < rows {
			grid[py-1][px] = '☺'
		}
		if py >= 0 && py < rows && grid[py][px] == ' ' {
			grid[py][px] = '╨'
		}
	}

	lines := make([]string, rows)
	platform := lipgloss.NewStyle().Foreground(theme.Primary)
	player := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	for y, row := range grid {
		var b strings.Builder
		for _, r := range row {
			switch r {
			case '▀':
				b.WriteString(platform.Render(string(r)))
			case '☺', '╨':
				b.WriteString(player.Render(string(r)))
			default:
				b.WriteRune(r)
			}
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
