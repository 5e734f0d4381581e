package components

import (
	"math/rand/v2"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wolfchan/internal/ui/theme"
)

// Confetti burst parameters.
const (
	ConfettiPieces = 50
	ConfettiFrames = 40
)

var confettiGlyphs = []string{"*", "•", "✦", "▪", "+"}

type piece struct {
	x, y   float64 // fractions of the area
	vy     float64
	delay  int
	colour int
	glyph  int
}

// Confetti is a falling-pieces animation stepped once per frame.
type Confetti struct {
	pieces []piece
	frame  int
}

// NewConfetti creates a burst. A nil rng uses the global source.
func NewConfetti(rng *rand.Rand) *Confetti {
	f := rand.Float64
	n := rand.IntN
	if rng != nil {
		f, n = rng.Float64, rng.IntN
	}
	c := &Confetti{pieces: make([]piece, ConfettiPieces)}
	for i := range c.pieces {
		c.pieces[i] = piece{
			x:      f(),
			y:      -f() * 0.3,
			vy:     1 / float64(ConfettiFrames/2+n(ConfettiFrames/2)),
			delay:  n(ConfettiFrames / 8),
			colour: n(len(theme.Confetti)),
			glyph:  n(len(confettiGlyphs)),
		}
	}
	return c
}

// Step advances one frame.
func (c *Confetti) Step() {
	c.frame++
	for i := range c.pieces {
		if c.frame > c.pieces[i].delay {
			c.pieces[i].y += c.pieces[i].vy
		}
	}
}

// Done reports whether the burst has finished.
func (c *Confetti) Done() bool {
	return c.frame >= ConfettiFrames
}

// View draws visible pieces onto a width x height grid.
func (c *Confetti) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	grid := make([][]string, height)
	for y := range grid {
		grid[y] = make([]string, width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}
	for _, p := range c.pieces {
		if p.y < 0 || p.y >= 1 {
			continue
		}
		x := min(int(p.x*float64(width)), width-1)
		y := int(p.y * float64(height))
		grid[y][x] = lipgloss.NewStyle().
			Foreground(theme.Confetti[p.colour]).
			Render(confettiGlyphs[p.glyph])
	}
	rows := make([]string, height)
	for y, row := range grid {
		rows[y] = strings.Join(row, "")
	}
	return strings.Join(rows, "\n")
}
