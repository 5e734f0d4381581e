package lyric

import (
	"strings"

	"github.com/abhisek/wolfchan/internal/countdown"
)

// RevealTicks is how long the answer stays on screen after a guess.
const RevealTicks = 3

// Game runs one round per line. Guesses match the answer ignoring case
// and surrounding whitespace.
type Game struct {
	lines   []Line
	index   int
	score   int
	reveal  *countdown.Countdown
	last    bool // last guess was correct
	showing bool
	done    bool
}

// NewGame starts a game over lines. An empty list is immediately done.
func NewGame(lines []Line) *Game {
	return &Game{lines: lines, reveal: countdown.New(0), done: len(lines) == 0}
}

func (g *Game) Score() int { return g.score }
func (g *Game) Done() bool { return g.done }
func (g *Game) Round() int { return g.index }
func (g *Game) Rounds() int { return len(g.lines) }
func (g *Game) Revealing() bool { return g.showing }
func (g *Game) LastCorrect() bool { return g.last }

// Current returns the line being guessed.
func (g *Game) Current() Line {
	if len(g.lines) == 0 {
		return Line{}
	}
	return g.lines[min(g.index, len(g.lines)-1)]
}

// Match reports whether guess matches answer.
func Match(guess, answer string) bool {
	return strings.EqualFold(strings.TrimSpace(guess), strings.TrimSpace(answer))
}

// Guess submits an answer for the current line. Blank guesses and
// guesses during the reveal are ignored; ok reports whether it counted.
func (g *Game) Guess(text string) (correct, ok bool) {
	if g.done || g.showing || strings.TrimSpace(text) == "" {
		return false, false
	}
	g.last = Match(text, g.Current().Answer)
	if g.last {
		g.score++
	}
	g.showing = true
	g.reveal.Restart(RevealTicks)
	return g.last, true
}

// Tick advances the reveal pause.
func (g *Game) Tick() {
	if g.showing && g.reveal.Tick() {
		g.advance()
	}
}

// Skip ends the reveal pause early.
func (g *Game) Skip() {
	if g.showing {
		g.advance()
	}
}

func (g *Game) advance() {
	g.showing = false
	g.index++
	if g.index >= len(g.lines) {
		g.done = true
	}
}
