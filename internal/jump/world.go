// Package jump is a vertical platform-jumping game with fixed-step
// physics.
package jump

import "math/rand/v2"

// World geometry and physics constants, in world units per frame.
const (
	Width          = 400.0
	Height         = 600.0
	Gravity        = 0.5
	JumpVelocity   = -12.0
	MoveStep       = 7.0
	PlatformWidth  = 80.0
	PlatformHeight = 15.0
	PlatformGap    = 100.0
	PlatformCount  = 7
	PlayerWidth    = 40.0
	PlayerHeight   = 60.0
	BouncePoints   = 10

	// landingSlack extends the landing band below a platform's top.
	landingSlack = 10.0
)

// Player is the jumper. Y grows downward.
type Player struct {
	X, Y, VY float64
}

// Platform is a landing surface with a fixed width.
type Platform struct {
	X, Y float64
}

// World is one run of the game.
type World struct {
	Player    Player
	Platforms []Platform

	score int
	best  int
	over  bool
	rng   *rand.Rand
}

// NewWorld creates and initializes a world. A nil rng uses a random seed.
func NewWorld(rng *rand.Rand) *World {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	w := &World{rng: rng}
	w.Restart()
	return w
}

// Restart begins a new run, keeping the best score.
func (w *World) Restart() {
	w.Player = Player{X: Width / 2, Y: Height / 2}
	w.Platforms = w.Platforms[:0]
	for i := 0; i < PlatformCount; i++ {
		w.Platforms = append(w.Platforms, Platform{X: w.randomX(), Y: Height - float64(i)*PlatformGap})
	}
	w.score = 0
	w.over = false
}

func (w *World) Score() int { return w.score }
func (w *World) Best() int { return w.best }
func (w *World) Over() bool { return w.over }

// Left moves the player one step left.
func (w *World) Left() {
	if !w.over {
		w.Player.X -= MoveStep
	}
}

// Right moves the player one step right.
func (w *World) Right() {
	if !w.over {
		w.Player.X += MoveStep
	}
}

// Step advances the simulation by one frame.
func (w *World) Step() {
	if w.over {
		return
	}
	p := &w.Player
	p.VY += Gravity
	p.Y += p.VY

	if p.X < -PlayerWidth {
		p.X = Width
	}
	if p.X > Width {
		p.X = -PlayerWidth
	}

	if p.VY > 0 {
		for _, pl := range w.Platforms {
			if w.lands(pl) {
				p.VY = JumpVelocity
				w.score += BouncePoints
				break
			}
		}
	}

	if top := Height / 3; p.Y < top {
		offset := top - p.Y
		p.Y = top
		kept := w.Platforms[:0]
		for _, pl := range w.Platforms {
			pl.Y += offset
			if pl.Y < Height {
				kept = append(kept, pl)
			}
		}
		w.Platforms = kept
		for len(w.Platforms) < PlatformCount {
			w.Platforms = append(w.Platforms, Platform{X: w.randomX(), Y: w.highest() - PlatformGap})
		}
	}

	if p.Y > Height {
		w.over = true
		w.best = max(w.best, w.score)
	}
}

func (w *World) lands(pl Platform) bool {
	p := w.Player
	feet := p.Y + PlayerHeight
	return p.X+PlayerWidth > pl.X &&
		p.X < pl.X+PlatformWidth &&
		feet > pl.Y &&
		feet < pl.Y+PlatformHeight+landingSlack
}

func (w *World) highest() float64 {
	y := Height
	for _, pl := range w.Platforms {
		y = min(y, pl.Y)
	}
	return y
}

func (w *World) randomX() float64 {
	return w.rng.Float64() * (Width - PlatformWidth)
}
