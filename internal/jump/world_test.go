package jump

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorld() *World {
	return NewWorld(rand.New(rand.NewPCG(7, 11)))
}

func TestNewWorld_Layout(t *testing.T) {
	w := newTestWorld()
	require.Len(t, w.Platforms, PlatformCount)
	for i, pl := range w.Platforms {
		assert.Equal(t, Height-float64(i)*PlatformGap, pl.Y)
		assert.GreaterOrEqual(t, pl.X, 0.0)
		assert.LessOrEqual(t, pl.X, Width-PlatformWidth)
	}
	assert.Equal(t, Player{X: Width / 2, Y: Height / 2}, w.Player)
}

func TestStep_Gravity(t *testing.T) {
	w := newTestWorld()
	w.Platforms = nil
	w.Step()
	assert.Equal(t, Gravity, w.Player.VY)
	assert.Equal(t, Height/2+Gravity, w.Player.Y)
}

func TestStep_BounceScores(t *testing.T) {
	w := newTestWorld()
	w.Player = Player{X: 100, Y: 400 - PlayerHeight - 1, VY: 1}
	w.Platforms = []Platform{{X: 90, Y: 400}}
	w.Step()
	assert.Equal(t, JumpVelocity, w.Player.VY)
	assert.Equal(t, BouncePoints, w.Score())
}

func TestStep_NoBounceWhileRising(t *testing.T) {
	w := newTestWorld()
	w.Player = Player{X: 100, Y: 400 - PlayerHeight + 2, VY: -5}
	w.Platforms = []Platform{{X: 90, Y: 400}}
	w.Step()
	assert.Equal(t, 0, w.Score())
}

func TestStep_Wrap(t *testing.T) {
	w := newTestWorld()
	w.Platforms = nil
	w.Player.X = -PlayerWidth - 1
	w.Step()
	assert.Equal(t, Width, w.Player.X)

	w.Player.X = Width + 1
	w.Step()
	assert.Equal(t, -PlayerWidth, w.Player.X)
}

func TestStep_ScrollKeepsPlatformCount(t *testing.T) {
	w := newTestWorld()
	w.Player = Player{X: 0, Y: Height/3 - 50, VY: -10}
	w.Step()
	assert.Equal(t, Height/3, w.Player.Y)
	assert.Len(t, w.Platforms, PlatformCount)
	for _, pl := range w.Platforms {
		assert.Less(t, pl.Y, Height)
	}
}

func TestStep_FallingOffEndsRunAndKeepsBest(t *testing.T) {
	w := newTestWorld()
	w.Platforms = nil
	w.score = 30
	for i := 0; i < 200 && !w.Over(); i++ {
		w.Step()
	}
	require.True(t, w.Over())
	assert.Equal(t, 30, w.Best())

	x := w.Player.X
	w.Left()
	assert.Equal(t, x, w.Player.X, "input ignored after game over")

	w.Restart()
	assert.False(t, w.Over())
	assert.Equal(t, 0, w.Score())
	assert.Equal(t, 30, w.Best())
}

func TestMoves(t *testing.T) {
	w := newTestWorld()
	w.Left()
	assert.Equal(t, Width/2-MoveStep, w.Player.X)
	w.Right()
	w.Right()
	assert.Equal(t, Width/2+MoveStep, w.Player.X)
}
