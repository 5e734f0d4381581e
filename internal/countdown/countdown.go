// Package countdown provides the ticking seconds counter used by the
// session scheduler and the timed mini-games.
package countdown

// Countdown counts whole ticks down to zero and reports completion once.
//
// A Countdown is not safe for concurrent use; it is owned by whatever
// loop delivers its ticks.
type Countdown struct {
	remaining int
	running   bool
	done      bool
}

// New returns a paused countdown of the given number of ticks.
// Negative durations are clamped to zero.
func New(ticks int) *Countdown {
	c := &Countdown{}
	c.Reset(ticks)
	return c
}

// Remaining returns the ticks left.
func (c *Countdown) Remaining() int { return c.remaining }

// Running reports whether ticks currently decrement the counter.
func (c *Countdown) Running() bool { return c.running && !c.done }

// Done reports whether completion has already been signalled.
func (c *Countdown) Done() bool { return c.done }

// Start resumes ticking. Starting a completed countdown has no effect.
func (c *Countdown) Start() {
	if c.done {
		return
	}
	c.running = true
}

// Pause suspends ticking without losing the remaining time.
func (c *Countdown) Pause() { c.running = false }

// Toggle flips between running and paused and returns the new state.
func (c *Countdown) Toggle() bool {
	if c.Running() {
		c.Pause()
	} else {
		c.Start()
	}
	return c.Running()
}

// Reset sets a new duration, pauses, and re-arms completion.
func (c *Countdown) Reset(ticks int) {
	if ticks < 0 {
		ticks = 0
	}
	c.remaining = ticks
	c.running = false
	c.done = false
}

// Restart is Reset followed by Start.
func (c *Countdown) Restart(ticks int) {
	c.Reset(ticks)
	c.Start()
}

// Tick advances the countdown by one tick. It returns true on the single
// tick that observes zero; every later tick is a no-op until Reset.
func (c *Countdown) Tick() bool {
	if !c.running || c.done {
		return false
	}
	if c.remaining > 0 {
		c.remaining--
	}
	if c.remaining == 0 {
		c.done = true
		c.running = false
		return true
	}
	return false
}
