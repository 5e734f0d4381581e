// Package dispatch routes game triggers to a single mini-game at a time
// and returns control to the scheduler when the game ends.
package dispatch

import (
	"fmt"
	"log/slog"

	"github.com/abhisek/wolfchan/internal/games"
)

// State is the dispatcher phase.
type State int

const (
	StateIdle      State = iota // No game on screen
	StateSelecting              // Game menu shown
	StatePlaying                // One game bound
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelecting:
		return "selecting"
	case StatePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// Suspender is the scheduler side of the contract.
type Suspender interface {
	Suspend()
	Resume()
}

// Recorder receives every result a played game produces.
type Recorder interface {
	RecordGame(games.Result)
}

// Module is a running game instance.
type Module interface {
	Game() games.ID

	// Release frees any external resource the game holds. It must be
	// safe to call more than once.
	Release()
}

// Factory builds a module bound to done. The module resolves done
// exactly once.
type Factory func(done *games.Completion) (Module, error)

// Dispatcher is the idle/selecting/playing state machine.
type Dispatcher struct {
	sched    Suspender
	recorder Recorder
	logger   *slog.Logger

	factories map[games.ID]Factory
	order     []games.ID

	state  State
	active Module
	done   *games.Completion
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// New returns an idle dispatcher. recorder may be nil.
func New(sched Suspender, recorder Recorder, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		sched:     sched,
		recorder:  recorder,
		logger:    slog.New(slog.DiscardHandler),
		factories: make(map[games.ID]Factory),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Register adds or replaces a game factory.
func (d *Dispatcher) Register(id games.ID, f Factory) {
	if _, ok := d.factories[id]; !ok {
		d.order = append(d.order, id)
	}
	d.factories[id] = f
}

// State returns the current phase.
func (d *Dispatcher) State() State { return d.state }

// Active returns the bound module, or nil outside StatePlaying.
func (d *Dispatcher) Active() Module { return d.active }

// Completion returns the completion of the bound module, or nil.
func (d *Dispatcher) Completion() *games.Completion { return d.done }

// Available lists registered games in registration order.
func (d *Dispatcher) Available() []games.Info {
	out := make([]games.Info, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, games.Describe(id))
	}
	return out
}

// OnGameTrigger opens the game menu and suspends the scheduler.
func (d *Dispatcher) OnGameTrigger() error {
	if d.state != StateIdle {
		return ErrBusy
	}
	d.state = StateSelecting
	d.sched.Suspend()
	d.logger.Debug("game trigger", "games", len(d.order))
	return nil
}

// Select binds the chosen game. A factory failure leaves the menu open.
func (d *Dispatcher) Select(id games.ID) (Module, error) {
	if d.state != StateSelecting {
		return nil, ErrNotSelecting
	}
	f, ok := d.factories[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGame, id)
	}

	done := games.NewCompletion(id)
	m, err := f(done)
	if err != nil {
		d.logger.Warn("game failed to start", "game", id, "error", err)
		return nil, fmt.Errorf("start %s: %w", id, err)
	}

	d.active = m
	d.done = done
	d.state = StatePlaying
	d.logger.Info("game started", "game", id)
	return m, nil
}

// Cancel closes the menu without playing. No result is recorded.
func (d *Dispatcher) Cancel() error {
	if d.state != StateSelecting {
		return ErrNotSelecting
	}
	d.state = StateIdle
	d.sched.Resume()
	d.logger.Info("game menu dismissed")
	return nil
}

// Dismiss closes the bound game on the user's behalf and finishes it.
// If the game already completed, its own result is kept.
func (d *Dispatcher) Dismiss() (games.Result, error) {
	if d.state != StatePlaying {
		return games.Result{}, ErrNotPlaying
	}
	d.done.Dismiss()
	r, _ := d.Poll()
	return r, nil
}

// Poll collects the bound game's result if it is ready. When it returns
// true the module has been released, the result recorded and the
// scheduler resumed.
func (d *Dispatcher) Poll() (games.Result, bool) {
	if d.state != StatePlaying {
		return games.Result{}, false
	}
	r, ok := d.done.TryResult()
	if !ok {
		return games.Result{}, false
	}

	d.active.Release()
	if d.recorder != nil {
		d.recorder.RecordGame(r)
	}
	d.logger.Info("game finished", "game", r.Game, "dismissed", r.Dismissed, "scored", r.HasScore())

	d.active = nil
	d.done = nil
	d.state = StateIdle
	d.sched.Resume()
	return r, true
}
