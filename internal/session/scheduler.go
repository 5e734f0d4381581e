package session

import (
	"context"
	"time"

	"github.com/abhisek/wolfchan/internal/countdown"
)

// Mode is the phase of the pomodoro cycle.
type Mode int

const (
	ModeWork  Mode = iota // Focus interval
	ModeBreak             // Rest interval
)

// String returns the display name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeWork:
		return "Work"
	case ModeBreak:
		return "Break"
	default:
		return "Unknown"
	}
}

// EventKind identifies what a tick produced.
type EventKind int

const (
	EventGameTrigger      EventKind = iota + 1 // Elapsed work hit a multiple of the game interval
	EventPomodoroComplete                      // Work ended, break started
	EventBreakComplete                         // Break ended, work started
)

// String returns a short name for logs and the journal.
func (k EventKind) String() string {
	switch k {
	case EventGameTrigger:
		return "game_trigger"
	case EventPomodoroComplete:
		return "pomodoro_complete"
	case EventBreakComplete:
		return "break_complete"
	default:
		return "unknown"
	}
}

// Event is a signal raised by a single tick.
type Event struct {
	Kind EventKind

	// Mode is the scheduler mode after the tick was applied.
	Mode Mode

	// Elapsed is the elapsed work ticks at the moment of the event.
	Elapsed int
}

// Config holds the scheduler timings.
type Config struct {
	Work         time.Duration
	Break        time.Duration
	GameInterval time.Duration

	// Tick is the wall-clock length of one tick.
	Tick time.Duration
}

// DefaultConfig returns the classic 25/5 cycle with a game every two minutes.
func DefaultConfig() Config {
	return Config{
		Work:         25 * time.Minute,
		Break:        5 * time.Minute,
		GameInterval: 2 * time.Minute,
		Tick:         time.Second,
	}
}

// Normalize clamps every duration to at least one tick.
func (c Config) Normalize() Config {
	if c.Tick <= 0 {
		c.Tick = time.Second
	}
	if c.Work < c.Tick {
		c.Work = c.Tick
	}
	if c.Break < c.Tick {
		c.Break = c.Tick
	}
	if c.GameInterval < c.Tick {
		c.GameInterval = c.Tick
	}
	return c
}

func (c Config) ticks(d time.Duration) int {
	n := int(d / c.Tick)
	if n < 1 {
		n = 1
	}
	return n
}

// Scheduler owns the work/break state machine and the game trigger rule.
// It is driven by discrete ticks and never reads the wall clock itself.
type Scheduler struct {
	cfg           Config
	workTicks     int
	breakTicks    int
	intervalTicks int

	mode      Mode
	clock     *countdown.Countdown
	elapsed   int
	suspended bool
	completed int
}

// NewScheduler returns a paused scheduler in Work mode.
func NewScheduler(cfg Config) *Scheduler {
	cfg = cfg.Normalize()
	s := &Scheduler{
		cfg:           cfg,
		workTicks:     cfg.ticks(cfg.Work),
		breakTicks:    cfg.ticks(cfg.Break),
		intervalTicks: cfg.ticks(cfg.GameInterval),
		mode:          ModeWork,
	}
	s.clock = countdown.New(s.workTicks)
	return s
}

// Config returns the normalized configuration.
func (s *Scheduler) Config() Config { return s.cfg }

// Mode returns the current mode.
func (s *Scheduler) Mode() Mode { return s.mode }

// Remaining returns the ticks left in the current mode.
func (s *Scheduler) Remaining() int { return s.clock.Remaining() }

// Elapsed returns the ticks spent in the current work block.
func (s *Scheduler) Elapsed() int { return s.elapsed }

// Running reports whether the user has started the timer.
// A suspended scheduler may still be running.
func (s *Scheduler) Running() bool { return s.clock.Running() }

// Suspended reports whether ticking is held by the game dispatcher.
func (s *Scheduler) Suspended() bool { return s.suspended }

// Completed returns the number of work blocks finished by this scheduler.
func (s *Scheduler) Completed() int { return s.completed }

// Start begins or resumes ticking.
func (s *Scheduler) Start() { s.clock.Start() }

// Pause stops ticking and keeps the remaining time.
func (s *Scheduler) Pause() { s.clock.Pause() }

// Toggle flips between running and paused and returns the new state.
func (s *Scheduler) Toggle() bool { return s.clock.Toggle() }

// Reset restores the full duration of the current mode, clears the
// elapsed work counter and pauses. The mode is unchanged.
func (s *Scheduler) Reset() {
	s.clock.Reset(s.duration(s.mode))
	s.elapsed = 0
}

// Suspend holds ticking while a game is being chosen or played.
func (s *Scheduler) Suspend() { s.suspended = true }

// Resume releases a suspension. Trigger detection continues from the
// current elapsed count.
func (s *Scheduler) Resume() { s.suspended = false }

// Tick applies one tick and returns the events it raised, in order.
// Ticks are ignored while paused or suspended.
func (s *Scheduler) Tick() []Event {
	if s.suspended || !s.clock.Running() {
		return nil
	}

	var events []Event
	finished := s.clock.Tick()

	if s.mode == ModeWork {
		s.elapsed++
		if s.elapsed%s.intervalTicks == 0 {
			events = append(events, Event{Kind: EventGameTrigger, Mode: ModeWork, Elapsed: s.elapsed})
		}
	}

	if finished {
		switch s.mode {
		case ModeWork:
			s.completed++
			s.mode = ModeBreak
			events = append(events, Event{Kind: EventPomodoroComplete, Mode: ModeBreak, Elapsed: s.elapsed})
		case ModeBreak:
			s.mode = ModeWork
			s.elapsed = 0
			events = append(events, Event{Kind: EventBreakComplete, Mode: ModeWork})
		}
		s.clock.Restart(s.duration(s.mode))
	}
	return events
}

// Run delivers ticks from t until ctx is cancelled or t is closed. fn is
// called after every tick with the events it raised, which may be none.
// It returns ctx.Err() on cancellation.
func (s *Scheduler) Run(ctx context.Context, t Ticker, fn func([]Event)) error {
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-t.C():
			if !ok {
				return nil
			}
			fn(s.Tick())
		}
	}
}

func (s *Scheduler) duration(m Mode) int {
	if m == ModeBreak {
		return s.breakTicks
	}
	return s.workTicks
}

// Snapshot is a read-only view of the scheduler.
type Snapshot struct {
	Mode       Mode
	Remaining  time.Duration
	Total      time.Duration
	Elapsed    time.Duration
	NextGameIn time.Duration
	Running    bool
	Suspended  bool
	Completed  int
}

// Progress returns the fraction of the current mode already spent.
func (sn Snapshot) Progress() float64 {
	if sn.Total <= 0 {
		return 0
	}
	return 1 - float64(sn.Remaining)/float64(sn.Total)
}

// Snapshot captures the current state.
func (s *Scheduler) Snapshot() Snapshot {
	tick := s.cfg.Tick
	sn := Snapshot{
		Mode:      s.mode,
		Remaining: time.Duration(s.clock.Remaining()) * tick,
		Total:     time.Duration(s.duration(s.mode)) * tick,
		Elapsed:   time.Duration(s.elapsed) * tick,
		Running:   s.clock.Running(),
		Suspended: s.suspended,
		Completed: s.completed,
	}
	if s.mode == ModeWork {
		next := s.intervalTicks - s.elapsed%s.intervalTicks
		sn.NextGameIn = time.Duration(next) * tick
	}
	return sn
}
