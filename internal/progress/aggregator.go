// Package progress tallies completed pomodoros and played games for the
// current run and derives achievements from those counts.
package progress

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abhisek/wolfchan/internal/games"
	"github.com/abhisek/wolfchan/internal/store"
)

// DefaultWeeklyGoal is the number of pomodoros targeted per week.
const DefaultWeeklyGoal = 20

// Stats are the run counters. They never decrease.
type Stats struct {
	PomodorosCompleted int
	GamesPlayed        int
}

// Config tunes derived values and counting policy.
type Config struct {
	// WorkDuration is credited as focus time per completed pomodoro.
	WorkDuration time.Duration

	// WeeklyGoal is the pomodoro target shown in the progress panel.
	WeeklyGoal int

	// CountDismissed counts games the user closed before they finished.
	CountDismissed bool
}

// DefaultConfig matches the classic 25 minute cycle.
func DefaultConfig() Config {
	return Config{
		WorkDuration:   25 * time.Minute,
		WeeklyGoal:     DefaultWeeklyGoal,
		CountDismissed: true,
	}
}

// Aggregator owns the run counters.
type Aggregator struct {
	cfg    Config
	stats  Stats
	logger *slog.Logger

	journal store.EventRepo
	runID   string
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithJournal appends every recorded event to repo under runID.
func WithJournal(repo store.EventRepo, runID string) Option {
	return func(a *Aggregator) {
		a.journal = repo
		a.runID = runID
	}
}

// WithLogger sets the logger for journal failures.
func WithLogger(l *slog.Logger) Option {
	return func(a *Aggregator) { a.logger = l }
}

// NewAggregator returns an aggregator with zeroed counters.
func NewAggregator(cfg Config, opts ...Option) *Aggregator {
	if cfg.WeeklyGoal <= 0 {
		cfg.WeeklyGoal = DefaultWeeklyGoal
	}
	a := &Aggregator{cfg: cfg, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Stats returns the current counters.
func (a *Aggregator) Stats() Stats { return a.stats }

// RecordPomodoroCompleted counts one finished work block.
func (a *Aggregator) RecordPomodoroCompleted() {
	a.stats.PomodorosCompleted++
	a.persist(func(ctx context.Context, repo store.EventRepo) error {
		return repo.AppendPomodoroEvent(ctx, store.PomodoroEventData{
			RunID:       a.runID,
			Kind:        store.PomodoroWorkComplete,
			WorkSeconds: int(a.cfg.WorkDuration / time.Second),
		})
	})
}

// RecordGamePlayed counts one game.
func (a *Aggregator) RecordGamePlayed() {
	a.stats.GamesPlayed++
}

// RecordGame counts a finished game according to the dismissal policy
// and journals it either way.
func (a *Aggregator) RecordGame(r games.Result) {
	if !r.Dismissed || a.cfg.CountDismissed {
		a.RecordGamePlayed()
	}
	a.persist(func(ctx context.Context, repo store.EventRepo) error {
		return repo.AppendGameEvent(ctx, store.GameEventData{
			RunID:     a.runID,
			Game:      string(r.Game),
			Score:     r.Score,
			Dismissed: r.Dismissed,
		})
	})
}

// RecordBreakCompleted journals the end of a break. Counters are unchanged.
func (a *Aggregator) RecordBreakCompleted() {
	a.persist(func(ctx context.Context, repo store.EventRepo) error {
		return repo.AppendPomodoroEvent(ctx, store.PomodoroEventData{RunID: a.runID, Kind: store.PomodoroBreakComplete})
	})
}

// RecordReset journals a user reset. Counters are unchanged.
func (a *Aggregator) RecordReset() {
	a.persist(func(ctx context.Context, repo store.EventRepo) error {
		return repo.AppendPomodoroEvent(ctx, store.PomodoroEventData{RunID: a.runID, Kind: store.PomodoroReset})
	})
}

// Achievements evaluates every achievement against the current counters.
func (a *Aggregator) Achievements() []Status { return Evaluate(a.stats) }

// UnlockedCount returns how many achievements are earned.
func (a *Aggregator) UnlockedCount() int {
	n := 0
	for _, s := range a.Achievements() {
		if s.Unlocked {
			n++
		}
	}
	return n
}

// FocusTime is the work time credited by completed pomodoros.
func (a *Aggregator) FocusTime() time.Duration {
	return time.Duration(a.stats.PomodorosCompleted) * a.cfg.WorkDuration
}

// WeeklyGoal returns the target and the completed fraction, capped at 1.
func (a *Aggregator) WeeklyGoal() (goal int, fraction float64) {
	goal = a.cfg.WeeklyGoal
	fraction = float64(a.stats.PomodorosCompleted) / float64(goal)
	if fraction > 1 {
		fraction = 1
	}
	return goal, fraction
}

// FormatFocus renders a duration as "Xh Ym".
func FormatFocus(d time.Duration) string {
	mins := int(d / time.Minute)
	return fmt.Sprintf("%dh %dm", mins/60, mins%60)
}

const journalTimeout = 2 * time.Second

func (a *Aggregator) persist(write func(context.Context, store.EventRepo) error) {
	if a.journal == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
	defer cancel()
	if err := write(ctx, a.journal); err != nil {
		a.logger.Warn("journal write failed", "run", a.runID, "error", err)
	}
}
