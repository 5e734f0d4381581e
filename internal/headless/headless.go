// Package headless runs the pomodoro cycle without a terminal UI,
// printing transitions as plain lines. Game triggers are skipped.
package headless

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/abhisek/wolfchan/internal/dispatch"
	"github.com/abhisek/wolfchan/internal/notify"
	"github.com/abhisek/wolfchan/internal/progress"
	"github.com/abhisek/wolfchan/internal/session"
	"github.com/abhisek/wolfchan/internal/statusapi"
	"github.com/abhisek/wolfchan/internal/store"
)

// Options configures a headless run.
type Options struct {
	Session  session.Config
	Progress progress.Config

	// Ticker drives the scheduler. Nil uses a wall-clock ticker.
	Ticker session.Ticker

	EventRepo store.EventRepo
	RunID     string
	Board     *statusapi.Board
	Notifier  notify.Notifier
	Out       io.Writer
	Logger    *slog.Logger

	// Now stamps printed lines. Nil uses time.Now.
	Now func() time.Time
}

// Runner owns one headless session.
type Runner struct {
	opts  Options
	sched *session.Scheduler
	disp  *dispatch.Dispatcher
	agg   *progress.Aggregator
	seen  map[progress.Achievement]bool
}

// New builds a runner. The timer starts immediately.
func New(opts Options) *Runner {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.Nop{}
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	sched := session.NewScheduler(opts.Session)
	aggOpts := []progress.Option{progress.WithLogger(opts.Logger)}
	if opts.EventRepo != nil {
		aggOpts = append(aggOpts, progress.WithJournal(opts.EventRepo, opts.RunID))
	}
	opts.Progress.WorkDuration = sched.Config().Work
	agg := progress.NewAggregator(opts.Progress, aggOpts...)

	r := &Runner{
		opts:  opts,
		sched: sched,
		disp:  dispatch.New(sched, agg, dispatch.WithLogger(opts.Logger)),
		agg:   agg,
		seen:  make(map[progress.Achievement]bool),
	}
	sched.Start()
	return r
}

// Aggregator returns the run counters.
func (r *Runner) Aggregator() *progress.Aggregator { return r.agg }

// Scheduler returns the scheduler.
func (r *Runner) Scheduler() *session.Scheduler { return r.sched }

// Run ticks until ctx is cancelled or the ticker closes. Cancellation is
// a normal exit.
func (r *Runner) Run(ctx context.Context) error {
	t := r.opts.Ticker
	if t == nil {
		t = session.NewWallTicker(r.sched.Config().Tick)
	}
	cfg := r.sched.Config()
	r.printf("wolfchan headless: work %s, break %s, game every %s", cfg.Work, cfg.Break, cfg.GameInterval)
	r.publish()

	err := r.sched.Run(ctx, t, func(evs []session.Event) {
		for _, ev := range evs {
			r.handle(ev)
		}
		r.publish()
	})
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	st := r.agg.Stats()
	r.printf("stopped: %d pomodoros, focus %s", st.PomodorosCompleted, progress.FormatFocus(r.agg.FocusTime()))
	return err
}

func (r *Runner) handle(ev session.Event) {
	r.opts.Logger.Info("session event", "event", ev.Kind.String(), "mode", ev.Mode.String())
	switch ev.Kind {
	case session.EventGameTrigger:
		if err := r.disp.OnGameTrigger(); err != nil {
			return
		}
		_ = r.disp.Cancel()
		r.printf("game break at %s of work (skipped, no terminal)", time.Duration(ev.Elapsed)*r.sched.Config().Tick)
	case session.EventPomodoroComplete:
		r.agg.RecordPomodoroCompleted()
		r.opts.Notifier.Chime(notify.ChimeWorkDone)
		r.printf("pomodoro %d complete, break started", r.agg.Stats().PomodorosCompleted)
		r.announceAchievements()
	case session.EventBreakComplete:
		r.agg.RecordBreakCompleted()
		r.opts.Notifier.Chime(notify.ChimeBreakDone)
		r.printf("break over, back to work")
	}
}

func (r *Runner) announceAchievements() {
	for _, st := range r.agg.Achievements() {
		if !st.Unlocked || r.seen[st.Achievement] {
			continue
		}
		r.seen[st.Achievement] = true
		r.printf("achievement unlocked: %s %s", st.Achievement.Icon(), st.Achievement.DisplayName())
		r.opts.Notifier.Chime(notify.ChimeAchievement)
	}
}

func (r *Runner) publish() {
	if r.opts.Board == nil {
		return
	}
	r.opts.Board.Publish(statusapi.Build(r.sched.Snapshot(), r.disp, r.agg, r.opts.Now()))
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.opts.Out, "%s  %s\n", r.opts.Now().Format("15:04:05"), fmt.Sprintf(format, args...))
}
