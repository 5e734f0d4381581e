// Package app is the root Bubble Tea model. It owns the scheduler, the
// game dispatcher and the progress aggregator and routes events between
// them.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wolfchan/internal/camera"
	"github.com/abhisek/wolfchan/internal/config"
	"github.com/abhisek/wolfchan/internal/dispatch"
	"github.com/abhisek/wolfchan/internal/games"
	"github.com/abhisek/wolfchan/internal/notify"
	"github.com/abhisek/wolfchan/internal/progress"
	"github.com/abhisek/wolfchan/internal/router"
	"github.com/abhisek/wolfchan/internal/screen"
	filterscreen "github.com/abhisek/wolfchan/internal/screens/filter"
	"github.com/abhisek/wolfchan/internal/screens/history"
	jumpscreen "github.com/abhisek/wolfchan/internal/screens/jump"
	lyricscreen "github.com/abhisek/wolfchan/internal/screens/lyric"
	photoscreen "github.com/abhisek/wolfchan/internal/screens/photo"
	progressscreen "github.com/abhisek/wolfchan/internal/screens/progress"
	"github.com/abhisek/wolfchan/internal/screens/selector"
	"github.com/abhisek/wolfchan/internal/screens/timer"
	triviascreen "github.com/abhisek/wolfchan/internal/screens/trivia"
	"github.com/abhisek/wolfchan/internal/session"
	"github.com/abhisek/wolfchan/internal/statusapi"
	"github.com/abhisek/wolfchan/internal/store"
	"github.com/abhisek/wolfchan/internal/trivia"
	"github.com/abhisek/wolfchan/internal/ui/layout"
)

// Options holds the collaborators for the app.
type Options struct {
	Config *config.Config

	// EventRepo journals the run. Nil disables history.
	EventRepo store.EventRepo
	RunID     string

	// Generator supplies trivia questions. Nil uses the built-in bank.
	Generator trivia.Generator

	Notifier notify.Notifier

	// Board receives a status snapshot after every update. Optional.
	Board *statusapi.Board

	Logger *slog.Logger
	Rand   *rand.Rand
}

type schedTickMsg struct{}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	sched    *session.Scheduler
	disp     *dispatch.Dispatcher
	agg      *progress.Aggregator
	timer    *timer.Screen
	repo     store.EventRepo
	notifier notify.Notifier
	board    *statusapi.Board
	logger   *slog.Logger

	tick           time.Duration
	countDismissed bool
	unlocked       int
	width          int
	height         int
}

// New wires the scheduler, dispatcher and aggregator from opts.
func New(opts Options) AppModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.Nop{}
	}

	sched := session.NewScheduler(session.Config{
		Work:         cfg.Timer.Work.Duration,
		Break:        cfg.Timer.Break.Duration,
		GameInterval: cfg.Timer.GameInterval.Duration,
		Tick:         cfg.Timer.Tick.Duration,
	})

	aggOpts := []progress.Option{progress.WithLogger(logger)}
	if opts.EventRepo != nil {
		aggOpts = append(aggOpts, progress.WithJournal(opts.EventRepo, opts.RunID))
	}
	agg := progress.NewAggregator(progress.Config{
		WorkDuration:   sched.Config().Work,
		WeeklyGoal:     cfg.Progress.WeeklyGoal,
		CountDismissed: cfg.Games.CountDismissed,
	}, aggOpts...)

	disp := dispatch.New(sched, agg, dispatch.WithLogger(logger))
	registerGames(disp, cfg, opts)

	if cfg.Timer.AutoStart {
		sched.Start()
	}

	t := timer.New(sched, agg, opts.Rand)
	return AppModel{
		router:   router.New(t),
		sched:    sched,
		disp:     disp,
		agg:      agg,
		timer:    t,
		repo:     opts.EventRepo,
		notifier: notifier,
		board:    opts.Board,
		logger:   logger,
		tick:     sched.Config().Tick,

		countDismissed: cfg.Games.CountDismissed,
	}
}

// registerGames adds a factory for every enabled game, in catalog order.
func registerGames(d *dispatch.Dispatcher, cfg *config.Config, opts Options) {
	gen := opts.Generator
	if gen == nil {
		gen = trivia.BankGenerator{}
	}
	photoDir := cfg.Games.PhotoDir
	if photoDir == "" {
		photoDir = camera.DefaultPhotoDir()
	}

	for _, id := range cfg.EnabledGames() {
		var f dispatch.Factory
		switch id {
		case games.Photo:
			f = func(done *games.Completion) (dispatch.Module, error) {
				return photoscreen.New(done, camera.Open(cfg.Games.CameraImage), photoDir), nil
			}
		case games.Filter:
			f = func(done *games.Completion) (dispatch.Module, error) {
				return filterscreen.New(done, camera.Open(cfg.Games.CameraImage), photoDir), nil
			}
		case games.Trivia:
			f = func(done *games.Completion) (dispatch.Module, error) {
				return triviascreen.New(done, gen, cfg.Games.TriviaQuestions), nil
			}
		case games.Lyric:
			f = func(done *games.Completion) (dispatch.Module, error) {
				return lyricscreen.New(done), nil
			}
		case games.Jump:
			f = func(done *games.Completion) (dispatch.Module, error) {
				return jumpscreen.New(done, opts.Rand), nil
			}
		default:
			continue
		}
		d.Register(id, f)
	}
}

// Scheduler exposes the scheduler for status reporting.
func (m AppModel) Scheduler() *session.Scheduler { return m.sched }

// Dispatcher exposes the dispatcher for status reporting.
func (m AppModel) Dispatcher() *dispatch.Dispatcher { return m.disp }

// Aggregator exposes the run counters.
func (m AppModel) Aggregator() *progress.Aggregator { return m.agg }

func (m AppModel) schedTick() tea.Cmd {
	return tea.Tick(m.tick, func(time.Time) tea.Msg { return schedTickMsg{} })
}

func (m AppModel) Init() tea.Cmd {
	m.publish()
	return m.schedTick()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m, cmd = m.update(msg)
	m, collected := m.collect()
	m.publish()
	return m, tea.Batch(cmd, collected)
}

func (m AppModel) update(msg tea.Msg) (AppModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case schedTickMsg:
		var cmds []tea.Cmd
		for _, ev := range m.sched.Tick() {
			var cmd tea.Cmd
			m, cmd = m.handleEvent(ev)
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, m.schedTick())
		return m, tea.Batch(cmds...)

	case timer.ConfettiMsg:
		_, cmd := m.timer.Update(msg)
		return m, cmd

	case timer.TriggerGameMsg:
		return m, m.openSelector()

	case timer.OpenProgressMsg:
		return m, m.router.Push(progressscreen.New(m.agg))

	case timer.OpenHistoryMsg:
		return m, m.router.Push(history.New(m.repo, m.countDismissed))

	case selector.SelectedMsg:
		return m, m.startGame(msg.Game)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			switch m.disp.State() {
			case dispatch.StateSelecting:
				if err := m.disp.Cancel(); err == nil {
					m.router.Pop()
				}
				return m, nil
			case dispatch.StatePlaying:
				if _, err := m.disp.Dismiss(); err == nil {
					m.router.Pop()
				}
				return m, nil
			}
		}
	}

	return m, m.router.Update(msg)
}

// handleEvent applies one scheduler event to the rest of the app.
func (m AppModel) handleEvent(ev session.Event) (AppModel, tea.Cmd) {
	m.logger.Info("session event", "event", ev.Kind.String(), "mode", ev.Mode.String(), "elapsed", ev.Elapsed)
	switch ev.Kind {
	case session.EventGameTrigger:
		return m, m.openSelector()
	case session.EventPomodoroComplete:
		m.agg.RecordPomodoroCompleted()
		m.notifier.Chime(notify.ChimeWorkDone)
		m = m.checkAchievements()
		return m, m.timer.Celebrate("🍅 Pomodoro complete! Time for a break.")
	case session.EventBreakComplete:
		m.agg.RecordBreakCompleted()
		m.notifier.Chime(notify.ChimeBreakDone)
	}
	return m, nil
}

// openSelector asks the dispatcher for the game menu. A trigger while a
// game is already open is dropped.
func (m AppModel) openSelector() tea.Cmd {
	if err := m.disp.OnGameTrigger(); err != nil {
		m.logger.Debug("game trigger ignored", "error", err)
		return nil
	}
	available := m.disp.Available()
	if len(available) == 0 {
		_ = m.disp.Cancel()
		return nil
	}
	return m.router.Push(selector.New(available))
}

func (m AppModel) startGame(id games.ID) tea.Cmd {
	sel, ok := m.router.Active().(*selector.Screen)
	mod, err := m.disp.Select(id)
	if err != nil {
		if ok {
			sel.SetError(err)
		}
		return nil
	}
	scr, isScreen := mod.(screen.Screen)
	if !isScreen {
		m.logger.Error("game module has no screen", "game", id)
		_, _ = m.disp.Dismiss()
		m.router.Pop()
		return nil
	}
	return m.router.Replace(scr)
}

// collect returns to the timer once a game result has been recorded.
func (m AppModel) collect() (AppModel, tea.Cmd) {
	r, ok := m.disp.Poll()
	if !ok {
		return m, nil
	}
	m.router.PopToRoot()
	m.logger.Info("game result", "game", r.Game, "dismissed", r.Dismissed, "score", scoreAttr(r))
	return m.checkAchievements(), nil
}

func (m AppModel) checkAchievements() AppModel {
	n := m.agg.UnlockedCount()
	if n > m.unlocked {
		m.notifier.Chime(notify.ChimeAchievement)
		m.logger.Info("achievement unlocked", "unlocked", n)
	}
	m.unlocked = n
	return m
}

func (m AppModel) publish() {
	if m.board == nil {
		return
	}
	m.board.Publish(statusapi.Build(m.sched.Snapshot(), m.disp, m.agg, time.Now()))
}

func scoreAttr(r games.Result) string {
	if r.Score == nil {
		return "-"
	}
	return fmt.Sprint(*r.Score)
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	stats := m.agg.Stats()
	header := layout.RenderHeader(title, layout.HeaderStats{
		Pomodoros: stats.PomodorosCompleted,
		Games:     stats.GamesPlayed,
		Work:      m.sched.Mode() == session.ModeWork,
	}, m.width)

	var footerHints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
