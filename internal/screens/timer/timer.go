// Package timer is the root pomodoro screen.
package timer

import (
	"fmt"
	"math/rand/v2"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wolfchan/internal/progress"
	"github.com/abhisek/wolfchan/internal/screen"
	"github.com/abhisek/wolfchan/internal/session"
	"github.com/abhisek/wolfchan/internal/ui/components"
	"github.com/abhisek/wolfchan/internal/ui/layout"
	"github.com/abhisek/wolfchan/internal/ui/theme"
)

const confettiFrame = 50 * time.Millisecond

// Requests the timer hands up to the app.
type (
	OpenProgressMsg struct{}
	OpenHistoryMsg  struct{}
	TriggerGameMsg  struct{}
)

// ConfettiMsg advances the celebration. The app routes it straight to
// the timer so the burst keeps moving under an overlay.
type ConfettiMsg struct{ owner *Screen }

// Screen shows the countdown and handles the timer controls.
type Screen struct {
	sched *session.Scheduler
	agg   *progress.Aggregator
	rng   *rand.Rand

	confetti *components.Confetti
	message  string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the timer screen. A nil rng uses the global source.
func New(sched *session.Scheduler, agg *progress.Aggregator, rng *rand.Rand) *Screen {
	return &Screen{sched: sched, agg: agg, rng: rng}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Focus Timer" }

func (s *Screen) KeyHints() []layout.KeyHint {
	toggle := "Start"
	if s.sched.Running() {
		toggle = "Pause"
	}
	return []layout.KeyHint{
		{Key: "Space", Description: toggle},
		{Key: "R", Description: "Reset"},
		{Key: "G", Description: "Game"},
		{Key: "P", Description: "Progress"},
		{Key: "H", Description: "History"},
		{Key: "Q", Description: "Quit"},
	}
}

// Celebrate starts a confetti burst with a banner.
func (s *Screen) Celebrate(message string) tea.Cmd {
	running := s.confetti != nil
	s.confetti = components.NewConfetti(s.rng)
	s.message = message
	if running {
		return nil
	}
	return s.frame()
}

// Celebrating reports whether a burst is on screen.
func (s *Screen) Celebrating() bool { return s.confetti != nil }

func (s *Screen) frame() tea.Cmd {
	return tea.Tick(confettiFrame, func(time.Time) tea.Msg { return ConfettiMsg{owner: s} })
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case ConfettiMsg:
		if msg.owner != s || s.confetti == nil {
			return s, nil
		}
		s.confetti.Step()
		if s.confetti.Done() {
			s.confetti = nil
			s.message = ""
			return s, nil
		}
		return s, s.frame()

	case tea.KeyMsg:
		switch msg.String() {
		case "space":
			s.sched.Toggle()
		case "r":
			s.sched.Reset()
			s.agg.RecordReset()
		case "p":
			return s, func() tea.Msg { return OpenProgressMsg{} }
		case "h":
			return s, func() tea.Msg { return OpenHistoryMsg{} }
		case "g":
			if s.sched.Mode() == session.ModeWork {
				return s, func() tea.Msg { return TriggerGameMsg{} }
			}
		case "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	sn := s.sched.Snapshot()
	work := sn.Mode == session.ModeWork
	cw := components.ContentWidth(width)

	modeLabel := "🍅 Focus time"
	if !work {
		modeLabel = "☕ Break time"
	}
	mode := lipgloss.NewStyle().Bold(true).Foreground(theme.ModeColor(work)).Render(modeLabel)
	clock := lipgloss.NewStyle().Foreground(theme.ModeColor(work)).Render(
		components.BigClock(components.FormatClock(sn.Remaining)))

	bar := components.NewProgressBar("", sn.Progress(), true, cw-6)
	bar.Fill = theme.ModeColor(work)

	state := theme.Hint.Render("Paused, press space to start")
	switch {
	case sn.Suspended:
		state = theme.Hint.Render("Waiting for your game to finish")
	case sn.Running:
		state = theme.Body.Render("Running")
	}

	var detail string
	if work {
		detail = theme.Body.Render("Next game in " + components.FormatClock(sn.NextGameIn))
	} else {
		detail = lipgloss.NewStyle().Foreground(theme.Accent).Width(cw - 6).Align(lipgloss.Center).
			Render("💡 " + FactAt(sn.Total-sn.Remaining))
	}

	stats := s.agg.Stats()
	counters := theme.Hint.Render(fmt.Sprintf("Pomodoros %d  ·  Games %d  ·  Focus %s",
		stats.PomodorosCompleted, stats.GamesPlayed, progress.FormatFocus(s.agg.FocusTime())))

	toggle := "Start"
	if sn.Running {
		toggle = "Pause"
	}
	controls := components.Buttons(
		components.Button{Key: "space", Label: toggle, Active: !sn.Suspended},
		components.Button{Key: "r", Label: "Reset"},
		components.Button{Key: "g", Label: "Game", Active: work && !sn.Suspended},
	)

	body := lipgloss.JoinVertical(lipgloss.Center, mode, "", clock, "", bar.View(), "", state, detail, "", controls, "", counters)
	card := components.Card(body, cw)

	if s.confetti == nil {
		return layout.Center(card, width, height)
	}
	band := max((height-lipgloss.Height(card)-2)/2, 1)
	banner := theme.Title.Render(s.message)
	content := lipgloss.JoinVertical(lipgloss.Center,
		s.confetti.View(cw, band), banner, card, s.confetti.View(cw, band))
	return layout.Center(content, width, height)
}
