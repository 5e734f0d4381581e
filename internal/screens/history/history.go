// Package history lists journaled games and lifetime totals.
package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wolfchan/internal/games"
	"github.com/abhisek/wolfchan/internal/progress"
	"github.com/abhisek/wolfchan/internal/router"
	"github.com/abhisek/wolfchan/internal/screen"
	"github.com/abhisek/wolfchan/internal/store"
	"github.com/abhisek/wolfchan/internal/ui/components"
	"github.com/abhisek/wolfchan/internal/ui/layout"
	"github.com/abhisek/wolfchan/internal/ui/theme"
)

// recentLimit caps the game list.
const recentLimit = 50

type historyLoadedMsg struct {
	owner     *Screen
	totals    store.Totals
	breakdown []store.GameCount
	recent    []store.GameEventRecord
	err       error
}

// Screen displays lifetime totals and recent game results.
type Screen struct {
	eventRepo store.EventRepo
	// countDismissed includes skipped games in the games total.
	countDismissed bool
	totals    store.Totals
	breakdown []store.GameCount
	recent    []store.GameEventRecord
	selected  int
	loaded    bool
	errMsg    string

	filter    components.TextInput
	filtering bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a history screen. A nil repo shows a notice instead.
func New(eventRepo store.EventRepo, countDismissed bool) *Screen {
	f := components.NewTextInput("filter by game", 20)
	f.Model.Prompt = "/ "
	f.Model.Blur()
	return &Screen{eventRepo: eventRepo, countDismissed: countDismissed, filter: f}
}

func (s *Screen) Init() tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	repo := s.eventRepo
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		totals, err := repo.Totals(ctx, time.Time{})
		if err != nil {
			return historyLoadedMsg{owner: s, err: err}
		}
		breakdown, err := repo.GameBreakdown(ctx)
		if err != nil {
			return historyLoadedMsg{owner: s, err: err}
		}
		recent, err := repo.QueryGameEvents(ctx, store.QueryOpts{Limit: recentLimit})
		if err != nil {
			return historyLoadedMsg{owner: s, err: err}
		}
		return historyLoadedMsg{owner: s, totals: totals, breakdown: breakdown, recent: recent}
	}
}

func (s *Screen) Title() string {
	return "History"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.filtering {
		return []layout.KeyHint{{Key: "Enter", Description: "Apply"}, {Key: "Esc", Description: "Clear"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "/", Description: "Filter"},
		{Key: "Esc", Description: "Back"},
	}
}

// visible returns the recent games matching the filter.
func (s *Screen) visible() []store.GameEventRecord {
	q := strings.ToLower(strings.TrimSpace(s.filter.Value()))
	if q == "" {
		return s.recent
	}
	var out []store.GameEventRecord
	for _, r := range s.recent {
		name := strings.ToLower(games.Describe(games.ID(r.Game)).Name)
		if strings.Contains(r.Game, q) || strings.Contains(name, q) {
			out = append(out, r)
		}
	}
	return out
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.owner != s {
			return s, nil
		}
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.totals = msg.totals
			s.breakdown = msg.breakdown
			s.recent = msg.recent
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if s.filtering {
			switch msg.String() {
			case "enter":
				s.filtering = false
				s.filter.Model.Blur()
				return s, nil
			case "esc":
				s.filtering = false
				s.filter.Clear()
				s.filter.Model.Blur()
				s.selected = 0
				return s, nil
			}
			var cmd tea.Cmd
			s.filter, cmd = s.filter.Update(msg)
			s.selected = 0
			return s, cmd
		}

		switch msg.String() {
		case "esc", "h":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "/":
			s.filtering = true
			return s, s.filter.Model.Focus()
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.visible())-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	center := func(st lipgloss.Style, text string) string {
		return st.Width(width).Align(lipgloss.Center).Render(text)
	}
	if s.eventRepo == nil {
		return center(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true),
			"\n\n  History is off. Enable the journal to keep past sessions.")
	}
	if s.errMsg != "" {
		return center(lipgloss.NewStyle().Foreground(theme.Error), fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center(lipgloss.NewStyle().Foreground(theme.TextDim), "\n\n  Loading history...")
	}

	var b strings.Builder
	b.WriteString("\n")
	t := s.totals
	b.WriteString(center(theme.Subtitle, fmt.Sprintf("%d pomodoros  ·  %d breaks  ·  %d games  ·  %s focused  ·  %d runs",
		t.Pomodoros, t.Breaks, t.Counted(s.countDismissed), progress.FormatFocus(time.Duration(t.FocusSeconds)*time.Second), t.Runs)))
	b.WriteString("\n\n")

	if len(s.breakdown) > 0 {
		parts := make([]string, 0, len(s.breakdown))
		for _, gc := range s.breakdown {
			info := games.Describe(games.ID(gc.Game))
			part := fmt.Sprintf("%s %s ×%d", info.Icon, info.Name, gc.Plays)
			if gc.BestScore != nil {
				part += fmt.Sprintf(" (best %d)", *gc.BestScore)
			}
			parts = append(parts, part)
		}
		b.WriteString(center(theme.Body, strings.Join(parts, "   ")))
		b.WriteString("\n\n")
	}

	if s.filtering || s.filter.Value() != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.filter.View()))
		b.WriteString("\n\n")
	}

	rows := s.visible()
	if len(rows) == 0 {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true), "No games yet. Keep focusing!"))
		return b.String()
	}

	maxRows := max(height-10, 3)
	start := 0
	if s.selected >= maxRows {
		start = s.selected - maxRows + 1
	}
	for i := start; i < len(rows) && i < start+maxRows; i++ {
		r := rows[i]
		info := games.Describe(games.ID(r.Game))
		outcome := "finished"
		switch {
		case r.Dismissed:
			outcome = "skipped"
		case r.Score != nil:
			outcome = fmt.Sprintf("score %d", *r.Score)
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %s %-18s %s", prefix, r.Timestamp.Local().Format("Jan 02 15:04"), info.Icon, info.Name, outcome)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}
