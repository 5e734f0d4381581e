// Package progress is the stats and achievements panel.
package progress

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wolfchan/internal/progress"
	"github.com/abhisek/wolfchan/internal/router"
	"github.com/abhisek/wolfchan/internal/screen"
	"github.com/abhisek/wolfchan/internal/ui/components"
	"github.com/abhisek/wolfchan/internal/ui/layout"
	"github.com/abhisek/wolfchan/internal/ui/theme"
)

// Screen renders the live aggregator counters.
type Screen struct {
	agg *progress.Aggregator
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a progress panel over agg.
func New(agg *progress.Aggregator) *Screen {
	return &Screen{agg: agg}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Your Progress" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && (k.String() == "esc" || k.String() == "p") {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	stats := s.agg.Stats()

	tiles := lipgloss.JoinHorizontal(lipgloss.Top,
		tile("🍅", fmt.Sprint(stats.PomodorosCompleted), "Sessions", theme.Accent),
		tile("🎮", fmt.Sprint(stats.GamesPlayed), "Games", theme.Pink),
		tile("⏱", progress.FormatFocus(s.agg.FocusTime()), "Focus", theme.Blue),
	)

	goal, frac := s.agg.WeeklyGoal()
	bar := components.NewProgressBar(fmt.Sprintf("Weekly goal %d/%d", min(stats.PomodorosCompleted, goal), goal), frac, true, cw-6)
	bar.Fill = theme.Secondary

	all := s.agg.Achievements()
	var b strings.Builder
	fmt.Fprintf(&b, "Achievements  %d/%d\n\n", s.agg.UnlockedCount(), len(all))
	for i, st := range all {
		a := st.Achievement
		line := fmt.Sprintf("%s  %-18s %s", a.Icon(), a.DisplayName(), a.Description())
		if st.Unlocked {
			b.WriteString(theme.Correct.Render("✓ " + line))
		} else {
			b.WriteString(theme.Locked.Render("🔒 " + line))
		}
		if i < len(all)-1 {
			b.WriteString("\n")
		}
	}
	achievements := lipgloss.NewStyle().Align(lipgloss.Left).Render(b.String())

	body := lipgloss.JoinVertical(lipgloss.Center, tiles, "", bar.View(), "", achievements)
	return layout.Center(components.Card(body, cw), width, height)
}

func tile(icon, value, label string, c color.Color) string {
	return lipgloss.NewStyle().Width(18).Align(lipgloss.Center).Render(
		icon + "\n" +
			lipgloss.NewStyle().Bold(true).Foreground(c).Render(value) + "\n" +
			theme.Hint.Render(label))
}
