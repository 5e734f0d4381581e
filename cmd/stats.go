package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/wolfchan/internal/games"
	"github.com/abhisek/wolfchan/internal/progress"
	"github.com/abhisek/wolfchan/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime focus and game statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, err := openJournal(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.EventRepo()
		all, err := repo.Totals(ctx, time.Time{})
		if err != nil {
			return fmt.Errorf("query totals: %w", err)
		}
		week, err := repo.Totals(ctx, startOfWeek(time.Now()))
		if err != nil {
			return fmt.Errorf("query weekly totals: %w", err)
		}
		breakdown, err := repo.GameBreakdown(ctx)
		if err != nil {
			return fmt.Errorf("query games: %w", err)
		}

		fmt.Printf("%-14s  %10s  %10s\n", "", "This week", "All time")
		fmt.Println(strings.Repeat("─", 38))
		row := func(label string, w, a any) { fmt.Printf("%-14s  %10v  %10v\n", label, w, a) }
		row("Pomodoros", week.Pomodoros, all.Pomodoros)
		row("Breaks", week.Breaks, all.Breaks)
		countDismissed := cfg.Games.CountDismissed
		row("Games played", week.Counted(countDismissed), all.Counted(countDismissed))
		row("Games skipped", week.GamesDismissed, all.GamesDismissed)
		row("Focus", focus(week.FocusSeconds), focus(all.FocusSeconds))
		row("Runs", week.Runs, all.Runs)

		goal := cfg.Progress.WeeklyGoal
		fmt.Printf("\nWeekly goal: %d/%d pomodoros\n", min(week.Pomodoros, goal), goal)

		if len(breakdown) > 0 {
			fmt.Println("\nGames")
			for _, gc := range breakdown {
				best := "-"
				if gc.BestScore != nil {
					best = fmt.Sprint(*gc.BestScore)
				}
				fmt.Printf("  %-18s  %4d plays  best %s\n", gameName(gc.Game), gc.Plays, best)
			}
		}

		fmt.Println("\nAchievements")
		for _, st := range progress.Evaluate(lifetimeStats(all, countDismissed)) {
			mark := " "
			if st.Unlocked {
				mark = "✓"
			}
			fmt.Printf("  [%s] %s  %s\n", mark, st.Achievement.DisplayName(), st.Achievement.Description())
		}
		return nil
	},
}

// lifetimeStats maps journal totals onto achievement counters.
func lifetimeStats(t store.Totals, countDismissed bool) progress.Stats {
	return progress.Stats{PomodorosCompleted: t.Pomodoros, GamesPlayed: t.Counted(countDismissed)}
}

func focus(seconds int) string {
	return progress.FormatFocus(time.Duration(seconds) * time.Second)
}

func gameName(id string) string {
	if g, err := games.Parse(id); err == nil {
		return games.Describe(g).Name
	}
	return id
}

// startOfWeek returns local midnight on the most recent Monday.
func startOfWeek(now time.Time) time.Time {
	offset := (int(now.Weekday()) + 6) % 7
	y, m, d := now.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}
