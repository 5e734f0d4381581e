package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/abhisek/wolfchan/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent pomodoros and games",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		runID, _ := cmd.Flags().GetString("run")

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
		opts := store.QueryOpts{Limit: limit, RunID: runID}
		pomodoros, err := s.EventRepo().QueryPomodoroEvents(ctx, opts)
		if err != nil {
			return fmt.Errorf("query pomodoros: %w", err)
		}
		played, err := s.EventRepo().QueryGameEvents(ctx, opts)
		if err != nil {
			return fmt.Errorf("query games: %w", err)
		}

		entries := make([]historyEntry, 0, len(pomodoros)+len(played))
		for _, p := range pomodoros {
			entries = append(entries, historyEntry{p.Sequence, p.Timestamp, p.RunID, describePomodoro(p)})
		}
		for _, g := range played {
			entries = append(entries, historyEntry{g.Sequence, g.Timestamp, g.RunID, describeGame(g)})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].seq > entries[j].seq })
		if limit > 0 && len(entries) > limit {
			entries = entries[:limit]
		}

		if len(entries) == 0 {
			fmt.Println("No history yet.")
			return nil
		}

		fmt.Printf("%-19s  %-8s  %s\n", "Timestamp", "Run", "Event")
		fmt.Println(strings.Repeat("─", 60))
		for _, e := range entries {
			run := e.run
			if len(run) > 8 {
				run = run[:8]
			}
			fmt.Printf("%-19s  %-8s  %s\n", e.at.Local().Format("2006-01-02 15:04:05"), run, e.text)
		}
		return nil
	},
}

type historyEntry struct {
	seq  int64
	at   time.Time
	run  string
	text string
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of entries")
	historyCmd.Flags().String("run", "", "Only show events from this run ID")
}

func describePomodoro(p store.PomodoroEventRecord) string {
	switch p.Kind {
	case store.PomodoroWorkComplete:
		return fmt.Sprintf("pomodoro complete (%s)", focus(p.WorkSeconds))
	case store.PomodoroBreakComplete:
		return "break over"
	case store.PomodoroReset:
		return "timer reset"
	}
	return string(p.Kind)
}

func describeGame(g store.GameEventRecord) string {
	name := gameName(g.Game)
	switch {
	case g.Dismissed:
		return name + " skipped"
	case g.Score != nil:
		return fmt.Sprintf("%s score %d", name, *g.Score)
	}
	return name + " finished"
}
