// Package statusapi publishes the live timer state over a small
// read-only JSON HTTP API.
package statusapi

import (
	"strings"
	"sync"
	"time"

	"github.com/abhisek/wolfchan/internal/dispatch"
	"github.com/abhisek/wolfchan/internal/progress"
	"github.com/abhisek/wolfchan/internal/session"
)

// Status is the JSON body of GET /status.
type Status struct {
	Mode             string  `json:"mode"`
	RemainingSeconds int     `json:"remaining_seconds"`
	TotalSeconds     int     `json:"total_seconds"`
	ElapsedSeconds   int     `json:"elapsed_seconds"`
	NextGameSeconds  int     `json:"next_game_seconds,omitempty"`
	Running          bool    `json:"running"`
	Suspended        bool    `json:"suspended"`
	Cycles           int     `json:"cycles"`
	Dispatcher       string  `json:"dispatcher"`
	ActiveGame       string  `json:"active_game,omitempty"`
	Pomodoros        int     `json:"pomodoros"`
	GamesPlayed      int     `json:"games_played"`
	FocusTime        string  `json:"focus_time"`
	WeeklyGoal       int     `json:"weekly_goal"`
	WeeklyProgress   float64 `json:"weekly_progress"`

	Achievements []Achievement `json:"-"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Achievement is one entry of GET /achievements.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

// Build assembles a Status from the live components.
func Build(sn session.Snapshot, d *dispatch.Dispatcher, agg *progress.Aggregator, now time.Time) Status {
	stats := agg.Stats()
	goal, frac := agg.WeeklyGoal()
	st := Status{
		Mode:             strings.ToLower(sn.Mode.String()),
		RemainingSeconds: int(sn.Remaining / time.Second),
		TotalSeconds:     int(sn.Total / time.Second),
		ElapsedSeconds:   int(sn.Elapsed / time.Second),
		NextGameSeconds:  int(sn.NextGameIn / time.Second),
		Running:          sn.Running,
		Suspended:        sn.Suspended,
		Cycles:           sn.Completed,
		Dispatcher:       d.State().String(),
		Pomodoros:        stats.PomodorosCompleted,
		GamesPlayed:      stats.GamesPlayed,
		FocusTime:        progress.FormatFocus(agg.FocusTime()),
		WeeklyGoal:       goal,
		WeeklyProgress:   frac,
		UpdatedAt:        now,
	}
	if m := d.Active(); m != nil {
		st.ActiveGame = string(m.Game())
	}
	for _, s := range agg.Achievements() {
		st.Achievements = append(st.Achievements, Achievement{
			ID:          string(s.Achievement),
			Name:        s.Achievement.DisplayName(),
			Description: s.Achievement.Description(),
			Unlocked:    s.Unlocked,
		})
	}
	return st
}

// Board holds the latest published Status. The UI goroutine publishes
// and HTTP handlers read.
type Board struct {
	mu     sync.RWMutex
	status Status
	ok     bool
}

// NewBoard creates an empty board.
func NewBoard() *Board { return &Board{} }

// Publish replaces the current status.
func (b *Board) Publish(s Status) {
	b.mu.Lock()
	b.status = s
	b.ok = true
	b.mu.Unlock()
}

// Load returns the current status and whether anything was published.
func (b *Board) Load() (Status, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.status, b.ok
}
