package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
// Results are ordered newest first.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
	RunID  string    // only events from this run
}

// PomodoroKind is what happened to the timer.
type PomodoroKind string

const (
	PomodoroWorkComplete  PomodoroKind = "work_complete"
	PomodoroBreakComplete PomodoroKind = "break_complete"
	PomodoroReset         PomodoroKind = "reset"
)

// PomodoroEventData captures a timer transition.
type PomodoroEventData struct {
	RunID       string
	Kind        PomodoroKind
	WorkSeconds int
}

// PomodoroEventRecord is a stored timer transition.
type PomodoroEventRecord struct {
	ID        string
	Sequence  int64
	Timestamp time.Time
	PomodoroEventData
}

// GameEventData captures one finished mini-game.
type GameEventData struct {
	RunID     string
	Game      string
	Score     *int
	Dismissed bool
}

// GameEventRecord is a stored mini-game result.
type GameEventRecord struct {
	ID        string
	Sequence  int64
	Timestamp time.Time
	GameEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEventRecord is a stored LLM request.
type LLMRequestEventRecord struct {
	ID        string
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// Totals are lifetime counts across all runs.
type Totals struct {
	Pomodoros      int
	Breaks         int
	GamesPlayed    int
	GamesDismissed int
	FocusSeconds   int
	Runs           int
}

// Counted returns the games that count as played. Dismissed games are
// left out unless countDismissed is set.
func (t Totals) Counted(countDismissed bool) int {
	if countDismissed {
		return t.GamesPlayed
	}
	return t.GamesPlayed - t.GamesDismissed
}

// GameCount is the number of plays and best score for one game.
type GameCount struct {
	Game      string
	Plays     int
	BestScore *int
}

// EventRepo provides append and query access to journal events.
type EventRepo interface {
	AppendPomodoroEvent(ctx context.Context, data PomodoroEventData) error
	AppendGameEvent(ctx context.Context, data GameEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	QueryPomodoroEvents(ctx context.Context, opts QueryOpts) ([]PomodoroEventRecord, error)
	QueryGameEvents(ctx context.Context, opts QueryOpts) ([]GameEventRecord, error)
	QueryLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// Totals aggregates lifetime counts, optionally since a point in time.
	Totals(ctx context.Context, since time.Time) (Totals, error)

	// GameBreakdown returns per-game play counts, most played first.
	GameBreakdown(ctx context.Context) ([]GameCount, error)
}
