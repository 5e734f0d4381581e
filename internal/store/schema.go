package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	entschema "entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	tablePomodoro = "pomodoro_events"
	tableGame     = "game_events"
	tableLLM      = "llm_request_events"
)

var journalTables = []string{tablePomodoro, tableGame, tableLLM}

// Every event row carries the global sequence so history can be merged
// across tables.
var (
	pomodoroEventColumns = []*entschema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "ts_ms", Type: field.TypeInt64},
		{Name: "run_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "work_seconds", Type: field.TypeInt, Default: 0},
	}
	pomodoroEventTable = &entschema.Table{
		Name:       tablePomodoro,
		Columns:    pomodoroEventColumns,
		PrimaryKey: []*entschema.Column{pomodoroEventColumns[0]},
		Indexes: []*entschema.Index{
			{Name: "idx_pomodoro_events_ts", Columns: []*entschema.Column{pomodoroEventColumns[2]}},
		},
	}

	gameEventColumns = []*entschema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "ts_ms", Type: field.TypeInt64},
		{Name: "run_id", Type: field.TypeString},
		{Name: "game", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt, Nullable: true},
		{Name: "dismissed", Type: field.TypeInt, Default: 0},
	}
	gameEventTable = &entschema.Table{
		Name:       tableGame,
		Columns:    gameEventColumns,
		PrimaryKey: []*entschema.Column{gameEventColumns[0]},
		Indexes: []*entschema.Index{
			{Name: "idx_game_events_ts", Columns: []*entschema.Column{gameEventColumns[2]}},
		},
	}

	llmEventColumns = []*entschema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "ts_ms", Type: field.TypeInt64},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeInt},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	llmEventTable = &entschema.Table{
		Name:       tableLLM,
		Columns:    llmEventColumns,
		PrimaryKey: []*entschema.Column{llmEventColumns[0]},
	}

	schemaTables = []*entschema.Table{pomodoroEventTable, gameEventTable, llmEventTable}
)

// migrate creates or upgrades the journal tables.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := entschema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	if err := m.Create(ctx, schemaTables...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}
