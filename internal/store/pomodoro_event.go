package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

var pomodoroColumns = []string{"run_id", "kind", "work_seconds"}

func (r *eventRepo) AppendPomodoroEvent(ctx context.Context, data PomodoroEventData) error {
	return r.insert(ctx, tablePomodoro, pomodoroColumns,
		[]any{data.RunID, string(data.Kind), data.WorkSeconds})
}

func (r *eventRepo) QueryPomodoroEvents(ctx context.Context, opts QueryOpts) ([]PomodoroEventRecord, error) {
	q, args := selectEvents(tablePomodoro, pomodoroColumns, opts, true)

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, q, args, rows); err != nil {
		return nil, fmt.Errorf("query pomodoro events: %w", err)
	}
	defer rows.Close()

	var out []PomodoroEventRecord
	for rows.Next() {
		var (
			rec  PomodoroEventRecord
			ts   int64
			kind string
		)
		if err := rows.Scan(&rec.ID, &rec.Sequence, &ts, &rec.RunID, &kind, &rec.WorkSeconds); err != nil {
			return nil, fmt.Errorf("scan pomodoro event: %w", err)
		}
		rec.Timestamp = time.UnixMilli(ts)
		rec.Kind = PomodoroKind(kind)
		out = append(out, rec)
	}
	return out, rows.Err()
}
