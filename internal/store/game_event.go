package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

var gameColumns = []string{"run_id", "game", "score", "dismissed"}

func (r *eventRepo) AppendGameEvent(ctx context.Context, data GameEventData) error {
	var score any
	if data.Score != nil {
		score = *data.Score
	}
	return r.insert(ctx, tableGame, gameColumns,
		[]any{data.RunID, data.Game, score, boolInt(data.Dismissed)})
}

func (r *eventRepo) QueryGameEvents(ctx context.Context, opts QueryOpts) ([]GameEventRecord, error) {
	q, args := selectEvents(tableGame, gameColumns, opts, true)

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, q, args, rows); err != nil {
		return nil, fmt.Errorf("query game events: %w", err)
	}
	defer rows.Close()

	var out []GameEventRecord
	for rows.Next() {
		var (
			rec       GameEventRecord
			ts        int64
			score     sql.NullInt64
			dismissed int64
		)
		if err := rows.Scan(&rec.ID, &rec.Sequence, &ts, &rec.RunID, &rec.Game, &score, &dismissed); err != nil {
			return nil, fmt.Errorf("scan game event: %w", err)
		}
		rec.Timestamp = time.UnixMilli(ts)
		rec.Dismissed = dismissed != 0
		if score.Valid {
			n := int(score.Int64)
			rec.Score = &n
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
