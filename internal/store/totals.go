package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) Totals(ctx context.Context, since time.Time) (Totals, error) {
	var t Totals
	b := entsql.Dialect(dialect.SQLite)

	sinceMs := int64(0)
	if !since.IsZero() {
		sinceMs = since.UnixMilli()
	}

	work := b.Select(entsql.Count("*"), "COALESCE(SUM(work_seconds), 0)").
		From(entsql.Table(tablePomodoro)).
		Where(entsql.And(
			entsql.EQ("kind", string(PomodoroWorkComplete)),
			entsql.GTE("ts_ms", sinceMs),
		))
	if err := r.scanRow(ctx, work, &t.Pomodoros, &t.FocusSeconds); err != nil {
		return t, fmt.Errorf("count pomodoros: %w", err)
	}

	breaks := b.Select(entsql.Count("*")).
		From(entsql.Table(tablePomodoro)).
		Where(entsql.And(
			entsql.EQ("kind", string(PomodoroBreakComplete)),
			entsql.GTE("ts_ms", sinceMs),
		))
	if err := r.scanRow(ctx, breaks, &t.Breaks); err != nil {
		return t, fmt.Errorf("count breaks: %w", err)
	}

	played := b.Select(entsql.Count("*"), "COALESCE(SUM(dismissed), 0)").
		From(entsql.Table(tableGame)).
		Where(entsql.GTE("ts_ms", sinceMs))
	if err := r.scanRow(ctx, played, &t.GamesPlayed, &t.GamesDismissed); err != nil {
		return t, fmt.Errorf("count games: %w", err)
	}

	runs := b.Select("COUNT(DISTINCT run_id)").
		From(entsql.Table(tablePomodoro)).
		Where(entsql.GTE("ts_ms", sinceMs))
	if err := r.scanRow(ctx, runs, &t.Runs); err != nil {
		return t, fmt.Errorf("count runs: %w", err)
	}

	return t, nil
}

func (r *eventRepo) GameBreakdown(ctx context.Context) ([]GameCount, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select("game", entsql.As(entsql.Count("*"), "plays"), entsql.As(entsql.Max("score"), "best")).
		From(entsql.Table(tableGame)).
		Where(entsql.EQ("dismissed", 0)).
		GroupBy("game").
		OrderBy(entsql.Desc("plays"), "game")

	q, args := sel.Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, q, args, rows); err != nil {
		return nil, fmt.Errorf("query game breakdown: %w", err)
	}
	defer rows.Close()

	var out []GameCount
	for rows.Next() {
		var (
			gc   GameCount
			best sql.NullInt64
		)
		if err := rows.Scan(&gc.Game, &gc.Plays, &best); err != nil {
			return nil, fmt.Errorf("scan game breakdown: %w", err)
		}
		if best.Valid {
			n := int(best.Int64)
			gc.BestScore = &n
		}
		out = append(out, gc)
	}
	return out, rows.Err()
}

// scanRow runs a single-row query and scans it into dest.
func (r *eventRepo) scanRow(ctx context.Context, sel *entsql.Selector, dest ...any) error {
	q, args := sel.Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, q, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return sql.ErrNoRows
	}
	return rows.Scan(dest...)
}
