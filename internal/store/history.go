package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver registration.

	"dealsync/internal/model"
	"dealsync/migrations"
)

// History records one row per sync pass in a SQLite database.
type History struct {
	db *sql.DB
}

// OpenHistory opens the run ledger at dsn and runs pending migrations.
func OpenHistory(dsn string) (*History, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	if err := migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &History{db: db}, nil
}

// Close closes the underlying database connection.
func (h *History) Close() error {
	return h.db.Close()
}

// RecordRun inserts a finished sync pass and populates its ID.
func (h *History) RecordRun(ctx context.Context, run *model.SyncRun) error {
	if run.FinishedAt == "" {
		run.FinishedAt = time.Now().UTC().Format(timeLayout)
	}
	res, err := h.db.ExecContext(ctx,
		`INSERT INTO sync_runs (started_at, finished_at, fetched, added, total, trigger_kind)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.StartedAt, run.FinishedAt, run.Fetched, run.Added, run.Total, run.Trigger,
	)
	if err != nil {
		return fmt.Errorf("insert sync run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	run.ID = id
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (h *History) ListRuns(ctx context.Context, limit int) ([]model.SyncRun, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT id, started_at, finished_at, fetched, added, total, trigger_kind
		 FROM sync_runs ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query sync runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []model.SyncRun
	for rows.Next() {
		var r model.SyncRun
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.FinishedAt, &r.Fetched, &r.Added, &r.Total, &r.Trigger); err != nil {
			return nil, fmt.Errorf("scan sync run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
