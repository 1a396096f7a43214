// Package store handles SQLite persistence of exercise attempts.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/parley/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps SQLite access for attempt history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY,
			exercise_id TEXT NOT NULL,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_attempts_exercise ON attempts(exercise_id, ended_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertAttempt stores a completed attempt and returns its id.
func (s *Store) InsertAttempt(ctx context.Context, a model.Attempt) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO attempts (exercise_id, started_at, ended_at, duration_ms) VALUES (?, ?, ?, ?)`,
		a.ExerciseID,
		a.StartedAt.UTC().Format(timeLayout),
		a.EndedAt.UTC().Format(timeLayout),
		a.DurationMs,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListAttempts returns attempts in chronological order filtered by exercise
// and start date. Last keeps only the most recent N.
func (s *Store) ListAttempts(ctx context.Context, filter model.HistoryFilter) ([]model.Attempt, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if filter.ExerciseID != "" {
		clauses = append(clauses, "exercise_id = ?")
		args = append(args, filter.ExerciseID)
	}
	if filter.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, filter.Since.UTC().Format(timeLayout))
	}
	query := fmt.Sprintf(`SELECT id, exercise_id, started_at, ended_at, duration_ms
		FROM attempts
		WHERE %s
		ORDER BY ended_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var attempts []model.Attempt
	for rows.Next() {
		var a model.Attempt
		var startedAt, endedAt string
		if err := rows.Scan(&a.ID, &a.ExerciseID, &startedAt, &endedAt, &a.DurationMs); err != nil {
			return nil, err
		}
		if a.StartedAt, err = time.Parse(timeLayout, startedAt); err != nil {
			return nil, err
		}
		if a.EndedAt, err = time.Parse(timeLayout, endedAt); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if filter.Last > 0 && len(attempts) > filter.Last {
		attempts = attempts[len(attempts)-filter.Last:]
	}
	return attempts, nil
}

// SamplesByExercise returns every attempt duration in seconds grouped by
// exercise, in chronological order.
func (s *Store) SamplesByExercise(ctx context.Context) (map[string][]float64, error) {
	attempts, err := s.ListAttempts(ctx, model.HistoryFilter{})
	if err != nil {
		return nil, err
	}
	out := map[string][]float64{}
	for _, a := range attempts {
		if a.DurationMs <= 0 {
			continue
		}
		out[a.ExerciseID] = append(out[a.ExerciseID], a.Seconds())
	}
	return out, nil
}

// DeleteExercise removes every attempt of an exercise and returns how many were removed.
func (s *Store) DeleteExercise(ctx context.Context, exerciseID string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM attempts WHERE exercise_id = ?`, exerciseID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
