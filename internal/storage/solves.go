package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SolveRecord represents one solve attempt.
type SolveRecord struct {
	ID        int64
	AttemptID string
	Scramble  string
	Solution  string // Empty when nothing was found
	Found     bool
	Duration  time.Duration
	CreatedAt time.Time
}

// SolveStats contains aggregated statistics over the solve history.
type SolveStats struct {
	Attempts     int
	Solved       int
	AvgDuration  time.Duration
	BestDuration time.Duration
	LastSolve    time.Time
}

// SaveSolve records a solve attempt. A random attempt ID is assigned when
// rec.AttemptID is empty. Returns the ID of the inserted record.
func (s *Store) SaveSolve(ctx context.Context, rec *SolveRecord) (int64, error) {
	if rec.AttemptID == "" {
		rec.AttemptID = uuid.NewString()
	}
	found := 0
	if rec.Found {
		found = 1
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO solves (attempt_id, scramble, solution, found, duration_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.AttemptID,
		rec.Scramble,
		rec.Solution,
		found,
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	rec.ID = id

	return id, nil
}

// SolveByAttempt retrieves a solve by its attempt ID.
// Returns nil, nil when there is no such attempt.
func (s *Store) SolveByAttempt(ctx context.Context, attemptID string) (*SolveRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, attempt_id, scramble, solution, found, duration_ms, created_at
		 FROM solves
		 WHERE attempt_id = ?`,
		attemptID,
	)

	rec, err := scanSolve(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solve: %w", err)
	}
	return rec, nil
}

// RecentSolves retrieves the most recent solve attempts, newest first.
func (s *Store) RecentSolves(ctx context.Context, limit int) ([]SolveRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, attempt_id, scramble, solution, found, duration_ms, created_at
		 FROM solves
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var records []SolveRecord
	for rows.Next() {
		rec, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// GetSolveStats retrieves aggregated statistics over all attempts.
func (s *Store) GetSolveStats(ctx context.Context) (*SolveStats, error) {
	stats := &SolveStats{}

	var avgMs float64
	var bestMs int64
	var lastSolve any
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(found), 0),
		        COALESCE(AVG(duration_ms), 0),
		        COALESCE(MIN(CASE WHEN found THEN duration_ms END), 0),
		        MAX(created_at)
		 FROM solves`,
	).Scan(&stats.Attempts, &stats.Solved, &avgMs, &bestMs, &lastSolve)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get solve stats: %w", err)
	}

	stats.AvgDuration = time.Duration(avgMs * float64(time.Millisecond))
	stats.BestDuration = time.Duration(bestMs) * time.Millisecond
	stats.LastSolve = parseTime(lastSolve)

	return stats, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSolve(r rowScanner) (*SolveRecord, error) {
	var rec SolveRecord
	var durationMs int64
	var createdAt any

	if err := r.Scan(
		&rec.ID,
		&rec.AttemptID,
		&rec.Scramble,
		&rec.Solution,
		&rec.Found,
		&durationMs,
		&createdAt,
	); err != nil {
		return nil, err
	}

	rec.Duration = time.Duration(durationMs) * time.Millisecond
	rec.CreatedAt = parseTime(createdAt)
	return &rec, nil
}
