package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/pyraminx/internal/solver"
)

// Find returns the stored solution for a serialized body state.
// A missing row is reported as ok == false, not as an error.
func (s *Store) Find(ctx context.Context, state string) (string, bool, error) {
	var solution sql.NullString
	err := s.db.QueryRowContext(ctx,
		"SELECT solution FROM solutions WHERE state = ?",
		state,
	).Scan(&solution)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot query solution: %w", err)
	}

	return solution.String, true, nil
}

// Ensure Store can serve as the solver's lookup oracle
var _ solver.Lookup = (*Store)(nil)

// PutSolutions stores state -> solution pairs in a single transaction.
// States already present keep their existing solution.
// Returns the number of rows actually inserted.
func (s *Store) PutSolutions(ctx context.Context, entries map[string]string) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR IGNORE INTO solutions (state, solution) VALUES (?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for state, solution := range entries {
		res, err := stmt.ExecContext(ctx, state, solution)
		if err != nil {
			return 0, fmt.Errorf("storage: cannot insert solution: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("storage: cannot get affected rows: %w", err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit solutions: %w", err)
	}

	return inserted, nil
}

// CountSolutions returns the number of stored states.
func (s *Store) CountSolutions(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM solutions").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count solutions: %w", err)
	}
	return n, nil
}
