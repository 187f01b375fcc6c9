package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/desertthunder/plseed/internal/models"
	"github.com/desertthunder/plseed/internal/shared"
)

// RunRepository stores seeding runs and the outcome of every association call.
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new RunRepository with the given database connection
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create inserts a run. A missing ID is generated.
func (r *RunRepository) Create(run *models.Run) error {
	if run.ID == "" {
		run.ID = shared.GenerateID()
	}

	query := `
		INSERT INTO runs (id, base_url, email, playlist_count, track_count, status, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := r.db.Exec(query,
		run.ID,
		run.BaseURL,
		run.Email,
		run.PlaylistCount,
		run.TrackCount,
		run.Status,
		run.StartedAt,
	); err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	return nil
}

// Finish stamps the run's final status and finish time.
func (r *RunRepository) Finish(id string, status models.RunStatus) error {
	result, err := r.db.Exec(
		"UPDATE runs SET status = ?, finished_at = ? WHERE id = ?",
		status, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrRunNotFound, id)
	}

	return nil
}

// RecordOutcome appends an association outcome to a run.
func (r *RunRepository) RecordOutcome(runID string, o models.Outcome) error {
	query := `
		INSERT INTO associations (run_id, sequence, kind, parent_id, child_id, status_code, body, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := r.db.Exec(query,
		runID,
		o.Sequence,
		o.Kind,
		o.Parent,
		o.Child,
		o.StatusCode,
		string(o.Body),
		time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("failed to insert outcome: %w", err)
	}

	return nil
}

const runColumns = `
	r.id, r.base_url, r.email, r.playlist_count, r.track_count, r.status, r.started_at, r.finished_at,
	COUNT(a.id), COALESCE(SUM(CASE WHEN a.status_code = 200 THEN 1 ELSE 0 END), 0)
`

// Get retrieves a run by ID with its call counts.
func (r *RunRepository) Get(id string) (*models.Run, error) {
	query := `SELECT ` + runColumns + `
		FROM runs r
		LEFT JOIN associations a ON a.run_id = r.id
		WHERE r.id = ?
		GROUP BY r.id
	`

	run, err := scanRun(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", shared.ErrRunNotFound, id)
	}
	return run, err
}

// List returns the most recent runs first. A limit of zero or less returns every run.
func (r *RunRepository) List(limit int) ([]*models.Run, error) {
	query := `SELECT ` + runColumns + `
		FROM runs r
		LEFT JOIN associations a ON a.run_id = r.id
		GROUP BY r.id
		ORDER BY r.started_at DESC, r.rowid DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	runs := []*models.Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}

	return runs, nil
}

// Outcomes returns a run's association outcomes in call order.
func (r *RunRepository) Outcomes(runID string) ([]models.Outcome, error) {
	rows, err := r.db.Query(`
		SELECT sequence, kind, parent_id, child_id, status_code, body
		FROM associations
		WHERE run_id = ?
		ORDER BY sequence
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query outcomes: %w", err)
	}
	defer rows.Close()

	outcomes := []models.Outcome{}
	for rows.Next() {
		var o models.Outcome
		var kind, body string
		if err := rows.Scan(&o.Sequence, &kind, &o.Parent, &o.Child, &o.StatusCode, &body); err != nil {
			return nil, fmt.Errorf("failed to scan outcome: %w", err)
		}
		o.Kind = models.AssociationKind(kind)
		o.Body = []byte(body)
		outcomes = append(outcomes, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating outcomes: %w", err)
	}

	return outcomes, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*models.Run, error) {
	var run models.Run
	var status string
	var finishedAt sql.NullTime

	if err := s.Scan(
		&run.ID,
		&run.BaseURL,
		&run.Email,
		&run.PlaylistCount,
		&run.TrackCount,
		&status,
		&run.StartedAt,
		&finishedAt,
		&run.Calls,
		&run.Succeeded,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan run: %w", err)
	}

	run.Status = models.RunStatus(status)
	if finishedAt.Valid {
		run.FinishedAt = &finishedAt.Time
	}

	return &run, nil
}
