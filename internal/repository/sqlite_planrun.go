// Package repository persists planning-run history in SQLite.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/sprintplan/internal/domain"
)

// PlanRunRepo stores and lists planning-run records.
type PlanRunRepo interface {
	Create(ctx context.Context, run *domain.PlanRun) error
	List(ctx context.Context, limit int) ([]*domain.PlanRun, error)
}

// SQLitePlanRunRepo implements PlanRunRepo using a SQLite database.
type SQLitePlanRunRepo struct {
	db *sql.DB
}

// NewSQLitePlanRunRepo creates a new SQLitePlanRunRepo.
func NewSQLitePlanRunRepo(db *sql.DB) *SQLitePlanRunRepo {
	return &SQLitePlanRunRepo{db: db}
}

func (r *SQLitePlanRunRepo) Create(ctx context.Context, run *domain.PlanRun) error {
	query := `INSERT INTO plan_runs (id, created_at, status, objective, delivered_value, active_people, stories_selected, stories_eligible, data_dir, out_dir)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.CreatedAt.UTC().Format(time.RFC3339),
		run.Status,
		run.Objective,
		run.DeliveredValue,
		run.ActivePeople,
		run.StoriesSelected,
		run.StoriesEligible,
		run.DataDir,
		run.OutDir,
	)
	if err != nil {
		return fmt.Errorf("inserting plan run: %w", err)
	}
	return nil
}

func (r *SQLitePlanRunRepo) List(ctx context.Context, limit int) ([]*domain.PlanRun, error) {
	query := `SELECT id, created_at, status, objective, delivered_value, active_people, stories_selected, stories_eligible, data_dir, out_dir
		FROM plan_runs ORDER BY created_at DESC, id LIMIT ?`
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing plan runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.PlanRun
	for rows.Next() {
		var run domain.PlanRun
		var createdAt string
		if err := rows.Scan(
			&run.ID,
			&createdAt,
			&run.Status,
			&run.Objective,
			&run.DeliveredValue,
			&run.ActivePeople,
			&run.StoriesSelected,
			&run.StoriesEligible,
			&run.DataDir,
			&run.OutDir,
		); err != nil {
			return nil, fmt.Errorf("scanning plan run: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			run.CreatedAt = t
		}
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan runs: %w", err)
	}
	return runs, nil
}
