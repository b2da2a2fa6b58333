package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/wealthpath/serialdate/internal/model"
)

var ErrSyncRunNotFound = errors.New("sync run not found")

type SyncRunRepository struct {
	db *sqlx.DB
}

func NewSyncRunRepository(db *sqlx.DB) *SyncRunRepository {
	return &SyncRunRepository{db: db}
}

func (r *SyncRunRepository) Create(ctx context.Context, run *model.SyncRun) error {
	query := `
		INSERT INTO serial_date_sync_runs (id, status, trigger, rows_written, started_at)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecContext(ctx, query, run.ID, run.Status, run.Trigger, run.RowsWritten, run.StartedAt); err != nil {
		return fmt.Errorf("create sync run: %w", err)
	}
	return nil
}

func (r *SyncRunRepository) Finish(ctx context.Context, run *model.SyncRun) error {
	query := `
		UPDATE serial_date_sync_runs
		SET status = $2, rows_written = $3, error = $4, finished_at = $5
		WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, run.ID, run.Status, run.RowsWritten, run.Error, run.FinishedAt)
	if err != nil {
		return fmt.Errorf("finish sync run: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSyncRunNotFound
	}
	return nil
}

// Last returns the most recently started run.
func (r *SyncRunRepository) Last(ctx context.Context) (*model.SyncRun, error) {
	var run model.SyncRun
	query := `
		SELECT id, status, trigger, rows_written, error, started_at, finished_at
		FROM serial_date_sync_runs
		ORDER BY started_at DESC
		LIMIT 1`
	err := r.db.GetContext(ctx, &run, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSyncRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("last sync run: %w", err)
	}
	return &run, nil
}
