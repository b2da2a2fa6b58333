package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/wealthpath/serialdate/internal/model"
	"github.com/wealthpath/serialdate/pkg/datetime"
)

//go:embed schema.sql
var schemaSQL string

var ErrSerialDateNotFound = errors.New("serial date not found")

type SerialDateRepository struct {
	db *sqlx.DB
}

func NewSerialDateRepository(db *sqlx.DB) *SerialDateRepository {
	return &SerialDateRepository{db: db}
}

// EnsureSchema creates the dimension and sync run tables if they are missing.
func (r *SerialDateRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// UpsertBatch writes rows in a single transaction and returns the number written.
func (r *SerialDateRepository) UpsertBatch(ctx context.Context, rows []model.SerialDate) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin upsert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO serial_dates (serial, iso_date, year, month, day, weekday, is_weekend, is_end_of_month, synced_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (serial) DO UPDATE SET
			iso_date = EXCLUDED.iso_date,
			year = EXCLUDED.year,
			month = EXCLUDED.month,
			day = EXCLUDED.day,
			weekday = EXCLUDED.weekday,
			is_weekend = EXCLUDED.is_weekend,
			is_end_of_month = EXCLUDED.is_end_of_month,
			synced_at = EXCLUDED.synced_at`)
	if err != nil {
		return 0, fmt.Errorf("prepare upsert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx,
			row.Serial, row.Date, row.Year, row.Month, row.Day,
			int(row.Weekday), row.IsWeekend, row.IsEndOfMonth,
		); err != nil {
			return 0, fmt.Errorf("upsert serial %d: %w", row.Serial, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit upsert: %w", err)
	}
	return len(rows), nil
}

// DeleteAbove removes rows whose serial exceeds maxSerial.
func (r *SerialDateRepository) DeleteAbove(ctx context.Context, maxSerial int) (int, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM serial_dates WHERE serial > $1`, maxSerial)
	if err != nil {
		return 0, fmt.Errorf("delete serials above %d: %w", maxSerial, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (r *SerialDateRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM serial_dates`); err != nil {
		return 0, fmt.Errorf("count serial dates: %w", err)
	}
	return n, nil
}

func (r *SerialDateRepository) MaxSerial(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COALESCE(MAX(serial), 0) FROM serial_dates`); err != nil {
		return 0, fmt.Errorf("max serial: %w", err)
	}
	return n, nil
}

const selectSerialDate = `
	SELECT serial, iso_date, year, month, day, weekday, is_weekend, is_end_of_month
	FROM serial_dates`

func (r *SerialDateRepository) GetBySerial(ctx context.Context, serial int) (*model.SerialDate, error) {
	var row model.SerialDate
	err := r.db.GetContext(ctx, &row, selectSerialDate+` WHERE serial = $1`, serial)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSerialDateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get serial %d: %w", serial, err)
	}
	return &row, nil
}

func (r *SerialDateRepository) GetByDate(ctx context.Context, date datetime.Date) (*model.SerialDate, error) {
	var row model.SerialDate
	err := r.db.GetContext(ctx, &row, selectSerialDate+` WHERE iso_date = $1`, date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSerialDateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get date %v: %w", date, err)
	}
	return &row, nil
}
