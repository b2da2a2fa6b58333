package repository

import (
	"context"

	"github.com/wealthpath/serialdate/internal/model"
	"github.com/wealthpath/serialdate/pkg/datetime"
)

// SerialDateRepositoryInterface is the storage of the serial_dates dimension table.
type SerialDateRepositoryInterface interface {
	EnsureSchema(ctx context.Context) error
	UpsertBatch(ctx context.Context, rows []model.SerialDate) (int, error)
	DeleteAbove(ctx context.Context, maxSerial int) (int, error)
	Count(ctx context.Context) (int, error)
	MaxSerial(ctx context.Context) (int, error)
	GetBySerial(ctx context.Context, serial int) (*model.SerialDate, error)
	GetByDate(ctx context.Context, date datetime.Date) (*model.SerialDate, error)
}

// SyncRunRepositoryInterface stores the history of dimension sync runs.
type SyncRunRepositoryInterface interface {
	Create(ctx context.Context, run *model.SyncRun) error
	Finish(ctx context.Context, run *model.SyncRun) error
	Last(ctx context.Context) (*model.SyncRun, error)
}
