package handler

import (
	"context"

	"github.com/wealthpath/serialdate/internal/model"
	"github.com/wealthpath/serialdate/internal/service"
	"github.com/wealthpath/serialdate/pkg/datetime"
)

// DateServiceInterface for handler testing
type DateServiceInterface interface {
	ToSerial(ctx context.Context, year, month, day int) (*model.SerialDate, error)
	FromSerial(ctx context.Context, serial int) (*model.SerialDate, error)
	Validate(ctx context.Context, year, month, day int) bool
	AddDays(ctx context.Context, d datetime.Date, n int) (*model.SerialDate, error)
	AddTenor(ctx context.Context, d datetime.Date, tenor string) (*model.SerialDate, error)
	Weekday(ctx context.Context, d datetime.Date) (*model.SerialDate, error)
	Diff(ctx context.Context, start, end datetime.Date) (*service.DiffResult, error)
	Range(ctx context.Context, start, end datetime.Date) ([]model.SerialDate, error)
	MonthCalendar(ctx context.Context, year, month int) (*service.CalendarMonth, error)
	Info(ctx context.Context) (*service.RegistryInfo, error)
}

// ExportServiceInterface for handler testing
type ExportServiceInterface interface {
	ExportRangeCSV(ctx context.Context, start, end datetime.Date) ([]byte, error)
	ExportMonthPDF(ctx context.Context, year, month int) ([]byte, error)
}

// SyncServiceInterface for handler testing
type SyncServiceInterface interface {
	Sync(ctx context.Context, trigger string) (*model.SyncRun, error)
	Status(ctx context.Context) (*service.SyncStatus, error)
}
