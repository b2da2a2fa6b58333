package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/wealthpath/serialdate/internal/logger"
	"github.com/wealthpath/serialdate/internal/metrics"
	"github.com/wealthpath/serialdate/internal/model"
	"github.com/wealthpath/serialdate/internal/repository"
	"github.com/wealthpath/serialdate/pkg/datetime"
)

// DefaultSyncBatchSize is the number of rows per upsert transaction.
const DefaultSyncBatchSize = 1000

// Sync triggers
const (
	TriggerSchedule = "schedule"
	TriggerManual   = "manual"
	TriggerCLI      = "cli"
)

// SyncStatus compares the serial_dates table with the registry.
type SyncStatus struct {
	Expected    int            `json:"expected"`
	Stored      int            `json:"stored"`
	MaxStored   int            `json:"maxStored"`
	BoundsMatch bool           `json:"boundsMatch"`
	InSync      bool           `json:"inSync"`
	LastRun     *model.SyncRun `json:"lastRun,omitempty"`
}

// SyncService materialises the registry into the serial_dates table.
type SyncService struct {
	repo      repository.SerialDateRepositoryInterface
	runs      repository.SyncRunRepositoryInterface
	registry  *datetime.Registry
	metrics   *metrics.Metrics
	batchSize int
	retry     RetryConfig
}

// NewSyncService creates a SyncService. A nil registry means datetime.Default().
func NewSyncService(
	repo repository.SerialDateRepositoryInterface,
	runs repository.SyncRunRepositoryInterface,
	registry *datetime.Registry,
	m *metrics.Metrics,
	batchSize int,
) *SyncService {
	if registry == nil {
		registry = datetime.Default()
	}
	if batchSize <= 0 {
		batchSize = DefaultSyncBatchSize
	}
	return &SyncService{
		repo:      repo,
		runs:      runs,
		registry:  registry,
		metrics:   m,
		batchSize: batchSize,
		retry:     DefaultRetryConfig(),
	}
}

// WithRetry replaces the retry policy applied to each batch upsert.
func (s *SyncService) WithRetry(cfg RetryConfig) *SyncService {
	s.retry = cfg
	return s
}

// Sync upserts every registry date and removes rows beyond the registry's
// last serial. Running it twice leaves the table unchanged.
func (s *SyncService) Sync(ctx context.Context, trigger string) (*model.SyncRun, error) {
	run := &model.SyncRun{
		ID:        uuid.New(),
		Status:    model.SyncStatusRunning,
		Trigger:   trigger,
		StartedAt: time.Now().UTC(),
	}
	ctx = logger.WithRunID(ctx, run.ID.String())
	log := logger.FromContext(ctx)

	if err := s.runs.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("record sync run: %w", err)
	}
	log.Info("Sync started", slog.String("trigger", trigger), slog.Int("expected", s.registry.MaxSerial()))

	written, syncErr := s.upsertAll(ctx)
	run.RowsWritten = written
	if syncErr == nil {
		var deleted int
		deleted, syncErr = s.repo.DeleteAbove(ctx, s.registry.MaxSerial())
		if deleted > 0 {
			log.Warn("Removed serials beyond registry", slog.Int("deleted", deleted))
		}
	}

	finished := time.Now().UTC()
	run.FinishedAt = &finished
	outcome := "ok"
	if syncErr != nil {
		outcome = "error"
		run.Status = model.SyncStatusFailed
		msg := syncErr.Error()
		run.Error = &msg
	} else {
		run.Status = model.SyncStatusSucceeded
	}
	s.metrics.ObserveSync(outcome, written, finished.Sub(run.StartedAt))

	// The run row is written even when ctx has timed out.
	if err := s.runs.Finish(context.WithoutCancel(ctx), run); err != nil {
		log.Error("Failed to record sync result", slog.String("error", err.Error()))
	}

	if syncErr != nil {
		log.Error("Sync failed",
			slog.String("error", syncErr.Error()),
			slog.Int("rows_written", written),
		)
		return run, fmt.Errorf("sync serial dates: %w", syncErr)
	}

	log.Info("Sync completed",
		slog.Int("rows_written", written),
		slog.Duration("duration", finished.Sub(run.StartedAt)),
	)
	return run, nil
}

func (s *SyncService) upsertAll(ctx context.Context) (int, error) {
	maxSerial := s.registry.MaxSerial()
	batch := make([]model.SerialDate, 0, s.batchSize)
	written := 0

	for first := 1; first <= maxSerial; first += s.batchSize {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		batch = batch[:0]
		last := min(first+s.batchSize-1, maxSerial)
		for serial := first; serial <= last; serial++ {
			cd, err := s.registry.FromSerial(serial)
			if err != nil {
				return written, err
			}
			d, err := datetime.NewDate(cd.Year, cd.Month, cd.Day)
			if err != nil {
				return written, err
			}
			batch = append(batch, model.NewSerialDate(serial, d))
		}
		err := withRetry(ctx, s.retry, logger.FromContext(ctx), func() error {
			n, err := s.repo.UpsertBatch(ctx, batch)
			if err == nil {
				written += n
			}
			return err
		})
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// Status reports how the stored table compares with the registry. The table
// is in sync when it holds exactly the registry's serials and its first and
// last rows carry the registry's dates.
func (s *SyncService) Status(ctx context.Context) (*SyncStatus, error) {
	expected := s.registry.MaxSerial()
	status := &SyncStatus{Expected: expected}

	var err error
	if status.Stored, err = s.repo.Count(ctx); err != nil {
		return nil, err
	}
	if status.MaxStored, err = s.repo.MaxSerial(ctx); err != nil {
		return nil, err
	}

	status.BoundsMatch, err = s.boundsMatch(ctx)
	if err != nil {
		return nil, err
	}
	status.InSync = status.Stored == expected && status.MaxStored == expected && status.BoundsMatch

	last, err := s.runs.Last(ctx)
	switch {
	case errors.Is(err, repository.ErrSyncRunNotFound):
	case err != nil:
		return nil, err
	default:
		status.LastRun = last
	}
	return status, nil
}

func (s *SyncService) boundsMatch(ctx context.Context) (bool, error) {
	cd, err := s.registry.FromSerial(1)
	if err != nil {
		return false, err
	}
	first, err := datetime.NewDate(cd.Year, cd.Month, cd.Day)
	if err != nil {
		return false, err
	}
	row, err := s.repo.GetByDate(ctx, first)
	if errors.Is(err, repository.ErrSerialDateNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if row.Serial != 1 {
		return false, nil
	}

	maxSerial := s.registry.MaxSerial()
	cd, err = s.registry.FromSerial(maxSerial)
	if err != nil {
		return false, err
	}
	row, err = s.repo.GetBySerial(ctx, maxSerial)
	if errors.Is(err, repository.ErrSerialDateNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return row.Date.CalendarDate() == cd, nil
}
