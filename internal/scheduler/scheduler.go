// Package scheduler provides cron-based scheduling of the serial_dates dimension sync.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/wealthpath/serialdate/internal/model"
	"github.com/wealthpath/serialdate/internal/service"
)

// Config holds the scheduler configuration
type Config struct {
	// Schedule is a cron expression for when to run the sync (e.g., "0 3 * * *" for daily at 03:00)
	Schedule string
	// Timeout is the maximum duration for one complete sync run
	Timeout time.Duration
	// Enabled determines if the scheduler should run
	Enabled bool
}

// DefaultConfig returns the default scheduler configuration
func DefaultConfig() Config {
	return Config{
		Schedule: "0 3 * * *",
		Timeout:  2 * time.Minute,
		Enabled:  true,
	}
}

// Syncer runs one dimension sync.
type Syncer interface {
	Sync(ctx context.Context, trigger string) (*model.SyncRun, error)
}

// Scheduler manages the scheduled sync job
type Scheduler struct {
	cron    *cron.Cron
	syncer  Syncer
	config  Config
	logger  *slog.Logger
	entryID cron.EntryID
}

// New creates a new Scheduler instance
func New(cfg Config, syncer Syncer, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		syncer: syncer,
		config: cfg,
		logger: logger,
	}
}

// Start begins the scheduler
func (s *Scheduler) Start() error {
	if !s.config.Enabled {
		s.logger.Info("Scheduler is disabled, skipping start")
		return nil
	}

	// Standard 5 field cron gets a leading seconds field
	entryID, err := s.cron.AddFunc("0 "+s.config.Schedule, func() {
		s.runSyncJob(service.TriggerSchedule)
	})
	if err != nil {
		return err
	}

	s.entryID = entryID
	s.cron.Start()

	s.logger.Info("Scheduler started",
		slog.String("schedule", s.config.Schedule),
		slog.Duration("timeout", s.config.Timeout),
	)

	return nil
}

// Stop stops the scheduler. The returned context is done once a running job finishes.
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("Stopping scheduler...")
	return s.cron.Stop()
}

// RunNow triggers an immediate sync in the background
func (s *Scheduler) RunNow() {
	go s.runSyncJob(service.TriggerManual)
}

func (s *Scheduler) runSyncJob(trigger string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Timeout)
	defer cancel()

	startTime := time.Now()
	run, err := s.syncer.Sync(ctx, trigger)
	duration := time.Since(startTime)

	if err != nil {
		s.logger.Error("Sync job failed",
			slog.String("trigger", trigger),
			slog.String("error", err.Error()),
			slog.Duration("duration", duration),
		)
		return
	}

	s.logger.Info("Sync job completed",
		slog.String("run_id", run.ID.String()),
		slog.Int("rows_written", run.RowsWritten),
		slog.Duration("duration", duration),
	)
}

// GetNextRunTime returns the next scheduled run time
func (s *Scheduler) GetNextRunTime() time.Time {
	if s.entryID == 0 {
		return time.Time{}
	}
	return s.cron.Entry(s.entryID).Next
}

// GetLastRunTime returns the last run time
func (s *Scheduler) GetLastRunTime() time.Time {
	if s.entryID == 0 {
		return time.Time{}
	}
	return s.cron.Entry(s.entryID).Prev
}

// IsRunning returns true if the scheduler has a job registered
func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}
