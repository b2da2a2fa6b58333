package service

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/lib/pq"
)

// RetryConfig controls how a sync batch is retried after a transient
// database error.
type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// DefaultRetryConfig returns the retry configuration used by NewSyncService.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  3,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     5 * time.Second,
		Multiplier:   2.0,
	}
}

// withRetry calls fn until it succeeds, returns an error that is not
// retryable, or runs out of attempts. The delay between attempts grows
// exponentially with up to 25% jitter.
func withRetry(ctx context.Context, cfg RetryConfig, logger *slog.Logger, fn func() error) error {
	attempts := max(cfg.MaxAttempts, 1)
	delay := cfg.InitialDelay

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !isRetryableError(lastErr) {
			return lastErr
		}
		if logger != nil {
			logger.Warn("Batch attempt failed",
				slog.Int("attempt", attempt),
				slog.Int("max_attempts", attempts),
				slog.String("error", lastErr.Error()),
			)
		}
		if attempt == attempts {
			break
		}

		wait := delay
		if delay >= 4 {
			wait += rand.N(delay / 4)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}

		delay = min(time.Duration(float64(delay)*cfg.Multiplier), cfg.MaxDelay)
	}

	return fmt.Errorf("all %d attempts failed: %w", attempts, lastErr)
}

// isRetryableError reports whether err is a transient database failure:
// a dropped connection, a serialization failure or deadlock, or the server
// shutting down.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch pqErr.Code.Class() {
	case "08", "40": // connection_exception, transaction_rollback
		return true
	}
	switch pqErr.Code.Name() {
	case "admin_shutdown", "crash_shutdown", "cannot_connect_now":
		return true
	}
	return false
}
