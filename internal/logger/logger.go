package logger

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

var defaultLogger = New(os.Getenv("ENV"), os.Stdout)

// New builds a logger writing to w: JSON at info level in production,
// text at debug level otherwise.
func New(env string, w io.Writer) *slog.Logger {
	var handler slog.Handler
	if env == "production" {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	} else {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}
	return slog.New(handler)
}

// Init replaces the package and slog default loggers for env.
func Init(env string) *slog.Logger {
	defaultLogger = New(env, os.Stdout)
	slog.SetDefault(defaultLogger)
	return defaultLogger
}

// Logger returns the default logger
func Logger() *slog.Logger {
	return defaultLogger
}

type contextKey string

const runIDKey contextKey = "run_id"

// WithRunID tags ctx with the ID of a background job run.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// FromContext returns the default logger enriched with the chi request ID
// and job run ID found in ctx.
func FromContext(ctx context.Context) *slog.Logger {
	l := defaultLogger

	if requestID := middleware.GetReqID(ctx); requestID != "" {
		l = l.With("request_id", requestID)
	}

	if runID, ok := ctx.Value(runIDKey).(string); ok && runID != "" {
		l = l.With("run_id", runID)
	}

	return l
}

// Middleware logs one line per request. It must run after middleware.RequestID.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		FromContext(r.Context()).Log(r.Context(), level, "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

// Convenience functions

func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}
