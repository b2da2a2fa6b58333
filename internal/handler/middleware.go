package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/wealthpath/serialdate/internal/apperror"
	"github.com/wealthpath/serialdate/internal/logger"
	"github.com/wealthpath/serialdate/internal/service"
)

type contextKey string

const subjectKey contextKey = "subject"

// AuthMiddleware rejects requests without a valid bearer token signed with secret.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
			if authHeader == "" || !found || tokenString == "" {
				respondAppError(w, apperror.Unauthorized("missing bearer token"))
				return
			}

			subject, err := service.ValidateToken(secret, tokenString)
			if err != nil {
				logger.FromContext(r.Context()).Warn("Rejected admin token", slog.String("path", r.URL.Path))
				respondAppError(w, apperror.Unauthorized("invalid token"))
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SubjectFromContext returns the token subject set by AuthMiddleware.
func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	return subject, ok
}
