package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wealthpath/serialdate/internal/service"
)

func TestAuthMiddleware(t *testing.T) {
	expired, err := service.GenerateToken("test-secret", "ops", -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantCode   int
	}{
		{
			name:       "missing authorization header",
			authHeader: "",
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "invalid authorization format - no bearer",
			authHeader: "invalid-token",
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "invalid authorization format - wrong prefix",
			authHeader: "Basic invalid-token",
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer invalid-jwt-token",
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			authHeader: "Bearer " + expired,
			wantCode:   http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware("test-secret")(next)
			req := httptest.NewRequest(http.MethodPost, "/api/admin/sync", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.False(t, nextCalled)
		})
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	token, err := service.GenerateToken("test-secret", "ops", time.Hour)
	require.NoError(t, err)

	var subject string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, _ = SubjectFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := AuthMiddleware("test-secret")(next)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/sync", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ops", subject)
}
