package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wealthpath/serialdate/internal/service"
	"github.com/wealthpath/serialdate/pkg/datetime"
)

func TestRoutes_Mount(t *testing.T) {
	dates := new(MockDateService)
	dates.On("FromSerial", mock.Anything, 43891).Return(serialDate(43891, datetime.MustDate(2020, 3, 1)), nil)
	dates.On("Weekday", mock.Anything, datetime.MustDate(2020, 3, 2)).Return(serialDate(43892, datetime.MustDate(2020, 3, 2)), nil)
	syncSvc := new(MockSyncService)
	syncSvc.On("Status", mock.Anything).Return(&service.SyncStatus{Expected: 73415}, nil)

	exports := new(MockExportService)
	r := chi.NewRouter()
	Routes{
		Dates:     NewDateHandler(dates, exports),
		Calendar:  NewCalendarHandler(dates, exports),
		Sync:      NewSyncHandler(syncSvc),
		JWTSecret: "test-secret",
	}.Mount(r)

	token, err := service.GenerateToken("test-secret", "ops", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name     string
		method   string
		path     string
		token    string
		wantCode int
	}{
		{"health", http.MethodGet, "/api/health", "", http.StatusOK},
		{"serial lookup", http.MethodGet, "/api/dates/serial/43891", "", http.StatusOK},
		{"weekday", http.MethodGet, "/api/dates/2020-03-02/weekday", "", http.StatusOK},
		{"sync status without token", http.MethodGet, "/api/admin/sync/status", "", http.StatusUnauthorized},
		{"sync status with token", http.MethodGet, "/api/admin/sync/status", token, http.StatusOK},
		{"unknown route", http.MethodGet, "/api/rates", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestRoutes_MountWithoutSync(t *testing.T) {
	r := chi.NewRouter()
	Routes{
		Dates:    NewDateHandler(new(MockDateService), new(MockExportService)),
		Calendar: NewCalendarHandler(new(MockDateService), new(MockExportService)),
	}.Mount(r)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/sync", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "route /api/admin/sync not found", resp.Error)
}
