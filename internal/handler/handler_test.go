package handler

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/wealthpath/serialdate/internal/model"
	"github.com/wealthpath/serialdate/internal/service"
	"github.com/wealthpath/serialdate/pkg/datetime"
)

// MockDateService is a mock implementation of DateServiceInterface
type MockDateService struct {
	mock.Mock
}

func (m *MockDateService) ToSerial(ctx context.Context, year, month, day int) (*model.SerialDate, error) {
	args := m.Called(ctx, year, month, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SerialDate), args.Error(1)
}

func (m *MockDateService) FromSerial(ctx context.Context, serial int) (*model.SerialDate, error) {
	args := m.Called(ctx, serial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SerialDate), args.Error(1)
}

func (m *MockDateService) Validate(ctx context.Context, year, month, day int) bool {
	return m.Called(ctx, year, month, day).Bool(0)
}

func (m *MockDateService) AddDays(ctx context.Context, d datetime.Date, n int) (*model.SerialDate, error) {
	args := m.Called(ctx, d, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SerialDate), args.Error(1)
}

func (m *MockDateService) AddTenor(ctx context.Context, d datetime.Date, tenor string) (*model.SerialDate, error) {
	args := m.Called(ctx, d, tenor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SerialDate), args.Error(1)
}

func (m *MockDateService) Weekday(ctx context.Context, d datetime.Date) (*model.SerialDate, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SerialDate), args.Error(1)
}

func (m *MockDateService) Diff(ctx context.Context, start, end datetime.Date) (*service.DiffResult, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DiffResult), args.Error(1)
}

func (m *MockDateService) Range(ctx context.Context, start, end datetime.Date) ([]model.SerialDate, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SerialDate), args.Error(1)
}

func (m *MockDateService) MonthCalendar(ctx context.Context, year, month int) (*service.CalendarMonth, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CalendarMonth), args.Error(1)
}

func (m *MockDateService) Info(ctx context.Context) (*service.RegistryInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RegistryInfo), args.Error(1)
}

// MockExportService is a mock implementation of ExportServiceInterface
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportRangeCSV(ctx context.Context, start, end datetime.Date) ([]byte, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockExportService) ExportMonthPDF(ctx context.Context, year, month int) ([]byte, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockSyncService is a mock implementation of SyncServiceInterface
type MockSyncService struct {
	mock.Mock
}

func (m *MockSyncService) Sync(ctx context.Context, trigger string) (*model.SyncRun, error) {
	args := m.Called(ctx, trigger)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SyncRun), args.Error(1)
}

func (m *MockSyncService) Status(ctx context.Context) (*service.SyncStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SyncStatus), args.Error(1)
}

// serve routes a single request through a chi router so URL params resolve.
func serve(method, pattern string, h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
