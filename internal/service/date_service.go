package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wealthpath/serialdate/internal/metrics"
	"github.com/wealthpath/serialdate/internal/model"
	"github.com/wealthpath/serialdate/pkg/datetime"
)

// DefaultMaxRangeDays caps Range when no limit is configured.
const DefaultMaxRangeDays = 3660

// DiffResult is the distance between two dates.
type DiffResult struct {
	Start        datetime.Date   `json:"start"`
	End          datetime.Date   `json:"end"`
	Days         int             `json:"days"`
	YearFraction decimal.Decimal `json:"yearFraction"`
}

// CalendarWeek runs Monday to Sunday. Days outside the month are nil.
type CalendarWeek [7]*model.SerialDate

// CalendarMonth is a month laid out in weeks.
type CalendarMonth struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Days  int            `json:"days"`
	Weeks []CalendarWeek `json:"weeks"`
}

// RegistryInfo describes the range served by a DateService.
type RegistryInfo struct {
	StartYear int           `json:"startYear"`
	EndYear   int           `json:"endYear"`
	MinSerial int           `json:"minSerial"`
	MaxSerial int           `json:"maxSerial"`
	FirstDate datetime.Date `json:"firstDate"`
	LastDate  datetime.Date `json:"lastDate"`
}

// DateService answers serial date queries against a registry.
type DateService struct {
	registry     *datetime.Registry
	metrics      *metrics.Metrics
	maxRangeDays int
}

// NewDateService creates a DateService. A nil registry means datetime.Default().
func NewDateService(registry *datetime.Registry, m *metrics.Metrics, maxRangeDays int) *DateService {
	if registry == nil {
		registry = datetime.Default()
	}
	if maxRangeDays <= 0 {
		maxRangeDays = DefaultMaxRangeDays
	}
	m.SetRegistrySize(registry.MaxSerial())
	return &DateService{registry: registry, metrics: m, maxRangeDays: maxRangeDays}
}

// Registry returns the registry backing the service.
func (s *DateService) Registry() *datetime.Registry {
	return s.registry
}

func (s *DateService) observe(op string, start time.Time, err error) {
	s.metrics.ObserveOperation(op, outcomeOf(err), time.Since(start))
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, datetime.ErrInvalidInput):
		return "invalid"
	case errors.Is(err, datetime.ErrDateOutOfRange), errors.Is(err, datetime.ErrSerialOutOfRange):
		return "out_of_range"
	default:
		return "error"
	}
}

func (s *DateService) serialOf(d datetime.Date) (int, error) {
	if d.IsZero() {
		return 0, fmt.Errorf("zero date: %w", datetime.ErrDateOutOfRange)
	}
	return s.registry.ToSerial(d.Year(), d.Month(), d.Day())
}

func (s *DateService) dateOf(serial int) (datetime.Date, error) {
	cd, err := s.registry.FromSerial(serial)
	if err != nil {
		return datetime.Date{}, err
	}
	return datetime.NewDate(cd.Year, cd.Month, cd.Day)
}

func (s *DateService) describe(d datetime.Date) (*model.SerialDate, error) {
	serial, err := s.serialOf(d)
	if err != nil {
		return nil, err
	}
	row := model.NewSerialDate(serial, d)
	return &row, nil
}

// ToSerial returns the serial date for year, month and day.
func (s *DateService) ToSerial(ctx context.Context, year, month, day int) (result *model.SerialDate, err error) {
	defer func(start time.Time) { s.observe("to_serial", start, err) }(time.Now())

	serial, err := s.registry.ToSerial(year, month, day)
	if err != nil {
		return nil, err
	}
	d, err := datetime.NewDate(year, month, day)
	if err != nil {
		return nil, err
	}
	row := model.NewSerialDate(serial, d)
	return &row, nil
}

// FromSerial returns the date with the given serial.
func (s *DateService) FromSerial(ctx context.Context, serial int) (result *model.SerialDate, err error) {
	defer func(start time.Time) { s.observe("from_serial", start, err) }(time.Now())

	d, err := s.dateOf(serial)
	if err != nil {
		return nil, err
	}
	row := model.NewSerialDate(serial, d)
	return &row, nil
}

// Validate reports whether the date exists in the registry.
func (s *DateService) Validate(ctx context.Context, year, month, day int) bool {
	start := time.Now()
	valid := s.registry.IsValidDate(year, month, day)
	s.metrics.ObserveOperation("validate", "ok", time.Since(start))
	return valid
}

// AddDays moves d by n days.
func (s *DateService) AddDays(ctx context.Context, d datetime.Date, n int) (result *model.SerialDate, err error) {
	defer func(start time.Time) { s.observe("add_days", start, err) }(time.Now())

	serial, err := s.serialOf(d)
	if err != nil {
		return nil, err
	}
	moved, err := s.dateOf(serial + n)
	if err != nil {
		return nil, err
	}
	row := model.NewSerialDate(serial+n, moved)
	return &row, nil
}

// AddTenor moves d by a tenor such as "3M".
func (s *DateService) AddTenor(ctx context.Context, d datetime.Date, tenor string) (result *model.SerialDate, err error) {
	defer func(start time.Time) { s.observe("add_tenor", start, err) }(time.Now())

	if _, err = s.serialOf(d); err != nil {
		return nil, err
	}
	moved, err := d.AddTenor(tenor)
	if err != nil {
		return nil, err
	}
	return s.describe(moved)
}

// Weekday returns d with its serial and weekday.
func (s *DateService) Weekday(ctx context.Context, d datetime.Date) (result *model.SerialDate, err error) {
	defer func(start time.Time) { s.observe("weekday", start, err) }(time.Now())

	return s.describe(d)
}

// Diff returns the signed distance from start to end.
func (s *DateService) Diff(ctx context.Context, start, end datetime.Date) (result *DiffResult, err error) {
	defer func(began time.Time) { s.observe("diff", began, err) }(time.Now())

	from, err := s.serialOf(start)
	if err != nil {
		return nil, err
	}
	to, err := s.serialOf(end)
	if err != nil {
		return nil, err
	}
	days := to - from
	return &DiffResult{
		Start:        start,
		End:          end,
		Days:         days,
		YearFraction: datetime.YearFractionDays(days),
	}, nil
}

// Range returns every date from start to end inclusive.
func (s *DateService) Range(ctx context.Context, start, end datetime.Date) (result []model.SerialDate, err error) {
	defer func(began time.Time) { s.observe("range", began, err) }(time.Now())

	from, err := s.serialOf(start)
	if err != nil {
		return nil, err
	}
	to, err := s.serialOf(end)
	if err != nil {
		return nil, err
	}
	if to < from {
		return nil, fmt.Errorf("range end %v before start %v: %w", end, start, datetime.ErrInvalidInput)
	}
	if n := to - from + 1; n > s.maxRangeDays {
		return nil, fmt.Errorf("range of %d days exceeds %d: %w", n, s.maxRangeDays, datetime.ErrInvalidInput)
	}

	rows := make([]model.SerialDate, 0, to-from+1)
	for serial := from; serial <= to; serial++ {
		d, err := s.dateOf(serial)
		if err != nil {
			return nil, err
		}
		rows = append(rows, model.NewSerialDate(serial, d))
	}
	return rows, nil
}

// MonthCalendar lays out a month in Monday-first weeks.
func (s *DateService) MonthCalendar(ctx context.Context, year, month int) (result *CalendarMonth, err error) {
	defer func(start time.Time) { s.observe("month_calendar", start, err) }(time.Now())

	days, err := datetime.DaysInMonthOf(year, month)
	if err != nil {
		return nil, err
	}
	first, err := s.registry.ToSerial(year, month, 1)
	if err != nil {
		return nil, err
	}

	cal := &CalendarMonth{Year: year, Month: month, Days: days}
	var week CalendarWeek
	for day := 1; day <= days; day++ {
		serial := first + day - 1
		d, err := datetime.NewDate(year, month, day)
		if err != nil {
			return nil, err
		}
		row := model.NewSerialDate(serial, d)
		week[row.Weekday] = &row
		if row.Weekday == datetime.Sun {
			cal.Weeks = append(cal.Weeks, week)
			week = CalendarWeek{}
		}
	}
	if week != (CalendarWeek{}) {
		cal.Weeks = append(cal.Weeks, week)
	}
	return cal, nil
}

// Info describes the registry bounds.
func (s *DateService) Info(ctx context.Context) (*RegistryInfo, error) {
	first, err := s.dateOf(1)
	if err != nil {
		return nil, err
	}
	last, err := s.dateOf(s.registry.MaxSerial())
	if err != nil {
		return nil, err
	}
	return &RegistryInfo{
		StartYear: s.registry.StartYear(),
		EndYear:   s.registry.EndYear(),
		MinSerial: 1,
		MaxSerial: s.registry.MaxSerial(),
		FirstDate: first,
		LastDate:  last,
	}, nil
}
