// Package datetime provides the serial date engine shared across the application.
// Dates are numbered the way spreadsheets number them: 1900-01-01 is serial 1 and
// every following day adds one, including the fictitious 1900-02-29.
package datetime

import (
	"cmp"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the standard date format (YYYY-MM-DD).
const DateFormat = "2006-01-02"

// Date is an immutable calendar date within StartYear..EndYear.
// Dates are validated when constructed, so a non-zero Date is always valid.
// The zero Date means "no date"; operations that need a serial number fail on
// it with ErrDateOutOfRange. Dates are comparable with ==.
type Date struct {
	year  int
	month int
	day   int
}

// NewDate returns the Date for year, month and day, or ErrDateOutOfRange if
// the date does not exist or lies outside the supported range.
func NewDate(year, month, day int) (Date, error) {
	if !IsValidDate(year, month, day) {
		return Date{}, fmt.Errorf("%04d-%02d-%02d: %w", year, month, day, ErrDateOutOfRange)
	}
	return Date{year: year, month: month, day: day}, nil
}

// MustDate is like NewDate but panics on invalid input.
func MustDate(year, month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateFromSerial returns the Date with the given serial number.
func DateFromSerial(serial int) (Date, error) {
	cd, err := FromSerialDate(serial)
	if err != nil {
		return Date{}, err
	}
	return Date{year: cd.Year, month: cd.Month, day: cd.Day}, nil
}

// ParseDate parses a date in YYYY-MM-DD format. Unlike time.Parse it accepts
// 1900-02-29.
func ParseDate(s string) (Date, error) {
	if len(s) != len(DateFormat) || s[4] != '-' || s[7] != '-' {
		return Date{}, fmt.Errorf("date %q, expected YYYY-MM-DD: %w", s, ErrInvalidInput)
	}
	var parts [3]int
	for i, field := range []string{s[0:4], s[5:7], s[8:10]} {
		for _, c := range field {
			if c < '0' || c > '9' {
				return Date{}, fmt.Errorf("date %q, expected YYYY-MM-DD: %w", s, ErrInvalidInput)
			}
		}
		parts[i], _ = strconv.Atoi(field)
	}
	return NewDate(parts[0], parts[1], parts[2])
}

// FromTime returns the Date of t's year, month and day, ignoring the time of
// day and location.
func FromTime(t time.Time) (Date, error) {
	year, month, day := t.Date()
	return NewDate(year, int(month), day)
}

func (d Date) Year() int  { return d.year }
func (d Date) Month() int { return d.month }
func (d Date) Day() int   { return d.day }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// CalendarDate returns d as a raw triple.
func (d Date) CalendarDate() CalendarDate {
	return CalendarDate{Year: d.year, Month: d.month, Day: d.day}
}

// Serial returns the serial number of d.
func (d Date) Serial() (int, error) {
	return ToSerialDate(d.year, d.month, d.day)
}

// Weekday returns the day of the week derived from d's serial number.
// Because of 1900-02-29, dates from March 1900 onwards are one day ahead
// of the true Gregorian weekday.
func (d Date) Weekday() (WeekDay, error) {
	serial, err := d.Serial()
	if err != nil {
		return 0, err
	}
	return WeekDayOf(serial), nil
}

// AddDays returns the date n days after d; n may be negative.
func (d Date) AddDays(n int) (Date, error) {
	serial, err := d.Serial()
	if err != nil {
		return Date{}, err
	}
	if limit := Default().MaxSerial(); n > limit || n < -limit {
		return Date{}, fmt.Errorf("%v plus %d days: %w", d, n, ErrSerialOutOfRange)
	}
	return DateFromSerial(serial + n)
}

// DaysUntil returns the signed number of days from d to other.
func (d Date) DaysUntil(other Date) (int, error) {
	from, err := d.Serial()
	if err != nil {
		return 0, err
	}
	to, err := other.Serial()
	if err != nil {
		return 0, err
	}
	return to - from, nil
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other. The order is by year, then month, then day. Ordering does not
// validate: the zero Date sorts before every valid Date.
func (d Date) Compare(other Date) int {
	if c := cmp.Compare(d.year, other.year); c != 0 {
		return c
	}
	if c := cmp.Compare(d.month, other.month); c != 0 {
		return c
	}
	return cmp.Compare(d.day, other.day)
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }
func (d Date) Equal(other Date) bool  { return d == other }

// StartOfMonth returns the first day of d's month.
func (d Date) StartOfMonth() Date {
	if d.IsZero() {
		return d
	}
	return Date{year: d.year, month: d.month, day: 1}
}

// EndOfMonth returns the last day of d's month.
func (d Date) EndOfMonth() Date {
	if d.IsZero() {
		return d
	}
	return Date{year: d.year, month: d.month, day: monthLength(d.year, d.month)}
}

// IsEndOfMonth reports whether d is the last day of its month.
func (d Date) IsEndOfMonth() bool {
	return !d.IsZero() && d.day == monthLength(d.year, d.month)
}

// Time returns midnight UTC of d. 1900-02-29 has no time.Time equivalent and
// fails with ErrDateOutOfRange.
func (d Date) Time() (time.Time, error) {
	if d.IsZero() {
		return time.Time{}, fmt.Errorf("zero date: %w", ErrDateOutOfRange)
	}
	if d.year == 1900 && d.month == 2 && d.day == 29 {
		return time.Time{}, fmt.Errorf("%v has no calendar equivalent: %w", d, ErrDateOutOfRange)
	}
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, time.UTC), nil
}

// String returns the date in YYYY-MM-DD format, or "" for the zero Date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), "\"")
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner for text and date columns.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		parsed, err := FromTime(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into Date: %w", src, ErrInvalidInput)
	}
}

func (d *Date) scanString(s string) error {
	// Drivers may hand back timestamps such as "2020-03-01T00:00:00Z".
	if len(s) > len(DateFormat) {
		s = s[:len(DateFormat)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer. Dates are written as YYYY-MM-DD text.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}
