package datetime

import (
	"fmt"
	"sync"
)

// CalendarDate is a raw (year, month, day) triple as stored in a Registry.
type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year, cd.Month, cd.Day)
}

// Packed layout of a registry entry, low to high bits: day, month, year.
const (
	dayShift   = 0
	monthShift = 5
	yearShift  = 9

	dayMask   = 0x1F
	monthMask = 0x0F
)

type packedDate uint32

func pack(year, month, day int) packedDate {
	return packedDate(year)<<yearShift | packedDate(month)<<monthShift | packedDate(day)<<dayShift
}

func (p packedDate) unpack() CalendarDate {
	return CalendarDate{
		Year:  int(p >> yearShift),
		Month: int((p >> monthShift) & monthMask),
		Day:   int((p >> dayShift) & dayMask),
	}
}

// Registry is the bijection between the calendar dates of a year range and
// consecutive serial numbers starting at 1 for January 1st of the first year.
// A Registry is immutable once built and safe for concurrent use.
type Registry struct {
	startYear int
	endYear   int

	// monthStart[(year-startYear)*12+month-1] is the serial of the day
	// before the first of that month.
	monthStart []int
	// dates[serial-1] is the date with that serial.
	dates []packedDate
}

// NewRegistry builds the registry for startYear..endYear inclusive.
// Building is deterministic: the same bounds always yield the same numbering.
// The bounds must lie within StartYear..EndYear, the range every Date is
// validated against, so any date a Registry numbers is also a valid Date.
func NewRegistry(startYear, endYear int) (*Registry, error) {
	if startYear < StartYear || endYear > EndYear || endYear < startYear {
		return nil, fmt.Errorf("year range %d..%d: %w", startYear, endYear, ErrInvalidInput)
	}
	years := endYear - startYear + 1
	r := &Registry{
		startYear:  startYear,
		endYear:    endYear,
		monthStart: make([]int, 0, years*12),
		dates:      make([]packedDate, 0, years*366),
	}
	serial := 0
	for year := startYear; year <= endYear; year++ {
		for month := 1; month <= 12; month++ {
			r.monthStart = append(r.monthStart, serial)
			for day := 1; day <= monthLength(year, month); day++ {
				serial++
				r.dates = append(r.dates, pack(year, month, day))
			}
		}
	}
	return r, nil
}

// StartYear returns the first year covered by the registry.
func (r *Registry) StartYear() int { return r.startYear }

// EndYear returns the last year covered by the registry.
func (r *Registry) EndYear() int { return r.endYear }

// MaxSerial returns the largest serial in the registry, ie. the number of
// dates it holds.
func (r *Registry) MaxSerial() int { return len(r.dates) }

// ToSerial returns the serial number of the given date. Dates that do not
// exist, or that fall outside the registry's years, fail with ErrDateOutOfRange.
func (r *Registry) ToSerial(year, month, day int) (int, error) {
	if !r.IsValidDate(year, month, day) {
		return 0, fmt.Errorf("%04d-%02d-%02d: %w", year, month, day, ErrDateOutOfRange)
	}
	return r.monthStart[(year-r.startYear)*12+month-1] + day, nil
}

// FromSerial returns the date for serial, or ErrSerialOutOfRange.
func (r *Registry) FromSerial(serial int) (CalendarDate, error) {
	if serial < 1 || serial > len(r.dates) {
		return CalendarDate{}, fmt.Errorf("serial %d not in 1..%d: %w", serial, len(r.dates), ErrSerialOutOfRange)
	}
	return r.dates[serial-1].unpack(), nil
}

// IsValidDate reports whether the date is present in the registry.
func (r *Registry) IsValidDate(year, month, day int) bool {
	if year < r.startYear || year > r.endYear || month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= monthLength(year, month)
}

// Default returns the process-wide registry for StartYear..EndYear. It is
// built on first use.
var Default = sync.OnceValue(func() *Registry {
	r, err := NewRegistry(StartYear, EndYear)
	if err != nil {
		panic(err)
	}
	return r
})

// ToSerialDate converts a date to its serial number using the default registry.
func ToSerialDate(year, month, day int) (int, error) {
	return Default().ToSerial(year, month, day)
}

// FromSerialDate converts a serial number back to a date using the default registry.
func FromSerialDate(serial int) (CalendarDate, error) {
	return Default().FromSerial(serial)
}

// IsValidDate reports whether the date is supported by the default registry.
func IsValidDate(year, month, day int) bool {
	return Default().IsValidDate(year, month, day)
}
