package datetime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// maxSpanYears bounds year, month and week offsets before they are scaled,
// so no multiplication can overflow into an in-range date.
const maxSpanYears = EndYear - StartYear

// AddMonths returns the date n months after d. The day is clamped to the
// length of the target month, so 2021-01-31 plus one month is 2021-02-28.
func (d Date) AddMonths(n int) (Date, error) {
	if d.IsZero() {
		return Date{}, fmt.Errorf("zero date: %w", ErrDateOutOfRange)
	}
	if n > 12*(maxSpanYears+1) || n < -12*(maxSpanYears+1) {
		return Date{}, fmt.Errorf("%v plus %d months: %w", d, n, ErrDateOutOfRange)
	}
	total := d.year*12 + d.month - 1 + n
	year, month := total/12, total%12+1
	if year < StartYear || year > EndYear {
		return Date{}, fmt.Errorf("%v plus %d months: %w", d, n, ErrDateOutOfRange)
	}
	return NewDate(year, month, min(d.day, monthLength(year, month)))
}

// AddYears returns the date n years after d, clamping 29 February.
func (d Date) AddYears(n int) (Date, error) {
	if n > maxSpanYears || n < -maxSpanYears {
		return Date{}, fmt.Errorf("%v plus %d years: %w", d, n, ErrDateOutOfRange)
	}
	return d.AddMonths(12 * n)
}

var tenorRe = regexp.MustCompile(`^([+-]?[0-9]+)([DWMY])$`)

// AddTenor moves d by a tenor such as "1D", "2W", "3M", "10Y" or "-6M".
// Units are case-insensitive.
func (d Date) AddTenor(tenor string) (Date, error) {
	m := tenorRe.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(tenor)))
	if m == nil {
		return Date{}, fmt.Errorf("tenor %q, expected <n>D, <n>W, <n>M or <n>Y: %w", tenor, ErrInvalidInput)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return Date{}, fmt.Errorf("tenor %q: %w", tenor, ErrInvalidInput)
	}
	switch m[2] {
	case "D":
		return d.AddDays(n)
	case "W":
		if limit := Default().MaxSerial() / 7; n > limit || n < -limit {
			return Date{}, fmt.Errorf("%v plus %d weeks: %w", d, n, ErrDateOutOfRange)
		}
		return d.AddDays(7 * n)
	case "M":
		return d.AddMonths(n)
	default:
		return d.AddYears(n)
	}
}
