package datetime

import (
	"fmt"
	"strings"
)

// WeekDay is a day of the week, Monday first.
type WeekDay int

const (
	Mon WeekDay = iota
	Tue
	Wed
	Thu
	Fri
	Sat
	Sun
)

var weekDayNames = [7]string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

// WeekDayOf returns the day of the week of serial. Serial 1 (1900-01-01)
// is a Monday.
func WeekDayOf(serial int) WeekDay {
	return WeekDay(((serial+6)%7 + 7) % 7)
}

func (w WeekDay) String() string {
	if w < Mon || w > Sun {
		return fmt.Sprintf("WeekDay(%d)", int(w))
	}
	return weekDayNames[w]
}

// IsWeekend reports whether w is Saturday or Sunday.
func (w WeekDay) IsWeekend() bool {
	return w == Sat || w == Sun
}

// ParseWeekDay parses a three letter day name such as "tue" or "TUE".
func ParseWeekDay(val string) (WeekDay, error) {
	uc := strings.ToUpper(strings.TrimSpace(val))
	for i, name := range weekDayNames {
		if name == uc {
			return WeekDay(i), nil
		}
	}
	return 0, fmt.Errorf("weekday %q: %w", val, ErrInvalidInput)
}

// MarshalText implements encoding.TextMarshaler.
func (w WeekDay) MarshalText() ([]byte, error) {
	if w < Mon || w > Sun {
		return nil, fmt.Errorf("weekday %d: %w", int(w), ErrInvalidInput)
	}
	return []byte(weekDayNames[w]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *WeekDay) UnmarshalText(data []byte) error {
	v, err := ParseWeekDay(string(data))
	if err != nil {
		return err
	}
	*w = v
	return nil
}
