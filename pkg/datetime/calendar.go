package datetime

import "fmt"

// Supported range of the default registry, inclusive on both ends.
const (
	StartYear = 1900
	EndYear   = 2100
)

var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the length of month (1-12) in a non-leap year.
func DaysInMonth(month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("month %d: %w", month, ErrInvalidInput)
	}
	return daysInMonth[month-1], nil
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInFebruary returns 29 for leap years and for 1900, which spreadsheet
// software treats as a leap year. The 1900 case must stay: serial numbers from
// 1900-03-01 onwards depend on it.
func DaysInFebruary(year int) int {
	if year == 1900 || IsLeapYear(year) {
		return 29
	}
	return 28
}

// DaysInMonthOf returns the number of days in month of year.
func DaysInMonthOf(year, month int) (int, error) {
	if month == 2 {
		return DaysInFebruary(year), nil
	}
	return DaysInMonth(month)
}

func monthLength(year, month int) int {
	if month == 2 {
		return DaysInFebruary(year)
	}
	return daysInMonth[month-1]
}
