package datetime

import "github.com/shopspring/decimal"

// DaysInYear is the denominator used for year fractions.
const DaysInYear = 365

// YearFractionPlaces is the number of decimal places YearFraction rounds to.
const YearFractionPlaces = 10

// DaysBetween returns the signed number of days from start to end.
func DaysBetween(start, end Date) (int, error) {
	return start.DaysUntil(end)
}

// YearFraction returns the time from start to end in years of DaysInYear
// days. It is negative when end is before start.
func YearFraction(start, end Date) (decimal.Decimal, error) {
	days, err := DaysBetween(start, end)
	if err != nil {
		return decimal.Zero, err
	}
	return YearFractionDays(days), nil
}

// YearFractionDays converts a day count to years of DaysInYear days, rounded
// half away from zero to YearFractionPlaces decimal places.
func YearFractionDays(days int) decimal.Decimal {
	return decimal.NewFromInt(int64(days)).DivRound(decimal.NewFromInt(DaysInYear), YearFractionPlaces)
}
