package datetime

import (
	"encoding/json"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	t.Parallel()

	t.Run("valid date", func(t *testing.T) {
		t.Parallel()
		d, err := NewDate(2024, 12, 25)
		require.NoError(t, err)
		assert.Equal(t, 2024, d.Year())
		assert.Equal(t, 12, d.Month())
		assert.Equal(t, 25, d.Day())
		assert.False(t, d.IsZero())
	})

	t.Run("fictitious leap day", func(t *testing.T) {
		t.Parallel()
		_, err := NewDate(1900, 2, 29)
		assert.NoError(t, err)
	})

	t.Run("invalid dates", func(t *testing.T) {
		t.Parallel()
		for _, ymd := range [][3]int{{1812, 1, 1}, {2021, 2, 29}, {2020, 13, 1}, {2101, 1, 1}, {0, 0, 0}} {
			_, err := NewDate(ymd[0], ymd[1], ymd[2])
			assert.ErrorIs(t, err, ErrDateOutOfRange, "%v", ymd)
		}
	})

	t.Run("must date panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { MustDate(2021, 2, 29) })
	})
}

func TestDate_Serial(t *testing.T) {
	t.Parallel()

	serial, err := MustDate(1900, 1, 5).Serial()
	require.NoError(t, err)
	assert.Equal(t, 5, serial)

	serial, err = MustDate(2020, 3, 1).Serial()
	require.NoError(t, err)
	assert.Equal(t, 43891, serial)

	d, err := DateFromSerial(43891)
	require.NoError(t, err)
	assert.Equal(t, MustDate(2020, 3, 1), d)

	_, err = DateFromSerial(0)
	assert.ErrorIs(t, err, ErrSerialOutOfRange)

	_, err = Date{}.Serial()
	assert.ErrorIs(t, err, ErrDateOutOfRange)
}

func TestDate_Weekday(t *testing.T) {
	t.Parallel()

	tests := []struct {
		date Date
		want WeekDay
	}{
		{MustDate(1900, 1, 1), Mon},
		{MustDate(1900, 1, 7), Sun},
		{MustDate(2020, 3, 2), Tue},
		{MustDate(2020, 3, 1), Mon},
	}
	for _, tt := range tests {
		got, err := tt.date.Weekday()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%v", tt.date)
	}

	_, err := Date{}.Weekday()
	assert.ErrorIs(t, err, ErrDateOutOfRange)
}

func TestDate_AddDays(t *testing.T) {
	t.Parallel()

	d := MustDate(2020, 12, 31)

	next, err := d.AddDays(1)
	require.NoError(t, err)
	assert.Equal(t, MustDate(2021, 1, 1), next)
	assert.True(t, d.Before(next))

	prev, err := d.AddDays(-1)
	require.NoError(t, err)
	assert.Equal(t, MustDate(2020, 12, 30), prev)
	assert.True(t, d.After(prev))

	back, err := next.AddDays(-1)
	require.NoError(t, err)
	assert.Equal(t, d, back)

	leap, err := MustDate(1900, 2, 28).AddDays(1)
	require.NoError(t, err)
	assert.Equal(t, MustDate(1900, 2, 29), leap)

	_, err = MustDate(1900, 1, 1).AddDays(-1)
	assert.ErrorIs(t, err, ErrSerialOutOfRange)
	_, err = MustDate(2100, 12, 31).AddDays(1)
	assert.ErrorIs(t, err, ErrSerialOutOfRange)
	_, err = Date{}.AddDays(1)
	assert.ErrorIs(t, err, ErrDateOutOfRange)
}

func TestDate_AddDaysRoundTrip(t *testing.T) {
	t.Parallel()

	starts := []Date{MustDate(1900, 1, 1), MustDate(1900, 2, 27), MustDate(1999, 12, 31), MustDate(2020, 2, 29), MustDate(2100, 12, 31)}
	offsets := []int{0, 1, -1, 7, -30, 365, -366, 10000, -10000, 73414, -73414}

	for _, d := range starts {
		for _, n := range offsets {
			moved, err := d.AddDays(n)
			if err != nil {
				assert.ErrorIs(t, err, ErrSerialOutOfRange)
				continue
			}
			back, err := moved.AddDays(-n)
			require.NoError(t, err)
			assert.Equal(t, d, back, "%v %+d", d, n)

			switch {
			case n > 0:
				assert.True(t, moved.After(d))
			case n < 0:
				assert.True(t, moved.Before(d))
			default:
				assert.True(t, moved.Equal(d))
			}
		}
	}
}

func TestDate_OrderMatchesSerialOrder(t *testing.T) {
	t.Parallel()

	dates := []Date{
		MustDate(2020, 12, 31), MustDate(1900, 2, 29), MustDate(2021, 1, 1),
		MustDate(1900, 3, 1), MustDate(2000, 2, 29), MustDate(1900, 1, 1),
		MustDate(2100, 12, 31), MustDate(2020, 3, 1),
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	for i := 1; i < len(dates); i++ {
		a, err := dates[i-1].Serial()
		require.NoError(t, err)
		b, err := dates[i].Serial()
		require.NoError(t, err)
		assert.Less(t, a, b)
		assert.Equal(t, -1, dates[i-1].Compare(dates[i]))
		assert.Equal(t, 1, dates[i].Compare(dates[i-1]))
	}
	assert.Equal(t, 0, MustDate(2020, 3, 1).Compare(MustDate(2020, 3, 1)))
	assert.True(t, MustDate(2020, 3, 1) == MustDate(2020, 3, 1))
}

func TestDate_CompareZero(t *testing.T) {
	t.Parallel()

	var zero Date
	first := MustDate(StartYear, 1, 1)
	assert.Equal(t, -1, zero.Compare(first))
	assert.Equal(t, 1, first.Compare(zero))
	assert.Equal(t, 0, zero.Compare(Date{}))
	assert.True(t, zero.Before(first))

	_, err := zero.DaysUntil(first)
	assert.ErrorIs(t, err, ErrDateOutOfRange)
}

func TestDate_DaysUntil(t *testing.T) {
	t.Parallel()

	days, err := MustDate(2015, 1, 1).DaysUntil(MustDate(2015, 7, 1))
	require.NoError(t, err)
	assert.Equal(t, 181, days)

	days, err = MustDate(1900, 3, 1).DaysUntil(MustDate(1900, 2, 28))
	require.NoError(t, err)
	assert.Equal(t, -2, days)

	_, err = MustDate(2015, 1, 1).DaysUntil(Date{})
	assert.ErrorIs(t, err, ErrDateOutOfRange)
}

func TestDate_MonthBoundaries(t *testing.T) {
	t.Parallel()

	assert.Equal(t, MustDate(1900, 2, 29), MustDate(1900, 2, 3).EndOfMonth())
	assert.Equal(t, MustDate(2021, 2, 28), MustDate(2021, 2, 3).EndOfMonth())
	assert.Equal(t, MustDate(2021, 2, 1), MustDate(2021, 2, 17).StartOfMonth())
	assert.True(t, MustDate(2020, 4, 30).IsEndOfMonth())
	assert.False(t, MustDate(2020, 4, 29).IsEndOfMonth())
	assert.False(t, Date{}.IsEndOfMonth())
	assert.True(t, Date{}.EndOfMonth().IsZero())
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	t.Run("valid date", func(t *testing.T) {
		t.Parallel()
		d, err := ParseDate("2024-12-25")
		require.NoError(t, err)
		assert.Equal(t, MustDate(2024, 12, 25), d)
	})

	t.Run("fictitious leap day", func(t *testing.T) {
		t.Parallel()
		d, err := ParseDate("1900-02-29")
		require.NoError(t, err)
		assert.Equal(t, MustDate(1900, 2, 29), d)
	})

	t.Run("wrong format", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"not-a-date", "25/12/2024", "2024-1-05", "2024-01-0x", "+024-01-01", ""} {
			_, err := ParseDate(s)
			assert.ErrorIs(t, err, ErrInvalidInput, s)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		t.Parallel()
		_, err := ParseDate("1812-01-01")
		assert.ErrorIs(t, err, ErrDateOutOfRange)
		_, err = ParseDate("2021-02-29")
		assert.ErrorIs(t, err, ErrDateOutOfRange)
	})
}

func TestDateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2024-12-25", MustDate(2024, 12, 25).String())
	assert.Equal(t, "1900-01-05", MustDate(1900, 1, 5).String())
	assert.Equal(t, "", Date{}.String())
}

func TestDateMarshalJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(MustDate(2024, 12, 25))
	require.NoError(t, err)
	assert.Equal(t, `"2024-12-25"`, string(data))

	data, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestDateUnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("date", func(t *testing.T) {
		t.Parallel()
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"2024-12-25"`), &d))
		assert.Equal(t, MustDate(2024, 12, 25), d)
	})

	t.Run("null value", func(t *testing.T) {
		t.Parallel()
		d := MustDate(2024, 12, 25)
		require.NoError(t, json.Unmarshal([]byte(`null`), &d))
		assert.True(t, d.IsZero())
	})

	t.Run("empty string", func(t *testing.T) {
		t.Parallel()
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`""`), &d))
		assert.True(t, d.IsZero())
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		var d Date
		assert.Error(t, json.Unmarshal([]byte(`"2021-02-29"`), &d))
		assert.Error(t, json.Unmarshal([]byte(`"invalid-date"`), &d))
	})
}

func TestDate_Time(t *testing.T) {
	t.Parallel()

	tm, err := MustDate(2024, 12, 25).Time()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC), tm)

	_, err = MustDate(1900, 2, 29).Time()
	assert.ErrorIs(t, err, ErrDateOutOfRange)
	_, err = Date{}.Time()
	assert.ErrorIs(t, err, ErrDateOutOfRange)

	d, err := FromTime(time.Date(2024, time.December, 25, 23, 59, 0, 0, time.FixedZone("X", 3600)))
	require.NoError(t, err)
	assert.Equal(t, MustDate(2024, 12, 25), d)

	_, err = FromTime(time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrDateOutOfRange)
}

func TestDate_ScanValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  any
		want Date
	}{
		{"nil", nil, Date{}},
		{"string", "1900-02-29", MustDate(1900, 2, 29)},
		{"bytes", []byte("2020-03-01"), MustDate(2020, 3, 1)},
		{"timestamp text", "2020-03-01T00:00:00Z", MustDate(2020, 3, 1)},
		{"time", time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC), MustDate(2020, 3, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var d Date
			require.NoError(t, d.Scan(tt.src))
			assert.Equal(t, tt.want, d)
		})
	}

	var d Date
	assert.ErrorIs(t, d.Scan(42), ErrInvalidInput)

	v, err := MustDate(1900, 2, 29).Value()
	require.NoError(t, err)
	assert.Equal(t, "1900-02-29", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
