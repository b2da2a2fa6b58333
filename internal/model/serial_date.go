package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/wealthpath/serialdate/pkg/datetime"
)

// SerialDate is one row of the serial_dates dimension table.
type SerialDate struct {
	Serial       int              `db:"serial" json:"serial"`
	Date         datetime.Date    `db:"iso_date" json:"date"`
	Year         int              `db:"year" json:"year"`
	Month        int              `db:"month" json:"month"`
	Day          int              `db:"day" json:"day"`
	Weekday      datetime.WeekDay `db:"weekday" json:"weekday"`
	IsWeekend    bool             `db:"is_weekend" json:"isWeekend"`
	IsEndOfMonth bool             `db:"is_end_of_month" json:"isEndOfMonth"`
}

// NewSerialDate builds the dimension row for d.
func NewSerialDate(serial int, d datetime.Date) SerialDate {
	wd := datetime.WeekDayOf(serial)
	return SerialDate{
		Serial:       serial,
		Date:         d,
		Year:         d.Year(),
		Month:        d.Month(),
		Day:          d.Day(),
		Weekday:      wd,
		IsWeekend:    wd.IsWeekend(),
		IsEndOfMonth: d.IsEndOfMonth(),
	}
}

type SyncStatusType string

const (
	SyncStatusRunning   SyncStatusType = "running"
	SyncStatusSucceeded SyncStatusType = "succeeded"
	SyncStatusFailed    SyncStatusType = "failed"
)

// SyncRun records one materialisation of the registry into the database.
type SyncRun struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	Status      SyncStatusType `db:"status" json:"status"`
	Trigger     string         `db:"trigger" json:"trigger"` // schedule, manual, cli
	RowsWritten int            `db:"rows_written" json:"rowsWritten"`
	Error       *string        `db:"error" json:"error,omitempty"`
	StartedAt   time.Time      `db:"started_at" json:"startedAt"`
	FinishedAt  *time.Time     `db:"finished_at" json:"finishedAt,omitempty"`
}
