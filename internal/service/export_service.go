package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/wealthpath/serialdate/pkg/datetime"
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// ExportService renders date ranges and month calendars as files.
type ExportService struct {
	dates *DateService
	now   func() time.Time
}

// NewExportService creates a new ExportService on top of dates.
func NewExportService(dates *DateService) *ExportService {
	return &ExportService{dates: dates, now: time.Now}
}

// ExportRangeCSV writes one row per date from start to end inclusive.
func (s *ExportService) ExportRangeCSV(ctx context.Context, start, end datetime.Date) ([]byte, error) {
	rows, err := s.dates.Range(ctx, start, end)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Serial", "Date", "Weekday"}); err != nil {
		return nil, fmt.Errorf("writing CSV header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.Serial),
			row.Date.String(),
			row.Weekday.String(),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("writing CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flushing CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportMonthPDF renders a one page calendar sheet for the month, with the
// serial number under each day.
func (s *ExportService) ExportMonthPDF(ctx context.Context, year, month int) ([]byte, error) {
	cal, err := s.dates.MonthCalendar(ctx, year, month)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 22)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(0, 12, fmt.Sprintf("%s %d", monthNames[month-1], year), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	const colWidth, rowHeight = 38.0, 22.0

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(248, 249, 250)
	for wd := datetime.Mon; wd <= datetime.Sun; wd++ {
		pdf.CellFormat(colWidth, 8, wd.String(), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	for _, week := range cal.Weeks {
		x, y := pdf.GetX(), pdf.GetY()
		for i, day := range week {
			left := x + float64(i)*colWidth
			pdf.Rect(left, y, colWidth, rowHeight, "D")
			if day == nil {
				continue
			}
			if day.IsWeekend {
				pdf.SetTextColor(220, 53, 69)
			} else {
				pdf.SetTextColor(33, 37, 41)
			}
			pdf.SetXY(left+2, y+2)
			pdf.SetFont("Arial", "B", 14)
			pdf.CellFormat(colWidth-4, 8, strconv.Itoa(day.Day), "", 0, "L", false, 0, "")
			pdf.SetXY(left+2, y+rowHeight-8)
			pdf.SetFont("Arial", "", 9)
			pdf.SetTextColor(108, 117, 125)
			pdf.CellFormat(colWidth-4, 6, strconv.Itoa(day.Serial), "", 0, "R", false, 0, "")
		}
		pdf.SetXY(x, y+rowHeight)
	}

	pdf.SetY(-20)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(108, 117, 125)
	pdf.CellFormat(0, 5, fmt.Sprintf("Serial dates count from 1900-01-01 = 1. Generated on %s", s.now().Format("January 2, 2006")), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("generating PDF: %w", err)
	}
	return buf.Bytes(), nil
}
