package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CalendarHandler serves month calendars with serial numbers.
type CalendarHandler struct {
	dates   DateServiceInterface
	exports ExportServiceInterface
}

// NewCalendarHandler creates a new CalendarHandler with the given services.
func NewCalendarHandler(dates DateServiceInterface, exports ExportServiceInterface) *CalendarHandler {
	return &CalendarHandler{dates: dates, exports: exports}
}

// GetMonth godoc
// @Summary Get a month calendar
// @Description Weeks run Monday to Sunday. Each day carries its serial number and weekday.
// @Tags calendar
// @Produce json
// @Produce application/pdf
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Param format query string false "json or pdf" default(json)
// @Success 200 {object} service.CalendarMonth
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /calendar/{year}/{month} [get]
func (h *CalendarHandler) GetMonth(w http.ResponseWriter, r *http.Request) {
	year, appErr := parseIntParam("year", chi.URLParam(r, "year"))
	if appErr != nil {
		respondAppError(w, appErr)
		return
	}
	month, appErr := parseIntParam("month", chi.URLParam(r, "month"))
	if appErr != nil {
		respondAppError(w, appErr)
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		cal, err := h.dates.MonthCalendar(r.Context(), year, month)
		if err != nil {
			handleError(w, r, err, "month")
			return
		}
		respondJSON(w, http.StatusOK, cal)
	case "pdf":
		data, err := h.exports.ExportMonthPDF(r.Context(), year, month)
		if err != nil {
			handleError(w, r, err, "month")
			return
		}
		respondFile(w, "application/pdf", fmt.Sprintf("calendar_%d_%02d.pdf", year, month), data)
	default:
		respondAppError(w, validationFormat(format))
	}
}
