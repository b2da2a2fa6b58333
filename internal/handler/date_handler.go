package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wealthpath/serialdate/internal/apperror"
	"github.com/wealthpath/serialdate/pkg/datetime"
)

// ValidateResponse is the body of the validate endpoint.
type ValidateResponse struct {
	Valid bool `json:"valid"`
}

// DateHandler handles serial date conversion and arithmetic requests
type DateHandler struct {
	dates   DateServiceInterface
	exports ExportServiceInterface
}

// NewDateHandler creates a new date handler
func NewDateHandler(dates DateServiceInterface, exports ExportServiceInterface) *DateHandler {
	return &DateHandler{dates: dates, exports: exports}
}

// ToSerial godoc
// @Summary Convert a date to its serial number
// @Tags dates
// @Produce json
// @Param year query int true "Year (1900-2100)"
// @Param month query int true "Month (1-12)"
// @Param day query int true "Day of month"
// @Success 200 {object} model.SerialDate
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /dates/serial [get]
func (h *DateHandler) ToSerial(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, appErr := parseIntParam("year", q.Get("year"))
	if appErr != nil {
		respondAppError(w, appErr)
		return
	}
	month, appErr := parseIntParam("month", q.Get("month"))
	if appErr != nil {
		respondAppError(w, appErr)
		return
	}
	day, appErr := parseIntParam("day", q.Get("day"))
	if appErr != nil {
		respondAppError(w, appErr)
		return
	}

	result, err := h.dates.ToSerial(r.Context(), year, month, day)
	if err != nil {
		handleError(w, r, err, "date")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// FromSerial godoc
// @Summary Convert a serial number to its date
// @Tags dates
// @Produce json
// @Param serial path int true "Serial number (1 = 1900-01-01)"
// @Success 200 {object} model.SerialDate
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /dates/serial/{serial} [get]
func (h *DateHandler) FromSerial(w http.ResponseWriter, r *http.Request) {
	serial, appErr := parseIntParam("serial", chi.URLParam(r, "serial"))
	if appErr != nil {
		respondAppError(w, appErr)
		return
	}

	result, err := h.dates.FromSerial(r.Context(), serial)
	if err != nil {
		handleError(w, r, err, "serial")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Validate godoc
// @Summary Check whether a date is supported
// @Tags dates
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month"
// @Param day query int true "Day"
// @Success 200 {object} ValidateResponse
// @Failure 400 {object} ErrorResponse
// @Router /dates/validate [get]
func (h *DateHandler) Validate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var parts [3]int
	for i, name := range []string{"year", "month", "day"} {
		n, appErr := parseIntParam(name, q.Get(name))
		if appErr != nil {
			respondAppError(w, appErr)
			return
		}
		parts[i] = n
	}

	respondJSON(w, http.StatusOK, ValidateResponse{
		Valid: h.dates.Validate(r.Context(), parts[0], parts[1], parts[2]),
	})
}

// Add godoc
// @Summary Move a date by days or by a tenor
// @Description Exactly one of days or tenor must be given. Tenors look like 1D, 2W, 3M, 10Y or -6M.
// @Tags dates
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param days query int false "Number of days, may be negative"
// @Param tenor query string false "Tenor"
// @Success 200 {object} model.SerialDate
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /dates/{date}/add [get]
func (h *DateHandler) Add(w http.ResponseWriter, r *http.Request) {
	d, appErr := parseDateParam("date", chi.URLParam(r, "date"))
	if appErr != nil {
		respondAppError(w, appErr)
		return
	}

	q := r.URL.Query()
	daysStr, tenor := q.Get("days"), q.Get("tenor")
	switch {
	case daysStr != "" && tenor != "":
		respondAppError(w, apperror.BadRequest("days and tenor are mutually exclusive"))
	case tenor != "":
		result, err := h.dates.AddTenor(r.Context(), d, tenor)
		if err != nil {
			handleError(w, r, err, "tenor")
			return
		}
		respondJSON(w, http.StatusOK, result)
	default:
		n, appErr := parseIntParam("days", daysStr)
		if appErr != nil {
			respondAppError(w, appErr)
			return
		}
		result, err := h.dates.AddDays(r.Context(), d, n)
		if err != nil {
			handleError(w, r, err, "days")
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// Weekday godoc
// @Summary Get the weekday of a date
// @Description Weekdays are derived from the serial number, so dates from March 1900 on are one day ahead of the Gregorian weekday.
// @Tags dates
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} model.SerialDate
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /dates/{date}/weekday [get]
func (h *DateHandler) Weekday(w http.ResponseWriter, r *http.Request) {
	d, appErr := parseDateParam("date", chi.URLParam(r, "date"))
	if appErr != nil {
		respondAppError(w, appErr)
		return
	}

	result, err := h.dates.Weekday(r.Context(), d)
	if err != nil {
		handleError(w, r, err, "date")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Diff godoc
// @Summary Days and year fraction between two dates
// @Tags dates
// @Produce json
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} service.DiffResult
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /dates/diff [get]
func (h *DateHandler) Diff(w http.ResponseWriter, r *http.Request) {
	start, end, ok := h.parseBounds(w, r)
	if !ok {
		return
	}

	result, err := h.dates.Diff(r.Context(), start, end)
	if err != nil {
		handleError(w, r, err, "")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Range godoc
// @Summary List every date between two dates
// @Tags dates
// @Produce json
// @Produce text/csv
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD), inclusive"
// @Param format query string false "json or csv" default(json)
// @Success 200 {array} model.SerialDate
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /dates/range [get]
func (h *DateHandler) Range(w http.ResponseWriter, r *http.Request) {
	start, end, ok := h.parseBounds(w, r)
	if !ok {
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		rows, err := h.dates.Range(r.Context(), start, end)
		if err != nil {
			handleError(w, r, err, "end")
			return
		}
		respondJSON(w, http.StatusOK, rows)
	case "csv":
		data, err := h.exports.ExportRangeCSV(r.Context(), start, end)
		if err != nil {
			handleError(w, r, err, "end")
			return
		}
		respondFile(w, "text/csv", fmt.Sprintf("serial_dates_%s_%s.csv", start, end), data)
	default:
		respondAppError(w, validationFormat(format))
	}
}

// Info godoc
// @Summary Supported range and serial bounds
// @Tags dates
// @Produce json
// @Success 200 {object} service.RegistryInfo
// @Router /dates/info [get]
func (h *DateHandler) Info(w http.ResponseWriter, r *http.Request) {
	info, err := h.dates.Info(r.Context())
	if err != nil {
		handleError(w, r, err, "")
		return
	}
	respondJSON(w, http.StatusOK, info)
}

func (h *DateHandler) parseBounds(w http.ResponseWriter, r *http.Request) (start, end datetime.Date, ok bool) {
	q := r.URL.Query()
	start, appErr := parseDateParam("start", q.Get("start"))
	if appErr != nil {
		respondAppError(w, appErr)
		return start, end, false
	}
	end, appErr = parseDateParam("end", q.Get("end"))
	if appErr != nil {
		respondAppError(w, appErr)
		return start, end, false
	}
	return start, end, true
}
