package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/wealthpath/serialdate/internal/apperror"
	"github.com/wealthpath/serialdate/internal/logger"
	"github.com/wealthpath/serialdate/pkg/datetime"
)

// ErrorResponse represents a JSON error response body.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// respondJSON writes a JSON response with the given status code.
// It sets the Content-Type header to application/json.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// respondAppError writes a JSON error response from an AppError.
// It extracts the status code and message from the error.
func respondAppError(w http.ResponseWriter, err *apperror.AppError) {
	resp := ErrorResponse{
		Error: err.Message,
		Field: err.Field,
	}
	respondJSON(w, err.StatusCode, resp)
}

// handleError maps a service error to a response and logs unexpected ones.
func handleError(w http.ResponseWriter, r *http.Request, err error, field string) {
	appErr := apperror.FromDateError(err, field)
	if appErr.StatusCode >= http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error("Request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
	respondAppError(w, appErr)
}

// respondFile writes data as a download.
func respondFile(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}

// parseIntParam parses a required integer parameter.
func parseIntParam(name, value string) (int, *apperror.AppError) {
	if strings.TrimSpace(value) == "" {
		return 0, apperror.ValidationError(name, name+" is required")
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, apperror.ValidationError(name, name+" must be an integer")
	}
	return n, nil
}

// parseDateParam parses a required YYYY-MM-DD parameter.
func parseDateParam(name, value string) (datetime.Date, *apperror.AppError) {
	if value == "" {
		return datetime.Date{}, apperror.ValidationError(name, name+" is required")
	}
	d, err := datetime.ParseDate(value)
	if err != nil {
		return datetime.Date{}, apperror.FromDateError(err, name)
	}
	return d, nil
}

func validationFormat(format string) *apperror.AppError {
	return apperror.ValidationError("format", fmt.Sprintf("unsupported format %q", format))
}
