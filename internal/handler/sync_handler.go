package handler

import (
	"net/http"

	"github.com/wealthpath/serialdate/internal/service"
)

// SyncHandler exposes the serial_dates dimension sync to operators.
type SyncHandler struct {
	sync SyncServiceInterface
}

// NewSyncHandler creates a new SyncHandler
func NewSyncHandler(sync SyncServiceInterface) *SyncHandler {
	return &SyncHandler{sync: sync}
}

// Trigger godoc
// @Summary Run the dimension sync now
// @Description Upserts every registry date into the serial_dates table and waits for completion.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.SyncRun
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/sync [post]
func (h *SyncHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	run, err := h.sync.Sync(r.Context(), service.TriggerManual)
	if err != nil {
		handleError(w, r, err, "")
		return
	}
	respondJSON(w, http.StatusOK, run)
}

// Status godoc
// @Summary Compare the serial_dates table with the registry
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.SyncStatus
// @Failure 401 {object} ErrorResponse
// @Router /admin/sync/status [get]
func (h *SyncHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.sync.Status(r.Context())
	if err != nil {
		handleError(w, r, err, "")
		return
	}
	respondJSON(w, http.StatusOK, status)
}
