package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wealthpath/serialdate/internal/apperror"
)

// Routes groups the handlers served under /api. Sync is optional and is
// only mounted when a database is configured.
type Routes struct {
	Dates     *DateHandler
	Calendar  *CalendarHandler
	Sync      *SyncHandler
	JWTSecret string
}

// Mount registers the API routes on r.
func (rt Routes) Mount(r chi.Router) {
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondAppError(w, apperror.NotFound("route "+r.URL.Path))
	})

	// Health check
	// @Summary Health check
	// @Description Check if the API is running
	// @Tags health
	// @Produce json
	// @Success 200 {object} map[string]string
	// @Router /health [get]
	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/dates", func(r chi.Router) {
		r.Get("/info", rt.Dates.Info)
		r.Get("/serial", rt.Dates.ToSerial)
		r.Get("/serial/{serial}", rt.Dates.FromSerial)
		r.Get("/validate", rt.Dates.Validate)
		r.Get("/diff", rt.Dates.Diff)
		r.Get("/range", rt.Dates.Range)
		r.Get("/{date}/add", rt.Dates.Add)
		r.Get("/{date}/weekday", rt.Dates.Weekday)
	})

	r.Get("/api/calendar/{year}/{month}", rt.Calendar.GetMonth)

	if rt.Sync != nil {
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(rt.JWTSecret))
			r.Post("/api/admin/sync", rt.Sync.Trigger)
			r.Get("/api/admin/sync/status", rt.Sync.Status)
		})
	}
}
