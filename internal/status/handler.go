// Package status reports service identity and uptime.
package status

import (
	"net/http"
	"time"

	"github.com/kestrelworks/routekit/pkg/handlers"
	"github.com/kestrelworks/routekit/pkg/routes"
)

// Report is the status endpoint payload.
type Report struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// Handler serves the service status endpoint and satisfies the route
// registrar contract.
type Handler struct {
	service string
	version string
	started time.Time
}

// NewHandler creates a status handler. Uptime is measured from the moment of
// construction, which coincides with route registration at boot.
func NewHandler(service, version string) *Handler {
	return &Handler{
		service: service,
		version: version,
		started: time.Now(),
	}
}

// Map declares the status route on the supplied router handle.
func (h *Handler) Map(r *routes.Router) error {
	r.Get("/status", h.Status)
	return nil
}

// Status handles GET /status.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Report{
		Service: h.service,
		Version: h.version,
		Uptime:  time.Since(h.started).Round(time.Second).String(),
	})
}
