package handlers

import (
	"net/http"

	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/api/response"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/version"
)

// HealthHandler serves the probe and build-info endpoints.
type HealthHandler struct {
	ds *Downstream
}

// NewHealthHandler creates a health handler.
func NewHealthHandler(ds *Downstream) *HealthHandler {
	return &HealthHandler{ds: ds}
}

// Healthz handles GET /healthz (liveness probe).
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Readyz handles GET /readyz (readiness probe). The coordinator is ready
// once every downstream base URL is configured.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	if h.ds.Ready() {
		response.JSON(w, http.StatusOK, map[string]bool{
			"ready": true,
		})
	} else {
		response.JSON(w, http.StatusServiceUnavailable, map[string]bool{
			"ready": false,
		})
	}
}

// Version handles GET /version.
func (h *HealthHandler) Version(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, version.Info())
}
