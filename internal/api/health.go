package api

import (
	"net/http"
	"os/exec"

	"github.com/nuclearlighters/netconfigd/internal/config"
)

// HealthResponse is the JSON response for the /health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	// Version is the running netconfigd version.
	Version string `json:"version"`
	// ScannerAvailable reports whether the nmcli binary is on PATH. WiFi
	// scanning degrades to an error response without it.
	ScannerAvailable bool `json:"scanner_available"`
}

// HealthHandler handles GET /health requests.
type HealthHandler struct {
	cfg *config.Settings
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(cfg *config.Settings) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// ServeHTTP implements http.Handler for the health check endpoint.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:  "healthy",
		Version: h.cfg.Version,
	}

	if _, err := exec.LookPath("nmcli"); err == nil {
		resp.ScannerAvailable = true
	} else {
		resp.Status = "degraded"
	}

	writeJSON(w, http.StatusOK, resp)
}
