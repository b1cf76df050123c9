// Package api provides HTTP handlers for the netconfigd REST API.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/nuclearlighters/netconfigd/internal/models"
	"github.com/nuclearlighters/netconfigd/internal/service"
	"github.com/nuclearlighters/netconfigd/internal/store"
)

// NetworkHandler handles network configuration endpoints.
type NetworkHandler struct {
	svc *service.NetworkConfigService
}

// NewNetworkHandler creates a new NetworkHandler.
func NewNetworkHandler(svc *service.NetworkConfigService) *NetworkHandler {
	return &NetworkHandler{svc: svc}
}

// Routes returns the router for network endpoints.
func (h *NetworkHandler) Routes() chi.Router {
	r := chi.NewRouter()

	// Aggregate settings view
	r.Get("/settings", h.GetSettings)

	// WiFi profiles
	r.Route("/wifi", func(r chi.Router) {
		r.Get("/", h.ListWifiProfiles)
		r.Post("/", h.CreateWifiProfile)
		r.Get("/active", h.GetActiveWifiProfile)
		r.Get("/scan", h.ScanNetworks)
		r.Post("/{id}/activate", h.ActivateWifiProfile)
		r.Post("/{id}/apply", h.ApplyWifiProfile)
		r.Delete("/{id}", h.DeleteWifiProfile)
	})

	// Static IP profiles
	r.Route("/static-ip", func(r chi.Router) {
		r.Get("/", h.ListStaticIPProfiles)
		r.Post("/", h.CreateStaticIPProfile)
		r.Post("/{id}/enable", h.EnableStaticIPProfile)
		r.Post("/{id}/disable", h.DisableStaticIPProfile)
		r.Post("/{id}/apply", h.ApplyStaticIPProfile)
		r.Delete("/{id}", h.DeleteStaticIPProfile)
	})

	// Interface discovery
	r.Get("/interfaces", h.ListInterfaces)

	return r
}

// =============================================================================
// WiFi Profiles
// =============================================================================

// CreateWifiProfile handles POST /network/wifi
// Stores a new WiFi profile. Fields are accepted as opaque strings.
func (h *NetworkHandler) CreateWifiProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SSID         string `json:"ssid"`
		Password     string `json:"password"`
		SecurityType string `json:"security_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile := h.svc.CreateWifiProfile(req.SSID, req.Password, models.WifiSecurityType(req.SecurityType))
	writeJSON(w, http.StatusCreated, profile)
}

// ListWifiProfiles handles GET /network/wifi
func (h *NetworkHandler) ListWifiProfiles(w http.ResponseWriter, r *http.Request) {
	profiles := h.svc.ListWifiProfiles()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"profiles": profiles,
		"count":    len(profiles),
	})
}

// GetActiveWifiProfile handles GET /network/wifi/active
// Returns the active profile, or a null body when none is active.
func (h *NetworkHandler) GetActiveWifiProfile(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.svc.ActiveWifiProfile()
	if !ok {
		writeJSON(w, http.StatusOK, map[string]interface{}{"active": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"active": profile})
}

// ActivateWifiProfile handles POST /network/wifi/{id}/activate
func (h *NetworkHandler) ActivateWifiProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.ActivateWifiProfile(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "WiFi profile not found: "+id)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "WiFi profile activated",
	})
}

// ApplyWifiProfile handles POST /network/wifi/{id}/apply
func (h *NetworkHandler) ApplyWifiProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.ApplyWifiProfile(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "WiFi profile not found: "+id)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "WiFi profile applied",
	})
}

// DeleteWifiProfile handles DELETE /network/wifi/{id}
// Deleting an unknown id succeeds; the operation is idempotent.
func (h *NetworkHandler) DeleteWifiProfile(w http.ResponseWriter, r *http.Request) {
	h.svc.DeleteWifiProfile(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "WiFi profile deleted",
	})
}

// =============================================================================
// Static IP Profiles
// =============================================================================

// CreateStaticIPProfile handles POST /network/static-ip
func (h *NetworkHandler) CreateStaticIPProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		InterfaceName string `json:"interface_name"`
		IPAddress     string `json:"ip_address"`
		SubnetMask    string `json:"subnet_mask"`
		Gateway       string `json:"gateway"`
		DNSPrimary    string `json:"dns_primary"`
		DNSSecondary  string `json:"dns_secondary"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile := h.svc.CreateStaticIPProfile(req.InterfaceName, req.IPAddress, req.SubnetMask,
		req.Gateway, req.DNSPrimary, req.DNSSecondary)
	writeJSON(w, http.StatusCreated, profile)
}

// ListStaticIPProfiles handles GET /network/static-ip
func (h *NetworkHandler) ListStaticIPProfiles(w http.ResponseWriter, r *http.Request) {
	profiles := h.svc.ListStaticIPProfiles()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"profiles": profiles,
		"count":    len(profiles),
	})
}

// EnableStaticIPProfile handles POST /network/static-ip/{id}/enable
func (h *NetworkHandler) EnableStaticIPProfile(w http.ResponseWriter, r *http.Request) {
	h.toggleStaticIP(w, r, h.svc.EnableStaticIPProfile, "Static IP profile enabled")
}

// DisableStaticIPProfile handles POST /network/static-ip/{id}/disable
func (h *NetworkHandler) DisableStaticIPProfile(w http.ResponseWriter, r *http.Request) {
	h.toggleStaticIP(w, r, h.svc.DisableStaticIPProfile, "Static IP profile disabled")
}

func (h *NetworkHandler) toggleStaticIP(w http.ResponseWriter, r *http.Request, op func(string) error, message string) {
	id := chi.URLParam(r, "id")
	if err := op(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Static IP profile not found: "+id)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": message,
	})
}

// ApplyStaticIPProfile handles POST /network/static-ip/{id}/apply
func (h *NetworkHandler) ApplyStaticIPProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.ApplyStaticIPProfile(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Static IP profile not found: "+id)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Static IP profile applied",
	})
}

// DeleteStaticIPProfile handles DELETE /network/static-ip/{id}
func (h *NetworkHandler) DeleteStaticIPProfile(w http.ResponseWriter, r *http.Request) {
	h.svc.DeleteStaticIPProfile(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Static IP profile deleted",
	})
}

// =============================================================================
// Discovery and Scanning
// =============================================================================

// ListInterfaces handles GET /network/interfaces
func (h *NetworkHandler) ListInterfaces(w http.ResponseWriter, r *http.Request) {
	interfaces, err := h.svc.ListInterfaces()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list interfaces")
		writeError(w, http.StatusInternalServerError, "Failed to list interfaces")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"interfaces": interfaces,
		"count":      len(interfaces),
	})
}

// ScanNetworks handles GET /network/wifi/scan
// Results are sorted by descending signal strength for display.
func (h *NetworkHandler) ScanNetworks(w http.ResponseWriter, r *http.Request) {
	networks, err := h.svc.ScanNetworks(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("WiFi scan failed")
		writeError(w, http.StatusInternalServerError, "WiFi scan failed")
		return
	}

	sort.SliceStable(networks, func(i, j int) bool {
		return networks[i].SignalLevel > networks[j].SignalLevel
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"networks": networks,
		"count":    len(networks),
	})
}

// GetSettings handles GET /network/settings
// Returns the aggregate payload backing the network settings page.
func (h *NetworkHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	interfaces, err := h.svc.ListInterfaces()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list interfaces")
		writeError(w, http.StatusInternalServerError, "Failed to list interfaces")
		return
	}

	resp := map[string]interface{}{
		"wifi_profiles":      h.svc.ListWifiProfiles(),
		"static_ip_profiles": h.svc.ListStaticIPProfiles(),
		"interfaces":         interfaces,
		"active_wifi":        nil,
	}
	if active, ok := h.svc.ActiveWifiProfile(); ok {
		resp["active_wifi"] = active
	}

	writeJSON(w, http.StatusOK, resp)
}

// --- Helper functions ---

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   http.StatusText(status),
		"message": message,
	})
}
