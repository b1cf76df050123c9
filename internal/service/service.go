// Package service orchestrates the profile stores, interface discovery, and
// the WiFi scanner behind one surface consumed by the API layer.
package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/nuclearlighters/netconfigd/internal/discovery"
	"github.com/nuclearlighters/netconfigd/internal/models"
	"github.com/nuclearlighters/netconfigd/internal/store"
)

// WifiStore is the profile storage the service needs for WiFi profiles.
// *store.WifiStore implements it; tests may substitute a fake.
type WifiStore interface {
	Save(profile models.WifiProfile)
	FindAll() []models.WifiProfile
	FindByID(id string) (models.WifiProfile, bool)
	FindActive() (models.WifiProfile, bool)
	SetActive(id string) error
	Delete(id string)
}

// StaticIPStore is the profile storage the service needs for static IP
// profiles. *store.StaticIPStore implements it.
type StaticIPStore interface {
	Save(profile models.StaticIPProfile)
	FindAll() []models.StaticIPProfile
	FindByID(id string) (models.StaticIPProfile, bool)
	FindByInterface(name string) (models.StaticIPProfile, bool)
	Enable(id string) error
	Disable(id string) error
	Delete(id string)
}

// Scanner produces sanitized WiFi scan results. *wifiscan.Scanner
// implements it.
type Scanner interface {
	Scan(ctx context.Context) ([]models.ScannedNetwork, error)
}

// NetworkConfigService is the single entry point for network configuration
// operations. It adds no logic beyond what its collaborators provide and
// never retries a failed call.
type NetworkConfigService struct {
	wifi     WifiStore
	staticIP StaticIPStore
	discover discovery.Discoverer
	scanner  Scanner
}

// New wires a service from its collaborators.
func New(wifi WifiStore, staticIP StaticIPStore, discover discovery.Discoverer, scanner Scanner) *NetworkConfigService {
	return &NetworkConfigService{
		wifi:     wifi,
		staticIP: staticIP,
		discover: discover,
		scanner:  scanner,
	}
}

// ============================================================================
// WIFI PROFILES
// ============================================================================

// CreateWifiProfile stores a new inactive profile and returns it. Inputs are
// stored as given; no format validation is performed.
func (s *NetworkConfigService) CreateWifiProfile(ssid, password string, security models.WifiSecurityType) models.WifiProfile {
	profile := models.NewWifiProfile(ssid, password, security)
	s.wifi.Save(profile)
	return profile
}

// ListWifiProfiles returns all stored WiFi profiles.
func (s *NetworkConfigService) ListWifiProfiles() []models.WifiProfile {
	return s.wifi.FindAll()
}

// ActiveWifiProfile returns the currently active profile, if any.
func (s *NetworkConfigService) ActiveWifiProfile() (models.WifiProfile, bool) {
	return s.wifi.FindActive()
}

// ActivateWifiProfile makes the given profile the single active one.
// Returns store.ErrNotFound for an unknown id; the store then has no active
// profile at all.
func (s *NetworkConfigService) ActivateWifiProfile(id string) error {
	return s.wifi.SetActive(id)
}

// DeleteWifiProfile removes the profile. Idempotent.
func (s *NetworkConfigService) DeleteWifiProfile(id string) {
	s.wifi.Delete(id)
}

// ApplyWifiProfile records the intent to reconfigure the host's wireless
// connection from the given profile. Actual host reconfiguration is out of
// scope; the call logs the change and reports success. Returns
// store.ErrNotFound for an unknown id.
func (s *NetworkConfigService) ApplyWifiProfile(id string) error {
	p, ok := s.wifi.FindByID(id)
	if !ok {
		return store.ErrNotFound
	}
	log.Info().
		Str("profile_id", p.ID).
		Str("ssid", p.SSID).
		Str("security", p.SecurityType.String()).
		Msg("Apply WiFi profile (no-op)")
	return nil
}

// ============================================================================
// STATIC IP PROFILES
// ============================================================================

// CreateStaticIPProfile stores a new disabled profile and returns it.
// Address strings are accepted as opaque values.
func (s *NetworkConfigService) CreateStaticIPProfile(interfaceName, ip, mask, gateway, dnsPrimary, dnsSecondary string) models.StaticIPProfile {
	profile := models.NewStaticIPProfile(interfaceName, ip, mask, gateway, dnsPrimary, dnsSecondary)
	s.staticIP.Save(profile)
	return profile
}

// ListStaticIPProfiles returns all stored static IP profiles.
func (s *NetworkConfigService) ListStaticIPProfiles() []models.StaticIPProfile {
	return s.staticIP.FindAll()
}

// EnableStaticIPProfile flags one profile for use. Other profiles are
// unaffected, even ones targeting the same interface.
func (s *NetworkConfigService) EnableStaticIPProfile(id string) error {
	return s.staticIP.Enable(id)
}

// DisableStaticIPProfile clears the profile's enabled flag.
func (s *NetworkConfigService) DisableStaticIPProfile(id string) error {
	return s.staticIP.Disable(id)
}

// DeleteStaticIPProfile removes the profile. Idempotent.
func (s *NetworkConfigService) DeleteStaticIPProfile(id string) {
	s.staticIP.Delete(id)
}

// ApplyStaticIPProfile records the intent to configure the interface named
// by the profile. Like ApplyWifiProfile it is a logging stub.
func (s *NetworkConfigService) ApplyStaticIPProfile(id string) error {
	p, ok := s.staticIP.FindByID(id)
	if !ok {
		return store.ErrNotFound
	}
	log.Info().
		Str("profile_id", p.ID).
		Str("interface", p.InterfaceName).
		Str("ip", p.IPAddress).
		Str("gateway", p.Gateway).
		Msg("Apply static IP profile (no-op)")
	return nil
}

// ============================================================================
// DISCOVERY AND SCANNING
// ============================================================================

// ListInterfaces queries the host for its current interfaces. The call
// blocks for the duration of the host query and holds no store lock.
func (s *NetworkConfigService) ListInterfaces() ([]models.NetworkInterface, error) {
	return s.discover.Interfaces()
}

// ScanNetworks runs one WiFi scan and returns the sanitized results in scan
// order.
func (s *NetworkConfigService) ScanNetworks(ctx context.Context) ([]models.ScannedNetwork, error) {
	return s.scanner.Scan(ctx)
}
