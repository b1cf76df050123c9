// Package models defines the network configuration entities shared across
// the stores, the discovery layer, and the API.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// WIFI SECURITY
// ============================================================================

// WifiSecurityType is the security protocol of a WiFi network.
type WifiSecurityType string

const (
	SecurityOpen WifiSecurityType = "Open"
	SecurityWEP  WifiSecurityType = "WEP"
	SecurityWPA  WifiSecurityType = "WPA"
	SecurityWPA2 WifiSecurityType = "WPA2"
	SecurityWPA3 WifiSecurityType = "WPA3"
)

// AllWifiSecurityTypes returns all known security types.
func AllWifiSecurityTypes() []WifiSecurityType {
	return []WifiSecurityType{SecurityOpen, SecurityWEP, SecurityWPA, SecurityWPA2, SecurityWPA3}
}

// IsValid checks if the security type is one of the known values.
func (s WifiSecurityType) IsValid() bool {
	switch s {
	case SecurityOpen, SecurityWEP, SecurityWPA, SecurityWPA2, SecurityWPA3:
		return true
	}
	return false
}

// String returns the string representation.
func (s WifiSecurityType) String() string {
	return string(s)
}

// ============================================================================
// PROFILES
// ============================================================================

// WifiProfile is a stored WiFi connection profile. The password is kept as a
// plain string; there is no confidentiality guarantee on stored credentials.
type WifiProfile struct {
	ID           string           `json:"id"`
	SSID         string           `json:"ssid"`
	Password     string           `json:"-"`
	SecurityType WifiSecurityType `json:"security_type"`
	IsActive     bool             `json:"is_active"`
	CreatedAt    time.Time        `json:"created_at"`
}

// NewWifiProfile creates an inactive profile with a fresh id. SSID and
// password are stored as given, without validation.
func NewWifiProfile(ssid, password string, security WifiSecurityType) WifiProfile {
	return WifiProfile{
		ID:           uuid.NewString(),
		SSID:         ssid,
		Password:     password,
		SecurityType: security,
		IsActive:     false,
		CreatedAt:    time.Now().UTC(),
	}
}

// StaticIPProfile is a stored static IPv4 assignment for one interface.
// Address fields are opaque strings; malformed values are stored as given.
type StaticIPProfile struct {
	ID            string    `json:"id"`
	InterfaceName string    `json:"interface_name"`
	IPAddress     string    `json:"ip_address"`
	SubnetMask    string    `json:"subnet_mask"`
	Gateway       string    `json:"gateway"`
	DNSPrimary    string    `json:"dns_primary"`
	DNSSecondary  string    `json:"dns_secondary,omitempty"`
	IsEnabled     bool      `json:"is_enabled"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewStaticIPProfile creates a disabled profile with a fresh id.
func NewStaticIPProfile(interfaceName, ip, mask, gateway, dnsPrimary, dnsSecondary string) StaticIPProfile {
	return StaticIPProfile{
		ID:            uuid.NewString(),
		InterfaceName: interfaceName,
		IPAddress:     ip,
		SubnetMask:    mask,
		Gateway:       gateway,
		DNSPrimary:    dnsPrimary,
		DNSSecondary:  dnsSecondary,
		IsEnabled:     false,
		CreatedAt:     time.Now().UTC(),
	}
}

// ============================================================================
// INTERFACES
// ============================================================================

// InterfaceType is the coarse classification of a network interface.
type InterfaceType string

const (
	InterfaceEthernet InterfaceType = "ethernet"
	InterfaceWireless InterfaceType = "wireless"
	InterfaceLoopback InterfaceType = "loopback"
	InterfaceOther    InterfaceType = "other"
)

// IsValid checks if the interface type is one of the known values.
func (t InterfaceType) IsValid() bool {
	switch t {
	case InterfaceEthernet, InterfaceWireless, InterfaceLoopback, InterfaceOther:
		return true
	}
	return false
}

// String returns the string representation.
func (t InterfaceType) String() string {
	return string(t)
}

// MACUnavailable is reported when the discovery strategy cannot read the
// hardware address.
const MACUnavailable = "N/A"

// NetworkInterface is a point-in-time view of one host interface. It is
// recomputed on every discovery call and never stored.
type NetworkInterface struct {
	Name          string        `json:"name"`
	InterfaceType InterfaceType `json:"interface_type"`
	MACAddress    string        `json:"mac_address"`
	// IsUp is derived from address presence, not from OS link state.
	IsUp          bool     `json:"is_up"`
	IPv4Addresses []string `json:"ipv4_addresses"`
	IPv6Addresses []string `json:"ipv6_addresses"`
	// CurrentIP is the first address in discovery order, kept for
	// compatibility with clients that expect a single address.
	CurrentIP string `json:"current_ip,omitempty"`
}

// ============================================================================
// WIFI SCAN
// ============================================================================

// ScannedNetwork is one sanitized WiFi scan result.
type ScannedNetwork struct {
	SSID        string `json:"ssid"`
	MAC         string `json:"mac"`
	SignalLevel int    `json:"signal_level"`
	Channel     string `json:"channel"`
	Security    string `json:"security"`
}
