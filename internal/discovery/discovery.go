// Package discovery enumerates host network interfaces and normalizes them
// into per-interface records.
package discovery

import (
	"errors"
	"strings"

	"github.com/nuclearlighters/netconfigd/internal/models"
)

// ErrDiscoveryFailed is returned when the host cannot be queried for its
// interfaces. Partial results are never returned.
var ErrDiscoveryFailed = errors.New("interface discovery failed")

// AddrFamily is the IP family of a discovered address.
type AddrFamily string

const (
	FamilyIPv4 AddrFamily = "ipv4"
	FamilyIPv6 AddrFamily = "ipv6"
)

// RawAddress is one (interface, address) pair as reported by the host. An
// interface bound to several addresses produces several entries.
type RawAddress struct {
	Interface string
	Address   string
	Family    AddrFamily
}

// Discoverer produces the current view of the host's network interfaces.
// Implementations must treat every call as a fresh query; results are never
// cached or stored.
type Discoverer interface {
	Interfaces() ([]models.NetworkInterface, error)
}

// Normalize merges raw (interface, address) pairs into one record per
// interface. Address order within a family follows discovery order, and
// CurrentIP is the first address seen for the interface regardless of
// family. IsUp is an address-presence heuristic, not OS link state, and the
// MAC is reported as unavailable because the raw pairs do not carry it.
func Normalize(raw []RawAddress) []models.NetworkInterface {
	byName := make(map[string]*models.NetworkInterface)
	var order []string

	for _, addr := range raw {
		iface, ok := byName[addr.Interface]
		if !ok {
			iface = &models.NetworkInterface{
				Name:          addr.Interface,
				InterfaceType: ClassifyInterface(addr.Interface),
				MACAddress:    models.MACUnavailable,
			}
			byName[addr.Interface] = iface
			order = append(order, addr.Interface)
		}

		if addr.Address == "" {
			continue
		}
		if iface.CurrentIP == "" {
			iface.CurrentIP = addr.Address
		}
		switch addr.Family {
		case FamilyIPv6:
			iface.IPv6Addresses = append(iface.IPv6Addresses, addr.Address)
		default:
			iface.IPv4Addresses = append(iface.IPv4Addresses, addr.Address)
		}
	}

	out := make([]models.NetworkInterface, 0, len(order))
	for _, name := range order {
		iface := byName[name]
		iface.IsUp = len(iface.IPv4Addresses)+len(iface.IPv6Addresses) > 0
		out = append(out, *iface)
	}
	return out
}

// ClassifyInterface maps an interface name to its type by prefix. Loopback
// wins over wireless, wireless over ethernet; anything unmatched is Other.
func ClassifyInterface(name string) models.InterfaceType {
	lower := strings.ToLower(name)
	switch {
	case strings.HasPrefix(lower, "lo"):
		return models.InterfaceLoopback
	case strings.HasPrefix(lower, "wl"), strings.HasPrefix(lower, "wifi"), strings.HasPrefix(lower, "wlan"):
		return models.InterfaceWireless
	case strings.HasPrefix(lower, "eth"), strings.HasPrefix(lower, "en"):
		return models.InterfaceEthernet
	default:
		return models.InterfaceOther
	}
}
