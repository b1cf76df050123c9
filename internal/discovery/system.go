package discovery

import (
	"fmt"
	"net"
	"strings"

	gnet "github.com/shirou/gopsutil/v3/net"

	"github.com/nuclearlighters/netconfigd/internal/models"
)

// SystemDiscoverer queries the host through gopsutil and normalizes the
// result. The query is a synchronous call into the OS and may block; callers
// must not hold any store lock across it.
type SystemDiscoverer struct{}

// NewSystemDiscoverer creates a host-backed discoverer.
func NewSystemDiscoverer() *SystemDiscoverer {
	return &SystemDiscoverer{}
}

// Interfaces enumerates the host's interfaces. The whole call fails with
// ErrDiscoveryFailed if the host cannot be queried.
func (d *SystemDiscoverer) Interfaces() ([]models.NetworkInterface, error) {
	stats, err := gnet.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDiscoveryFailed, err)
	}

	var raw []RawAddress
	for _, stat := range stats {
		if len(stat.Addrs) == 0 {
			raw = append(raw, RawAddress{Interface: stat.Name})
			continue
		}
		for _, addr := range stat.Addrs {
			ip := stripPrefixLen(addr.Addr)
			raw = append(raw, RawAddress{
				Interface: stat.Name,
				Address:   ip,
				Family:    familyOf(ip),
			})
		}
	}

	return Normalize(raw), nil
}

// stripPrefixLen drops a trailing CIDR prefix length, if any. gopsutil
// reports addresses in "192.168.1.5/24" form.
func stripPrefixLen(addr string) string {
	if i := strings.IndexByte(addr, '/'); i >= 0 {
		return addr[:i]
	}
	return addr
}

func familyOf(addr string) AddrFamily {
	ip := net.ParseIP(addr)
	if ip != nil && ip.To4() == nil {
		return FamilyIPv6
	}
	return FamilyIPv4
}
