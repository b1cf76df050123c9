package discovery

import "github.com/nuclearlighters/netconfigd/internal/models"

// MockDiscoverer returns a fixed set of three interfaces. It serves
// environments without host introspection access (containers, CI) and
// satisfies the same contract as SystemDiscoverer.
type MockDiscoverer struct{}

// NewMockDiscoverer creates a discoverer with canned data.
func NewMockDiscoverer() *MockDiscoverer {
	return &MockDiscoverer{}
}

// Interfaces returns one loopback, one wired, and one wireless interface.
func (d *MockDiscoverer) Interfaces() ([]models.NetworkInterface, error) {
	return []models.NetworkInterface{
		{
			Name:          "lo",
			InterfaceType: models.InterfaceLoopback,
			MACAddress:    "00:00:00:00:00:00",
			IsUp:          true,
			IPv4Addresses: []string{"127.0.0.1"},
			IPv6Addresses: []string{"::1"},
			CurrentIP:     "127.0.0.1",
		},
		{
			Name:          "eth0",
			InterfaceType: models.InterfaceEthernet,
			MACAddress:    "00:1B:44:11:3A:B7",
			IsUp:          true,
			IPv4Addresses: []string{"192.168.1.100"},
			IPv6Addresses: []string{"fe80::21b:44ff:fe11:3ab7"},
			CurrentIP:     "192.168.1.100",
		},
		{
			Name:          "wlan0",
			InterfaceType: models.InterfaceWireless,
			MACAddress:    "00:1B:44:11:3A:B8",
			IsUp:          true,
			IPv4Addresses: []string{"192.168.1.101"},
			IPv6Addresses: nil,
			CurrentIP:     "192.168.1.101",
		},
	}, nil
}
