package wifiscan

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
)

// NmcliSource scans through NetworkManager's nmcli. It requires a host with
// NetworkManager running and a wireless device present.
type NmcliSource struct {
	// Interface restricts the scan to one wireless device. Empty means
	// nmcli picks the device itself.
	Interface string
}

// NewNmcliSource creates a source scanning on the given interface.
func NewNmcliSource(iface string) *NmcliSource {
	return &NmcliSource{Interface: iface}
}

// Scan runs `nmcli dev wifi list --rescan yes` and parses the terse output.
// Lines that do not parse are skipped; a failed invocation fails the whole
// scan.
func (s *NmcliSource) Scan(ctx context.Context) ([]RawNetwork, error) {
	args := []string{
		"-t",
		"--separator", "\t",
		"-f", "SSID,BSSID,SIGNAL,CHAN,SECURITY",
		"dev", "wifi", "list",
		"--rescan", "yes",
	}
	if s.Interface != "" {
		args = append(args, "ifname", s.Interface)
	}

	out, err := exec.CommandContext(ctx, "nmcli", args...).Output()
	if err != nil {
		return nil, err
	}

	return parseNmcliOutput(string(out)), nil
}

// parseNmcliOutput parses terse tab-separated nmcli wifi list output.
func parseNmcliOutput(out string) []RawNetwork {
	var networks []RawNetwork
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		// SSID \t BSSID \t SIGNAL \t CHAN \t SECURITY
		parts := strings.Split(line, "\t")
		if len(parts) < 5 {
			continue
		}

		signal, _ := strconv.Atoi(strings.TrimSpace(parts[2]))
		networks = append(networks, RawNetwork{
			SSID:        parts[0],
			MAC:         strings.TrimSpace(parts[1]),
			SignalLevel: signal,
			Channel:     strings.TrimSpace(parts[3]),
			Security:    strings.TrimSpace(parts[4]),
		})
	}

	return networks
}
