// Package wifiscan wraps the host's WiFi scan facility and sanitizes its
// raw output into usable records.
package wifiscan

import (
	"context"
	"errors"
	"fmt"

	"github.com/nuclearlighters/netconfigd/internal/models"
)

// ErrScanFailed is returned when the underlying scan mechanism errors, for
// example from a missing privilege or absent wireless hardware. It always
// wraps the underlying cause and never accompanies a partial result.
var ErrScanFailed = errors.New("wifi scan failed")

// RawNetwork is one unsanitized scan entry as reported by the host.
type RawNetwork struct {
	SSID        string
	MAC         string
	SignalLevel int
	Channel     string
	Security    string
}

// Source performs the actual host scan. Implementations block the calling
// goroutine for the duration of the scan.
type Source interface {
	Scan(ctx context.Context) ([]RawNetwork, error)
}

// Scanner sanitizes the output of a Source. Result order is scan order;
// consumers that want signal-sorted output sort it themselves.
type Scanner struct {
	source Source
}

// NewScanner creates a scanner over the given source.
func NewScanner(source Source) *Scanner {
	return &Scanner{source: source}
}

// Scan runs one scan and sanitizes the results. A source failure surfaces as
// ErrScanFailed with the cause attached.
func (s *Scanner) Scan(ctx context.Context) ([]models.ScannedNetwork, error) {
	raw, err := s.source.Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanFailed, err)
	}
	return Sanitize(raw), nil
}

// Sanitize drops entries with an empty SSID (a nameless network cannot be
// selected or displayed) and substitutes "Unknown" for empty MAC and channel
// fields. SSID, signal level, and security pass through unchanged.
func Sanitize(raw []RawNetwork) []models.ScannedNetwork {
	out := make([]models.ScannedNetwork, 0, len(raw))
	for _, n := range raw {
		if n.SSID == "" {
			continue
		}
		mac := n.MAC
		if mac == "" {
			mac = "Unknown"
		}
		channel := n.Channel
		if channel == "" {
			channel = "Unknown"
		}
		out = append(out, models.ScannedNetwork{
			SSID:        n.SSID,
			MAC:         mac,
			SignalLevel: n.SignalLevel,
			Channel:     channel,
			Security:    n.Security,
		})
	}
	return out
}
