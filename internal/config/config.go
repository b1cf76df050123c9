// Package config provides application configuration from environment variables.
package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Settings holds all application configuration.
type Settings struct {
	// Application metadata
	Version  string `envconfig:"VERSION" default:"0.1.0"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// API server settings
	APIHost string `envconfig:"API_HOST" default:"0.0.0.0"`
	APIPort int    `envconfig:"API_PORT" default:"9010"`

	// WiFi scan settings
	ScanInterface string `envconfig:"SCAN_INTERFACE" default:""` // empty lets nmcli pick the device

	// Timeouts
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"` // must exceed the slowest nmcli rescan

	// Interface discovery
	MockDiscovery bool `envconfig:"MOCK_DISCOVERY" default:"false"` // canned interfaces for hosts without introspection access
}

// ListenAddr returns the address string for the HTTP server to bind to.
func (s *Settings) ListenAddr() string {
	return fmt.Sprintf("%s:%d", s.APIHost, s.APIPort)
}

var (
	cfg  *Settings
	once sync.Once
)

// Get returns the singleton Settings instance.
func Get() *Settings {
	once.Do(func() {
		cfg = &Settings{}
		if err := envconfig.Process("NETCONFIGD", cfg); err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return cfg
}

// Load creates a new Settings instance from environment variables.
func Load() (*Settings, error) {
	s := &Settings{}
	if err := envconfig.Process("NETCONFIGD", s); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return s, nil
}
