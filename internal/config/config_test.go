package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("NETCONFIGD_API_PORT")
	os.Unsetenv("API_PORT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.APIPort != 9010 {
		t.Errorf("Load() default port = %v, want 9010", cfg.APIPort)
	}
	if cfg.Version != "0.1.0" {
		t.Errorf("Load() default version = %v, want 0.1.0", cfg.Version)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("Load() default request timeout = %v, want 30s", cfg.RequestTimeout)
	}
	if cfg.MockDiscovery {
		t.Error("Load() default mock discovery = true, want false")
	}
}

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("NETCONFIGD_API_PORT", "8080")
	os.Setenv("NETCONFIGD_SCAN_INTERFACE", "wlan1")
	os.Setenv("NETCONFIGD_MOCK_DISCOVERY", "true")
	defer os.Unsetenv("NETCONFIGD_API_PORT")
	defer os.Unsetenv("NETCONFIGD_SCAN_INTERFACE")
	defer os.Unsetenv("NETCONFIGD_MOCK_DISCOVERY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.APIPort != 8080 {
		t.Errorf("Load() port from env = %v, want 8080", cfg.APIPort)
	}
	if cfg.ScanInterface != "wlan1" {
		t.Errorf("Load() scan interface from env = %v, want wlan1", cfg.ScanInterface)
	}
	if !cfg.MockDiscovery {
		t.Error("Load() mock discovery from env = false, want true")
	}
}

func TestListenAddr(t *testing.T) {
	s := &Settings{APIHost: "127.0.0.1", APIPort: 9010}
	if got := s.ListenAddr(); got != "127.0.0.1:9010" {
		t.Errorf("ListenAddr() = %v, want 127.0.0.1:9010", got)
	}
}
