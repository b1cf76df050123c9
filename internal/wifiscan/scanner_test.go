package wifiscan

import (
	"context"
	"errors"
	"testing"
)

func TestSanitizeDropsEmptySSID(t *testing.T) {
	raw := []RawNetwork{
		{SSID: "", MAC: "AA:BB:CC:DD:EE:FF", SignalLevel: 70, Channel: "6", Security: "WPA2"},
		{SSID: "Home", MAC: "11:22:33:44:55:66", SignalLevel: 60, Channel: "11", Security: "WPA2"},
	}

	got := Sanitize(raw)
	if len(got) != 1 {
		t.Fatalf("Sanitize() kept %d entries, want 1", len(got))
	}
	if got[0].SSID != "Home" {
		t.Errorf("SSID = %q, want Home", got[0].SSID)
	}
}

func TestSanitizeSubstitutesUnknown(t *testing.T) {
	raw := []RawNetwork{
		{SSID: "Home", MAC: "", SignalLevel: 55, Channel: "", Security: "WPA2"},
	}

	got := Sanitize(raw)
	if len(got) != 1 {
		t.Fatalf("Sanitize() kept %d entries, want 1", len(got))
	}
	if got[0].MAC != "Unknown" {
		t.Errorf("MAC = %q, want Unknown", got[0].MAC)
	}
	if got[0].Channel != "Unknown" {
		t.Errorf("Channel = %q, want Unknown", got[0].Channel)
	}
	if got[0].SignalLevel != 55 {
		t.Errorf("SignalLevel = %d, want 55 (pass-through)", got[0].SignalLevel)
	}
	if got[0].Security != "WPA2" {
		t.Errorf("Security = %q, want WPA2 (pass-through)", got[0].Security)
	}
}

func TestSanitizePreservesScanOrder(t *testing.T) {
	raw := []RawNetwork{
		{SSID: "Weak", SignalLevel: 10},
		{SSID: "Strong", SignalLevel: 90},
		{SSID: "Mid", SignalLevel: 50},
	}

	got := Sanitize(raw)
	if len(got) != 3 {
		t.Fatalf("Sanitize() kept %d entries, want 3", len(got))
	}
	for i, want := range []string{"Weak", "Strong", "Mid"} {
		if got[i].SSID != want {
			t.Errorf("entry %d = %q, want %q (scan order preserved)", i, got[i].SSID, want)
		}
	}
}

// fakeSource returns canned results or a fixed error.
type fakeSource struct {
	networks []RawNetwork
	err      error
}

func (f *fakeSource) Scan(ctx context.Context) ([]RawNetwork, error) {
	return f.networks, f.err
}

func TestScannerWrapsSourceError(t *testing.T) {
	cause := errors.New("no wireless hardware")
	s := NewScanner(&fakeSource{err: cause})

	got, err := s.Scan(context.Background())
	if !errors.Is(err, ErrScanFailed) {
		t.Fatalf("Scan() error = %v, want ErrScanFailed", err)
	}
	if got != nil {
		t.Errorf("Scan() on failure returned %v, want no partial results", got)
	}
}

func TestScannerSanitizes(t *testing.T) {
	s := NewScanner(&fakeSource{networks: []RawNetwork{
		{SSID: "", MAC: "AA:BB"},
		{SSID: "Cafe", MAC: "", Channel: "", SignalLevel: 42, Security: "WPA1 WPA2"},
	}})

	got, err := s.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Scan() returned %d entries, want 1", len(got))
	}
	if got[0].MAC != "Unknown" || got[0].Channel != "Unknown" {
		t.Errorf("entry not sanitized: %+v", got[0])
	}
}

func TestParseNmcliOutput(t *testing.T) {
	out := "Home\tAA:BB:CC:DD:EE:FF\t82\t6\tWPA2\n" +
		"\t11:22:33:44:55:66\t40\t36\tWPA2\n" + // hidden SSID, kept raw here
		"Cafe Guest\t22:33:44:55:66:77\t57\t11\t\n" +
		"short\tline\n" + // too few fields, skipped
		"\n"

	got := parseNmcliOutput(out)
	if len(got) != 3 {
		t.Fatalf("parseNmcliOutput() returned %d entries, want 3", len(got))
	}

	if got[0].SSID != "Home" || got[0].SignalLevel != 82 || got[0].Channel != "6" {
		t.Errorf("entry 0 = %+v", got[0])
	}
	if got[1].SSID != "" {
		t.Errorf("entry 1 SSID = %q, want empty (sanitization happens later)", got[1].SSID)
	}
	if got[2].SSID != "Cafe Guest" || got[2].Security != "" {
		t.Errorf("entry 2 = %+v", got[2])
	}
}
