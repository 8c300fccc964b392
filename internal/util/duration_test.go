package util

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"30s", 30 * time.Second, false},
		{"3s", 3 * time.Second, false},
		{"5m", 5 * time.Minute, false},
		{"2h", 2 * time.Hour, false},
		{"1d", 24 * time.Hour, false},
		{"2w", 14 * 24 * time.Hour, false},
		{" 2s ", 2 * time.Second, false},

		// Standard Go formats
		{"500ms", 500 * time.Millisecond, false},
		{"1h30m", 90 * time.Minute, false},

		{"", 0, true},
		{"s", 0, true},
		{"abc", 0, true},
		{"-1s", -time.Second, false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseDuration(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseDuration(%q) expected error, got %v", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Errorf("ParseDuration(%q) unexpected error: %v", tc.input, err)
				return
			}
			if got != tc.expected {
				t.Errorf("ParseDuration(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0d 0h 0m"},
		{-time.Hour, "0d 0h 0m"},
		{59 * time.Second, "0d 0h 0m"},
		{47*24*time.Hour + 12*time.Hour + 34*time.Minute, "47d 12h 34m"},
		{25*time.Hour + 61*time.Minute, "1d 2h 1m"},
	}
	for _, tc := range tests {
		if got := FormatUptime(tc.d); got != tc.want {
			t.Errorf("FormatUptime(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestParseUptimeRoundTrip(t *testing.T) {
	d, err := ParseUptime("47d 12h 34m")
	if err != nil {
		t.Fatalf("ParseUptime: %v", err)
	}
	if got := FormatUptime(d); got != "47d 12h 34m" {
		t.Errorf("round trip = %q", got)
	}
	if _, err := ParseUptime("   "); err == nil {
		t.Error("ParseUptime accepted blank input")
	}
	if _, err := ParseUptime("47d soon"); err == nil {
		t.Error("ParseUptime accepted garbage")
	}
}
