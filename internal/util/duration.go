// Package util provides shared helpers for controlroom.
package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDuration parses human-friendly duration strings.
// Supports: 30s, 5m, 1h, 1d, 1w and standard Go durations (e.g., 1h30m, 500ms).
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid duration: %q", s)
	}

	unit := s[len(s)-1]
	value, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return time.ParseDuration(s)
	}

	switch unit {
	case 's':
		return time.Duration(value) * time.Second, nil
	case 'm':
		return time.Duration(value) * time.Minute, nil
	case 'h':
		return time.Duration(value) * time.Hour, nil
	case 'd':
		return time.Duration(value) * 24 * time.Hour, nil
	case 'w':
		return time.Duration(value) * 7 * 24 * time.Hour, nil
	default:
		return time.ParseDuration(s)
	}
}

// FormatUptime renders d in the "47d 12h 34m" form used by the status
// panels. Seconds are dropped.
func FormatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	days := int(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int(d / time.Minute)
	return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
}

// ParseUptime is the inverse of FormatUptime. Each field is optional but
// at least one must be present.
func ParseUptime(s string) (time.Duration, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, fmt.Errorf("invalid uptime: %q", s)
	}
	var total time.Duration
	for _, f := range fields {
		d, err := ParseDuration(f)
		if err != nil {
			return 0, fmt.Errorf("invalid uptime %q: %w", s, err)
		}
		total += d
	}
	return total, nil
}
