// Package duration parses the timeouts written in deployment descriptors.
package duration

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parse parses a timeout such as "10s", "1m30s" or "2h".
//
// A bare integer is a number of seconds, matching the docker CLI
// "--time" flag:
//
//	Parse("10")    // 10s
//	Parse("1m30s") // 90s
//	Parse("0")     // 0, meaning the engine default
//
// Negative durations are rejected.
func Parse(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration string")
	}

	if seconds, err := strconv.ParseInt(s, 10, 64); err == nil {
		if seconds < 0 {
			return 0, fmt.Errorf("negative duration %q", s)
		}
		return time.Duration(seconds) * time.Second, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w (supported units: ms, s, m, h)", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %q", s)
	}
	return d, nil
}

// ParseOptional is Parse with the empty string mapped to zero.
func ParseOptional(s string) (time.Duration, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	return Parse(s)
}
