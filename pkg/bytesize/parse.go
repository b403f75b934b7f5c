// Package bytesize parses and formats memory sizes as written in deployment
// descriptors ("512MB", "1g", "256m") and as shown in status output.
package bytesize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// unitMultipliers maps unit suffixes to their byte values (1024-based).
// Single letters follow the docker CLI convention ("512m").
var unitMultipliers = map[string]int64{
	"B":  1,
	"K":  1 << 10,
	"KB": 1 << 10,
	"M":  1 << 20,
	"MB": 1 << 20,
	"G":  1 << 30,
	"GB": 1 << 30,
	"T":  1 << 40,
	"TB": 1 << 40,
}

// longest suffix first so "MB" wins over "B"
var units = []string{"TB", "GB", "MB", "KB", "T", "G", "M", "K", "B"}

// Parse parses a byte size string. A bare number is a byte count.
//
// Examples:
//
//	Parse("512MB") // 536870912
//	Parse("512m")  // 536870912
//	Parse("1.5g")  // 1610612736
//	Parse("4096")  // 4096
func Parse(s string) (int64, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty size string")
	}

	unit := "B"
	valueStr := s
	for _, u := range units {
		if strings.HasSuffix(s, u) {
			unit = u
			valueStr = strings.TrimSpace(strings.TrimSuffix(s, u))
			break
		}
	}
	if valueStr == "" {
		return 0, fmt.Errorf("invalid size %q: missing numeric value", s)
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size value %q in %q: %w", valueStr, s, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("invalid size %q: negative value not allowed", s)
	}

	result := value * float64(unitMultipliers[unit])
	if result > math.MaxInt64 {
		return 0, fmt.Errorf("size %q exceeds maximum allowed value (9.2 EB)", s)
	}
	return int64(result), nil
}

// Format renders n bytes with the largest unit that keeps the value >= 1,
// using at most one decimal digit.
//
//	Format(0)         // "0B"
//	Format(1536)      // "1.5KB"
//	Format(536870912) // "512MB"
func Format(n uint64) string {
	for _, u := range []string{"TB", "GB", "MB", "KB"} {
		m := uint64(unitMultipliers[u])
		if n >= m {
			s := strconv.FormatFloat(float64(n)/float64(m), 'f', 1, 64)
			return strings.TrimSuffix(s, ".0") + u
		}
	}
	return strconv.FormatUint(n, 10) + "B"
}
