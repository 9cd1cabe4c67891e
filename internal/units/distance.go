// Package units provides shared constants, parsing, and conversion for
// distance units used on the command line and in reports.
package units

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit constants
const (
	M  = "m"
	KM = "km"
)

// ValidUnits contains all valid distance unit suffixes
var ValidUnits = []string{M, KM}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// ParseDistance parses a distance string like "500m", "0.5km", or a bare
// number (treated as meters) and returns the value in meters.
func ParseDistance(s string) (float64, error) {
	trimmed := strings.TrimSpace(strings.ToLower(s))
	if trimmed == "" {
		return 0, fmt.Errorf("empty distance")
	}

	unit := M
	numeric := trimmed
	switch {
	case strings.HasSuffix(trimmed, KM):
		unit = KM
		numeric = strings.TrimSuffix(trimmed, KM)
	case strings.HasSuffix(trimmed, M):
		numeric = strings.TrimSuffix(trimmed, M)
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(numeric), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid distance %q: %w", s, err)
	}

	if unit == KM {
		value *= 1000
	}
	return value, nil
}

// FormatDistance renders meters using the most readable unit: whole
// kilometers as "Nkm", everything else as meters.
func FormatDistance(meters float64) string {
	if meters >= 1000 && meters == float64(int64(meters)) && int64(meters)%1000 == 0 {
		return fmt.Sprintf("%dkm", int64(meters)/1000)
	}
	return fmt.Sprintf("%gm", meters)
}
