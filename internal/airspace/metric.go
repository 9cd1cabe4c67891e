package airspace

import (
	"fmt"
	"math"
)

// Metric selects the distance function used for conflict checks.
type Metric int

const (
	// Euclidean is planar straight-line distance, the default.
	Euclidean Metric = iota
	// Chebyshev is maximum-axis distance, a cheaper grid-friendly
	// alternative.
	Chebyshev
)

// Boundary selects how a pair at exactly the conflict radius is treated.
type Boundary int

const (
	// Strict counts only pairs strictly closer than the radius.
	Strict Boundary = iota
	// Inclusive also counts pairs at exactly the radius.
	Inclusive
)

func (m Metric) String() string {
	switch m {
	case Euclidean:
		return "euclidean"
	case Chebyshev:
		return "chebyshev"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

func (b Boundary) String() string {
	switch b {
	case Strict:
		return "strict"
	case Inclusive:
		return "inclusive"
	default:
		return fmt.Sprintf("boundary(%d)", int(b))
	}
}

// ParseMetric converts a flag or config value to a Metric.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "euclidean", "":
		return Euclidean, nil
	case "chebyshev":
		return Chebyshev, nil
	default:
		return Euclidean, fmt.Errorf("%w: unknown metric %q (valid: euclidean, chebyshev)", ErrInvalidParameter, s)
	}
}

// ParseBoundary converts a flag or config value to a Boundary.
func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "strict", "":
		return Strict, nil
	case "inclusive":
		return Inclusive, nil
	default:
		return Strict, fmt.Errorf("%w: unknown boundary rule %q (valid: strict, inclusive)", ErrInvalidParameter, s)
	}
}

// inConflict reports whether a separation of (dx, dy) violates the radius
// under the given metric and boundary rule. Euclidean compares squared
// distances to avoid the square root.
func inConflict(m Metric, b Boundary, dx, dy, radius float64) bool {
	var d, limit float64
	switch m {
	case Chebyshev:
		d = math.Max(math.Abs(dx), math.Abs(dy))
		limit = radius
	default:
		d = dx*dx + dy*dy
		limit = radius * radius
	}
	if b == Inclusive {
		return d <= limit
	}
	return d < limit
}
