package utils

import (
	"math"
)

// IsFinite is false if any value is NaN or +-Inf, which is how a diverged
// explicit scheme shows up once the amplification has overflowed.
func IsFinite(A any) bool {
	switch v := A.(type) {
	case float64:
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	case []float64:
		for _, f := range v {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return false
			}
		}
	case Matrix:
		return IsFinite(v.Data())
	}
	return true
}
