package utils

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// InfiniteNorm returns the largest element of values. The sign is kept: the
// error vectors it is applied to already hold magnitudes.
func InfiniteNorm(values []float64) (max float64, err error) {
	if len(values) == 0 {
		err = fmt.Errorf("InfiniteNorm: %w", ErrEmptyVector)
		return
	}
	max = floats.Max(values)
	return
}

// PNorm returns (sum |v|^p)^(1/p).
func PNorm(values []float64, p int) float64 {
	return floats.Norm(values, float64(p))
}
