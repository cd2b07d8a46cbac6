package utils

import (
	"fmt"
	"math"
)

// LUFactor computes the Doolittle decomposition A = L*U without pivoting.
// L has a unit diagonal. A pivot smaller than PivotTol returns ErrSingularSystem.
func LUFactor(A Matrix) (L, U Matrix, err error) {
	var (
		nr, nc = A.Dims()
		n      = nr
		temp   = A.Copy()
		mult   float64
	)
	if nr != nc {
		err = fmt.Errorf("LUFactor of %vx%v matrix, must be square: %w", nr, nc, ErrDimensionMismatch)
		return
	}
	for k := 0; k < n-1; k++ {
		for i := k + 1; i < n; i++ {
			if math.Abs(temp.At(k, k)) < PivotTol {
				err = fmt.Errorf("LUFactor pivot at [%d][%d] = %v: %w", k, k, temp.At(k, k), ErrSingularSystem)
				return
			}
			mult = temp.At(i, k) / temp.At(k, k)
			temp.Set(i, k, mult) // entries of L are saved in temp
			for j := k + 1; j < n; j++ {
				temp.Set(i, j, temp.At(i, j)-mult*temp.At(k, j)) // entries of U are saved in temp
				// Inspects the diagonal of row i while row i is still being eliminated
				if math.Abs(temp.At(i, i)) < PivotTol {
					err = fmt.Errorf("LUFactor diagonal at [%d][%d] = %v while eliminating column %d: %w",
						i, i, temp.At(i, i), k, ErrSingularSystem)
					return
				}
			}
		}
	}
	if L, err = NewMatrix(n, n); err != nil {
		return
	}
	if U, err = NewMatrix(n, n); err != nil {
		return
	}
	for i := 0; i < n; i++ {
		L.Set(i, i, 1)
		for j := 0; j < i; j++ {
			L.Set(i, j, temp.At(i, j))
		}
		for j := i; j < n; j++ {
			U.Set(i, j, temp.At(i, j))
		}
	}
	return
}

// LUSolve solves L*U*x = b by forward then back substitution. b is not modified.
func LUSolve(L, U Matrix, b []float64) (x []float64, err error) {
	var (
		n, nc    = L.Dims()
		nrU, ncU = U.Dims()
	)
	if n != nc || nrU != n || ncU != n || len(b) != n {
		err = fmt.Errorf("LUSolve with L %vx%v, U %vx%v, len(b) = %v: %w",
			n, nc, nrU, ncU, len(b), ErrDimensionMismatch)
		return
	}
	x = make([]float64, n)
	copy(x, b)
	// forward substitution for L y = b
	for i := 1; i < n; i++ {
		row := L.Row(i)
		for j := 0; j < i; j++ {
			x[i] -= row[j] * x[j]
		}
	}
	// back substitution for U x = y
	for i := n - 1; i >= 0; i-- {
		row := U.Row(i)
		for j := i + 1; j < n; j++ {
			x[i] -= row[j] * x[j]
		}
		x[i] /= row[i]
	}
	return
}
