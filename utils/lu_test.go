package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestLUFactor(t *testing.T) {
	// Upwind system: diagonal 1+c, sub-diagonal -c
	{
		var (
			n   = 9
			cfl = 1.99
		)
		A, err := NewTridiagonal(n, -cfl, 1+cfl, 0)
		require.NoError(t, err)
		L, U, err := LUFactor(A)
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			assert.Equal(t, 1., L.At(i, i))
			for j := i + 1; j < n; j++ {
				assert.Equal(t, 0., L.At(i, j))
			}
			for j := 0; j < i; j++ {
				assert.Equal(t, 0., U.At(i, j))
			}
		}
		LU, err := L.Mul(U)
		require.NoError(t, err)
		assert.True(t, LU.Equal(A), "L*U = \n%v\nA = \n%v", LU, A)
	}
	// Full tridiagonal, diagonally dominant
	{
		var (
			n = 6
		)
		A, err := NewTridiagonal(n, -1, 4, 0.5)
		require.NoError(t, err)
		L, U, err := LUFactor(A)
		require.NoError(t, err)
		LU, err := L.Mul(U)
		require.NoError(t, err)
		assert.True(t, LU.Equal(A))

		b := []float64{1, -2, 3, 0.5, 7, -1}
		bCopy := append([]float64{}, b...)
		x, err := LUSolve(L, U, b)
		require.NoError(t, err)
		assert.Equal(t, bCopy, b)
		Ax, err := A.MulVec(x)
		require.NoError(t, err)
		assert.InDeltaSlice(t, b, Ax, 1.e-10)

		// Cross check against gonum's pivoting LU
		var (
			lu mat.LU
			xG mat.VecDense
		)
		lu.Factorize(A)
		require.NoError(t, lu.SolveVecTo(&xG, false, mat.NewVecDense(n, b)))
		assert.InDeltaSlice(t, xG.RawVector().Data, x, 1.e-10)
	}
	// Single entry
	{
		A, _ := NewMatrix(1, 1, []float64{2})
		L, U, err := LUFactor(A)
		require.NoError(t, err)
		x, err := LUSolve(L, U, []float64{3})
		require.NoError(t, err)
		assert.Equal(t, []float64{1.5}, x)
	}
}

func TestLUFactorSingular(t *testing.T) {
	// Leading pivot is zero
	{
		A, _ := NewMatrix(2, 2, []float64{
			0, 1,
			1, 0,
		})
		_, _, err := LUFactor(A)
		assert.ErrorIs(t, err, ErrSingularSystem)
	}
	// Last diagonal only seen by the check inside the elimination loop
	{
		A, _ := NewMatrix(3, 3, []float64{
			1, 0, 0,
			0, 1, 0,
			0, 0, 0,
		})
		_, _, err := LUFactor(A)
		assert.ErrorIs(t, err, ErrSingularSystem)
	}
	// Diagonal cancelled by elimination
	{
		A, _ := NewMatrix(2, 2, []float64{
			1, 2,
			2, 4,
		})
		_, _, err := LUFactor(A)
		assert.ErrorIs(t, err, ErrSingularSystem)
	}
	// Non square
	{
		A, _ := NewMatrix(2, 3)
		_, _, err := LUFactor(A)
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	}
}

func TestLUSolveMismatch(t *testing.T) {
	A, _ := NewTridiagonal(3, -1, 2, 0)
	L, U, err := LUFactor(A)
	require.NoError(t, err)
	_, err = LUSolve(L, U, []float64{1, 2})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
