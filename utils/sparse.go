package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// DOK is a dictionary-of-keys assembly matrix. Entries are set individually
// and the result is converted to a dense Matrix for factorization.
type DOK struct {
	M *sparse.DOK
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{
		sparse.NewDOK(nr, nc),
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }
func (m DOK) NNZ() int            { return m.M.NNZ() }

func (m DOK) Set(i, j int, val float64) DOK { // Changes receiver
	m.M.Set(i, j, val)
	return m
}

func (m DOK) ToMatrix() (R Matrix, err error) {
	var (
		nr, nc = m.Dims()
	)
	if R, err = NewMatrix(nr, nc); err != nil {
		return
	}
	if R.IsEmpty() {
		return
	}
	D := m.M.ToDense()
	for i := 0; i < nr; i++ {
		copy(R.Row(i), D.RawRowView(i))
	}
	return
}

// NewTridiagonal assembles an n x n matrix with constant sub, main and super
// diagonals. Zero-valued diagonals are not stored.
func NewTridiagonal(n int, sub, diag, super float64) (R Matrix, err error) {
	if n <= 0 {
		err = fmt.Errorf("NewTridiagonal n = %v: %w", n, ErrInvalidSize)
		return
	}
	dok := NewDOK(n, n)
	for i := 0; i < n; i++ {
		if diag != 0 {
			dok.Set(i, i, diag)
		}
		if i > 0 && sub != 0 {
			dok.Set(i, i-1, sub)
		}
		if i < n-1 && super != 0 {
			dok.Set(i, i+1, super)
		}
	}
	return dok.ToMatrix()
}
