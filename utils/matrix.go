package utils

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense row-major container. Unlike mat.Dense it allows zero
// sized shapes, which are rejected later by the products.
type Matrix struct {
	nr, nc int
	data   []float64
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix, err error) {
	if nr < 0 || nc < 0 {
		err = fmt.Errorf("NewMatrix nr,nc = %v,%v: %w", nr, nc, ErrInvalidSize)
		return
	}
	R = Matrix{nr: nr, nc: nc}
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err = fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v: %w",
				nr, nc, len(dataO[0]), ErrInvalidSize)
			return
		}
		R.data = make([]float64, nr*nc)
		copy(R.data, dataO[0])
		return
	}
	R.data = make([]float64, nr*nc)
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)    { return m.nr, m.nc }
func (m Matrix) At(i, j int) float64 { return m.data[i*m.nc+j] }
func (m Matrix) T() mat.Matrix       { return mat.Transpose{Matrix: m} }

func (m Matrix) Set(i, j int, val float64) { // Changes receiver
	m.data[i*m.nc+j] = val
}

// Data returns the row-major backing slice, shared with the receiver.
func (m Matrix) Data() []float64 { return m.data }

func (m Matrix) Row(i int) []float64 {
	return m.data[i*m.nc : (i+1)*m.nc]
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	R = Matrix{nr: m.nr, nc: m.nc, data: make([]float64, len(m.data))}
	copy(R.data, m.data)
	return
}

func (m Matrix) IsEmpty() bool { return m.nr == 0 || m.nc == 0 }

func (m Matrix) dense() *mat.Dense {
	return mat.NewDense(m.nr, m.nc, m.data)
}

func (m Matrix) Mul(A Matrix) (R Matrix, err error) { // Does not change receiver
	if m.IsEmpty() || A.IsEmpty() {
		err = fmt.Errorf("Mul of %vx%v by %vx%v, empty operand: %w", m.nr, m.nc, A.nr, A.nc, ErrDimensionMismatch)
		return
	}
	if m.nc != A.nr {
		err = fmt.Errorf("Mul of %vx%v by %vx%v: %w", m.nr, m.nc, A.nr, A.nc, ErrDimensionMismatch)
		return
	}
	if R, err = NewMatrix(m.nr, A.nc); err != nil {
		return
	}
	R.dense().Mul(m.dense(), A.dense())
	return
}

func (m Matrix) MulVec(v []float64) (r []float64, err error) { // Does not change receiver
	if m.IsEmpty() || len(v) == 0 {
		err = fmt.Errorf("MulVec of %vx%v by vector of length %v, empty operand: %w",
			m.nr, m.nc, len(v), ErrDimensionMismatch)
		return
	}
	if m.nc != len(v) {
		err = fmt.Errorf("MulVec of %vx%v by vector of length %v: %w", m.nr, m.nc, len(v), ErrDimensionMismatch)
		return
	}
	r = make([]float64, m.nr)
	rv := mat.NewVecDense(m.nr, r)
	rv.MulVec(m.dense(), mat.NewVecDense(len(v), v))
	return
}

// Equal reports whether A has the same shape and every entry is within
// EqualTol of the receiver's.
func (m Matrix) Equal(A Matrix) bool {
	if m.nr != A.nr || m.nc != A.nc {
		return false
	}
	for i, val := range m.data {
		if !scalar.EqualWithinAbs(val, A.data[i], EqualTol) {
			return false
		}
	}
	return true
}

func (m Matrix) Transpose() (R Matrix) { // Does not change receiver
	R = Matrix{nr: m.nc, nc: m.nr, data: make([]float64, len(m.data))}
	for i := 0; i < m.nr; i++ {
		for j := 0; j < m.nc; j++ {
			R.data[j*m.nr+i] = m.data[i*m.nc+j]
		}
	}
	return
}

func (m Matrix) String() string {
	if m.IsEmpty() {
		return fmt.Sprintf("[%dx%d]", m.nr, m.nc)
	}
	return fmt.Sprintf("%v", mat.Formatted(m, mat.Squeeze()))
}
