package algebra

import (
	"fmt"

	"github.com/npillmayer/spella"
	"gonum.org/v1/gonum/mat"
)

// Matrix is the monoid of square real matrices under multiplication.
// Matrix multiplication is associative but not commutative.
//
// The zero value Matrix{} is the identity of every dimension. This keeps
// Identity() independent of the receiver, as required by [Monoid]; products
// of two non-identity operands must agree in dimension, otherwise Op panics
// with an error wrapping spella.ErrDimensionMismatch.
//
// Op never modifies its operands.
type Matrix struct {
	m *mat.Dense
}

// NewMatrix creates an n×n matrix from row-major data, n > 0.
func NewMatrix(n int, data []float64) Matrix {
	if n <= 0 || len(data) != n*n {
		violation(fmt.Errorf("%w: matrix data of length %d is not %d×%d",
			spella.ErrDimensionMismatch, len(data), n, n))
	}
	d := make([]float64, len(data))
	copy(d, data)
	return Matrix{m: mat.NewDense(n, n, d)}
}

// IsIdentity reports whether m is the dimension-free identity.
func (m Matrix) IsIdentity() bool {
	return m.m == nil
}

// Dense returns a copy of the matrix as a gonum dense matrix, or nil for the
// dimension-free identity.
func (m Matrix) Dense() *mat.Dense {
	if m.m == nil {
		return nil
	}
	return mat.DenseCopyOf(m.m)
}

func (m Matrix) Op(other Matrix) Matrix {
	switch {
	case m.m == nil:
		return other
	case other.m == nil:
		return m
	}
	mr, mc := m.m.Dims()
	if r, c := other.m.Dims(); mc != r {
		violation(fmt.Errorf("%w: %d×%d times %d×%d",
			spella.ErrDimensionMismatch, mr, mc, r, c))
	}
	var p mat.Dense
	p.Mul(m.m, other.m)
	return Matrix{m: &p}
}
func (Matrix) Identity() Matrix { return Matrix{} }
func (Matrix) Associative()     {}

// EqualApprox compares two matrices element-wise within tolerance eps.
// The dimension-free identity equals every identity matrix.
func (m Matrix) EqualApprox(other Matrix, eps float64) bool {
	a, b := m.m, other.m
	if a == nil && b == nil {
		return true
	}
	if a == nil {
		a = eye(b)
	} else if b == nil {
		b = eye(a)
	}
	return mat.EqualApprox(a, b, eps)
}

func (m Matrix) String() string {
	if m.m == nil {
		return "I"
	}
	return fmt.Sprintf("%v", mat.Formatted(m.m, mat.Squeeze()))
}

func eye(like *mat.Dense) *mat.Dense {
	n, _ := like.Dims()
	id := mat.NewDense(n, n, nil)
	for i := range n {
		id.Set(i, i, 1)
	}
	return id
}
