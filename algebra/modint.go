package algebra

import (
	"fmt"
	"math/bits"

	"github.com/npillmayer/spella"
)

// Modulus selects the modulus of a [ModInt] at the type level.
// Modulus() must be constant and greater than 1.
type Modulus interface {
	Modulus() uint64
}

// Mod998244353 is the NTT-friendly prime 998244353 = 119·2²³+1.
type Mod998244353 struct{}

func (Mod998244353) Modulus() uint64 { return 998244353 }

// Mod1000000007 is the prime 10⁹+7.
type Mod1000000007 struct{}

func (Mod1000000007) Modulus() uint64 { return 1000000007 }

// ModInt is an element of the ring ℤ/mℤ, where m is given by M.
// The zero value is 0 (mod m).
//
// Multiplication is performed on the full 128-bit product, so any modulus
// up to 2⁶⁴−1 is supported without overflow.
type ModInt[M Modulus] struct {
	repr uint64
}

func modulus[M Modulus]() uint64 {
	var m M
	return m.Modulus()
}

// NewModInt returns n mod m. Negative n are mapped to their positive
// representative.
func NewModInt[M Modulus](n int64) ModInt[M] {
	m := modulus[M]()
	if n < 0 {
		r := uint64(-(n + 1)) % m // -(n+1) does not overflow for MinInt64
		return ModInt[M]{repr: m - 1 - r}
	}
	return ModInt[M]{repr: uint64(n) % m}
}

// Repr returns the representative in [0, m).
func (x ModInt[M]) Repr() uint64 {
	return x.repr
}

func (x ModInt[M]) Add(y ModInt[M]) ModInt[M] {
	m := modulus[M]()
	s, carry := bits.Add64(x.repr, y.repr, 0)
	if carry != 0 || s >= m {
		s -= m
	}
	return ModInt[M]{repr: s}
}

func (x ModInt[M]) Sub(y ModInt[M]) ModInt[M] {
	return x.Add(y.Neg())
}

func (x ModInt[M]) Mul(y ModInt[M]) ModInt[M] {
	hi, lo := bits.Mul64(x.repr, y.repr)
	_, rem := bits.Div64(hi%modulus[M](), lo, modulus[M]())
	return ModInt[M]{repr: rem}
}

func (x ModInt[M]) Neg() ModInt[M] {
	if x.repr == 0 {
		return x
	}
	return ModInt[M]{repr: modulus[M]() - x.repr}
}

func (ModInt[M]) Zero() ModInt[M] { return ModInt[M]{} }
func (ModInt[M]) One() ModInt[M]  { return ModInt[M]{repr: 1 % modulus[M]()} }

// Inv returns the multiplicative inverse of x, computed with the extended
// Euclidean algorithm. It panics if x and m are not coprime.
func (x ModInt[M]) Inv() ModInt[M] {
	m := modulus[M]()
	// invariants: s0*x ≡ r0, s1*x ≡ r1 (mod m), s tracked as ModInt
	r0, r1 := m, x.repr
	s0, s1 := ModInt[M]{}, ModInt[M]{}.One()
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		s0, s1 = s1, s0.Sub(s1.Mul(ModInt[M]{repr: q % m}))
	}
	if r0 != 1 {
		violation(fmt.Errorf("%w: %d modulo %d", spella.ErrNotInvertible, x.repr, m))
	}
	return s0
}

// Div returns x·y⁻¹. It panics if y is not invertible.
func (x ModInt[M]) Div(y ModInt[M]) ModInt[M] {
	return x.Mul(y.Inv())
}

// Pow returns xⁿ.
func (x ModInt[M]) Pow(n uint64) ModInt[M] {
	return Pow(Multiplicative[ModInt[M]]{x}, n).Val
}

func (x ModInt[M]) String() string {
	return fmt.Sprintf("%d", x.repr)
}
