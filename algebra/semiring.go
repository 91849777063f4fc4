package algebra

// Semiring is a type with two operations, Add and Mul, such that
//
//   - Add is associative and commutative with identity Zero(),
//   - Mul is associative with identity One(),
//   - Mul distributes over Add from both sides,
//   - Zero annihilates: x.Mul(Zero()) == Zero() == Zero().Mul(x).
//
// As with the magma hierarchy, Zero and One are called on the zero value of
// T and the laws are never checked.
type Semiring[T any] interface {
	Add(T) T
	Mul(T) T
	Zero() T
	One() T
}

// Ring is a semiring with additive inverses: x.Add(x.Neg()) == Zero().
type Ring[T any] interface {
	Semiring[T]
	Neg() T
}

// Additive is the abelian group of a ring under its addition.
type Additive[R Ring[R]] struct {
	Val R
}

func (a Additive[R]) Op(other Additive[R]) Additive[R] {
	return Additive[R]{a.Val.Add(other.Val)}
}
func (Additive[R]) Identity() Additive[R] {
	var r R
	return Additive[R]{r.Zero()}
}
func (a Additive[R]) Invert() Additive[R] { return Additive[R]{a.Val.Neg()} }
func (Additive[R]) Associative()          {}
func (Additive[R]) Commutative()          {}

// Multiplicative is the monoid of a semiring under its multiplication.
// Semiring multiplication need not commute, so neither does Multiplicative.
type Multiplicative[R Semiring[R]] struct {
	Val R
}

func (m Multiplicative[R]) Op(other Multiplicative[R]) Multiplicative[R] {
	return Multiplicative[R]{m.Val.Mul(other.Val)}
}
func (Multiplicative[R]) Identity() Multiplicative[R] {
	var r R
	return Multiplicative[R]{r.One()}
}
func (Multiplicative[R]) Associative() {}
