package algebra

// Sum is the abelian group of numbers under addition.
//
// For unsigned integers the group is addition modulo 2ⁿ; inverses wrap
// around accordingly. Floating point addition is not exactly associative,
// which callers accept by choosing Sum[float64].
type Sum[T Number] struct {
	Val T
}

func (s Sum[T]) Op(other Sum[T]) Sum[T] { return Sum[T]{s.Val + other.Val} }
func (Sum[T]) Identity() Sum[T]         { return Sum[T]{} }
func (s Sum[T]) Invert() Sum[T]         { return Sum[T]{-s.Val} }
func (Sum[T]) Associative()             {}
func (Sum[T]) Commutative()             {}

// Product is the commutative monoid of numbers under multiplication.
type Product[T Number] struct {
	Val T
}

func (p Product[T]) Op(other Product[T]) Product[T] { return Product[T]{p.Val * other.Val} }
func (Product[T]) Identity() Product[T]             { return Product[T]{1} }
func (Product[T]) Associative()                     {}
func (Product[T]) Commutative()                     {}

// Min is the commutative monoid taking the minimum. Its identity is the
// greatest value of T.
type Min[T Bounded] struct {
	Val T
}

func (m Min[T]) Op(other Min[T]) Min[T] {
	if other.Val < m.Val {
		return other
	}
	return m
}
func (Min[T]) Identity() Min[T] { return Min[T]{MaxValue[T]()} }
func (Min[T]) Associative()     {}
func (Min[T]) Commutative()     {}

// Max is the commutative monoid taking the maximum. Its identity is the
// least value of T.
type Max[T Bounded] struct {
	Val T
}

func (m Max[T]) Op(other Max[T]) Max[T] {
	if other.Val > m.Val {
		return other
	}
	return m
}
func (Max[T]) Identity() Max[T] { return Max[T]{MinValue[T]()} }
func (Max[T]) Associative()     {}
func (Max[T]) Commutative()     {}

// All is the commutative monoid of booleans under conjunction.
type All bool

func (a All) Op(other All) All { return a && other }
func (All) Identity() All      { return true }
func (All) Associative()       {}
func (All) Commutative()       {}

// Any is the commutative monoid of booleans under disjunction.
type Any bool

func (a Any) Op(other Any) Any { return a || other }
func (Any) Identity() Any      { return false }
func (Any) Associative()       {}
func (Any) Commutative()       {}

// Concat is the free monoid over T: sequences under concatenation.
// It is not commutative, which makes it the canonical payload for testing
// that a container preserves operand order.
//
// Op always allocates a fresh slice; operands are never aliased.
type Concat[T any] []T

func (c Concat[T]) Op(other Concat[T]) Concat[T] {
	out := make(Concat[T], 0, len(c)+len(other))
	out = append(out, c...)
	return append(out, other...)
}
func (Concat[T]) Identity() Concat[T] { return nil }
func (Concat[T]) Associative()        {}

// First is the left-zero semigroup: x.Op(y) == x. It has no identity; wrap it
// in [Option] to obtain a monoid.
type First[T any] struct {
	Val T
}

func (f First[T]) Op(First[T]) First[T] { return f }
func (First[T]) Associative()           {}

// Last is the right-zero semigroup: x.Op(y) == y. It has no identity; wrap it
// in [Option] to obtain a monoid.
type Last[T any] struct {
	Val T
}

func (Last[T]) Op(other Last[T]) Last[T] { return other }
func (Last[T]) Associative()             {}
