package algebra

// Magma is a type with a closed binary operation.
//
// Op must be total and deterministic. No further laws are implied.
type Magma[T any] interface {
	Op(T) T
}

// Semigroup is a magma whose operation is associative:
//
//	x.Op(y).Op(z) == x.Op(y.Op(z))
//
// Associative is a marker; it is never called.
type Semigroup[T any] interface {
	Magma[T]
	Associative()
}

// Commutative is a magma whose operation commutes:
//
//	x.Op(y) == y.Op(x)
//
// Commutative is a marker; it is never called.
type Commutative[T any] interface {
	Magma[T]
	Commutative()
}

// Monoid is a semigroup with an identity element:
//
//	x.Op(e) == x == e.Op(x)   where e = Identity[T]()
//
// Identity is called on the zero value of T and must not depend on the
// receiver.
type Monoid[T any] interface {
	Semigroup[T]
	Identity() T
}

// CommutativeMonoid is a monoid with a commutative operation.
type CommutativeMonoid[T any] interface {
	Monoid[T]
	Commutative()
}

// Group is a monoid where every element has an inverse:
//
//	x.Op(x.Invert()) == Identity[T]() == x.Invert().Op(x)
type Group[T any] interface {
	Monoid[T]
	Invert() T
}

// AbelianGroup is a group with a commutative operation.
type AbelianGroup[T any] interface {
	Group[T]
	Commutative()
}

// Associativity may be embedded into payload structs to witness the
// associativity law.
type Associativity struct{}

// Associative marks the operation as associative.
func (Associativity) Associative() {}

// Commutativity may be embedded into payload structs to witness the
// commutativity law.
type Commutativity struct{}

// Commutative marks the operation as commutative.
func (Commutativity) Commutative() {}

// Identity returns the identity element of monoid M.
func Identity[M Monoid[M]]() M {
	var m M
	return m.Identity()
}

// InverseOp returns a.Op(b.Invert()).
func InverseOp[G Group[G]](a, b G) G {
	return a.Op(b.Invert())
}

// Fold combines xs from left to right, starting with the identity.
// Fold() is the identity.
func Fold[M Monoid[M]](xs ...M) M {
	acc := Identity[M]()
	for _, x := range xs {
		acc = acc.Op(x)
	}
	return acc
}

// Pow raises x to the n-th power, i.e. x.Op(x).Op(…) with n operands, using
// exponentiation by squaring. Pow(x, 0) is the identity.
//
// Pow needs Θ(log n) applications of Op, regardless of the payload.
func Pow[M Monoid[M], N Unsigned](x M, n N) M {
	acc := Identity[M]()
	for n != 0 {
		if n&1 == 1 {
			acc = acc.Op(x)
		}
		x = x.Op(x)
		n >>= 1
	}
	return acc
}
