package algebra

import "fmt"

// Option adjoins an identity element (the empty option) to a semigroup,
// turning it into a monoid. Option[First[T]] is the monoid "leftmost present
// value", Option[Last[T]] the monoid "rightmost present value".
type Option[S Semigroup[S]] struct {
	val S
	ok  bool
}

// Some wraps a semigroup value.
func Some[S Semigroup[S]](s S) Option[S] {
	return Option[S]{val: s, ok: true}
}

// None returns the empty option, i.e. the identity.
func None[S Semigroup[S]]() Option[S] {
	return Option[S]{}
}

// Get returns the wrapped value and whether it is present.
func (o Option[S]) Get() (S, bool) {
	return o.val, o.ok
}

func (o Option[S]) Op(other Option[S]) Option[S] {
	switch {
	case o.ok && other.ok:
		return Some(o.val.Op(other.val))
	case o.ok:
		return o
	default:
		return other
	}
}
func (Option[S]) Identity() Option[S] { return Option[S]{} }
func (Option[S]) Associative()        {}

func (o Option[S]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.val)
}

// Pair is the direct product of two monoids, combined component-wise.
// Nest pairs for more than two components.
type Pair[A Monoid[A], B Monoid[B]] struct {
	Fst A
	Snd B
}

// MakePair creates a pair from its components.
func MakePair[A Monoid[A], B Monoid[B]](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

func (p Pair[A, B]) Op(other Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{Fst: p.Fst.Op(other.Fst), Snd: p.Snd.Op(other.Snd)}
}
func (Pair[A, B]) Identity() Pair[A, B] {
	return Pair[A, B]{Fst: Identity[A](), Snd: Identity[B]()}
}
func (Pair[A, B]) Associative() {}

// CommutativePair is the direct product of two commutative monoids.
type CommutativePair[A CommutativeMonoid[A], B CommutativeMonoid[B]] struct {
	Pair[A, B]
}

func (p CommutativePair[A, B]) Op(other CommutativePair[A, B]) CommutativePair[A, B] {
	return CommutativePair[A, B]{p.Pair.Op(other.Pair)}
}
func (CommutativePair[A, B]) Identity() CommutativePair[A, B] {
	return CommutativePair[A, B]{Pair[A, B]{}.Identity()}
}
func (CommutativePair[A, B]) Commutative() {}

// GroupPair is the direct product of two abelian groups. Components are
// inverted independently.
type GroupPair[A AbelianGroup[A], B AbelianGroup[B]] struct {
	Pair[A, B]
}

func (p GroupPair[A, B]) Op(other GroupPair[A, B]) GroupPair[A, B] {
	return GroupPair[A, B]{p.Pair.Op(other.Pair)}
}
func (GroupPair[A, B]) Identity() GroupPair[A, B] {
	return GroupPair[A, B]{Pair[A, B]{}.Identity()}
}
func (p GroupPair[A, B]) Invert() GroupPair[A, B] {
	return GroupPair[A, B]{Pair[A, B]{Fst: p.Fst.Invert(), Snd: p.Snd.Invert()}}
}
func (GroupPair[A, B]) Commutative() {}
