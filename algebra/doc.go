/*
Package algebra provides the algebraic structures sequence containers are
parameterized over.

Capabilities form a small hierarchy of generic interfaces:

	Magma ─► Semigroup ─► Monoid ─► Group
	  └────► Commutative (marker, combines with any of the above)

	Semiring ─► Ring

Every interface is F-bounded: a payload type T satisfies Monoid[T] if it has
methods Op(T) T, Identity() T and the marker Associative(). Containers are
written against these bounds, e.g.

	type SegmentTree[M algebra.Monoid[M]] struct { … }

and are instantiated for the concrete payload at compile time.

Algebraic laws (associativity, identity, invertibility, commutativity) are
promises made by the payload's author. They are never verified at run time;
feeding a non-associative operation to a container produces wrong aggregates,
not an error. The marker methods Associative() and Commutative() exist only
to let the type checker reject payloads whose author has not made the promise.

Identity elements are a property of the type, not of a value. Identity() is
therefore always called on the zero value of the payload type, see [Identity].

Ready-made payloads wrap scalars: [Sum], [Product], [Min], [Max], [All], [Any],
[Concat], [First], [Last]. [Option] adjoins an identity to a semigroup, [Pair]
combines two monoids component-wise. [ModInt] and [Decimal] are rings,
[Matrix] is a non-commutative monoid under matrix multiplication.

# BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package algebra

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'spella'
func tracer() tracing.Trace {
	return tracing.Select("spella")
}
