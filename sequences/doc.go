/*
Package sequences provides sequence containers that aggregate their elements
with an associative operation.

Containers trade the structure they require against their capabilities:

	Container      | requires           | update                  | range fold
	---------------+--------------------+-------------------------+----------------------
	SegmentTree    | Monoid             | point set, O(log n)     | O(log n)
	FenwickTree    | commutative Monoid | point append, O(log n)  | prefix only, O(log n)
	FenwickGroup   | abelian Group      | point replace, O(log n) | O(log n)
	PrefixSum      | Monoid             | push back, O(1)         | prefix only, O(1)
	PrefixGroup    | Group              | push back, O(1)         | O(1)

Only the segment tree supports point updates for non-commutative operations
such as concatenation or matrix multiplication. Segment trees and prefix sums
fold strictly from left to right.

Indices are 0-based, ranges are half-open [start, end). Index and range
violations are programming errors: they panic with an error wrapping
ErrIndexOutOfBounds or ErrInvalidRange, naming the offending values and the
container's length.

None of the containers is safe for concurrent mutation. Clients sharing a
container between goroutines have to provide their own synchronization.

# BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package sequences

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'spella'
func tracer() tracing.Trace {
	return tracing.Select("spella")
}
