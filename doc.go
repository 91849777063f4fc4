/*
Package spella offers sequence containers which aggregate their elements with
an associative operation, together with the algebraic structures they are
parameterized by.

Structures

Package algebra states the laws a payload type has to obey: semigroup,
monoid, group and their commutative variants. Laws are expressed as Go
interfaces with F-bounded type parameters, so a container's requirements are
checked at compile time. Common payloads (sums, products, minimum, maximum,
concatenation, modular integers, decimals, square matrices) are provided.

Containers

Package sequences implements the containers. Each one requires the weakest
structure it can work with:

	SegmentTree     monoid               point update, range fold
	FenwickTree     commutative monoid   point append, prefix fold
	FenwickGroup    abelian group        point replace, range fold
	PrefixSum       monoid               push back, prefix fold
	PrefixGroup     group                push back, range fold

Package sequences/inspect prints the internals of a segment tree to a console.

Errors

Precondition violations (out-of-bounds indices, invalid ranges) are
programming errors. They are logged to the core tracer and panic with an
error of type SpellaError, possibly wrapped with details; use errors.Is to
classify a recovered value.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package spella

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// SpellaError is an error type for the spella module.
type SpellaError string

func (e SpellaError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever an element index is not within the
// length of a container.
const ErrIndexOutOfBounds = SpellaError("index out of bounds")

// ErrInvalidRange is flagged for a range [start, end) with start > end, or
// exceeding the length of a container.
const ErrInvalidRange = SpellaError("invalid range")

// ErrLengthOverflow is flagged whenever a container length is too large to
// be represented internally.
const ErrLengthOverflow = SpellaError("length too large")

// ErrBrokenInvariant is flagged by invariant checkers.
const ErrBrokenInvariant = SpellaError("broken invariant")

// ErrNotInvertible is flagged whenever an element without an inverse is
// inverted.
const ErrNotInvertible = SpellaError("element not invertible")

// ErrDimensionMismatch is flagged whenever operands of incompatible shape
// are combined.
const ErrDimensionMismatch = SpellaError("dimension mismatch")
