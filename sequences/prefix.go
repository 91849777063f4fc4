package sequences

import (
	"iter"

	"github.com/npillmayer/spella/algebra"
)

// PrefixSum holds the prefix aggregates of a sequence of monoid elements.
// Elements can only be pushed at the back; prefix folds take O(1).
//
// The zero value is an empty sequence.
type PrefixSum[M algebra.Monoid[M]] struct {
	acc []M // acc[k] is the aggregate of the first k elements, acc[0] = identity
}

// NewPrefixSum creates an empty sequence.
func NewPrefixSum[M algebra.Monoid[M]]() *PrefixSum[M] {
	return &PrefixSum[M]{acc: []M{algebra.Identity[M]()}}
}

// PrefixSumFrom creates the prefix aggregates of xs, in O(n).
func PrefixSumFrom[M algebra.Monoid[M]](xs []M) *PrefixSum[M] {
	p := &PrefixSum[M]{acc: make([]M, 1, len(xs)+1)}
	p.acc[0] = algebra.Identity[M]()
	for _, x := range xs {
		p.Push(x)
	}
	tracer().Debugf("prefix sum: built from %d elements", len(xs))
	return p
}

// CollectPrefixSum creates the prefix aggregates of the elements of seq.
func CollectPrefixSum[M algebra.Monoid[M]](seq iter.Seq[M]) *PrefixSum[M] {
	p := NewPrefixSum[M]()
	for x := range seq {
		p.Push(x)
	}
	return p
}

// Push appends value to the back of the sequence, in O(1) amortized.
func (p *PrefixSum[M]) Push(value M) {
	if len(p.acc) == 0 {
		p.acc = append(p.acc, algebra.Identity[M]())
	}
	p.acc = append(p.acc, p.acc[len(p.acc)-1].Op(value))
}

// Len returns the number of elements.
func (p *PrefixSum[M]) Len() int {
	if p == nil || len(p.acc) == 0 {
		return 0
	}
	return len(p.acc) - 1
}

// Prefix returns the aggregate of the elements in [0, end).
//
// Prefix panics if end is not in [0, Len()].
func (p *PrefixSum[M]) Prefix(end int) M {
	checkRange(0, end, p.Len())
	if p == nil || len(p.acc) == 0 {
		return algebra.Identity[M]()
	}
	return p.acc[end]
}

// Summary returns the aggregate of all elements.
func (p *PrefixSum[M]) Summary() M {
	return p.Prefix(p.Len())
}

// PrefixGroup holds the prefix aggregates of a sequence of group elements.
// Inverses allow folding arbitrary ranges in O(1):
//
//	Fold(s, e) = Prefix(s)⁻¹ · Prefix(e)
//
// The group need not be abelian.
type PrefixGroup[G algebra.Group[G]] struct {
	PrefixSum[G]
}

// NewPrefixGroup creates an empty sequence.
func NewPrefixGroup[G algebra.Group[G]]() *PrefixGroup[G] {
	return &PrefixGroup[G]{*NewPrefixSum[G]()}
}

// PrefixGroupFrom creates the prefix aggregates of xs, in O(n).
func PrefixGroupFrom[G algebra.Group[G]](xs []G) *PrefixGroup[G] {
	return &PrefixGroup[G]{*PrefixSumFrom(xs)}
}

// CollectPrefixGroup creates the prefix aggregates of the elements of seq.
func CollectPrefixGroup[G algebra.Group[G]](seq iter.Seq[G]) *PrefixGroup[G] {
	return &PrefixGroup[G]{*CollectPrefixSum(seq)}
}

// Fold returns the aggregate of the elements in [start, end).
//
// Fold panics if the range is invalid.
func (p *PrefixGroup[G]) Fold(start, end int) G {
	checkRange(start, end, p.Len())
	return p.Prefix(start).Invert().Op(p.Prefix(end))
}

// At returns the element at index.
//
// At panics if index is out of bounds.
func (p *PrefixGroup[G]) At(index int) G {
	checkIndex(index, p.Len())
	return p.Fold(index, index+1)
}
