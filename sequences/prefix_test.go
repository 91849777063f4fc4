package sequences

import (
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/spella/algebra"
)

// perm3 is a permutation of {0,1,2}; composition is not commutative.
type perm3 [3]uint8

func (p perm3) Op(q perm3) perm3 { return perm3{q[p[0]], q[p[1]], q[p[2]]} }
func (perm3) Identity() perm3   { return perm3{0, 1, 2} }
func (p perm3) Invert() perm3 {
	var inv perm3
	for i, x := range p {
		inv[x] = uint8(i)
	}
	return inv
}
func (perm3) Associative() {}

func TestPrefixSumPush(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spella")
	defer teardown()
	//
	p := NewPrefixSum[algebra.Concat[string]]()
	for _, w := range strings.Fields("the quick brown fox") {
		p.Push(algebra.Concat[string]{w})
	}
	if p.Len() != 4 {
		t.Fatalf("expected 4 elements, got %d", p.Len())
	}
	if got := p.Prefix(2); !slices.Equal(got, algebra.Concat[string]{"the", "quick"}) {
		t.Errorf("unexpected prefix %v", got)
	}
	if got := p.Prefix(0); got != nil {
		t.Errorf("expected empty prefix to be the identity, got %v", got)
	}
	if got := strings.Join(p.Summary(), " "); got != "the quick brown fox" {
		t.Errorf("unexpected summary %q", got)
	}
}

func TestPrefixSumZeroValue(t *testing.T) {
	var p PrefixSum[algebra.Sum[int]]
	if p.Len() != 0 || p.Summary().Val != 0 {
		t.Errorf("unexpected state of zero value")
	}
	p.Push(algebra.Sum[int]{Val: 4})
	p.Push(algebra.Sum[int]{Val: 5})
	if p.Len() != 2 || p.Prefix(1).Val != 4 || p.Summary().Val != 9 {
		t.Errorf("zero value does not accumulate: %v", p.acc)
	}
}

func TestPrefixSumConstruction(t *testing.T) {
	xs := mins(9, 4, 7, 2, 8)
	a := PrefixSumFrom(xs)
	b := CollectPrefixSum(slices.Values(xs))
	want := []int{algebra.MaxValue[int](), 9, 4, 4, 2, 2}
	for e, w := range want {
		if a.Prefix(e).Val != w || b.Prefix(e).Val != w {
			t.Errorf("Prefix(%d): expected %d, got %d and %d", e, w, a.Prefix(e).Val, b.Prefix(e).Val)
		}
	}
}

func TestPrefixGroupFold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spella")
	defer teardown()
	//
	xs := []perm3{{1, 0, 2}, {0, 2, 1}, {2, 1, 0}, {1, 2, 0}, {0, 1, 2}, {2, 0, 1}}
	p := PrefixGroupFrom(xs)
	for s := 0; s <= len(xs); s++ {
		for e := s; e <= len(xs); e++ {
			if got, want := p.Fold(s, e), algebra.Fold(xs[s:e]...); got != want {
				t.Fatalf("Fold(%d,%d) = %v, expected %v", s, e, got, want)
			}
		}
	}
	for i, x := range xs {
		if p.At(i) != x {
			t.Errorf("At(%d) = %v, expected %v", i, p.At(i), x)
		}
	}
	q := CollectPrefixGroup(slices.Values(xs))
	q.Push(perm3{1, 0, 2})
	if q.Len() != len(xs)+1 || q.At(len(xs)) != (perm3{1, 0, 2}) {
		t.Errorf("push onto prefix group failed")
	}
	g := NewPrefixGroup[algebra.Sum[int]]()
	for _, v := range []int{3, -1, 4, -1, 5} {
		g.Push(algebra.Sum[int]{Val: v})
	}
	if g.Fold(1, 4).Val != 2 {
		t.Errorf("expected sum of [-1 4 -1] to be 2, got %d", g.Fold(1, 4).Val)
	}
}

func TestPrefixBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spella")
	defer teardown()
	//
	p := PrefixGroupFrom([]algebra.Sum[int]{{Val: 1}, {Val: 2}})
	expectPanic(t, ErrInvalidRange, func() { p.Prefix(3) })
	expectPanic(t, ErrInvalidRange, func() { p.Prefix(-1) })
	expectPanic(t, ErrInvalidRange, func() { p.Fold(2, 1) })
	expectPanic(t, ErrIndexOutOfBounds, func() { p.At(2) })
	var empty PrefixGroup[algebra.Sum[int]]
	if empty.Fold(0, 0).Val != 0 {
		t.Errorf("expected empty fold of zero value to be the identity")
	}
	expectPanic(t, ErrIndexOutOfBounds, func() { empty.At(0) })
	fresh := NewPrefixGroup[algebra.Sum[int]]()
	expectPanic(t, ErrIndexOutOfBounds, func() { fresh.At(0) })
	expectPanic(t, ErrInvalidRange, func() { fresh.Fold(0, 1) })
	expectPanic(t, ErrInvalidRange, func() { NewPrefixSum[algebra.Min[int]]().Prefix(1) })
}
