package algebra

import (
	"math"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// checkMonoid verifies associativity and identity on all triples of xs.
func checkMonoid[M Monoid[M]](t *testing.T, xs []M, eq func(a, b M) bool) {
	t.Helper()
	e := Identity[M]()
	for _, x := range xs {
		if !eq(x.Op(e), x) || !eq(e.Op(x), x) {
			t.Fatalf("identity law violated for %v", x)
		}
		for _, y := range xs {
			for _, z := range xs {
				if l, r := x.Op(y).Op(z), x.Op(y.Op(z)); !eq(l, r) {
					t.Fatalf("(%v·%v)·%v = %v, but %v·(%v·%v) = %v", x, y, z, l, x, y, z, r)
				}
			}
		}
	}
}

func checkCommutative[M CommutativeMonoid[M]](t *testing.T, xs []M, eq func(a, b M) bool) {
	t.Helper()
	checkMonoid(t, xs, eq)
	for _, x := range xs {
		for _, y := range xs {
			if !eq(x.Op(y), y.Op(x)) {
				t.Fatalf("%v·%v != %v·%v", x, y, y, x)
			}
		}
	}
}

func checkGroup[G Group[G]](t *testing.T, xs []G, eq func(a, b G) bool) {
	t.Helper()
	checkMonoid(t, xs, eq)
	e := Identity[G]()
	for _, x := range xs {
		if !eq(x.Op(x.Invert()), e) || !eq(x.Invert().Op(x), e) {
			t.Fatalf("inverse law violated for %v", x)
		}
	}
}

func equal[T comparable](a, b T) bool { return a == b }

func TestNumericWrappersObeyLaws(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spella")
	defer teardown()
	//
	ints := []int{-7, -1, 0, 1, 3, 42}
	sums := make([]Sum[int], len(ints))
	prods := make([]Product[int], len(ints))
	mins := make([]Min[int], len(ints))
	maxs := make([]Max[int], len(ints))
	for i, n := range ints {
		sums[i], prods[i], mins[i], maxs[i] = Sum[int]{n}, Product[int]{n}, Min[int]{n}, Max[int]{n}
	}
	checkGroup(t, sums, equal)
	checkCommutative(t, sums, equal)
	checkCommutative(t, prods, equal)
	checkCommutative(t, mins, equal)
	checkCommutative(t, maxs, equal)
	checkGroup(t, []Sum[uint8]{{0}, {1}, {200}, {255}}, equal)
	checkCommutative(t, []Min[float64]{{-1.5}, {0}, {math.Inf(1)}, {2}}, equal)
	checkCommutative(t, []All{true, false}, equal)
	checkCommutative(t, []Any{true, false}, equal)
}

func TestBoolWrapperIdentities(t *testing.T) {
	if Identity[All]() != true || Identity[Any]() != false {
		t.Fatalf("unexpected boolean identities")
	}
	if Fold[All]() != true || Fold(All(true), All(false)) != false {
		t.Errorf("conjunction fold is wrong")
	}
	if Fold(Any(false), Any(true), Any(false)) != true {
		t.Errorf("disjunction fold is wrong")
	}
}

func TestConcatIsNotCommutative(t *testing.T) {
	a, b := Concat[string]{"a"}, Concat[string]{"b"}
	if slices.Equal(a.Op(b), b.Op(a)) {
		t.Fatalf("expected concatenation to depend on operand order")
	}
	eq := func(x, y Concat[string]) bool { return slices.Equal(x, y) }
	checkMonoid(t, []Concat[string]{nil, {"a"}, {"b", "c"}, {"d"}}, eq)
}

func TestConcatDoesNotAlias(t *testing.T) {
	a := make(Concat[int], 1, 8)
	a[0] = 1
	b := a.Op(Concat[int]{2})
	c := a.Op(Concat[int]{3})
	if b[1] != 2 || c[1] != 3 {
		t.Fatalf("concatenation aliased its left operand: %v, %v", b, c)
	}
}

func TestIdentityIsIndependentOfReceiver(t *testing.T) {
	if (Min[int]{5}).Identity() != Identity[Min[int]]() {
		t.Errorf("identity of Min depends on receiver")
	}
	if (Product[float64]{3}).Identity() != (Product[float64]{1}) {
		t.Errorf("identity of Product must be 1")
	}
}

func TestInverseOp(t *testing.T) {
	if got := InverseOp(Sum[int]{10}, Sum[int]{3}); got.Val != 7 {
		t.Errorf("expected 10-3 = 7, got %d", got.Val)
	}
}

func TestPowSquaresFromTheRight(t *testing.T) {
	x := Concat[byte]("ab")
	for _, n := range []uint{0, 1, 2, 5, 16} {
		got := Pow(x, n)
		var want Concat[byte]
		for range n {
			want = want.Op(x)
		}
		if string(got) != string(want) {
			t.Fatalf("Pow(%q, %d) = %q, expected %q", x, n, got, want)
		}
	}
	if got := Pow(Product[int]{3}, uint8(4)); got.Val != 81 {
		t.Errorf("expected 3⁴ = 81, got %d", got.Val)
	}
	if got := Pow(Sum[int]{7}, uint64(0)); got.Val != 0 {
		t.Errorf("expected x⁰ to be the identity, got %d", got.Val)
	}
}

func TestMaxAndMinValues(t *testing.T) {
	if MaxValue[int8]() != math.MaxInt8 || MinValue[int8]() != math.MinInt8 {
		t.Errorf("wrong bounds for int8")
	}
	if MaxValue[int64]() != math.MaxInt64 || MinValue[int64]() != math.MinInt64 {
		t.Errorf("wrong bounds for int64")
	}
	if MaxValue[int]() != math.MaxInt || MinValue[int]() != math.MinInt {
		t.Errorf("wrong bounds for int")
	}
	if MaxValue[uint16]() != math.MaxUint16 || MinValue[uint16]() != 0 {
		t.Errorf("wrong bounds for uint16")
	}
	if MaxValue[uint64]() != math.MaxUint64 {
		t.Errorf("wrong upper bound for uint64")
	}
	if !math.IsInf(MaxValue[float64](), 1) || !math.IsInf(float64(MinValue[float32]()), -1) {
		t.Errorf("float bounds must be infinite")
	}
	type celsius int16
	if MinValue[celsius]() != math.MinInt16 {
		t.Errorf("wrong lower bound for named type")
	}
}
