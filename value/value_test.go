package value

import (
	"math"
	"testing"

	"github.com/zenjson-go/zenjson/arena"
)

func TestIsDoubleTagExclusive(t *testing.T) {
	cases := []Value{
		Number(0), Number(-0.0), Number(3.14), Number(math.Inf(1)), Number(math.Inf(-1)),
		Int(0), Int(-1), Int(math.MaxInt32), Int(math.MinInt32),
		StringAt(0), StringAt(123),
		EmptyArray(), EmptyObject(),
		True(), False(), Null(),
	}
	for _, v := range cases {
		if v.IsDouble() && v.Tag() != TagNumber {
			t.Fatalf("value %#x: IsDouble true but Tag() != TagNumber", uint64(v))
		}
		if !v.IsDouble() && v.Tag() == TagNumber {
			t.Fatalf("value %#x: IsDouble false but Tag() == TagNumber", uint64(v))
		}
	}
}

func TestNumberRoundTrip(t *testing.T) {
	for _, f := range []float64{0, -0.0, 1, -1, 3.1415926535, 1e300, 1e-300, math.Inf(1), math.Inf(-1)} {
		v := Number(f)
		if v.Tag() != TagNumber {
			t.Fatalf("Number(%v) did not tag as Number", f)
		}
		got := v.Float64()
		if math.Float64bits(got) != math.Float64bits(f) {
			t.Fatalf("Number round trip: got %v want %v", got, f)
		}
	}
}

func TestIntRoundTrip(t *testing.T) {
	for _, i := range []int32{0, 1, -1, math.MaxInt32, math.MinInt32} {
		v := Int(i)
		if v.Tag() != TagInt {
			t.Fatalf("Int(%d) tagged as %v", i, v.Tag())
		}
		if got := v.Int32(); got != i {
			t.Fatalf("Int round trip: got %d want %d", got, i)
		}
	}
}

func TestStringOffsetRoundTrip(t *testing.T) {
	v := StringAt(4096)
	if v.Tag() != TagString {
		t.Fatalf("expected TagString, got %v", v.Tag())
	}
	if got := v.StringOffset(); got != 4096 {
		t.Fatalf("got offset %d want 4096", got)
	}
}

func TestEmptyCompositesAreDistinguishableFromNonEmpty(t *testing.T) {
	if !EmptyArray().IsEmptyComposite() {
		t.Fatalf("EmptyArray should report empty")
	}
	if !EmptyObject().IsEmptyComposite() {
		t.Fatalf("EmptyObject should report empty")
	}
	nonEmpty := Array(arena.Ref(7))
	if nonEmpty.IsEmptyComposite() {
		t.Fatalf("a real ref should not report empty")
	}
	if True().IsEmptyComposite() || Null().IsEmptyComposite() {
		t.Fatalf("scalars must never report IsEmptyComposite")
	}
}

func TestLiteralsHaveDistinctTags(t *testing.T) {
	if True().Tag() == False().Tag() || True().Tag() == Null().Tag() || False().Tag() == Null().Tag() {
		t.Fatalf("True/False/Null must have pairwise distinct tags")
	}
	if Bool(true) != True() || Bool(false) != False() {
		t.Fatalf("Bool helper disagrees with True/False constructors")
	}
}

func TestWrongTagAccessorsPanic(t *testing.T) {
	mustPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Fatalf("%s: expected panic", name)
			}
		}()
		f()
	}
	mustPanic("Float64 on Int", func() { Int(1).Float64() })
	mustPanic("Int32 on Number", func() { Number(1).Int32() })
	mustPanic("StringOffset on Null", func() { Null().StringOffset() })
	mustPanic("ArrayRef on Object", func() { EmptyObject().ArrayRef() })
	mustPanic("ObjectRef on Array", func() { EmptyArray().ObjectRef() })
}
