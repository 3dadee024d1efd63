package parse

import (
	"errors"
	"math"
	"testing"

	"github.com/zenjson-go/zenjson/value"
)

func nulBuf(s string) []byte {
	return append([]byte(s), 0)
}

func mustParse(t *testing.T, s string) (value.Value, *Arenas) {
	t.Helper()
	arenas := NewArenas(nil)
	v, err := Parse(nulBuf(s), arenas)
	if err != nil {
		t.Fatalf("Parse(%q): unexpected error: %v", s, err)
	}
	return v, arenas
}

func TestParseEmptyObject(t *testing.T) {
	v, arenas := mustParse(t, "{}")
	if v.Tag() != value.TagObject || !v.IsEmptyComposite() {
		t.Fatalf("expected empty Object, got tag %v", v.Tag())
	}
	if value.LenObject(arenas.Objects, v.ObjectRef()) != 0 {
		t.Fatalf("expected length 0")
	}
}

func TestParseArrayOfInts(t *testing.T) {
	v, arenas := mustParse(t, "[1,2,3]")
	if v.Tag() != value.TagArray {
		t.Fatalf("expected Array, got %v", v.Tag())
	}
	var got []int32
	for r := v.ArrayRef(); !r.IsNone(); r = arenas.Arrays.At(r).Next {
		got = append(got, arenas.Arrays.At(r).Val.Int32())
	}
	want := []int32{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestParseObjectKeysInOrder(t *testing.T) {
	b := nulBuf(`{"a":1,"b":2}`)
	arenas := NewArenas(nil)
	v, err := Parse(b, arenas)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Tag() != value.TagObject {
		t.Fatalf("expected Object")
	}
	type kv struct {
		name string
		val  int32
	}
	var got []kv
	for r := v.ObjectRef(); !r.IsNone(); r = arenas.Objects.At(r).Next {
		n := arenas.Objects.At(r)
		got = append(got, kv{cString(b, n.Name), n.Val.Int32()})
	}
	want := []kv{{"a", 1}, {"b", 2}}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v want %v", got, want)
	}
}

func cString(buf []byte, off int) string {
	end := off
	for buf[end] != 0 {
		end++
	}
	return string(buf[off:end])
}

func TestParseEscapedStringLiteral(t *testing.T) {
	b := nulBuf(`{ "k" : "he\nlo" }`)
	arenas := NewArenas(nil)
	v, err := Parse(b, arenas)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := arenas.Objects.At(v.ObjectRef())
	if n.Val.Tag() != value.TagString {
		t.Fatalf("expected string value")
	}
	got := cString(b, n.Val.StringOffset())
	if got != "he\nlo" {
		t.Fatalf("got %q want %q", got, "he\nlo")
	}
}

func TestParseNumbers(t *testing.T) {
	v, arenas := mustParse(t, "[1.5e2, -0.25]")
	first := arenas.Arrays.At(v.ArrayRef())
	second := arenas.Arrays.At(first.Next)
	if first.Val.Tag() != value.TagNumber || first.Val.Float64() != 150.0 {
		t.Fatalf("first: got %v", first.Val.Float64())
	}
	if second.Val.Tag() != value.TagNumber || second.Val.Float64() != -0.25 {
		t.Fatalf("second: got %v", second.Val.Float64())
	}
}

func TestParseBareRootIsError(t *testing.T) {
	_, err := Parse(nulBuf(`"bare"`), NewArenas(nil))
	if !errors.Is(err, ErrBadRoot) {
		t.Fatalf("expected ErrBadRoot, got %v", err)
	}
}

func TestParseTrailingCommaIsMismatchBracket(t *testing.T) {
	_, err := Parse(nulBuf(`{"a": 1,}`), NewArenas(nil))
	if !errors.Is(err, ErrMismatchBracket) {
		t.Fatalf("expected ErrMismatchBracket, got %v", err)
	}
	_, err = Parse(nulBuf(`[1,]`), NewArenas(nil))
	if !errors.Is(err, ErrMismatchBracket) {
		t.Fatalf("expected ErrMismatchBracket for [1,], got %v", err)
	}
}

func TestParseTrailingCommaAfterNestedCompositeIsMismatchBracket(t *testing.T) {
	_, err := Parse(nulBuf(`[[1],]`), NewArenas(nil))
	if !errors.Is(err, ErrMismatchBracket) {
		t.Fatalf("expected ErrMismatchBracket for [[1],], got %v", err)
	}
	_, err = Parse(nulBuf(`[{},]`), NewArenas(nil))
	if !errors.Is(err, ErrMismatchBracket) {
		t.Fatalf("expected ErrMismatchBracket for [{},], got %v", err)
	}
}

func TestParseDepth32ParsesDepth33Overflows(t *testing.T) {
	open := ""
	closeStr := ""
	for i := 0; i < 32; i++ {
		open += "["
		closeStr += "]"
	}
	if _, err := Parse(nulBuf(open+closeStr), NewArenas(nil)); err != nil {
		t.Fatalf("depth 32 should parse cleanly, got %v", err)
	}

	open33 := "[" + open
	close33 := closeStr + "]"
	_, err := Parse(nulBuf(open33+close33), NewArenas(nil))
	if !errors.Is(err, ErrStackOverflow) {
		t.Fatalf("expected ErrStackOverflow at depth 33, got %v", err)
	}
}

func TestParseHugeExponentSaturates(t *testing.T) {
	v, arenas := mustParse(t, "[1e400]")
	f := arenas.Arrays.At(v.ArrayRef()).Val.Float64()
	if !math.IsInf(f, 1) {
		t.Fatalf("expected +Inf, got %v", f)
	}
}

func TestParseTinyExponentSaturatesToZero(t *testing.T) {
	arenas := NewArenas(nil)
	v, err := Parse(nulBuf("[1e-400]"), arenas)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f := arenas.Arrays.At(v.ArrayRef()).Val.Float64()
	if f != 0 {
		t.Fatalf("expected 0.0, got %v", f)
	}
}

func TestParseIntegerRoundTripRange(t *testing.T) {
	for _, i := range []int32{0, 1, -1, math.MaxInt32, math.MinInt32} {
		s := "[" + itoa(i) + "]"
		v, arenas := mustParse(t, s)
		got := arenas.Arrays.At(v.ArrayRef()).Val
		if got.Tag() != value.TagInt || got.Int32() != i {
			t.Fatalf("round trip %d: got tag %v val %v", i, got.Tag(), got)
		}
	}
}

func itoa(i int32) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	var buf [16]byte
	pos := len(buf)
	u := uint32(i)
	if neg {
		u = uint32(-int64(i))
	}
	for u > 0 {
		pos--
		buf[pos] = byte('0' + u%10)
		u /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

func TestParseCommentsAreSkipped(t *testing.T) {
	v, _ := mustParse(t, "[1, // trailing\n 2]")
	if v.Tag() != value.TagArray {
		t.Fatalf("expected array")
	}
}

func TestParseArenaResetAllowsReuse(t *testing.T) {
	arenas := NewArenas(nil)
	if _, err := Parse(nulBuf("[1,2,3]"), arenas); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := arenas.Arrays.NumBlocks()
	arenas.Reset()
	if _, err := Parse(nulBuf("[4,5,6]"), arenas); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if arenas.Arrays.NumBlocks() != before {
		t.Fatalf("expected block reuse after Reset, had %d now %d", before, arenas.Arrays.NumBlocks())
	}
}

func TestParseRejectsNonNULTerminatedBuffer(t *testing.T) {
	_, err := Parse([]byte("[]"), NewArenas(nil))
	if !errors.Is(err, ErrNotNULTerminated) {
		t.Fatalf("expected ErrNotNULTerminated, got %v", err)
	}
}

func TestParseTruncatedInputReturnsErrorNotPanic(t *testing.T) {
	for _, s := range []string{"[", "[1", "[1, ", "{", "[1, // trailing\n"} {
		_, err := Parse(nulBuf(s), NewArenas(nil))
		if err == nil {
			t.Fatalf("Parse(%q): expected an error for truncated input, got nil", s)
		}
	}
}
