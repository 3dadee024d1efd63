// Package value implements the tagged-value representation and
// arena-allocated linked tree at the core of zenjson: a NaN-boxed 64-bit
// Value (spec.md §3) and the two Node shapes its Array/Object variants
// point into.
//
// The bit layout is the original's: any 64-bit pattern that is not a
// "boxed" quiet NaN is read back as a finite or infinite double; a boxed
// pattern carries a 4-bit tag in bits 47-50 and a 47-bit payload in bits
// 0-46. What differs from the original C++ is what the payload *is*: since
// Go pointers cannot be embedded in an integer without breaking the
// garbage collector's ability to track them, String payloads are byte
// offsets into a caller-owned buffer and Array/Object payloads are
// arena.Ref values (see package arena) — both already fit comfortably in
// 47 bits, and arena.Ref was sized specifically to fit exactly.
package value

import (
	"math"

	"github.com/zenjson-go/zenjson/arena"
)

// Tag identifies a Value's variant. Number has no tag of its own: any
// Value whose bits are not a boxed quiet NaN is a Number, recovered by the
// "is double" branch rather than by inspecting bits 47-50.
type Tag uint8

const (
	TagNumber Tag = 0 // unused as a stored tag; see IsDouble.
	TagInt    Tag = 1
	TagString Tag = 2
	TagArray  Tag = 3
	TagObject Tag = 4
	TagTrue   Tag = 5
	TagFalse  Tag = 6
	TagNull   Tag = 15
)

func (t Tag) String() string {
	switch t {
	case TagNumber:
		return "Number"
	case TagInt:
		return "Int"
	case TagString:
		return "String"
	case TagArray:
		return "Array"
	case TagObject:
		return "Object"
	case TagTrue:
		return "True"
	case TagFalse:
		return "False"
	case TagNull:
		return "Null"
	default:
		return "Tag(?)"
	}
}

const (
	qnanMask    = uint64(0x7FF8000000000000)
	payloadMask = uint64(1)<<47 - 1
	tagShift    = 47
	tagMask     = uint64(0xF)
)

// Value is a 64-bit NaN-boxed datum. The zero Value is not Null — it is
// the double 0.0 — so code that wants a default "empty" value must use
// Null() explicitly, exactly as spec.md §3 Invariant 1 requires (every bit
// pattern is either a double or a tagged value, with no separate "empty"
// state).
type Value uint64

// IsDouble reports whether v's raw bits, read as a signed 64-bit integer,
// are within the range of finite/±∞ doubles rather than a boxed tag —
// spec.md §8 Invariant 1's "is_double XOR has_tag".
func (v Value) IsDouble() bool {
	return int64(v) <= int64(qnanMask)
}

// Tag returns v's variant tag. For doubles this is TagNumber.
func (v Value) Tag() Tag {
	if v.IsDouble() {
		return TagNumber
	}
	return Tag((uint64(v) >> tagShift) & tagMask)
}

func (v Value) payload() uint64 {
	if v.IsDouble() {
		panic("value: payload() called on a Number")
	}
	return uint64(v) & payloadMask
}

func boxed(tag Tag, payload uint64) Value {
	if payload > payloadMask {
		panic("value: payload does not fit in 47 bits")
	}
	return Value(qnanMask | uint64(tag)<<tagShift | payload)
}

// Number returns a Value holding the double f. Callers must not pass NaN:
// its bit pattern collides with the boxed-tag range and the resulting
// Value's behavior is undefined, exactly as spec.md §4.B documents. ±Inf
// is fine — its exponent-all-ones, mantissa-zero pattern sits below the
// canonical quiet-NaN mask this package boxes against.
func Number(f float64) Value {
	return Value(math.Float64bits(f))
}

// Int returns a Value holding a 32-bit two's-complement integer.
func Int(i int32) Value {
	return boxed(TagInt, uint64(uint32(i)))
}

// StringAt returns a Value whose string content begins at byte offset off
// in whatever buffer the caller is tracking alongside this Value (see
// package zenjson's Document, which is the only thing in this module that
// pairs a Value tree with the buffer it borrows from).
func StringAt(off int) Value {
	if off < 0 {
		panic("value: negative string offset")
	}
	return boxed(TagString, uint64(off))
}

// Array returns a Value for a non-empty array whose first node is ref.
func Array(ref arena.Ref) Value {
	return boxed(TagArray, uint64(ref))
}

// Object returns a Value for a non-empty object whose first node is ref.
func Object(ref arena.Ref) Value {
	return boxed(TagObject, uint64(ref))
}

// EmptyArray returns the Value for `[]`.
func EmptyArray() Value { return boxed(TagArray, uint64(arena.None)) }

// EmptyObject returns the Value for `{}`.
func EmptyObject() Value { return boxed(TagObject, uint64(arena.None)) }

// True, False and Null are the three literal Values.
func True() Value  { return boxed(TagTrue, 0) }
func False() Value { return boxed(TagFalse, 0) }
func Null() Value  { return boxed(TagNull, 0) }

// Bool returns True() or False() for b.
func Bool(b bool) Value {
	if b {
		return True()
	}
	return False()
}

// Float64 returns v's double value. Precondition: v.Tag() == TagNumber.
func (v Value) Float64() float64 {
	if !v.IsDouble() {
		panic("value: Float64 called on a non-Number Value (tag " + v.Tag().String() + ")")
	}
	return math.Float64frombits(uint64(v))
}

// Int32 returns v's integer value, sign-extended from the low 32 bits.
// Precondition: v.Tag() == TagInt.
func (v Value) Int32() int32 {
	if v.Tag() != TagInt {
		panic("value: Int32 called on a non-Int Value (tag " + v.Tag().String() + ")")
	}
	return int32(uint32(v.payload()))
}

// StringOffset returns the byte offset v's string content starts at.
// Precondition: v.Tag() == TagString.
func (v Value) StringOffset() int {
	if v.Tag() != TagString {
		panic("value: StringOffset called on a non-String Value (tag " + v.Tag().String() + ")")
	}
	return int(v.payload())
}

// ArrayRef returns the arena.Ref of v's first element, or arena.None if v
// is the empty array. Precondition: v.Tag() == TagArray.
func (v Value) ArrayRef() arena.Ref {
	if v.Tag() != TagArray {
		panic("value: ArrayRef called on a non-Array Value (tag " + v.Tag().String() + ")")
	}
	return arena.Ref(v.payload())
}

// ObjectRef returns the arena.Ref of v's first member, or arena.None if v
// is the empty object. Precondition: v.Tag() == TagObject.
func (v Value) ObjectRef() arena.Ref {
	if v.Tag() != TagObject {
		panic("value: ObjectRef called on a non-Object Value (tag " + v.Tag().String() + ")")
	}
	return arena.Ref(v.payload())
}

// IsEmptyComposite reports whether v is `[]` or `{}`.
func (v Value) IsEmptyComposite() bool {
	switch v.Tag() {
	case TagArray, TagObject:
		return arena.Ref(v.payload()).IsNone()
	default:
		return false
	}
}
