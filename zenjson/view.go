package zenjson

import (
	"github.com/zenjson-go/zenjson/arena"
	"github.com/zenjson-go/zenjson/value"
)

// View is a handle onto a single Value living somewhere inside a
// Document's tree — a field of an ObjectNode, the Val of an ArrayNode, or
// a Document's own root. It mirrors wrapper.h's Json class, which wraps a
// Value* the same way; this project has no pointer arithmetic to hide
// behind, so View spells that out as a *value.Value field instead.
//
// A View returned past the end of an array, or for a field access on a
// non-object, is a "null view": loc points at a private, unshared Value
// that starts out Null and whose mutations go nowhere, the same throwaway
// role wrapper.h's `Json(nullptr)` return value plays.
type View struct {
	doc *Document
	loc *value.Value
}

func nullView(doc *Document) View {
	v := value.Null()
	return View{doc: doc, loc: &v}
}

// Value returns the Value this view currently points at.
func (j View) Value() value.Value { return *j.loc }

// Type returns the view's current tag.
func (j View) Type() value.Tag { return j.loc.Tag() }

func (j View) IsNull() bool   { return j.Type() == value.TagNull }
func (j View) IsString() bool { return j.Type() == value.TagString }
func (j View) IsArray() bool  { return j.Type() == value.TagArray }
func (j View) IsObject() bool { return j.Type() == value.TagObject }
func (j View) IsBool() bool {
	t := j.Type()
	return t == value.TagTrue || t == value.TagFalse
}
func (j View) IsNumber() bool {
	t := j.Type()
	return t == value.TagInt || t == value.TagNumber
}

// Int returns the view's value truncated to int32, or def if it holds
// neither an Int nor a Number — mirrors Json::getInt.
func (j View) Int(def int32) int32 {
	switch j.Type() {
	case value.TagInt:
		return j.loc.Int32()
	case value.TagNumber:
		return int32(j.loc.Float64())
	}
	return def
}

// Float64 returns the view's value as a float64, or def — mirrors
// Json::getDouble.
func (j View) Float64(def float64) float64 {
	switch j.Type() {
	case value.TagInt:
		return float64(j.loc.Int32())
	case value.TagNumber:
		return j.loc.Float64()
	}
	return def
}

// Bool returns the view's boolean value, or def if it holds neither True
// nor False — mirrors Json::getBool.
func (j View) Bool(def bool) bool {
	switch j.Type() {
	case value.TagTrue:
		return true
	case value.TagFalse:
		return false
	}
	return def
}

// Str returns the view's string content, or def if it does not hold a
// String — mirrors Json::getString.
func (j View) Str(def string) string {
	if j.Type() != value.TagString {
		return def
	}
	return stringAt(j.doc.buf, j.loc.StringOffset())
}

// Len returns the number of elements/members in an array or object view,
// or 0 for anything else — mirrors Json::getLength.
func (j View) Len() int {
	switch j.Type() {
	case value.TagArray:
		if j.loc.IsEmptyComposite() {
			return 0
		}
		return value.LenArray(j.doc.Trees.Arrays, j.loc.ArrayRef())
	case value.TagObject:
		if j.loc.IsEmptyComposite() {
			return 0
		}
		return value.LenObject(j.doc.Trees.Objects, j.loc.ObjectRef())
	}
	return 0
}

// Index returns a view onto the i'th element of an array. Past the end
// (i >= Len()) it returns a null view rather than auto-extending —
// spec.md §9's open question about wrapper.h's operator[](uint32_t)
// pushing a null element on out-of-range access was decided the other
// way here: extension is PushBack's job, not a side effect of reading.
func (j View) Index(i int) View {
	if j.Type() != value.TagArray || j.loc.IsEmptyComposite() || i < 0 {
		return nullView(j.doc)
	}
	r := j.loc.ArrayRef()
	for k := 0; !r.IsNone(); k++ {
		n := j.doc.Trees.Arrays.At(r)
		if k == i {
			return View{doc: j.doc, loc: &n.Val}
		}
		r = n.Next
	}
	return nullView(j.doc)
}

// Field returns a view onto the named member of an object, auto-vivifying
// a Null member on first access — mirrors Json::operator[](const char*).
// Field on a non-object returns a null view without mutating anything.
func (j View) Field(name string) View {
	if j.Type() != value.TagObject {
		return nullView(j.doc)
	}
	if n := j.findMember(name); n != nil {
		return View{doc: j.doc, loc: &n.Val}
	}
	n, _ := j.appendMember(name, value.Null())
	return View{doc: j.doc, loc: &n.Val}
}

// Has reports whether an object view has a member named name, without
// vivifying it.
func (j View) Has(name string) bool {
	return j.Type() == value.TagObject && j.findMember(name) != nil
}

// Each calls fn for every member of an object view, in document order,
// stopping early if fn returns false. It is a no-op on anything other
// than an object.
func (j View) Each(fn func(name string, v View) bool) {
	if j.Type() != value.TagObject || j.loc.IsEmptyComposite() {
		return
	}
	for r := j.loc.ObjectRef(); !r.IsNone(); {
		n := j.doc.Trees.Objects.At(r)
		if !fn(stringAt(j.doc.buf, n.Name), View{doc: j.doc, loc: &n.Val}) {
			return
		}
		r = n.Next
	}
}

// EachElement calls fn for every element of an array view, in order,
// stopping early if fn returns false. It is a no-op on anything other
// than an array.
func (j View) EachElement(fn func(i int, v View) bool) {
	if j.Type() != value.TagArray || j.loc.IsEmptyComposite() {
		return
	}
	i := 0
	for r := j.loc.ArrayRef(); !r.IsNone(); {
		n := j.doc.Trees.Arrays.At(r)
		if !fn(i, View{doc: j.doc, loc: &n.Val}) {
			return
		}
		r = n.Next
		i++
	}
}

func (j View) findMember(name string) *value.ObjectNode {
	if j.loc.IsEmptyComposite() {
		return nil
	}
	for r := j.loc.ObjectRef(); !r.IsNone(); {
		n := j.doc.Trees.Objects.At(r)
		if stringAt(j.doc.buf, n.Name) == name {
			return n
		}
		r = n.Next
	}
	return nil
}

// Set overwrites the view's current Value in place. v may be any scalar
// Value, or a composite Value whose nodes live in the same Document's
// Trees; assigning a composite built in a different Document requires
// Clone first — this method does not deep-copy, matching wrapper.h's
// allocator-sharing fast path rather than its allocator-less deep-copy one.
func (j View) Set(v value.Value) {
	*j.loc = v
}

// SetStr interns s into the document's buffer and points the view at it.
func (j View) SetStr(s string) {
	*j.loc = value.StringAt(j.doc.internString(s))
}

// arrayTail walks to the last node of a non-empty array view's list.
func (j View) arrayTail() arena.Ref {
	r := j.loc.ArrayRef()
	for {
		n := j.doc.Trees.Arrays.At(r)
		if n.Next.IsNone() {
			return r
		}
		r = n.Next
	}
}

func (j View) objectTail() arena.Ref {
	r := j.loc.ObjectRef()
	for {
		n := j.doc.Trees.Objects.At(r)
		if n.Next.IsNone() {
			return r
		}
		r = n.Next
	}
}
