package zenjson

import (
	"errors"

	"github.com/zenjson-go/zenjson/arena"
	"github.com/zenjson-go/zenjson/value"
)

// ErrNotArray and ErrNotObject report a mutation attempted on the wrong
// container kind — wrapper.h instead asserts (crashing a debug build);
// returning an error is the idiomatic Go replacement.
var (
	ErrNotArray        = errors.New("zenjson: not an array")
	ErrNotObject       = errors.New("zenjson: not an object")
	ErrIndexOutOfRange = errors.New("zenjson: index out of range")
)

// PushBack appends v as the array's new last element and returns a view
// onto it. wrapper.h's pushBack also accepts an empty object as a target,
// but its else-branch unconditionally retags the result JSON_ARRAY —
// silently turning an object into an array rather than adding a member to
// it. That looks like a source bug rather than an intended conversion, so
// this port narrows PushBack to arrays only; use AddMember for objects.
func (j View) PushBack(v value.Value) (View, error) {
	if j.Type() != value.TagArray {
		return View{}, ErrNotArray
	}
	ref, n := j.doc.Trees.Arrays.Alloc()
	n.Val = v
	n.Next = arena.None
	if j.loc.IsEmptyComposite() {
		*j.loc = value.Array(ref)
	} else {
		tail := j.doc.Trees.Arrays.At(j.arrayTail())
		tail.Next = ref
	}
	return View{doc: j.doc, loc: &n.Val}, nil
}

// InsertAt inserts v at position index (0..Len()) of an array view,
// shifting later elements back. Fixing an open question in the C++
// source — insertAt has no return statement on any path — this always
// returns a view onto the inserted element, or an error.
func (j View) InsertAt(index int, v value.Value) (View, error) {
	if j.Type() != value.TagArray {
		return View{}, ErrNotArray
	}
	length := j.Len()
	if index < 0 || index > length {
		return View{}, ErrIndexOutOfRange
	}
	if index == length {
		return j.PushBack(v)
	}
	ref, n := j.doc.Trees.Arrays.Alloc()
	n.Val = v
	if index == 0 {
		n.Next = j.loc.ArrayRef()
		*j.loc = value.Array(ref)
		return View{doc: j.doc, loc: &n.Val}, nil
	}
	prevRef := j.loc.ArrayRef()
	prev := j.doc.Trees.Arrays.At(prevRef)
	for i := 1; i < index; i++ {
		prevRef = prev.Next
		prev = j.doc.Trees.Arrays.At(prevRef)
	}
	n.Next = prev.Next
	prev.Next = ref
	return View{doc: j.doc, loc: &n.Val}, nil
}

// AddMember appends a new member named name to an object view, without
// checking for an existing member of the same name — mirrors
// wrapper.h's addMember, which is the unconditional counterpart to
// Field's find-or-create. Callers that want find-or-create should use
// Field instead.
func (j View) AddMember(name string, v value.Value) (View, error) {
	if j.Type() != value.TagObject {
		return View{}, ErrNotObject
	}
	n, _ := j.appendMember(name, v)
	return View{doc: j.doc, loc: &n.Val}, nil
}

func (j View) appendMember(name string, v value.Value) (*value.ObjectNode, arena.Ref) {
	ref, n := j.doc.Trees.Objects.Alloc()
	n.Name = j.doc.internString(name)
	n.Val = v
	n.Next = arena.None
	if j.loc.IsEmptyComposite() {
		*j.loc = value.Object(ref)
	} else {
		tail := j.doc.Trees.Objects.At(j.objectTail())
		tail.Next = ref
	}
	return n, ref
}

// RemoveIndex deletes the array element at index, reporting whether one
// existed there — mirrors wrapper.h's remove(Node*) specialized to
// position rather than node identity, since this package does not expose
// arena.Ref as a public handle.
func (j View) RemoveIndex(index int) bool {
	if j.Type() != value.TagArray || j.loc.IsEmptyComposite() || index < 0 {
		return false
	}
	arr := j.doc.Trees.Arrays
	r := j.loc.ArrayRef()
	if index == 0 {
		head := arr.At(r)
		if head.Next.IsNone() {
			*j.loc = value.EmptyArray()
		} else {
			*j.loc = value.Array(head.Next)
		}
		return true
	}
	prev := arr.At(r)
	for i := 1; ; i++ {
		if prev.Next.IsNone() {
			return false
		}
		cur := arr.At(prev.Next)
		if i == index {
			prev.Next = cur.Next
			return true
		}
		prev = cur
	}
}

// RemoveField deletes the named member from an object view, reporting
// whether it existed.
func (j View) RemoveField(name string) bool {
	if j.Type() != value.TagObject || j.loc.IsEmptyComposite() {
		return false
	}
	obj := j.doc.Trees.Objects
	r := j.loc.ObjectRef()
	head := obj.At(r)
	if stringAt(j.doc.buf, head.Name) == name {
		if head.Next.IsNone() {
			*j.loc = value.EmptyObject()
		} else {
			*j.loc = value.Object(head.Next)
		}
		return true
	}
	prev := head
	for {
		if prev.Next.IsNone() {
			return false
		}
		cur := obj.At(prev.Next)
		if stringAt(j.doc.buf, cur.Name) == name {
			prev.Next = cur.Next
			return true
		}
		prev = cur
	}
}
