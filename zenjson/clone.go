package zenjson

import (
	"github.com/zenjson-go/zenjson/arena"
	"github.com/zenjson-go/zenjson/value"
)

// Clone deep-copies j's subtree into dst, allocating fresh nodes and
// interning fresh string bytes in dst's own arenas/buffer so the result
// shares no storage with j's document — mirrors wrapper.h's Json copy
// constructor's allocator-less branch, the only one of its two clone
// paths that has a Go equivalent: the other branch skips the copy
// entirely when source and destination already share one C++ Allocator,
// which this package has no notion of since every Document owns its own
// arenas.
func (j View) Clone(dst *Document) value.Value {
	return cloneValue(j.doc, dst, *j.loc)
}

func cloneValue(src, dst *Document, v value.Value) value.Value {
	switch v.Tag() {
	case value.TagString:
		return value.StringAt(dst.internString(stringAt(src.buf, v.StringOffset())))
	case value.TagArray:
		if v.IsEmptyComposite() {
			return value.EmptyArray()
		}
		var tail arena.Ref
		var head arena.Ref
		for r := v.ArrayRef(); !r.IsNone(); {
			n := src.Trees.Arrays.At(r)
			ref, cn := dst.Trees.Arrays.Alloc()
			cn.Val = cloneValue(src, dst, n.Val)
			cn.Next = arena.None
			if tail.IsNone() {
				head = ref
			} else {
				dst.Trees.Arrays.At(tail).Next = ref
			}
			tail = ref
			r = n.Next
		}
		return value.Array(head)
	case value.TagObject:
		if v.IsEmptyComposite() {
			return value.EmptyObject()
		}
		var tail arena.Ref
		var head arena.Ref
		for r := v.ObjectRef(); !r.IsNone(); {
			n := src.Trees.Objects.At(r)
			ref, cn := dst.Trees.Objects.Alloc()
			cn.Name = dst.internString(stringAt(src.buf, n.Name))
			cn.Val = cloneValue(src, dst, n.Val)
			cn.Next = arena.None
			if tail.IsNone() {
				head = ref
			} else {
				dst.Trees.Objects.At(tail).Next = ref
			}
			tail = ref
			r = n.Next
		}
		return value.Object(head)
	default:
		return v
	}
}
