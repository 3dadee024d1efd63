package value

import (
	"testing"

	"github.com/zenjson-go/zenjson/arena"
)

func TestAppendTailBuildsInsertionOrder(t *testing.T) {
	a := arena.New[ArrayNode](nil)
	var tail arena.Ref
	var refs []arena.Ref
	for i := int32(0); i < 5; i++ {
		ref, n := a.Alloc()
		n.Val = Int(i)
		tail = AppendTail(a, tail, ref)
		refs = append(refs, ref)
	}
	head := Flatten(a, tail)
	if head != refs[0] {
		t.Fatalf("head should be the first-inserted node")
	}
	var got []int32
	for r := head; !r.IsNone(); r = a.At(r).Next {
		got = append(got, a.At(r).Val.Int32())
	}
	for i, v := range got {
		if v != int32(i) {
			t.Fatalf("insertion order broken at %d: got %v", i, got)
		}
	}
	if a.At(refs[len(refs)-1]).Next != arena.None {
		t.Fatalf("flattened list must be null-terminated at the tail")
	}
}

func TestAppendTailSingleElement(t *testing.T) {
	a := arena.New[ObjectNode](nil)
	ref, n := a.Alloc()
	n.Val = True()
	n.Name = 0
	tail := AppendTail(a, arena.None, ref)
	head := Flatten(a, tail)
	if head != ref {
		t.Fatalf("single-element list's head must be the element itself")
	}
	if a.At(head).Next != arena.None {
		t.Fatalf("single-element list must terminate immediately")
	}
}

func TestFlattenEmptyIsNone(t *testing.T) {
	a := arena.New[ArrayNode](nil)
	if got := Flatten(a, arena.None); !got.IsNone() {
		t.Fatalf("flattening an empty (None) tail must yield None, got %v", got)
	}
}

func TestLenCountsNodes(t *testing.T) {
	a := arena.New[ArrayNode](nil)
	var tail arena.Ref
	for i := 0; i < 7; i++ {
		ref, n := a.Alloc()
		n.Val = Int(int32(i))
		tail = AppendTail(a, tail, ref)
	}
	head := Flatten(a, tail)
	if got := Len(a, head); got != 7 {
		t.Fatalf("Len: got %d want 7", got)
	}
	if got := Len(a, arena.None); got != 0 {
		t.Fatalf("Len(None): got %d want 0", got)
	}
}
