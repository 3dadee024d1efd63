package value

import "github.com/zenjson-go/zenjson/arena"

// ArrayNode is the shorter of the two Node layouts (spec.md §3): array
// elements carry no name.
type ArrayNode struct {
	Val  Value
	Next arena.Ref
}

func (n *ArrayNode) next() arena.Ref     { return n.Next }
func (n *ArrayNode) setNext(r arena.Ref) { n.Next = r }

// ObjectNode is the longer Node layout: object members carry a Name, the
// byte offset of their (already unescaped, NUL-terminated) key in the
// source buffer. Keeping this as a distinct Go type from ArrayNode — and
// allocating the two from separate arenas — is what enforces spec.md
// invariant 4 (array nodes never appear in an object chain and vice
// versa) at compile time rather than by convention.
type ObjectNode struct {
	Val  Value
	Next arena.Ref
	Name int
}

func (n *ObjectNode) next() arena.Ref     { return n.Next }
func (n *ObjectNode) setNext(r arena.Ref) { n.Next = r }

// linkNode is satisfied by *ArrayNode and *ObjectNode: anything with a
// gettable/settable Next link, which is all AppendTail and Flatten need to
// drive the circular-tail-list trick generically over both node shapes.
type linkNode[T any] interface {
	*T
	next() arena.Ref
	setNext(arena.Ref)
}

// AppendTail links newRef onto the circular tail-list whose current tail
// is tailRef (arena.None for an empty list) and returns the new tail.
//
// The list is kept temporarily circular during construction — the tail
// node's Next points back to the head — so that "append at tail" never
// needs to walk the list: it is spec.md §4.D's cyclic-tail-list trick,
// carried over unchanged because it is exactly as cheap in Go as in the
// original and Flatten below erases the cycle before any caller outside
// this package's construction step ever sees the list.
func AppendTail[T any, PT linkNode[T]](a *arena.Arena[T], tailRef, newRef arena.Ref) arena.Ref {
	newNode := PT(a.At(newRef))
	if tailRef.IsNone() {
		newNode.setNext(newRef)
		return newRef
	}
	tail := PT(a.At(tailRef))
	head := tail.next()
	newNode.setNext(head)
	tail.setNext(newRef)
	return newRef
}

// Flatten breaks the cycle a completed frame's tail ref still carries,
// returning the head ref of a proper null-terminated list. Calling it on
// arena.None (an empty container) returns arena.None.
func Flatten[T any, PT linkNode[T]](a *arena.Arena[T], tailRef arena.Ref) arena.Ref {
	if tailRef.IsNone() {
		return arena.None
	}
	tail := PT(a.At(tailRef))
	head := tail.next()
	tail.setNext(arena.None)
	return head
}

// Len walks a flattened (null-terminated) list and counts its nodes. It is
// used by tests and by the wrapper's length queries, never by the parser's
// hot path.
func Len[T any, PT linkNode[T]](a *arena.Arena[T], head arena.Ref) int {
	n := 0
	for r := head; !r.IsNone(); {
		n++
		r = PT(a.At(r)).next()
	}
	return n
}

// The four wrappers below pin down AppendTail/Flatten/Len's type
// arguments for the two concrete node shapes: PT can't be inferred from
// an *Arena[T] argument alone, so every call site would otherwise have to
// spell out AppendTail[ArrayNode, *ArrayNode] itself.

func AppendArrayTail(a *arena.Arena[ArrayNode], tailRef, newRef arena.Ref) arena.Ref {
	return AppendTail[ArrayNode, *ArrayNode](a, tailRef, newRef)
}

func FlattenArray(a *arena.Arena[ArrayNode], tailRef arena.Ref) arena.Ref {
	return Flatten[ArrayNode, *ArrayNode](a, tailRef)
}

func LenArray(a *arena.Arena[ArrayNode], head arena.Ref) int {
	return Len[ArrayNode, *ArrayNode](a, head)
}

func AppendObjectTail(a *arena.Arena[ObjectNode], tailRef, newRef arena.Ref) arena.Ref {
	return AppendTail[ObjectNode, *ObjectNode](a, tailRef, newRef)
}

func FlattenObject(a *arena.Arena[ObjectNode], tailRef arena.Ref) arena.Ref {
	return Flatten[ObjectNode, *ObjectNode](a, tailRef)
}

func LenObject(a *arena.Arena[ObjectNode], head arena.Ref) int {
	return Len[ObjectNode, *ObjectNode](a, head)
}
