// Package arena implements a block-list bump allocator with reset-reuse of
// block chains, generic over the element type it holds.
//
// The design mirrors a classic malloc-backed region allocator: a handful of
// large blocks, an "in-use" chain that new allocations bump-pointer into,
// and a "free" chain that Reset recycles onto without releasing the
// underlying memory. Go's garbage collector plays the role the C++
// original's destructor plays: once an Arena becomes unreachable its
// blocks are collected, so there is no explicit Close.
//
// Where the original packs a raw pointer into 47 bits of a NaN-boxed
// value, this arena hands back a Ref: a (block, slot) pair that fits the
// same 47 bits without ever exposing a Go pointer to arithmetic. A Ref is
// only meaningful against the Arena that produced it, and only until that
// Arena's next Reset recycles the block it names.
package arena

import "log/slog"

// BlockSize is the target size, in bytes, of a block. It is not a knob:
// spec-fixed, matching the constant the parser and emitter assume.
const BlockSize = 8192

// refSlotBits/refBlockBits split the 47-bit payload a NaN-boxed Value can
// carry. 23 bits of slot (8M elements per block) comfortably exceeds
// anything BlockSize will ever hold; 24 bits of block index (16M blocks)
// comfortably exceeds anything one process will ever allocate.
const (
	refSlotBits  = 23
	refSlotMask  = uint64(1)<<refSlotBits - 1
	refBlockBits = 24
	refMax       = uint64(1)<<(refSlotBits+refBlockBits) - 1
)

// Ref is an arena-relative reference to a single element. The zero Ref is
// reserved to mean "no element" (an empty array/object payload); real
// element indices are offset by one so that Alloc never returns the zero
// Ref for real data.
type Ref uint64

// None is the reserved empty Ref.
const None Ref = 0

func makeRef(block, slot int) Ref {
	return Ref((uint64(block)<<refSlotBits | uint64(slot)&refSlotMask) + 1)
}

func (r Ref) split() (block, slot int) {
	v := uint64(r) - 1
	return int(v >> refSlotBits), int(v & refSlotMask)
}

// IsNone reports whether r is the reserved empty reference.
func (r Ref) IsNone() bool { return r == None }

// Fits reports whether r can be packed into a Value's 47-bit payload; it
// always can given the bit widths above, but Arena.Alloc panics via this
// check rather than silently truncating if that ever changes.
func (r Ref) Fits() bool { return uint64(r) <= refMax }

type block[T any] struct {
	data []T
	used int
}

// Arena is a bump allocator for elements of type T. The zero value is not
// usable; construct one with New.
type Arena[T any] struct {
	blocks   []*block[T] // stable registry; Ref.split()'s block index selects into this.
	inUse    []int       // indices into blocks, head (index 0) is the current bump target.
	free     []int       // indices into blocks, available for reuse on next acquire.
	perBlock int
	log      *slog.Logger
}

// New creates an Arena whose blocks hold approximately BlockSize bytes of
// T each (at least one element, however large T is).
func New[T any](log *slog.Logger) *Arena[T] {
	if log == nil {
		log = slog.Default()
	}
	var zero T
	perBlock := BlockSize / sizeofApprox(zero)
	if perBlock < 1 {
		perBlock = 1
	}
	return &Arena[T]{perBlock: perBlock, log: log}
}

// Alloc bump-allocates a single zero-valued T and returns its Ref together
// with a pointer to it for the caller to populate in place.
func (a *Arena[T]) Alloc() (Ref, *T) {
	ref, s := a.AllocN(1)
	return ref, &s[0]
}

// AllocN bump-allocates n contiguous elements from a single block (an
// allocation never spans two blocks, matching spec.md §4.A) and returns a
// Ref to the first element plus the slice of all n.
//
// Out-of-memory has no representation here: Go's allocator either provides
// the memory or the process fails, unlike the C original's malloc-can-fail
// discipline. Neither this package nor the parser has an OutOfMemory
// error; an allocation failure panics like any other Go allocation
// failure would.
func (a *Arena[T]) AllocN(n int) (Ref, []T) {
	if n <= 0 {
		panic("arena: AllocN requires n > 0")
	}
	if len(a.inUse) > 0 {
		headIdx := a.inUse[0]
		head := a.blocks[headIdx]
		if head.used+n <= len(head.data) {
			slot := head.used
			head.used += n
			ref := makeRef(headIdx, slot)
			if !ref.Fits() {
				panic("arena: ref overflowed 47-bit payload")
			}
			return ref, head.data[slot : slot+n]
		}
	}
	return a.acquire(n)
}

// acquire pulls a block able to hold n elements, either reusing the head of
// the free chain (only the head is checked, matching the original
// allocator's single-slot free-list peek) or allocating a fresh one, then
// wires it into the in-use chain per spec.md §4.A's "insert oversize block
// behind the head" rule.
func (a *Arena[T]) acquire(n int) (Ref, []T) {
	size := n
	if size < a.perBlock {
		size = a.perBlock
	}
	var idx int
	if len(a.free) > 0 {
		cand := a.free[0]
		if cap(a.blocks[cand].data) >= size {
			idx = cand
			a.free = a.free[1:]
			a.log.Debug("arena: reused free block", "block", idx, "n", n)
		} else {
			idx = a.newBlock(size)
		}
	} else {
		idx = a.newBlock(size)
	}
	blk := a.blocks[idx]
	blk.used = n

	oversize := size > a.perBlock
	if !oversize || len(a.inUse) == 0 {
		a.inUse = append([]int{idx}, a.inUse...)
	} else {
		// Keep the current head (it may still have bump capacity left for
		// small allocations) reachable by inserting just behind it.
		a.inUse = append(a.inUse[:1], append([]int{idx}, a.inUse[1:]...)...)
	}
	ref := makeRef(idx, 0)
	if !ref.Fits() {
		panic("arena: ref overflowed 47-bit payload")
	}
	return ref, blk.data[:n]
}

func (a *Arena[T]) newBlock(size int) int {
	blk := &block[T]{data: make([]T, size)}
	a.blocks = append(a.blocks, blk)
	a.log.Debug("arena: allocated block", "block", len(a.blocks)-1, "size", size)
	return len(a.blocks) - 1
}

// At resolves a Ref back to the element it names. It panics if ref is
// None or was produced by a different Arena (or a since-invalidated
// generation of this one) — the same "use after reset" contract the
// original allocator documents rather than enforces.
func (a *Arena[T]) At(ref Ref) *T {
	if ref.IsNone() {
		panic("arena: At(None)")
	}
	blockIdx, slot := ref.split()
	return &a.blocks[blockIdx].data[slot]
}

// Reset splices the entire in-use chain onto the front of the free chain
// and empties the in-use chain. Blocks are not zeroed or released: the
// next round of Alloc calls overwrites their contents element by element,
// exactly as the block-list allocator this mirrors does.
func (a *Arena[T]) Reset() {
	if len(a.inUse) == 0 {
		return
	}
	a.free = append(a.inUse, a.free...)
	a.inUse = nil
	a.log.Debug("arena: reset", "blocks", len(a.free))
}

// NumBlocks reports the number of distinct blocks ever created by this
// Arena (in-use plus free); it exists for tests that pin down the
// oversize-allocation and reuse behavior.
func (a *Arena[T]) NumBlocks() int { return len(a.blocks) }

func sizeofApprox[T any](zero T) int {
	return int(sizeOf(zero))
}
