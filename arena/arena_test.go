package arena

import "testing"

type node struct {
	value int64
	next  Ref
}

func TestAllocBumpsWithinBlock(t *testing.T) {
	a := New[node](nil)
	r1, n1 := a.Alloc()
	n1.value = 1
	r2, n2 := a.Alloc()
	n2.value = 2
	if r1 == r2 {
		t.Fatalf("expected distinct refs, got %v twice", r1)
	}
	if a.At(r1).value != 1 || a.At(r2).value != 2 {
		t.Fatalf("At did not resolve to the populated elements")
	}
	if a.NumBlocks() != 1 {
		t.Fatalf("expected a single block for two small allocations, got %d", a.NumBlocks())
	}
}

func TestAllocAcrossBlockBoundary(t *testing.T) {
	a := New[node](nil)
	perBlock := BlockSize / int(sizeOf(node{}))
	var refs []Ref
	for i := 0; i < perBlock+5; i++ {
		r, n := a.Alloc()
		n.value = int64(i)
		refs = append(refs, r)
	}
	if a.NumBlocks() != 2 {
		t.Fatalf("expected exactly 2 blocks after spilling past one block's capacity, got %d", a.NumBlocks())
	}
	for i, r := range refs {
		if a.At(r).value != int64(i) {
			t.Fatalf("ref %d resolved to wrong element after spanning blocks", i)
		}
	}
}

func TestOversizeAllocationInsertedBehindHead(t *testing.T) {
	a := New[node](nil)
	// Give the head block some remaining bump capacity.
	a.Alloc()
	perBlock := BlockSize / int(sizeOf(node{}))
	// An allocation larger than one block's usual capacity forces the
	// "oversize block inserted behind head" path.
	ref, big := a.AllocN(perBlock * 2)
	if len(big) != perBlock*2 {
		t.Fatalf("expected %d elements, got %d", perBlock*2, len(big))
	}
	// The original head must still be usable for small bump allocations.
	r2, n2 := a.Alloc()
	n2.value = 42
	if a.At(r2).value != 42 {
		t.Fatalf("head block lost bump capacity after an oversize allocation was inserted behind it")
	}
	if a.At(ref) == nil {
		t.Fatalf("oversize ref did not resolve")
	}
}

func TestResetRecyclesBlocks(t *testing.T) {
	a := New[node](nil)
	for i := 0; i < 10; i++ {
		a.Alloc()
	}
	before := a.NumBlocks()
	a.Reset()
	for i := 0; i < 10; i++ {
		a.Alloc()
	}
	if a.NumBlocks() != before {
		t.Fatalf("expected Reset to recycle blocks instead of growing, had %d now %d", before, a.NumBlocks())
	}
}

func TestNoneRefIsDistinctFromRealRefs(t *testing.T) {
	a := New[node](nil)
	r, _ := a.Alloc()
	if r == None {
		t.Fatalf("first real allocation collided with the reserved None ref")
	}
	if !None.IsNone() {
		t.Fatalf("None.IsNone() should be true")
	}
}
