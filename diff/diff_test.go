package diff

import (
	"testing"

	"github.com/zenjson-go/zenjson/zenjson"
)

func mustDoc(t *testing.T, json string) *zenjson.Document {
	t.Helper()
	d := zenjson.NewDocument()
	if err := d.Parse([]byte(json)); err != nil {
		t.Fatalf("Parse(%q): %v", json, err)
	}
	return d
}

func TestDiffDetectsAddedRemovedChangedFields(t *testing.T) {
	a := mustDoc(t, `{"x":1,"y":"same","z":true}`)
	b := mustDoc(t, `{"x":2,"y":"same","w":false}`)
	changes := Diff(a.Root(), b.Root())

	byPath := map[string]Change{}
	for _, c := range changes {
		byPath[c.Path] = c
	}
	if c, ok := byPath["x"]; !ok || c.Kind != Changed {
		t.Errorf("x: got %+v", c)
	}
	if c, ok := byPath["z"]; !ok || c.Kind != Removed {
		t.Errorf("z: got %+v", c)
	}
	if c, ok := byPath["w"]; !ok || c.Kind != Added {
		t.Errorf("w: got %+v", c)
	}
	if _, ok := byPath["y"]; ok {
		t.Errorf("y is unchanged, should not appear")
	}
}

func TestDiffArrayElements(t *testing.T) {
	a := mustDoc(t, `[1,2,3]`)
	b := mustDoc(t, `[1,9,3]`)
	changes := Diff(a.Root(), b.Root())
	if len(changes) == 0 {
		t.Fatalf("expected at least one change")
	}
	found := false
	for _, c := range changes {
		if c.Path == "[1]" && c.Kind == Changed {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a changed entry at [1], got %+v", changes)
	}
}

func TestDiffStringLeafProducesTextDiffs(t *testing.T) {
	a := mustDoc(t, `{"s":"hello world"}`)
	b := mustDoc(t, `{"s":"hello there"}`)
	changes := Diff(a.Root(), b.Root())
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d: %+v", len(changes), changes)
	}
	if len(changes[0].TextDiffs) == 0 {
		t.Errorf("expected character-level text diffs to be populated")
	}
}

func TestDiffIdenticalDocumentsProduceNoChanges(t *testing.T) {
	a := mustDoc(t, `{"a":[1,2,{"b":"c"}]}`)
	b := mustDoc(t, `{"a":[1,2,{"b":"c"}]}`)
	if changes := Diff(a.Root(), b.Root()); len(changes) != 0 {
		t.Errorf("expected no changes, got %+v", changes)
	}
}
