package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"

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

func TestCompileRejectsNonBoolExpression(t *testing.T) {
	if _, err := Compile(`1 + 1`); err == nil {
		t.Fatalf("expected an error compiling a non-bool expression")
	}
}

func TestMatchAgainstObjectFields(t *testing.T) {
	doc := mustDoc(t, `{"name":"widget","price":12,"active":true}`)
	p, err := Compile(`price > 10 && active`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	ok, err := p.Match(doc.Root())
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if !ok {
		t.Errorf("expected match")
	}
}

func TestFindFiltersArrayElements(t *testing.T) {
	doc := mustDoc(t, `[{"n":1},{"n":2},{"n":3},{"n":4}]`)
	p, err := Compile(`n >= 3`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	matches, err := p.Find(doc.Root())
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Field("n").Int(0) != 3 || matches[1].Field("n").Int(0) != 4 {
		t.Errorf("unexpected matches: %+v", matches)
	}
}

func TestFindOnNonArrayEvaluatesItself(t *testing.T) {
	doc := mustDoc(t, `{"n":5}`)
	p, err := Compile(`n == 5`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	matches, err := p.Find(doc.Root())
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
}

func TestToAnyConvertsNestedTree(t *testing.T) {
	doc := mustDoc(t, `{"a":[1,2,"x"],"b":null}`)
	got := ToAny(doc.Root())
	want := map[string]any{
		"a": []any{int32(1), int32(2), "x"},
		"b": nil,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToAny mismatch (-want +got):\n%s", diff)
	}
}
