package patch

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

func TestApplyAddOperation(t *testing.T) {
	doc := mustDoc(t, `{"a":1}`)
	if err := Apply(doc, []byte(`[{"op":"add","path":"/b","value":2}]`)); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	got, err := doc.Emit()
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if string(got) != `{"a":1,"b":2}` {
		t.Errorf("got %s", got)
	}
}

func TestApplyReplaceAndRemove(t *testing.T) {
	doc := mustDoc(t, `{"a":1,"b":[1,2,3]}`)
	ops := `[
		{"op":"replace","path":"/a","value":9},
		{"op":"remove","path":"/b/1"}
	]`
	if err := Apply(doc, []byte(ops)); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	got, err := doc.Emit()
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if string(got) != `{"a":9,"b":[1,3]}` {
		t.Errorf("got %s", got)
	}
}

func TestApplyLeavesDocumentUntouchedOnBadPatch(t *testing.T) {
	doc := mustDoc(t, `{"a":1}`)
	err := Apply(doc, []byte(`not a patch`))
	if err == nil {
		t.Fatalf("expected an error for a malformed patch")
	}
	got, emitErr := doc.Emit()
	if emitErr != nil {
		t.Fatalf("Emit: %v", emitErr)
	}
	if string(got) != `{"a":1}` {
		t.Errorf("document should be unchanged, got %s", got)
	}
}
