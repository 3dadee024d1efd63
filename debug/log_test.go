package debug

import (
	"testing"

	"github.com/zenjson-go/zenjson/parse"
)

func TestDocStringEncodesCompactJSON(t *testing.T) {
	buf := append([]byte(`[1,2,3]`), 0)
	trees := parse.NewArenas(nil)
	v, err := parse.Parse(buf, trees)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := Doc{V: v, Trees: trees, Buf: buf}.String()
	if got != "[1,2,3]" {
		t.Fatalf("got %q", got)
	}
}
