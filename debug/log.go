package debug

import (
	"fmt"
	"os"

	"github.com/zenjson-go/zenjson/encode"
	"github.com/zenjson-go/zenjson/value"
)

// Doc wraps a Value together with the tree/buffer it needs to stringify —
// analogous to go-tony/debug's Tony{*ir.Node} wrapper, but for a NaN-boxed
// Value which carries no pointer back to its own arena or source buffer.
type Doc struct {
	V     value.Value
	Trees *value.Trees
	Buf   []byte
}

func (d Doc) String() string {
	sink := encode.NewGrowingSink()
	if err := encode.Encode(d.V, d.Trees, d.Buf, sink); err != nil {
		return fmt.Sprintf("<encode error: %v>", err)
	}
	return string(sink.Bytes())
}

// Logf writes a printf-style message to stderr, expanding any Doc argument
// to its compact JSON text first. Other argument types pass through
// unchanged.
func Logf(msg string, args ...any) {
	for i, a := range args {
		if d, ok := a.(Doc); ok {
			args[i] = d.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
