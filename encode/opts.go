package encode

// encState carries the emitter's per-call configuration and its running
// depth, mirroring the source's dump(out, formatted, indent) parameters
// bundled into one struct the way the pack's functional-options encoders do.
type encState struct {
	formatted bool
	depth     int
}

// EncodeOption configures a call to Encode.
type EncodeOption func(*encState)

// Formatted selects the tab-indented, multi-line layout. Without it, Encode
// produces compact JSON with no inserted whitespace.
func Formatted() EncodeOption {
	return func(es *encState) { es.formatted = true }
}

func newEncState(opts []EncodeOption) *encState {
	es := &encState{}
	for _, opt := range opts {
		opt(es)
	}
	return es
}
