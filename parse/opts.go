package parse

import "log/slog"

// MaxDepth is the fixed nesting-depth limit (spec.md §6): not user
// tunable, exceeding it yields ErrStackOverflow.
const MaxDepth = 32

type parseOpts struct {
	log *slog.Logger
}

// ParseOption configures a single Parse call.
type ParseOption func(*parseOpts)

// WithLogger attaches a structured logger that Parse writes a Debug-level
// record to when a parse completes successfully. Without this option, or
// with a nil logger, Parse uses slog.Default().
func WithLogger(log *slog.Logger) ParseOption {
	return func(o *parseOpts) { o.log = log }
}

func newParseOpts(opts []ParseOption) *parseOpts {
	o := &parseOpts{log: slog.Default()}
	for _, f := range opts {
		f(o)
	}
	if o.log == nil {
		o.log = slog.Default()
	}
	return o
}
