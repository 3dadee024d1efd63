// Package debug gates optional diagnostic tracing behind environment
// variables, the same on/off switchboard go-tony/debug uses, adapted to
// this module's arena/parse/encode components.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Arena  bool
	Parse  bool
	Encode bool
	Op     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Arena = boolEnv("ZENJSON_DEBUG_ARENA")
	d.Parse = boolEnv("ZENJSON_DEBUG_PARSE")
	d.Encode = boolEnv("ZENJSON_DEBUG_ENCODE")
	d.Op = boolEnv("ZENJSON_DEBUG_OP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Arena reports whether ZENJSON_DEBUG_ARENA is set. Nothing in this module
// consults it; the arena's block allocation/reset tracing goes through its
// *slog.Logger instead.
func Arena() bool { return d.Arena }

// Parse reports whether ZENJSON_DEBUG_PARSE is set, gating the one trace
// line zenjson.Document.Parse writes after each successful parse.
func Parse() bool { return d.Parse }

// Encode reports whether ZENJSON_DEBUG_ENCODE is set.
func Encode() bool { return d.Encode }

// Op reports whether ZENJSON_DEBUG_OP is set, gating patch/diff/query
// tracing — named after go-tony/debug's Op(), which gates its
// mergeop-operator tracing the same way.
func Op() bool { return d.Op }

// LogAny writes v to stderr formatted with %v, followed by a newline.
func LogAny(v any) {
	fmt.Fprintf(os.Stderr, "%v\n", v)
}
