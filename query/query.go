// Package query compiles boolean expr-lang expressions once and runs them
// many times against a tree exposed as generic Go values (maps, slices,
// scalars), the same compile-once/run-many split
// go-tony/eval/script.go's scriptOp performs around expr.Compile/expr.Run.
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/zenjson-go/zenjson/debug"
	"github.com/zenjson-go/zenjson/value"
	"github.com/zenjson-go/zenjson/zenjson"
)

// Predicate is a compiled boolean expression ready to run against many
// views.
type Predicate struct {
	src string
	prg *vm.Program
}

// Compile parses and type-checks expression once. expr.AsBool forces a
// compile-time error for anything that cannot evaluate to a bool, the
// same guarantee go-tony's scriptOp gets implicitly by asserting on
// expr.Run's result at eval time — this package pushes that check
// earlier, to Compile.
func Compile(expression string) (*Predicate, error) {
	prg, err := expr.Compile(expression, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("query: compiling %q: %w", expression, err)
	}
	return &Predicate{src: expression, prg: prg}, nil
}

// Match evaluates the predicate with v converted to generic Go values as
// the expression environment.
func (p *Predicate) Match(v zenjson.View) (bool, error) {
	if debug.Op() {
		debug.Logf("query: running %q\n", p.src)
	}
	res, err := expr.Run(p.prg, ToAny(v))
	if err != nil {
		return false, fmt.Errorf("query: running %q: %w", p.src, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("query: %q evaluated to %T, not bool", p.src, res)
	}
	return b, nil
}

// Find returns every element of an array view the predicate matches, in
// order. If v is not an array, Find evaluates the predicate against v
// itself and returns a one-element (or empty) result, so a caller can
// query either a collection or a single document uniformly.
func (p *Predicate) Find(v zenjson.View) ([]zenjson.View, error) {
	if !v.IsArray() {
		ok, err := p.Match(v)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		return []zenjson.View{v}, nil
	}
	var matches []zenjson.View
	var runErr error
	v.EachElement(func(_ int, elem zenjson.View) bool {
		ok, err := p.Match(elem)
		if err != nil {
			runErr = err
			return false
		}
		if ok {
			matches = append(matches, elem)
		}
		return true
	})
	if runErr != nil {
		return nil, runErr
	}
	return matches, nil
}

// ToAny recursively converts v into plain Go values (map[string]any,
// []any, string, float64, int32, bool, nil) suitable for an expr-lang
// environment. This plays the same role go-tony/eval's FromAny/ExpandEnv
// play in reverse: turning the tree representation into the generic form
// the expression engine understands.
func ToAny(v zenjson.View) any {
	switch v.Type() {
	case value.TagNull:
		return nil
	case value.TagTrue:
		return true
	case value.TagFalse:
		return false
	case value.TagInt:
		return v.Int(0)
	case value.TagNumber:
		return v.Float64(0)
	case value.TagString:
		return v.Str("")
	case value.TagArray:
		out := make([]any, 0, v.Len())
		v.EachElement(func(_ int, e zenjson.View) bool {
			out = append(out, ToAny(e))
			return true
		})
		return out
	case value.TagObject:
		out := make(map[string]any, v.Len())
		v.Each(func(name string, e zenjson.View) bool {
			out[name] = ToAny(e)
			return true
		})
		return out
	default:
		return nil
	}
}
