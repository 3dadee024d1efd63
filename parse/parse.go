// Package parse implements the in-situ JSON scanner/parser: a single-pass,
// iterative descent over a mutable NUL-terminated buffer that unescapes
// strings in place and builds a value.Value tree in caller-supplied
// Arenas.
package parse

import (
	"fmt"

	"github.com/zenjson-go/zenjson/arena"
	"github.com/zenjson-go/zenjson/token"
	"github.com/zenjson-go/zenjson/value"
)

// frame tracks one open composite: the circular-tail ref of its
// most-recently-appended node (arena.None if still empty), whether it is
// an array or object, and the byte that closes it.
type frame struct {
	tail    arena.Ref
	isArray bool
	close   byte
}

// closeFor returns the closing bracket for an opening '{' or '['. Ascii
// keeps both pairs exactly 2 apart, the same trick the source uses to
// avoid a branch.
func closeFor(open byte) byte { return open + 2 }

// Parse consumes buf (which must end in a 0x00 byte and may be mutated up
// to that terminator) and returns the root Value — always Array or Object
// on success — built into arenas. On failure it returns a *Error and
// arenas is left exactly as it was at the point of failure; callers must
// call arenas.Reset() before parsing again.
func Parse(buf []byte, arenas *Arenas, opts ...ParseOption) (value.Value, error) {
	cfg := newParseOpts(opts)
	log := cfg.log

	if len(buf) == 0 || buf[len(buf)-1] != 0 {
		return 0, fail(ErrNotNULTerminated, len(buf))
	}

	var stack [MaxDepth]frame
	top := -1

	pos := token.SkipWhitespace(buf, 0)
	switch buf[pos] {
	case '{', '[':
		top++
		stack[top] = frame{tail: arena.None, isArray: buf[pos] == '[', close: closeFor(buf[pos])}
	default:
		return 0, fail(ErrBadRoot, pos)
	}
	pos++

	for {
		pos = token.SkipWhitespace(buf, pos)
		ch := buf[pos]

		if ch == ',' {
			if stack[top].tail.IsNone() {
				return 0, fail(ErrMismatchBracket, pos)
			}
			pos++
			pos = token.SkipWhitespace(buf, pos)
			ch = buf[pos]
			// A trailing comma right before the closing bracket ([1,] or
			// {"a":1,}) is rejected rather than silently tolerated: a
			// comma always requires a following value.
			if ch == stack[top].close {
				return 0, fail(ErrMismatchBracket, pos)
			}
		} else if !stack[top].tail.IsNone() && ch != stack[top].close {
			return 0, fail(ErrMismatchBracket, pos)
		}

		for ch == stack[top].close {
			pos++
			for {
				if top == -1 {
					return 0, fail(ErrStackUnderflow, pos)
				}
				closed := stack[top]
				top--

				v := closedValue(arenas, closed)
				if top == -1 {
					log.Debug("parse: done", "offset", pos)
					return v, nil
				}
				setTailValue(arenas, &stack[top], v)

				pos = token.SkipWhitespace(buf, pos)
				if buf[pos] == ',' {
					pos++
					pos = token.SkipWhitespace(buf, pos)
					ch = buf[pos]
					// Same trailing-comma rejection as the top of the loop:
					// a comma right before the now-enclosing frame's closing
					// bracket ([[1],] or [{},]) has no following value.
					if ch == stack[top].close {
						return 0, fail(ErrMismatchBracket, pos)
					}
					break
				}
				if buf[pos] != stack[top].close {
					return 0, fail(ErrMismatchBracket, pos)
				}
				pos++
			}
		}

		fr := &stack[top]
		if fr.isArray {
			ref, _ := arenas.Arrays.Alloc()
			fr.tail = value.AppendArrayTail(arenas.Arrays, fr.tail, ref)
		} else {
			ref, node := arenas.Objects.Alloc()
			fr.tail = value.AppendObjectTail(arenas.Objects, fr.tail, ref)

			if ch != '"' {
				return 0, fail(ErrUnexpectedCharacter, pos)
			}
			pos++
			node.Name = pos
			var err error
			pos, err = token.UnescapeString(buf, pos)
			if err != nil {
				return 0, fail(fmt.Errorf("%w: %v", ErrBadString, err), pos)
			}
			pos = token.SkipWhitespace(buf, pos)
			if buf[pos] != ':' {
				return 0, fail(ErrUnexpectedCharacter, pos)
			}
			pos++
			pos = token.SkipWhitespace(buf, pos)
			ch = buf[pos]
		}

		switch {
		case ch == '{' || ch == '[':
			pos++
			top++
			if top == MaxDepth {
				return 0, fail(ErrStackOverflow, pos)
			}
			stack[top] = frame{tail: arena.None, isArray: ch == '[', close: closeFor(ch)}

		case ch == '"':
			pos++
			setTailValue(arenas, fr, value.StringAt(pos))
			var err error
			pos, err = token.UnescapeString(buf, pos)
			if err != nil {
				return 0, fail(fmt.Errorf("%w: %v", ErrBadString, err), pos)
			}

		case ch == 'n':
			if !matchLiteral(buf, pos, "null") {
				return 0, fail(ErrBadIdentifier, pos)
			}
			pos += 4
			setTailValue(arenas, fr, value.Null())

		case ch == 't':
			if !matchLiteral(buf, pos, "true") {
				return 0, fail(ErrBadIdentifier, pos)
			}
			pos += 4
			setTailValue(arenas, fr, value.True())

		case ch == 'f':
			if !matchLiteral(buf, pos, "false") {
				return 0, fail(ErrBadIdentifier, pos)
			}
			pos += 5
			setTailValue(arenas, fr, value.False())

		case ch == '-' || ch == '.' || (ch >= '0' && ch <= '9'):
			v, newPos, err := scanNumber(buf, pos)
			if err != nil {
				return 0, fail(err, pos)
			}
			pos = newPos
			setTailValue(arenas, fr, v)

		default:
			return 0, fail(ErrBreakingBad, pos)
		}
	}
}

func matchLiteral(buf []byte, pos int, lit string) bool {
	if pos+len(lit) > len(buf) {
		return false
	}
	return string(buf[pos:pos+len(lit)]) == lit
}

// closedValue builds the composite Value for a frame that has just been
// closed, flattening its circular tail-list into a proper head reference.
func closedValue(arenas *Arenas, closed frame) value.Value {
	if closed.isArray {
		head := value.FlattenArray(arenas.Arrays, closed.tail)
		if head.IsNone() {
			return value.EmptyArray()
		}
		return value.Array(head)
	}
	head := value.FlattenObject(arenas.Objects, closed.tail)
	if head.IsNone() {
		return value.EmptyObject()
	}
	return value.Object(head)
}

// setTailValue writes v into the Value field of fr's most-recently
// appended node — the node the caller is currently populating.
func setTailValue(arenas *Arenas, fr *frame, v value.Value) {
	if fr.isArray {
		arenas.Arrays.At(fr.tail).Val = v
	} else {
		arenas.Objects.At(fr.tail).Val = v
	}
}
