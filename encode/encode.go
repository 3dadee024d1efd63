// Package encode walks a value.Value tree and writes JSON text to a
// ByteSink, dispatching on the tag the way spec.md §4.E's Emitter does.
//
// # Related packages
//
//   - github.com/zenjson-go/zenjson/value - the tree this package walks
//   - github.com/zenjson-go/zenjson/parse - builds the trees this package reads
package encode

import (
	"github.com/zenjson-go/zenjson/value"
)

var (
	litTrue  = []byte("true")
	litFalse = []byte("false")
	litNull  = []byte("null")
)

// Encode writes v's JSON text to sink. trees supplies the node arenas v's
// Array/Object payloads reference into; buf is the input buffer strings
// borrow from (the same buf a parse produced v from, or one the caller
// otherwise owns). The root need not be an array or object: any Value can
// be encoded.
//
// Encode returns ErrNonFinite the first time it reaches a NaN or ±Inf
// number leaf; everything written to sink up to that point stays written,
// since sinks have no rollback.
func Encode(v value.Value, trees *value.Trees, buf []byte, sink ByteSink, opts ...EncodeOption) error {
	es := newEncState(opts)
	return encodeValue(v, trees, buf, sink, es)
}

func encodeValue(v value.Value, trees *value.Trees, buf []byte, sink ByteSink, es *encState) error {
	switch v.Tag() {
	case value.TagNumber:
		return writeDouble(sink, v.Float64())
	case value.TagInt:
		writeInt(sink, v.Int32())
	case value.TagString:
		writeEscapedString(sink, cString(buf, v.StringOffset()))
	case value.TagArray:
		return encodeArray(v, trees, buf, sink, es)
	case value.TagObject:
		return encodeObject(v, trees, buf, sink, es)
	case value.TagTrue:
		sink.WriteBytes(litTrue)
	case value.TagFalse:
		sink.WriteBytes(litFalse)
	case value.TagNull:
		sink.WriteBytes(litNull)
	}
	return nil
}

// cString returns the NUL-terminated byte run starting at off in buf,
// excluding the terminator — the convention value.StringAt payloads follow
// once token.UnescapeString has NUL-terminated the string in place.
func cString(buf []byte, off int) []byte {
	end := off
	for buf[end] != 0 {
		end++
	}
	return buf[off:end]
}

func encodeArray(v value.Value, trees *value.Trees, buf []byte, sink ByteSink, es *encState) error {
	if v.IsEmptyComposite() {
		writeEmptyComposite(sink, es, '[', ']')
		return nil
	}
	sink.WriteByte('[')
	if es.formatted {
		sink.WriteByte('\n')
	}
	es.depth++
	for r := v.ArrayRef(); !r.IsNone(); {
		n := trees.Arrays.At(r)
		if es.formatted {
			sink.WriteTabs(es.depth)
		}
		if err := encodeValue(n.Val, trees, buf, sink, es); err != nil {
			return err
		}
		r = n.Next
		if !r.IsNone() {
			sink.WriteByte(',')
			if es.formatted {
				sink.WriteByte(' ')
			}
		}
		if es.formatted {
			sink.WriteByte('\n')
		}
	}
	es.depth--
	if es.formatted {
		sink.WriteTabs(es.depth)
	}
	sink.WriteByte(']')
	return nil
}

func encodeObject(v value.Value, trees *value.Trees, buf []byte, sink ByteSink, es *encState) error {
	if v.IsEmptyComposite() {
		writeEmptyComposite(sink, es, '{', '}')
		return nil
	}
	sink.WriteByte('{')
	if es.formatted {
		sink.WriteByte('\n')
	}
	es.depth++
	for r := v.ObjectRef(); !r.IsNone(); {
		n := trees.Objects.At(r)
		if es.formatted {
			sink.WriteTabs(es.depth)
		}
		writeEscapedString(sink, cString(buf, n.Name))
		if es.formatted {
			sink.WriteBytes([]byte(" : "))
		} else {
			sink.WriteByte(':')
		}
		if err := encodeValue(n.Val, trees, buf, sink, es); err != nil {
			return err
		}
		r = n.Next
		if !r.IsNone() {
			sink.WriteByte(',')
			if es.formatted {
				sink.WriteByte(' ')
			}
		}
		if es.formatted {
			sink.WriteByte('\n')
		}
	}
	es.depth--
	if es.formatted {
		sink.WriteTabs(es.depth)
	}
	sink.WriteByte('}')
	return nil
}

func writeEmptyComposite(sink ByteSink, es *encState, open, close byte) {
	sink.WriteByte(open)
	if es.formatted {
		sink.WriteByte(' ')
	}
	sink.WriteByte(close)
}
