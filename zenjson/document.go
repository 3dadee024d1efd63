// Package zenjson wraps the arena/value/token/parse/encode core into the
// convenience surface original_source/zenjson/wrapper.h describes: a
// Document owning its own arenas and input buffer, typed getters, path
// subscripting, mutation and cloning. The patch, diff and query packages
// and the commands build on it.
package zenjson

import (
	"github.com/zenjson-go/zenjson/debug"
	"github.com/zenjson-go/zenjson/encode"
	"github.com/zenjson-go/zenjson/parse"
	"github.com/zenjson-go/zenjson/value"
)

// Document owns a pair of node arenas and the buffer its strings and
// numbers are read from, mirroring wrapper.h's Document class (Json plus
// an owned Allocator). Unlike the C++ original there is no separate
// Allocator type: package arena already recycles blocks on Reset, so a
// Document simply embeds a value.Trees.
type Document struct {
	Trees value.Trees
	buf   []byte
	root  value.Value
}

// NewDocument returns an empty Document whose root is JSON null.
func NewDocument() *Document {
	return &Document{Trees: *value.NewTrees(nil), root: value.Null()}
}

// Parse resets d's arenas and parses data as the new root. data is copied
// and NUL-terminated first unless it is already NUL-terminated, since
// parse.Parse mutates its input in place while unescaping strings and a
// caller-owned slice must not be clobbered out from under them.
func (d *Document) Parse(data []byte, opts ...parse.ParseOption) error {
	d.Trees.Reset()
	if len(data) == 0 || data[len(data)-1] != 0 {
		buf := make([]byte, len(data)+1)
		copy(buf, data)
		data = buf
	}
	d.buf = data
	v, err := parse.Parse(d.buf, &d.Trees, opts...)
	if err != nil {
		return err
	}
	d.root = v
	if debug.Parse() {
		debug.Logf("zenjson: parsed %d bytes -> %v\n", len(data), debug.Doc{V: d.root, Trees: &d.Trees, Buf: d.buf})
	}
	return nil
}

// Root returns a View over d's root value.
func (d *Document) Root() View {
	return View{doc: d, loc: &d.root}
}

// Reset discards d's tree and buffer, leaving the root as JSON null. The
// underlying arena blocks are recycled, not released, exactly as
// value.Trees.Reset documents.
func (d *Document) Reset() {
	d.Trees.Reset()
	d.buf = nil
	d.root = value.Null()
}

// Emit serializes d's root into a freshly grown byte slice.
func (d *Document) Emit(opts ...encode.EncodeOption) ([]byte, error) {
	sink := encode.NewGrowingSink()
	if err := d.emit(sink, opts...); err != nil {
		return nil, err
	}
	return sink.Bytes(), nil
}

// EmitBounded serializes d's root into buf, returning the sink so the
// caller can inspect Size/Truncated when buf was too small.
func (d *Document) EmitBounded(buf []byte, opts ...encode.EncodeOption) (*encode.BoundedSink, error) {
	sink := encode.NewBoundedSink(buf)
	if err := d.emit(sink, opts...); err != nil {
		return sink, err
	}
	return sink, nil
}

func (d *Document) emit(sink encode.ByteSink, opts ...encode.EncodeOption) error {
	if debug.Encode() {
		debug.Logf("zenjson: emitting %v\n", debug.Doc{V: d.root, Trees: &d.Trees, Buf: d.buf})
	}
	return encode.Encode(d.root, &d.Trees, d.buf, sink, opts...)
}

// internString appends s (already logically unescaped) plus a NUL
// terminator to d's buffer and returns the offset it starts at, the same
// byte-offset convention parse.Parse leaves string Values pointing at.
func (d *Document) internString(s string) int {
	off := len(d.buf)
	d.buf = append(d.buf, s...)
	d.buf = append(d.buf, 0)
	return off
}

func stringAt(buf []byte, off int) string {
	end := off
	for buf[end] != 0 {
		end++
	}
	return string(buf[off:end])
}
