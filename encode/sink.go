package encode

// ByteSink is the output capability the emitter writes through. It mirrors
// the source's compile-time writer mixin (puts/putc/writeTabs) as a runtime
// interface so the same emitter code can target either sink below.
type ByteSink interface {
	WriteBytes(b []byte)
	WriteByte(c byte)
	WriteTabs(n int)
}

// BoundedSink writes into a fixed-capacity, caller-owned buffer without
// ever growing or reallocating it. Once the buffer fills, further writes are
// silently dropped but still counted: Size() keeps growing past len(buf), so
// a caller compares Size() against the buffer's length to detect truncation
// the same way the source's BufferWriter does (dst can run past end without
// ever being dereferenced).
type BoundedSink struct {
	buf []byte
	n   int
}

// NewBoundedSink wraps buf. buf's length is the sink's capacity; its
// contents are overwritten from the start.
func NewBoundedSink(buf []byte) *BoundedSink {
	return &BoundedSink{buf: buf}
}

func (s *BoundedSink) WriteBytes(b []byte) {
	if s.n < len(s.buf) {
		room := len(s.buf) - s.n
		if room > len(b) {
			room = len(b)
		}
		copy(s.buf[s.n:], b[:room])
	}
	s.n += len(b)
}

func (s *BoundedSink) WriteByte(c byte) {
	if s.n < len(s.buf) {
		s.buf[s.n] = c
	}
	s.n++
}

func (s *BoundedSink) WriteTabs(n int) {
	for i := 0; i < n; i++ {
		s.WriteByte('\t')
	}
}

// Size returns the total number of bytes requested so far, which may exceed
// len(buf) if the sink overflowed.
func (s *BoundedSink) Size() int { return s.n }

// Truncated reports whether any requested byte was dropped.
func (s *BoundedSink) Truncated() bool { return s.n > len(s.buf) }

// Bytes returns the portion of buf actually written.
func (s *BoundedSink) Bytes() []byte {
	n := s.n
	if n > len(s.buf) {
		n = len(s.buf)
	}
	return s.buf[:n]
}

// growingSinkReserve is the initial capacity a GrowingSink pre-reserves, per
// spec, to cut down on early reallocations for typical small documents.
const growingSinkReserve = 256

// GrowingSink appends to an internally owned, unbounded byte slice, growing
// it via append the way the source's std::string-backed StringWriter grows.
type GrowingSink struct {
	buf []byte
}

// NewGrowingSink returns an empty GrowingSink with its initial capacity
// pre-reserved.
func NewGrowingSink() *GrowingSink {
	return &GrowingSink{buf: make([]byte, 0, growingSinkReserve)}
}

func (s *GrowingSink) WriteBytes(b []byte) { s.buf = append(s.buf, b...) }
func (s *GrowingSink) WriteByte(c byte)    { s.buf = append(s.buf, c) }

func (s *GrowingSink) WriteTabs(n int) {
	for i := 0; i < n; i++ {
		s.buf = append(s.buf, '\t')
	}
}

// Bytes returns the accumulated output. The returned slice aliases the
// sink's internal buffer.
func (s *GrowingSink) Bytes() []byte { return s.buf }

// Reset empties the sink for reuse without releasing its backing array.
func (s *GrowingSink) Reset() { s.buf = s.buf[:0] }
