// Package lineio reads complete text lines from a serial byte source
// without blocking, for use inside a cooperative polling loop.
package lineio

// ByteSource is the minimal serial read capability a Reader polls.
// machine.Serial and machine.UART both satisfy it.
type ByteSource interface {
	Buffered() int
	ReadByte() (byte, error)
}

// Reader accumulates bytes from a ByteSource into lines. It owns one
// fixed-capacity buffer; a line returned by Poll aliases that buffer and
// stays valid until the reader begins the next line.
type Reader struct {
	src ByteSource
	buf []byte
	n   int

	// One byte of lookahead for when a line overflows the buffer: the
	// byte that did not fit starts the next line on the following Poll.
	pending    byte
	hasPending bool
}

// NewReader returns a Reader holding at most max bytes per line. A line
// longer than max is flushed in max-byte chunks rather than dropped.
func NewReader(src ByteSource, max int) *Reader {
	return &Reader{src: src, buf: make([]byte, max)}
}

// HasData reports whether a Poll call could make progress right now.
func (r *Reader) HasData() bool {
	return r.hasPending || r.src.Buffered() > 0
}

// Poll drains the bytes currently buffered on the source. It returns a
// complete line with its terminator stripped, and true, when a line ended
// during this call; otherwise nil and false. Empty lines are skipped, so
// CRLF pairs do not produce phantom lines.
func (r *Reader) Poll() ([]byte, bool) {
	if r.hasPending {
		r.buf[0] = r.pending
		r.n = 1
		r.hasPending = false
	}
	for r.src.Buffered() > 0 {
		b, err := r.src.ReadByte()
		if err != nil {
			break
		}
		switch {
		case b == '\n' || b == '\r':
			if r.n == 0 {
				continue
			}
			line := r.buf[:r.n]
			r.n = 0
			return line, true
		case r.n == len(r.buf):
			// Buffer full: flush it as a line and keep b for the
			// next one. Writing b now would clobber the line we
			// are about to hand out.
			r.pending = b
			r.hasPending = true
			line := r.buf[:r.n]
			r.n = 0
			return line, true
		default:
			r.buf[r.n] = b
			r.n++
		}
	}
	return nil, false
}
