package trancheio

import (
	"bufio"
	"io"

	"github.com/rawbytedev/tranche"
)

// Reader consumes a ByteCursor from the front through the io interfaces.
// Bytes handed out by Peek alias the cursor's buffer.
type Reader struct {
	c *tranche.ByteCursor
}

var (
	_ io.Reader     = (*Reader)(nil)
	_ io.ByteReader = (*Reader)(nil)
	_ io.WriterTo   = (*Reader)(nil)
)

func NewReader(c *tranche.ByteCursor) *Reader {
	return &Reader{c: c}
}

func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.c.IsEmpty() {
		return 0, io.EOF
	}
	b, err := r.c.ReadBytesFront(min(len(p), r.c.Len()))
	if err != nil {
		return 0, err
	}
	return copy(p, b), nil
}

func (r *Reader) ReadByte() (byte, error) {
	b, err := r.c.ReadUint8Front()
	if err != nil {
		return 0, io.EOF
	}
	return b, nil
}

// WriteTo writes the remaining bytes to w, consuming what w accepted.
func (r *Reader) WriteTo(w io.Writer) (int64, error) {
	rem := r.c.Remaining()
	if len(rem) == 0 {
		return 0, nil
	}
	n, err := w.Write(rem)
	if n > len(rem) {
		n = len(rem)
	}
	if _, terr := r.c.ReadBytesFront(n); terr != nil {
		return 0, terr
	}
	if err == nil && n < len(rem) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

// Peek returns the next n bytes without consuming them. If fewer remain it
// returns what is left along with an error matching io.ErrUnexpectedEOF.
// A negative n is bufio.ErrNegativeCount.
func (r *Reader) Peek(n int) ([]byte, error) {
	if n < 0 {
		return nil, bufio.ErrNegativeCount
	}
	c := *r.c
	b, err := c.ReadBytesFront(n)
	if err != nil {
		return r.c.Remaining(), AsIOError(err)
	}
	return b, nil
}

// Discard skips n bytes. It is all-or-nothing: when fewer than n bytes
// remain nothing is skipped.
func (r *Reader) Discard(n int) (int, error) {
	if n < 0 {
		return 0, bufio.ErrNegativeCount
	}
	if _, err := r.c.ReadBytesFront(n); err != nil {
		return 0, AsIOError(err)
	}
	return n, nil
}

// Buffered returns the number of unread bytes.
func (r *Reader) Buffered() int {
	return r.c.Len()
}
