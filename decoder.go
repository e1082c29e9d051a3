package safenum

import (
	"bufio"
	"errors"
	"io"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/calebcase/safenum/literal"
)

// Error is the class of malformed input errors returned by the decoder.
var Error = errs.Class("safenum")

// Schema configures which literals are accepted.
type Schema struct {
	Negative bool
	Reals    bool
}

// Accept returns the literal grammar options for the schema.
func (s Schema) Accept() (a literal.Accept) {
	if s.Negative {
		a |= literal.Negative
	}

	if s.Reals {
		a |= literal.Reals
	}

	return a
}

func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', ',', ';':
		return true
	}

	return false
}

// Decoder reads a sequence of literals separated by whitespace, commas or
// semicolons.
type Decoder struct {
	schema Schema
	r      io.ByteReader

	consumed uint64

	// c is the byte after the previous literal, already read from r.
	c       byte
	pending bool

	eof bool
	err error
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, r io.Reader) *Decoder {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	return &Decoder{
		schema: schema,
		r:      br,
	}
}

// next returns the next input byte. At the end of input, or after a read
// error, it returns NUL which no literal accepts.
func (d *Decoder) next() byte {
	if d.pending {
		d.pending = false
		return d.c
	}

	if d.eof || d.err != nil {
		return 0
	}

	c, err := d.r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			d.eof = true
		} else {
			d.err = oops.Trace(err)
		}

		return 0
	}

	d.consumed++

	return c
}

func (d *Decoder) unread(c byte) {
	d.c = c
	d.pending = true
}

// atEnd reports whether c is the sentinel for the end of input rather than a
// NUL byte in the stream.
func (d *Decoder) atEnd(c byte) bool {
	return c == 0 && !d.pending && (d.eof || d.err != nil)
}

// Consumed returns the number of bytes read from the underlying reader.
func (d *Decoder) Consumed() uint64 {
	return d.consumed
}

// Decode reads the next literal into l. It returns io.EOF when the input is
// exhausted. A malformed literal returns an error of class Error and the
// decoder skips ahead to the next separator so decoding can continue.
func (d *Decoder) Decode(l *literal.Literal) (err error) {
	if d.err != nil {
		return d.err
	}

	c := d.next()
	for isSeparator(c) {
		c = d.next()
	}

	if d.atEnd(c) {
		if d.err != nil {
			return d.err
		}

		return io.EOF
	}

	offset := d.consumed - 1

	last, ok := l.Accumulate(c, d.schema.Accept(), d.next)
	if d.err != nil {
		return d.err
	}

	if ok && (isSeparator(last) || d.atEnd(last)) {
		if !d.atEnd(last) {
			d.unread(last)
		}

		return nil
	}

	d.skip(last)

	return Error.New("malformed literal at byte %d", offset)
}

// skip discards input up to the next separator.
func (d *Decoder) skip(c byte) {
	for !isSeparator(c) && !d.atEnd(c) {
		c = d.next()
	}

	if !d.atEnd(c) {
		d.unread(c)
	}
}
