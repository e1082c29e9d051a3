// Package integer provides a signed integer block built from parsed
// literals.
//
// The binary form is the magnitude shifted left by one with the sign in the
// lowest bit (aka zigzag), big-endian, in as few bytes as possible:
//
//  +1   = 0b0000_0010
//  -1   = 0b0000_0011
//  +127 = 0b1111_1110
//
// Zero is a single zero byte.
package integer

import (
	"math"

	"github.com/zeebo/errs"

	"github.com/calebcase/safenum/literal"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

// Block is a signed integer number.
type Block struct {
	Value    uint64
	Negative bool
}

// Schema for an integer.
type Schema struct {
	Signed bool
}

// FromLiteral returns the integer held by l. The literal must be a plain
// integer that fits an int32 (signed schema) or a uint32 (unsigned schema).
func FromLiteral(schema Schema, l literal.Literal) (b Block, err error) {
	if schema.Signed {
		if !l.FitsInt32() {
			return b, Error.New("literal does not fit int32")
		}

		v := l.Int32()

		return Block{
			Value:    uint64(l.Mantissa),
			Negative: v < 0,
		}, nil
	}

	if !l.FitsUint32() {
		return b, Error.New("literal does not fit uint32")
	}

	return Block{
		Value: uint64(l.Uint32()),
	}, nil
}

// Int64 returns the block as an int64. Magnitudes above math.MaxInt64 wrap.
func (b Block) Int64() int64 {
	if b.Negative {
		return -int64(b.Value)
	}

	return int64(b.Value)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	if b.Value > math.MaxInt64 {
		return nil, Error.New("too large: %d", b.Value)
	}

	z := b.Value << 1
	if b.Negative {
		z |= 1
	}

	size := 1
	for z>>(8*size) != 0 && size < 8 {
		size++
	}

	data = make([]byte, size)
	for i := size - 1; i >= 0; i-- {
		data[i] = byte(z)
		z >>= 8
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	switch {
	case len(data) == 0:
		return Error.New("empty")
	case len(data) > 8:
		return Error.New("too large: %d bytes", len(data))
	}

	var z uint64
	for _, d := range data {
		z = z<<8 | uint64(d)
	}

	b.Negative = z&1 == 1
	b.Value = z >> 1

	return nil
}
