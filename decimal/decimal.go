package decimal

import (
	"math"

	"github.com/zeebo/errs"

	"github.com/calebcase/safenum/integer"
	"github.com/calebcase/safenum/literal"
	"github.com/calebcase/safenum/power"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("decimal")

// Scale limits.
const (
	MaxScale = 1<<21 - 1
	MinScale = -MaxScale
)

// Block is a base 10 decimal number.
type Block struct {
	Value integer.Block
	Scale int32
}

// FromLiteral returns the exact decimal form of l.
func FromLiteral(l literal.Literal) (b Block, err error) {
	scale := l.Twos
	if l.Fives < scale {
		scale = l.Fives
	}

	if scale < MinScale || scale > MaxScale {
		return b, Error.New("scale out of range: %d", scale)
	}

	value := uint64(l.Mantissa)

	switch {
	case l.Twos > l.Fives:
		value *= 2
	case l.Fives > l.Twos:
		value *= 5
	}

	return Block{
		Value: integer.Block{
			Value:    value,
			Negative: l.Negative && value != 0,
		},
		Scale: int32(scale),
	}, nil
}

// Rescale returns the same number with the given scale. Lowering the scale
// multiplies the value; raising it requires the dropped digits to be zero.
func (b Block) Rescale(scale int32) (r Block, err error) {
	defer Error.WrapP(&err)

	if scale < MinScale || scale > MaxScale {
		return r, Error.New("scale out of range: %d", scale)
	}

	r = b

	for ; r.Scale > scale; r.Scale-- {
		if r.Value.Value > math.MaxInt64/10 {
			return Block{}, Error.New("value overflow rescaling %d to %d", b.Scale, scale)
		}

		r.Value.Value *= 10
	}

	for ; r.Scale < scale; r.Scale++ {
		if r.Value.Value%10 != 0 {
			return Block{}, Error.New("inexact rescaling %d to %d", b.Scale, scale)
		}

		r.Value.Value /= 10
	}

	return r, nil
}

// Float64 returns the value as a float64.
func (b Block) Float64() float64 {
	v := power.Scale(float64(b.Value.Value), int(b.Scale))
	if b.Value.Negative {
		return -v
	}

	return v
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	defer Error.WrapP(&err)

	if b.Scale < MinScale || b.Scale > MaxScale {
		return nil, Error.New("scale out of range: %d", b.Scale)
	}

	data, err = b.Value.MarshalBinary()
	if err != nil {
		return nil, err
	}

	magnitude := uint32(b.Scale)
	sign := uint32(0)
	if b.Scale < 0 {
		magnitude = uint32(-int64(b.Scale))
		sign = 1
	}

	zz := magnitude<<1 | sign

	switch {
	case zz == 0:
		data = append(data, 0b00)
	case zz < 1<<6:
		data = append(data, byte(zz<<2|0b01))
	case zz < 1<<14:
		t := zz<<2 | 0b10
		data = append(data, byte(t>>8), byte(t))
	default:
		t := zz<<2 | 0b11
		data = append(data, byte(t>>16), byte(t>>8), byte(t))
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	if len(data) < 2 {
		return Error.New("too short: %d bytes", len(data))
	}

	size := int(data[len(data)-1] & 0b11)

	trailer := size
	if trailer == 0 {
		trailer = 1
	}

	if len(data) < trailer+1 {
		return Error.New("too short for scale size %02b: %d bytes", size, len(data))
	}

	var t uint32
	for _, d := range data[len(data)-trailer:] {
		t = t<<8 | uint32(d)
	}

	if size == 0 && t != 0 {
		return Error.New("invalid empty scale: %08b", t)
	}

	zz := t >> 2

	scale := int32(zz >> 1)
	if zz&1 == 1 {
		scale = -scale
	}

	var value integer.Block

	err = value.UnmarshalBinary(data[:len(data)-trailer])
	if err != nil {
		return err
	}

	b.Value = value
	b.Scale = scale

	return nil
}
