package literal

import (
	"math"

	"github.com/calebcase/safenum/power"
)

// Parse reads a literal from s. It returns the index of the first byte that
// is not part of the literal. Reading past the end of s yields NUL, which the
// grammar never matches.
func Parse(s string, accept Accept) (l Literal, n int, ok bool) {
	i := 0
	next := func() byte {
		i++
		if i < len(s) {
			return s[i]
		}

		i = len(s)

		return 0
	}

	var c byte
	if len(s) > 0 {
		c = s[0]
	}

	_, ok = l.Accumulate(c, accept, next)

	return l, i, ok
}

func (l *Literal) integral() bool {
	return !l.Point && !l.Exponent && l.Twos == 0 && l.Fives == 0
}

// FitsInt32 returns true if the literal is an integer that Int32 returns
// exactly. math.MinInt32 is never accepted.
func (l *Literal) FitsInt32() bool {
	return l.integral() && l.Mantissa <= math.MaxInt32
}

// FitsUint32 returns true if the literal is an integer that Uint32 returns
// exactly. Negative zero is accepted.
func (l *Literal) FitsUint32() bool {
	return l.integral() && (!l.Negative || l.Mantissa == 0)
}

// Int32 returns the literal as an int32. The result is only meaningful if
// FitsInt32 returns true.
func (l *Literal) Int32() int32 {
	if l.Negative {
		return -int32(l.Mantissa)
	}

	return int32(l.Mantissa)
}

// Uint32 returns the literal as a uint32. The result is only meaningful if
// FitsUint32 returns true.
func (l *Literal) Uint32() uint32 {
	return l.Mantissa
}

// Float64 returns the value of the literal.
func (l *Literal) Float64() float64 {
	tens := l.Twos
	if l.Fives < tens {
		tens = l.Fives
	}

	v := power.Scale(float64(l.Mantissa), tens)

	// At most one of the exponents is left over.
	switch {
	case l.Fives > l.Twos:
		v *= 5
	case l.Twos > l.Fives:
		v *= 2
	}

	if l.Negative {
		return -v
	}

	return v
}

// Float32 returns the value of the literal rounded to single precision.
func (l *Literal) Float32() float32 {
	return float32(l.Float64())
}

// DigitsAfterPoint returns the number of fractional digits worth displaying.
// Callers should clamp it to what their float type can represent.
func (l *Literal) DigitsAfterPoint() uint {
	digits := l.Twos
	if l.Fives < digits {
		digits = l.Fives
	}

	if digits < 0 {
		return uint(-digits)
	}

	return 0
}
