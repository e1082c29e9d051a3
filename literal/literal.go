package literal

import "math"

// Accept selects the optional parts of the grammar.
type Accept uint8

// Grammar options.
const (
	// Negative permits a leading '-'.
	Negative Accept = 1 << iota
	// Reals permits a decimal point and an exponent.
	Reals
)

// Has returns true if all of the flags in o are set.
func (a Accept) Has(o Accept) bool {
	return a&o == o
}

// Literal is a parsed numeric literal. Its value is
// Mantissa * 2^Twos * 5^Fives, negated if Negative is set.
type Literal struct {
	Mantissa uint32
	Twos     int
	Fives    int

	Negative bool
	Point    bool
	Exponent bool
}

// fold adds digit to the mantissa. It returns true if the mantissa could
// not take a full multiplication by 10 and the digit was approximated into
// the exponents instead.
func (l *Literal) fold(digit uint32) (overflowed bool) {
	if l.Mantissa <= (math.MaxUint32-9)/10 || l.Mantissa <= (math.MaxUint32-digit)/10 {
		l.Mantissa = l.Mantissa*10 + digit
		if l.Point {
			l.Twos--
			l.Fives--
		}

		return false
	}

	if d := (digit + 1) / 2; l.Mantissa <= (math.MaxUint32-d)/5 {
		l.Mantissa = l.Mantissa*5 + d
		if l.Point {
			l.Fives--
		} else {
			l.Twos++
		}

		return true
	}

	if d := (digit + 4) / 5; l.Mantissa <= (math.MaxUint32-d)/2 {
		l.Mantissa = l.Mantissa*2 + d
		if l.Point {
			l.Twos--
		} else {
			l.Fives++
		}

		return true
	}

	if !l.Point {
		l.Twos++
		l.Fives++
	}

	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Accumulate reads a literal starting with c and continuing with bytes from
// next. It returns the first byte that is not part of the literal along with
// true if a valid literal was read. On failure the literal must not be used
// and the bytes already pulled from next are lost.
//
// All fields of l are overwritten.
func (l *Literal) Accumulate(c byte, accept Accept, next func() byte) (last byte, ok bool) {
	*l = Literal{}

	hadDigit := false

	for c == ' ' || c == '\t' {
		c = next()
	}

	switch c {
	case '+':
		c = next()
	case '-':
		if !accept.Has(Negative) {
			return c, false
		}

		l.Negative = true
		c = next()
	}

	reals := accept.Has(Reals)

	// Leading zeros only move the scale once a point has been seen.
	for {
		if c == '0' {
			hadDigit = true
			if l.Point {
				l.Twos--
				l.Fives--
			}
		} else if c == '.' && !l.Point && reals {
			l.Point = true
		} else {
			break
		}

		c = next()
	}

	overflowed := false

	for {
		if isDigit(c) {
			hadDigit = true

			if overflowed {
				if !l.Point {
					l.Twos++
					l.Fives++
				}
			} else {
				overflowed = l.fold(uint32(c - '0'))
			}
		} else if c == '.' && !l.Point && reals {
			l.Point = true
		} else {
			break
		}

		c = next()
	}

	if !hadDigit {
		return c, false
	}

	if !reals || (c != 'e' && c != 'E') {
		return c, true
	}

	c = next()

	negative := c == '-'
	if negative || c == '+' {
		c = next()
	}

	if !isDigit(c) {
		return c, false
	}

	l.Exponent = true

	// Wraps silently for absurd exponents.
	var exponent uint32
	for isDigit(c) {
		exponent = exponent*10 + uint32(c-'0')
		c = next()
	}

	if negative {
		l.Twos -= int(exponent)
		l.Fives -= int(exponent)
	} else {
		l.Twos += int(exponent)
		l.Fives += int(exponent)
	}

	return c, true
}
