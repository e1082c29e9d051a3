// Package strtod parses numbers from the front of a string without
// allocating, in the manner of the C library strtod and strtoul.
//
// Floats are accumulated as two separate magnitudes, the digits before the
// point in a float64 and the digits after it in a uint32, and combined with
// a single power of ten scaling:
//
//  value = (after / 10^digits + before) * 10^exponent
//
// Rounding is good rather than exact: the result may differ from the nearest
// double in the last bit, and absurdly long integer parts lose precision.
package strtod

import (
	"math"

	"github.com/calebcase/safenum/power"
)

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}

	return i
}

// ParseFloat64 parses a float from the front of s. It returns the value and
// the number of bytes consumed. If s does not start with a number it returns
// 0, 0.
func ParseFloat64(s string) (v float64, n int) {
	i := skipSpace(s, 0)

	negative := i < len(s) && s[i] == '-'
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}

	digits := 0

	var before float64
	for ; i < len(s) && isDigit(s[i]); i++ {
		before = before*10 + float64(s[i]-'0')
		digits++
	}

	var after uint32
	places := 0

	if i < len(s) && s[i] == '.' {
		i++

		overflowed := false
		for ; i < len(s) && isDigit(s[i]); i++ {
			digits++

			if overflowed {
				continue
			}

			digit := uint32(s[i] - '0')
			if after <= (math.MaxUint32-digit)/10 {
				after = after*10 + digit
				places++

				continue
			}

			overflowed = true

			// Approximate rounding of the first digit that did not fit.
			if digit >= 5 && after != math.MaxUint32 {
				after++
			}
		}
	}

	if digits == 0 {
		return 0, 0
	}

	exponent := 0

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1

		negativeExponent := j < len(s) && s[j] == '-'
		if j < len(s) && (s[j] == '-' || s[j] == '+') {
			j++
		}

		if j < len(s) && isDigit(s[j]) {
			for ; j < len(s) && isDigit(s[j]); j++ {
				// Overflow is not guarded.
				exponent = exponent*10 + int(s[j]-'0')
			}

			if negativeExponent {
				exponent = -exponent
			}

			i = j
		}
	}

	switch {
	case after == 0:
		v = power.Scale(before, exponent)
	case before == 0:
		v = power.Scale(float64(after), exponent-places)
	default:
		v = power.Scale(power.Scale(float64(after), -places)+before, exponent)
	}

	if negative {
		v = -v
	}

	return v, i
}

// ParseFloat32 is ParseFloat64 rounded to single precision.
func ParseFloat32(s string) (v float32, n int) {
	d, n := ParseFloat64(s)

	return float32(d), n
}
