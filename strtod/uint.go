package strtod

import "math"

// ParseUint parses an unsigned integer in the given base from the front of
// s. Unlike strtoul it refuses a leading '-': it returns 0 and the offset of
// the '-' instead of negating the result.
//
// Base 0 selects the base from the prefix: "0x" for 16, "0" for 8 and 10
// otherwise. Base 16 also accepts a "0x" prefix. Values that overflow
// saturate at math.MaxUint32. If no digits are found it returns 0, 0.
func ParseUint(s string, base int) (v uint32, n int) {
	i := skipSpace(s, 0)
	if i < len(s) && s[i] == '-' {
		return 0, i
	}

	return parseUint(s, base)
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}

	return math.MaxInt8
}

func hexPrefix(s string, i int) bool {
	return i+2 < len(s) &&
		s[i] == '0' &&
		(s[i+1] == 'x' || s[i+1] == 'X') &&
		digitValue(s[i+2]) < 16
}

// parseUint has strtoul semantics, including the modular negation of
// values with a leading '-'.
func parseUint(s string, base int) (v uint32, n int) {
	if base != 0 && (base < 2 || base > 36) {
		return 0, 0
	}

	i := skipSpace(s, 0)

	negative := i < len(s) && s[i] == '-'
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}

	switch {
	case (base == 0 || base == 16) && hexPrefix(s, i):
		base = 16
		i += 2
	case base == 0 && i < len(s) && s[i] == '0':
		base = 8
	case base == 0:
		base = 10
	}

	start := i
	overflowed := false

	for ; i < len(s); i++ {
		d := digitValue(s[i])
		if d >= base {
			break
		}

		if overflowed {
			continue
		}

		if v > (math.MaxUint32-uint32(d))/uint32(base) {
			overflowed = true
			v = math.MaxUint32

			continue
		}

		v = v*uint32(base) + uint32(d)
	}

	if i == start {
		return 0, 0
	}

	if overflowed {
		return math.MaxUint32, i
	}

	if negative {
		v = -v
	}

	return v, i
}
