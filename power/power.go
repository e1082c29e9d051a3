// Package power scales floating point values by powers of ten.
//
// Small negative powers are applied by multiplying with a table of
// reciprocals. Each entry is the nearest double to 10^-k, so the result
// carries a single rounding rather than the error accumulated by repeated
// division or by a logarithmic pow routine.
package power

import "math"

// inverse[k-1] is 10^-k.
var inverse = [...]float64{
	0.1,
	0.01,
	0.001,
	0.0001,
	0.00001,
	0.000001,
	0.0000001,
	0.00000001,
	0.000000001,
	0.0000000001,
	0.00000000001,
	0.000000000001,
}

// step is the largest power applied in a single multiplication on the general
// path. 10^±300 stays well inside the double range.
const step = 300

// Inverse returns 10^-k from the reciprocal table. It returns false if k is
// outside the table.
func Inverse(k int) (float64, bool) {
	if k < 1 || k > len(inverse) {
		return 0, false
	}

	return inverse[k-1], true
}

// Scale returns v * 10^n.
func Scale(v float64, n int) float64 {
	if v == 0 || n == 0 {
		return v
	}

	if r, ok := Inverse(-n); ok {
		return v * r
	}

	for n > step && !math.IsInf(v, 0) {
		v *= 1e300
		n -= step
	}

	for n < -step && v != 0 {
		v *= 1e-300
		n += step
	}

	if v == 0 || math.IsInf(v, 0) {
		return v
	}

	return v * math.Pow10(n)
}
