// Package decimal provides the exact base 10 form of a parsed literal.
//
// The equation for a decimal number is:
//
//  number = value * 10 ^ scale
//
// Where value is an unscaled integer and scale is a base 10 exponent. For
// example:
//
//  1.23 = 123 * 10^-2
//
// A literal holds mantissa * 2^twos * 5^fives with the two exponents never
// more than one apart. Its decimal form is therefore exact: the scale is the
// smaller exponent and the value is the mantissa times 1, 2 or 5. Trailing
// zeros are preserved, so "1.50" has value 150 and scale -2.
//
// Scale may be up to ±(2^21 - 1).
//
// Encoding
//
// The decimal is laid out first by the unscaled integer value (see package
// integer), then the scale value (with sign bit), and finally the last 2 bits
// are the scale size.
//
// The scale size is encoded as two bits:
//
//  | 0 | 1 | Available Scale |
//  |-------|-----------------|
//  | 0 . 0 | No Scale        | 1 byte, all zero.
//  | 0 . 1 | ±2^5 Scale      | 1 byte, remaining bits are the scale value.
//  | 1 . 0 | ±2^13 Scale     | 2 bytes
//  | 1 . 1 | ±2^21 Scale     | 3 bytes
//  |-------|-----------------|
//  | 0 | 1 |
//
// Decoding reads the scale size from the last two bits, extracts the scale
// (up to 3 bytes total), and then the remaining bytes are the value.
//
// Examples
//
// USD 0.0001 (2 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 0 . 0 . 0 . 0 . 0 . 1 | 0 | Value of +1.
//  |-------------------------------|
//  | 0 . 0 . 1 . 0 . 0 | 1 | 0 . 1 | ±2^5 Scale with scale of -4.
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// USD 20.47 (3 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 0 . 0 . 0 . 1 . 1 . 1 . 1 | Value of +2047.
//  | 1 . 1 . 1 . 1 . 1 . 1 . 1 | 0 |
//  |-------------------------------|
//  | 0 . 0 . 0 . 1 . 0 | 1 | 0 . 1 | ±2^5 Scale with scale of -2.
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
package decimal
