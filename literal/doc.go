// Package literal converts a stream of characters holding an integer or real
// literal into an exact scaled integer, without touching the heap.
//
// A parsed literal is:
//
//  value = mantissa * 2^twos * 5^fives
//
// Where mantissa is an unsigned 32 bit integer and twos and fives are signed
// exponents. For example:
//
//  1.25   = 125 * 2^-2 * 5^-2
//  1.5e2  = 15 * 2^1 * 5^1
//
// Grammar
//
// With both Negative and Reals accepted the grammar is:
//
//  [ws]* ['+'|'-'] digit* ['.' digit*] [('E'|'e') ['+'|'-'] digit+]
//
// At least one digit is required before the exponent marker. Whitespace is
// space or tab only.
//
// Overflow
//
// Digits that no longer fit the mantissa are folded into the exponents
// rather than dropped or rejected. The first digit that overflows a
// multiplication by 10 is folded in with the largest multiplier that still
// fits:
//
//  | Multiplier | Digit contribution | Before point | After point |
//  |------------|--------------------|--------------|-------------|
//  | x5         | (d+1)/2            | twos += 1    | fives -= 1  |
//  | x2         | (d+4)/5            | fives += 1   | twos -= 1   |
//  | none       | 0                  | both += 1    | nothing     |
//
// Every later digit before the decimal point adds one to both exponents.
// Later digits after the decimal point are ignored: they sit below the
// precision the mantissa already holds. As a result twos and fives never
// differ by more than one.
//
// Character Source
//
// Characters are pulled from a function that returns one byte per call. The
// stream is treated as infinite; callers terminate it with any byte the
// grammar does not match (a NUL works). Consumed characters are never pushed
// back, including on failure, so callers that want to retry must buffer
// their input.
package literal
