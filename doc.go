// Package safenum reads numeric literals from a stream without the global
// state or heap allocation of the standard conversions.
//
// The heavy lifting lives in the subpackages:
//
//  | Package | Purpose                                                   |
//  |---------|-----------------------------------------------------------|
//  | literal | accumulate a literal into mantissa * 2^twos * 5^fives     |
//  | power   | scale by powers of ten with a reciprocal table fast path  |
//  | strtod  | strtod/strtoul style parsing from the front of a string   |
//  | integer | signed integer block with a zigzag binary form            |
//  | decimal | exact value * 10^scale form with a compact binary form    |
//
// This package adds a Decoder that pulls bytes from an io.Reader and yields
// one literal per call, for example:
//
//  d := safenum.NewDecoder(safenum.Schema{Negative: true, Reals: true}, r)
//
//  var l literal.Literal
//  for {
//  	err := d.Decode(&l)
//  	if errors.Is(err, io.EOF) {
//  		break
//  	}
//  	...
//  }
package safenum
