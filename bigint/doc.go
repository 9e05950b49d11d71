// Package bigint implements arbitrary-precision signed integer arithmetic
// on an immutable sign-magnitude representation.
//
// Values are stored as a sign class plus a little-endian vector of base-2^32
// limbs, always in canonical form (no high zero limbs, and the value zero has
// an empty magnitude). Every operation is a pure function returning a new
// canonical value; no operation mutates an operand, so values may be freely
// shared across goroutines without synchronization.
//
// The package covers comparison, the four basic operations, modular
// exponentiation and inversion, two's-complement bitwise operations and
// shifts, gcd/lcm, primality testing, arbitrary-radix conversion, and uniform
// random generation in a range. Invalid inputs (malformed strings, division
// by zero, negative modular exponents, out-of-range shift counts) are
// reported as typed errors, never as panics.
package bigint
