package bigint

// ─────────────────────────────────────────────────────────────────────────────
// Two's-Complement Bitwise Layer
// ─────────────────────────────────────────────────────────────────────────────
//
// Bitwise operations are defined over an infinite-precision two's-complement
// view of the operands: a negative number conceptually carries an unbounded
// run of set bits above its magnitude. The sign-magnitude store cannot
// express that view directly, so operands are explicitly encoded to a wide
// enough two's-complement limb vector, combined, and decoded back. One limb
// of pure sign extension above the longer operand is enough width for every
// binary combination to come out exact.

// And returns the bitwise conjunction of a and b.
func (a Int) And(b Int) Int {
	return bitwiseOp(a, b, func(x, y uint32) uint32 { return x & y })
}

// Or returns the bitwise disjunction of a and b.
func (a Int) Or(b Int) Int {
	return bitwiseOp(a, b, func(x, y uint32) uint32 { return x | y })
}

// Xor returns the bitwise exclusive disjunction of a and b.
func (a Int) Xor(b Int) Int {
	return bitwiseOp(a, b, func(x, y uint32) uint32 { return x ^ y })
}

// Not returns the bitwise complement of a, which in the two's-complement
// view equals -(a + 1).
func (a Int) Not() Int {
	z := encodeTwos(a, len(a.mag)+1)
	for i := range z {
		z[i] = ^z[i]
	}
	return decodeTwos(z)
}

// ShiftLeft returns a shifted left by n bits. A negative count shifts right
// instead. Counts whose magnitude exceeds MaxShiftCount are reported as
// ShiftRangeError.
func (a Int) ShiftLeft(n int64) (Int, error) {
	if n > MaxShiftCount || n < -MaxShiftCount {
		return Int{}, ShiftRangeError{Count: n}
	}
	if n < 0 {
		return a.ShiftRight(-n)
	}
	if a.sign == Zero {
		return Int{}, nil
	}
	limbs := int(n / limbBits)
	shifted := shiftLeftBits(a.mag, uint(n%limbBits), 1)
	z := make([]uint32, limbs+len(shifted))
	copy(z[limbs:], shifted)
	return makeInt(a.sign, z), nil
}

// ShiftRight returns a shifted right by n bits, flooring like an arithmetic
// shift: shifting a negative number rounds away from zero whenever set bits
// are discarded. A negative count shifts left instead.
func (a Int) ShiftRight(n int64) (Int, error) {
	if n > MaxShiftCount || n < -MaxShiftCount {
		return Int{}, ShiftRangeError{Count: n}
	}
	if n < 0 {
		return a.ShiftLeft(-n)
	}
	if a.sign == Zero {
		return Int{}, nil
	}

	limbs := int(n / limbBits)
	s := uint(n % limbBits)

	lost := false
	for i := 0; i < limbs && i < len(a.mag); i++ {
		if a.mag[i] != 0 {
			lost = true
			break
		}
	}
	var shifted []uint32
	if limbs < len(a.mag) {
		if s > 0 && a.mag[limbs]<<(limbBits-s) != 0 {
			lost = true
		}
		shifted = shiftRightBits(a.mag[limbs:], s)
	} else {
		lost = true
	}

	if len(shifted) == 0 {
		if a.sign == Negative {
			return FromInt64(-1), nil
		}
		return Int{}, nil
	}
	res := makeInt(a.sign, shifted)
	if a.sign == Negative && lost {
		res = res.Sub(intOne)
	}
	return res, nil
}

// bitwiseOp combines two operands limb-wise in two's-complement space.
func bitwiseOp(a, b Int, op func(x, y uint32) uint32) Int {
	n := len(a.mag)
	if len(b.mag) > n {
		n = len(b.mag)
	}
	n++
	x := encodeTwos(a, n)
	y := encodeTwos(b, n)
	z := make([]uint32, n)
	for i := range z {
		z[i] = op(x[i], y[i])
	}
	return decodeTwos(z)
}

// encodeTwos renders a as an n-limb two's-complement vector. n must exceed
// the magnitude length so the top limb is pure sign extension.
func encodeTwos(a Int, n int) []uint32 {
	z := make([]uint32, n)
	copy(z, a.mag)
	if a.sign == Negative {
		carry := uint64(1)
		for i := 0; i < n; i++ {
			s := uint64(^z[i]) + carry
			z[i] = uint32(s)
			carry = s >> limbBits
		}
	}
	return z
}

// decodeTwos maps a two's-complement limb vector back to sign-magnitude
// form. The top bit of the top limb is the sign.
func decodeTwos(z []uint32) Int {
	if z[len(z)-1]&(1<<(limbBits-1)) == 0 {
		return makeInt(Positive, z)
	}
	m := make([]uint32, len(z))
	carry := uint64(1)
	for i := range z {
		s := uint64(^z[i]) + carry
		m[i] = uint32(s)
		carry = s >> limbBits
	}
	return makeInt(Negative, m)
}
