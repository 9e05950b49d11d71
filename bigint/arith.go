package bigint

// ─────────────────────────────────────────────────────────────────────────────
// Magnitude Vector Primitives
// ─────────────────────────────────────────────────────────────────────────────
//
// The helpers below operate on raw little-endian limb vectors and know
// nothing about signs. Results are allocated at the analytically maximal
// size up front and trimmed once, so no loop reallocates.

// magAdd returns a + b over magnitudes.
func magAdd(a, b []uint32) []uint32 {
	if len(a) < len(b) {
		a, b = b, a
	}
	z := make([]uint32, len(a)+1)
	var carry uint64
	for i := 0; i < len(b); i++ {
		s := uint64(a[i]) + uint64(b[i]) + carry
		z[i] = uint32(s)
		carry = s >> limbBits
	}
	for i := len(b); i < len(a); i++ {
		s := uint64(a[i]) + carry
		z[i] = uint32(s)
		carry = s >> limbBits
	}
	z[len(a)] = uint32(carry)
	return trimMag(z)
}

// magSub returns a - b over magnitudes. The caller guarantees a >= b;
// a final borrow would be a bug in this package and fails loudly.
func magSub(a, b []uint32) []uint32 {
	z := make([]uint32, len(a))
	var borrow uint64
	for i := 0; i < len(b); i++ {
		d := uint64(a[i]) - uint64(b[i]) - borrow
		z[i] = uint32(d)
		borrow = (d >> limbBits) & 1
	}
	for i := len(b); i < len(a); i++ {
		d := uint64(a[i]) - borrow
		z[i] = uint32(d)
		borrow = (d >> limbBits) & 1
	}
	if borrow != 0 {
		panic("bigint: internal error: magnitude subtraction underflow")
	}
	return trimMag(z)
}

// magAddWord returns a + w over magnitudes, w being a single limb.
func magAddWord(a []uint32, w uint32) []uint32 {
	z := make([]uint32, len(a)+1)
	carry := uint64(w)
	for i := 0; i < len(a); i++ {
		s := uint64(a[i]) + carry
		z[i] = uint32(s)
		carry = s >> limbBits
	}
	z[len(a)] = uint32(carry)
	return trimMag(z)
}

// magMulAddWord returns a*m + w over magnitudes, m and w being single limbs.
// This is the inner step of chunked string parsing and Horner evaluation.
func magMulAddWord(a []uint32, m, w uint32) []uint32 {
	z := make([]uint32, len(a)+1)
	carry := uint64(w)
	for i := 0; i < len(a); i++ {
		p := uint64(a[i])*uint64(m) + carry
		z[i] = uint32(p)
		carry = p >> limbBits
	}
	z[len(a)] = uint32(carry)
	return trimMag(z)
}

// ─────────────────────────────────────────────────────────────────────────────
// Addition and Subtraction
// ─────────────────────────────────────────────────────────────────────────────

// Add returns a + b.
//
// Matching signs add magnitudes and keep the shared sign. Differing signs
// subtract the smaller magnitude from the larger and take the sign of the
// operand with the larger magnitude; an exact cancellation yields Zero.
func (a Int) Add(b Int) Int {
	switch {
	case a.sign == Zero:
		return b
	case b.sign == Zero:
		return a
	case a.sign == b.sign:
		return makeInt(a.sign, magAdd(a.mag, b.mag))
	}
	switch magCmp(a.mag, b.mag) {
	case 1:
		return makeInt(a.sign, magSub(a.mag, b.mag))
	case -1:
		return makeInt(b.sign, magSub(b.mag, a.mag))
	default:
		return Int{}
	}
}

// Sub returns a - b, defined as a + (-b).
func (a Int) Sub(b Int) Int {
	return a.Add(b.Neg())
}
