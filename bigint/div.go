package bigint

import "math/bits"

// DivModResult carries the quotient and remainder produced by one DivMod
// call. The two values satisfy dividend = Quotient*divisor + Remainder.
type DivModResult struct {
	Quotient  Int
	Remainder Int
}

// DivMod returns the quotient and remainder of a / b under truncating
// division: |Remainder| < |b| and the remainder takes the sign of the
// dividend (or Zero), never the sign of the divisor. Division by zero is
// reported as DivisionByZeroError.
//
// Long division runs on magnitudes only; the result signs are derived
// afterwards, with the quotient sign being the product of the operand signs.
func (a Int) DivMod(b Int) (DivModResult, error) {
	if b.sign == Zero {
		return DivModResult{}, DivisionByZeroError{}
	}
	if a.sign == Zero {
		return DivModResult{}, nil
	}
	qMag, rMag := magDivMod(a.mag, b.mag)
	var res DivModResult
	if len(qMag) > 0 {
		res.Quotient = makeInt(a.sign*b.sign, qMag)
	}
	if len(rMag) > 0 {
		res.Remainder = makeInt(a.sign, rMag)
	}
	return res, nil
}

// Div returns the truncated quotient of a / b.
func (a Int) Div(b Int) (Int, error) {
	res, err := a.DivMod(b)
	if err != nil {
		return Int{}, err
	}
	return res.Quotient, nil
}

// Mod returns the remainder of a / b, carrying the sign of the dividend.
func (a Int) Mod(b Int) (Int, error) {
	res, err := a.DivMod(b)
	if err != nil {
		return Int{}, err
	}
	return res.Remainder, nil
}

// magDivMod divides magnitude u by non-zero magnitude v, returning quotient
// and remainder magnitudes. Single-limb divisors take the short path; the
// general case is Knuth's algorithm D with normalization so the top divisor
// limb has its high bit set, which keeps every quotient-digit estimate
// within one of the true digit.
func magDivMod(u, v []uint32) (q, r []uint32) {
	if magCmp(u, v) < 0 {
		return nil, u
	}
	if len(v) == 1 {
		q, rw := magDivModWord(u, v[0])
		if rw == 0 {
			return q, nil
		}
		return q, []uint32{rw}
	}

	n := len(v)
	m := len(u) - n
	s := uint(bits.LeadingZeros32(v[n-1]))
	vn := shiftLeftBits(v, s, 0)
	un := shiftLeftBits(u, s, 1)

	q = make([]uint32, m+1)
	for j := m; j >= 0; j-- {
		// Estimate the quotient digit from the top two dividend limbs.
		num := uint64(un[j+n])<<limbBits | uint64(un[j+n-1])
		qhat := num / uint64(vn[n-1])
		rhat := num - qhat*uint64(vn[n-1])
		for qhat >= 1<<limbBits ||
			qhat*uint64(vn[n-2]) > rhat<<limbBits|uint64(un[j+n-2]) {
			qhat--
			rhat += uint64(vn[n-1])
			if rhat >= 1<<limbBits {
				break
			}
		}

		// Multiply and subtract qhat*vn from the active window of un.
		var borrow int64
		for i := 0; i < n; i++ {
			p := qhat * uint64(vn[i])
			t := int64(un[i+j]) - borrow - int64(p&0xFFFFFFFF)
			un[i+j] = uint32(t)
			borrow = int64(p>>limbBits) - (t >> limbBits)
		}
		t := int64(un[j+n]) - borrow
		un[j+n] = uint32(t)

		// The estimate can exceed the true digit by one; add back.
		if t < 0 {
			qhat--
			var carry uint64
			for i := 0; i < n; i++ {
				s := uint64(un[i+j]) + uint64(vn[i]) + carry
				un[i+j] = uint32(s)
				carry = s >> limbBits
			}
			un[j+n] = uint32(uint64(un[j+n]) + carry)
		}
		q[j] = uint32(qhat)
	}
	return trimMag(q), shiftRightBits(un[:n], s)
}

// magDivModWord divides magnitude u by a single non-zero limb.
func magDivModWord(u []uint32, d uint32) (q []uint32, r uint32) {
	q = make([]uint32, len(u))
	var rem uint64
	for i := len(u) - 1; i >= 0; i-- {
		cur := rem<<limbBits | uint64(u[i])
		q[i] = uint32(cur / uint64(d))
		rem = cur % uint64(d)
	}
	return trimMag(q), uint32(rem)
}

// shiftLeftBits returns x << s as a fresh vector with extra high limbs
// appended for the shifted-out bits. s must be below the limb width.
func shiftLeftBits(x []uint32, s uint, extra int) []uint32 {
	z := make([]uint32, len(x)+extra)
	if s == 0 {
		copy(z, x)
		return z
	}
	var carry uint32
	for i := 0; i < len(x); i++ {
		z[i] = x[i]<<s | carry
		carry = uint32(uint64(x[i]) >> (limbBits - s))
	}
	if extra > 0 {
		z[len(x)] = carry
	}
	return z
}

// shiftRightBits returns the canonical form of x >> s. s must be below the
// limb width.
func shiftRightBits(x []uint32, s uint) []uint32 {
	z := make([]uint32, len(x))
	if s == 0 {
		copy(z, x)
		return trimMag(z)
	}
	for i := 0; i < len(x); i++ {
		z[i] = x[i] >> s
		if i+1 < len(x) {
			z[i] |= x[i+1] << (limbBits - s)
		}
	}
	return trimMag(z)
}
