package bigint

// Pow returns base raised to exponent.
//
// An exponent of Zero yields One for every base, including Zero. A negative
// exponent yields Zero; the library this engine replaces documented that
// behavior and callers depend on it, so it is preserved rather than
// reported as an error.
func (base Int) Pow(exponent Int) Int {
	switch exponent.sign {
	case Zero:
		return intOne
	case Negative:
		return Int{}
	}
	if base.sign == Zero {
		return Int{}
	}
	result := intOne
	for i := exponent.BitLen() - 1; i >= 0; i-- {
		result = result.Square()
		if magBit(exponent.mag, i) != 0 {
			result = result.Mul(base)
		}
	}
	return result
}

// ModPow returns base^exponent mod modulus via binary square-and-multiply
// exponentiation, reducing after every multiplication so intermediate
// magnitudes never exceed twice the modulus size. A naive Pow followed by
// Mod would grow intermediates without bound, which is exactly what this
// operation exists to avoid.
//
// A negative exponent is an InvalidExponentError; a zero modulus is a
// DivisionByZeroError. The result carries the sign the truncating Mod gives
// it, so a negative base can produce a negative residue.
func (base Int) ModPow(exponent, modulus Int) (Int, error) {
	if exponent.sign == Negative {
		return Int{}, InvalidExponentError{Exponent: exponent.String()}
	}
	if modulus.sign == Zero {
		return Int{}, DivisionByZeroError{}
	}
	if modulus.IsUnit() {
		return Int{}, nil
	}

	b, err := base.Mod(modulus)
	if err != nil {
		return Int{}, err
	}
	result := intOne
	for i := exponent.BitLen() - 1; i >= 0; i-- {
		result = result.Square()
		if result, err = result.Mod(modulus); err != nil {
			return Int{}, err
		}
		if magBit(exponent.mag, i) != 0 {
			result = result.Mul(b)
			if result, err = result.Mod(modulus); err != nil {
				return Int{}, err
			}
		}
	}
	return result, nil
}

// ModInv returns the multiplicative inverse of a modulo modulus, computed
// with the extended Euclidean algorithm and normalized into [0, |modulus|).
// When gcd(a, modulus) != 1 no inverse exists and a NotInvertibleError is
// returned.
func (a Int) ModInv(modulus Int) (Int, error) {
	mAbs := modulus.Abs()
	if mAbs.IsZero() {
		return Int{}, NotInvertibleError{Value: a.String(), Modulus: modulus.String()}
	}

	t, newT := Int{}, intOne
	r, newR := mAbs, a.Abs()
	for !newR.IsZero() {
		q, err := r.Div(newR)
		if err != nil {
			return Int{}, err
		}
		t, newT = newT, t.Sub(q.Mul(newT))
		r, newR = newR, r.Sub(q.Mul(newR))
	}
	if !r.IsUnit() {
		return Int{}, NotInvertibleError{Value: a.String(), Modulus: modulus.String()}
	}

	// inv(-a) = -inv(a); then reduce into the canonical residue range.
	if a.sign == Negative {
		t = t.Neg()
	}
	t, err := t.Mod(mAbs)
	if err != nil {
		return Int{}, err
	}
	if t.sign == Negative {
		t = t.Add(mAbs)
	}
	return t, nil
}

// magBit returns bit i of a magnitude, with bits beyond the vector zero.
func magBit(mag []uint32, i int) uint32 {
	limb := i / limbBits
	if limb >= len(mag) {
		return 0
	}
	return mag[limb] >> (uint(i) % limbBits) & 1
}
