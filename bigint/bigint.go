package bigint

// Sign classifies a value as negative, zero, or positive. Zero is its own
// class: no canonical value carries a negative zero.
type Sign int8

// Sign classes, ordered so that multiplying two Sign values yields the sign
// of the product.
const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

// String returns a human-readable name for the sign class.
func (s Sign) String() string {
	switch s {
	case Negative:
		return "Negative"
	case Positive:
		return "Positive"
	default:
		return "Zero"
	}
}

// Ordering is the three-valued result of a comparison.
type Ordering int

// Comparison results.
const (
	LessThan    Ordering = -1
	EqualTo     Ordering = 0
	GreaterThan Ordering = 1
)

// String returns a human-readable name for the ordering.
func (o Ordering) String() string {
	switch o {
	case LessThan:
		return "LessThan"
	case GreaterThan:
		return "GreaterThan"
	default:
		return "EqualTo"
	}
}

// Int is an immutable arbitrary-precision signed integer in canonical
// sign-magnitude form. The zero value of the type is the number zero.
//
// Int values are safe to copy and to share between goroutines: no method
// mutates its receiver or its operands, and the magnitude slice of a
// constructed value is never written again.
type Int struct {
	sign Sign
	mag  []uint32 // base-2^32 limbs, least significant first, no high zeros
}

// makeInt builds a canonical Int from a sign class and a raw magnitude.
// High zero limbs are stripped; an empty magnitude collapses to Zero.
// A Zero sign paired with a non-zero magnitude is a bug in this package,
// never a user input, and fails loudly.
func makeInt(sign Sign, mag []uint32) Int {
	mag = trimMag(mag)
	if len(mag) == 0 {
		return Int{}
	}
	if sign == Zero {
		panic("bigint: internal error: zero sign with non-zero magnitude")
	}
	return Int{sign: sign, mag: mag}
}

// trimMag strips high zero limbs so the magnitude is canonical.
func trimMag(mag []uint32) []uint32 {
	n := len(mag)
	for n > 0 && mag[n-1] == 0 {
		n--
	}
	return mag[:n]
}

// magCmp compares two canonical magnitudes: -1, 0, or 1.
// Length decides first; equal lengths compare most significant limb down.
func magCmp(a, b []uint32) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// magBitLen returns the bit length of a canonical magnitude; zero for zero.
func magBitLen(mag []uint32) int {
	if len(mag) == 0 {
		return 0
	}
	top := mag[len(mag)-1]
	n := (len(mag) - 1) * limbBits
	for top != 0 {
		n++
		top >>= 1
	}
	return n
}

// Sign returns the sign class of a.
func (a Int) Sign() Sign { return a.sign }

// IsZero reports whether a is zero.
func (a Int) IsZero() bool { return a.sign == Zero }

// IsPositive reports whether a is strictly positive.
func (a Int) IsPositive() bool { return a.sign == Positive }

// IsNegative reports whether a is strictly negative.
func (a Int) IsNegative() bool { return a.sign == Negative }

// IsEven reports whether a is divisible by two. Zero is even.
func (a Int) IsEven() bool { return len(a.mag) == 0 || a.mag[0]&1 == 0 }

// IsOdd reports whether a is not divisible by two.
func (a Int) IsOdd() bool { return !a.IsEven() }

// IsUnit reports whether a is 1 or -1.
func (a Int) IsUnit() bool { return len(a.mag) == 1 && a.mag[0] == 1 }

// BitLen returns the length of the magnitude of a in bits. BitLen of zero
// is zero.
func (a Int) BitLen() int { return magBitLen(a.mag) }

// Neg returns -a. Negating zero returns zero.
func (a Int) Neg() Int {
	return Int{sign: -a.sign, mag: a.mag}
}

// Abs returns the absolute value of a.
func (a Int) Abs() Int {
	if a.sign == Negative {
		return Int{sign: Positive, mag: a.mag}
	}
	return a
}

// CmpAbs compares the magnitudes of a and b, ignoring signs.
func (a Int) CmpAbs(b Int) Ordering {
	return Ordering(magCmp(a.mag, b.mag))
}

// Cmp compares a and b. Differing sign classes decide immediately
// (Positive > Zero > Negative); equal signs defer to magnitude comparison,
// inverted on the negative branch.
func (a Int) Cmp(b Int) Ordering {
	switch {
	case a.sign < b.sign:
		return LessThan
	case a.sign > b.sign:
		return GreaterThan
	case a.sign == Negative:
		return Ordering(-magCmp(a.mag, b.mag))
	default:
		return Ordering(magCmp(a.mag, b.mag))
	}
}

// Equal reports whether a and b represent the same integer.
func (a Int) Equal(b Int) bool { return a.Cmp(b) == EqualTo }

// Min returns the smaller of a and b.
func (a Int) Min(b Int) Int {
	if a.Cmp(b) == GreaterThan {
		return b
	}
	return a
}

// Max returns the larger of a and b.
func (a Int) Max(b Int) Int {
	if a.Cmp(b) == LessThan {
		return b
	}
	return a
}

// Int64 returns the value of a as an int64 and whether the conversion is
// exact. Values outside the int64 range report false.
func (a Int) Int64() (int64, bool) {
	switch len(a.mag) {
	case 0:
		return 0, true
	case 1:
		v := int64(a.mag[0])
		if a.sign == Negative {
			v = -v
		}
		return v, true
	case 2:
		u := uint64(a.mag[1])<<32 | uint64(a.mag[0])
		if a.sign == Negative {
			if u > 1<<63 {
				return 0, false
			}
			// u == 1<<63 wraps to exactly MinInt64 under negation.
			return -int64(u), true
		}
		if u > 1<<63-1 {
			return 0, false
		}
		return int64(u), true
	default:
		return 0, false
	}
}

// one is the shared magnitude of the unit value.
var one = []uint32{1}

// intOne is the constant 1, used internally where the unit value is needed.
var intOne = Int{sign: Positive, mag: one}

// intTwo is the constant 2.
var intTwo = Int{sign: Positive, mag: []uint32{2}}
