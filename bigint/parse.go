package bigint

// FromInt64 returns the Int with the exact value of v.
//
// The minimum representable value is handled by widening to unsigned before
// negation, since its magnitude has no positive int64 counterpart.
func FromInt64(v int64) Int {
	if v == 0 {
		return Int{}
	}
	sign := Positive
	u := uint64(v)
	if v < 0 {
		sign = Negative
		u = -u
	}
	return makeInt(sign, magFromUint64(u))
}

// FromUint64 returns the Int with the exact value of v.
func FromUint64(v uint64) Int {
	if v == 0 {
		return Int{}
	}
	return makeInt(Positive, magFromUint64(v))
}

// FromString parses a decimal string: an optional leading '+' or '-'
// followed by one or more decimal digits. Leading zeros are permitted and
// stripped. Any other character is an InvalidDigitError.
func FromString(s string) (Int, error) {
	return ParseRadix(s, 10)
}

// ParseRadix parses a string in the given radix, 2 through 36. Radices 11
// and above use the letters 'a' through 'z' (either case) for digit values
// 10 through 35.
func ParseRadix(s string, radix int64) (Int, error) {
	if radix < 2 || radix > 36 {
		return Int{}, InvalidRadixError{Radix: radix, Message: "parsing supports radices 2 through 36"}
	}

	i := 0
	sign := Positive
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = Negative
		}
		i++
	}
	if i == len(s) {
		return Int{}, InvalidDigitError{Input: s, Pos: i}
	}

	// Digits are accumulated in chunks of the largest power of the radix
	// that fits in one limb, so the multi-limb multiply-add runs once per
	// chunk instead of once per character.
	chunkDigits, chunkPow := chunkParams(uint32(radix))
	var (
		mag     []uint32
		chunk   uint32
		inChunk int
	)
	for ; i < len(s); i++ {
		d := digitVal(s[i])
		if d < 0 || int64(d) >= radix {
			return Int{}, InvalidDigitError{Input: s, Pos: i}
		}
		chunk = chunk*uint32(radix) + uint32(d)
		inChunk++
		if inChunk == chunkDigits {
			mag = magMulAddWord(mag, chunkPow, chunk)
			chunk, inChunk = 0, 0
		}
	}
	if inChunk > 0 {
		pw := uint32(1)
		for k := 0; k < inChunk; k++ {
			pw *= uint32(radix)
		}
		mag = magMulAddWord(mag, pw, chunk)
	}

	if len(mag) == 0 {
		return Int{}, nil
	}
	return makeInt(sign, mag), nil
}

// digitVal maps an ASCII character to its digit value, or -1 when the
// character is not a digit in any supported radix.
func digitVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// chunkParams returns the largest digit count k and the value radix^k that
// still fit in a single limb.
func chunkParams(radix uint32) (digits int, pow uint32) {
	pow = 1
	for uint64(pow)*uint64(radix) <= 0xFFFFFFFF {
		pow *= radix
		digits++
	}
	return digits, pow
}

// magFromUint64 builds a canonical magnitude from a non-zero uint64.
func magFromUint64(v uint64) []uint32 {
	if v>>limbBits == 0 {
		return []uint32{uint32(v)}
	}
	return []uint32{uint32(v), uint32(v >> limbBits)}
}
