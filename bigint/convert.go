package bigint

import (
	"strconv"
	"strings"
)

// digitAlphabet maps digit values 0 through 35 to their characters for
// radices up to 36.
const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// maxUnaryDigits bounds the length of a unary (radix ±1) digit array.
const maxUnaryDigits = 1 << 31

// ArrayRepresentation is a value rendered as a digit sequence in a caller
// chosen radix, most significant digit first, plus a sign flag. It exists
// only at the conversion boundary; the engine stores nothing in this form.
type ArrayRepresentation struct {
	// Digits are the base-radix digits, most significant first. Each
	// digit d satisfies 0 <= d < radix.
	Digits []int64
	// Negative is the sign flag. Zero is never negative.
	Negative bool
}

// ToArray renders a in the given radix by repeated division, collecting
// remainders least significant first and reversing.
//
// Radix 0 is permitted only for zero. Radix 1 and -1 produce the unary
// form: |a| repetitions of the digit 1. All other radices must be at
// least 2.
func (a Int) ToArray(radix int64) (ArrayRepresentation, error) {
	switch {
	case radix == 0:
		if !a.IsZero() {
			return ArrayRepresentation{}, InvalidRadixError{Radix: radix, Message: "radix 0 is valid only for zero"}
		}
		return ArrayRepresentation{Digits: []int64{0}}, nil
	case radix == 1 || radix == -1:
		return a.toUnaryArray(radix)
	case radix < 0:
		return ArrayRepresentation{}, InvalidRadixError{Radix: radix, Message: "radix must be at least 2"}
	}

	if a.IsZero() {
		return ArrayRepresentation{Digits: []int64{0}}, nil
	}

	var digits []int64
	if radix <= 0xFFFFFFFF {
		digits = magToDigitsWord(a.mag, uint32(radix))
	} else {
		digits = magToDigitsBig(a.mag, radix)
	}
	reverseDigits(digits)
	return ArrayRepresentation{Digits: digits, Negative: a.sign == Negative}, nil
}

// toUnaryArray renders a in radix ±1: a digit array of length |a| holding
// the single digit 1.
func (a Int) toUnaryArray(radix int64) (ArrayRepresentation, error) {
	if a.IsZero() {
		return ArrayRepresentation{Digits: []int64{0}}, nil
	}
	n, ok := a.Abs().Int64()
	if !ok || n > maxUnaryDigits {
		return ArrayRepresentation{}, InvalidRadixError{Radix: radix, Message: "magnitude too large for unary representation"}
	}
	digits := make([]int64, n)
	for i := range digits {
		digits[i] = 1
	}
	return ArrayRepresentation{Digits: digits, Negative: a.sign == Negative}, nil
}

// FromArray is the inverse of ToArray: Horner evaluation of a most
// significant first digit sequence in the given radix, with the sign
// applied afterwards. Every digit must satisfy 0 <= digit < radix; radix 0
// accepts only all-zero digit lists, and radix ±1 accepts unary digit
// lists of zeros and ones.
func FromArray(digits []int64, radix int64, negative bool) (Int, error) {
	switch {
	case radix == 0:
		for _, d := range digits {
			if d != 0 {
				return Int{}, InvalidRadixError{Radix: radix, Message: "radix 0 is valid only for zero"}
			}
		}
		return Int{}, nil
	case radix == 1 || radix == -1:
		return fromUnaryArray(digits, radix, negative)
	case radix < 0:
		return Int{}, InvalidRadixError{Radix: radix, Message: "radix must be at least 2"}
	}

	var mag []uint32
	wordRadix := radix <= 0xFFFFFFFF
	acc := Int{}
	radixInt := FromInt64(radix)
	for _, d := range digits {
		if d < 0 || d >= radix {
			return Int{}, InvalidRadixError{Radix: radix, Message: "digit " + strconv.FormatInt(d, 10) + " out of range"}
		}
		if wordRadix {
			mag = magMulAddWord(mag, uint32(radix), uint32(d))
		} else {
			acc = acc.Mul(radixInt).Add(FromInt64(d))
		}
	}
	if wordRadix {
		if len(mag) == 0 {
			return Int{}, nil
		}
		acc = makeInt(Positive, mag)
	}
	if negative {
		return acc.Neg(), nil
	}
	return acc, nil
}

// fromUnaryArray evaluates a radix ±1 digit list: the value is the digit
// sum, which makes it the exact inverse of toUnaryArray.
func fromUnaryArray(digits []int64, radix int64, negative bool) (Int, error) {
	var sum uint64
	for _, d := range digits {
		if d != 0 && d != 1 {
			return Int{}, InvalidRadixError{Radix: radix, Message: "unary digits must be 0 or 1"}
		}
		sum += uint64(d)
	}
	v := FromUint64(sum)
	if negative {
		return v.Neg(), nil
	}
	return v, nil
}

// ToString renders a in the given radix. Radix 10 is the default used by
// String. Radices 11 through 36 use letters for digit values above 9.
//
// A radix above 36 or below 2 renders each digit value as its decimal form
// enclosed in angle brackets, e.g. "<31><11>" for 1000 in radix 41. This
// matches the notation of the library this engine replaces and is kept for
// caller compatibility.
func (a Int) ToString(radix int64) (string, error) {
	if radix >= 2 && radix <= 36 {
		var sb strings.Builder
		if a.sign == Negative {
			sb.WriteByte('-')
		}
		magWriteString(&sb, a.mag, uint32(radix))
		return sb.String(), nil
	}

	rep, err := a.ToArray(radix)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if rep.Negative {
		sb.WriteByte('-')
	}
	for _, d := range rep.Digits {
		sb.WriteByte('<')
		sb.WriteString(strconv.FormatInt(d, 10))
		sb.WriteByte('>')
	}
	return sb.String(), nil
}

// String renders a in decimal.
func (a Int) String() string {
	s, _ := a.ToString(10)
	return s
}

// magWriteString writes the base-radix rendering of a magnitude. The value
// is divided by the largest in-limb power of the radix, so each pass over
// the limbs yields a whole chunk of output digits.
func magWriteString(sb *strings.Builder, mag []uint32, radix uint32) {
	if len(mag) == 0 {
		sb.WriteByte('0')
		return
	}
	chunkDigits, chunkPow := chunkParams(radix)

	cur := make([]uint32, len(mag))
	copy(cur, mag)
	var chunks []uint32
	for len(cur) > 0 {
		var rem uint64
		for i := len(cur) - 1; i >= 0; i-- {
			v := rem<<limbBits | uint64(cur[i])
			cur[i] = uint32(v / uint64(chunkPow))
			rem = v % uint64(chunkPow)
		}
		cur = trimMag(cur)
		chunks = append(chunks, uint32(rem))
	}

	var buf [limbBits]byte
	for ci := len(chunks) - 1; ci >= 0; ci-- {
		c := chunks[ci]
		pos := len(buf)
		for c > 0 {
			pos--
			buf[pos] = digitAlphabet[c%radix]
			c /= radix
		}
		if ci < len(chunks)-1 {
			// Inner chunks are zero padded to full width.
			for len(buf)-pos < chunkDigits {
				pos--
				buf[pos] = '0'
			}
		}
		sb.Write(buf[pos:])
	}
}

// magToDigitsWord collects base-radix digits of a magnitude, least
// significant first, for radices that fit in one limb.
func magToDigitsWord(mag []uint32, radix uint32) []int64 {
	chunkDigits, chunkPow := chunkParams(radix)
	cur := make([]uint32, len(mag))
	copy(cur, mag)

	var digits []int64
	for len(cur) > 0 {
		var rem uint64
		for i := len(cur) - 1; i >= 0; i-- {
			v := rem<<limbBits | uint64(cur[i])
			cur[i] = uint32(v / uint64(chunkPow))
			rem = v % uint64(chunkPow)
		}
		cur = trimMag(cur)
		if len(cur) == 0 {
			// Most significant chunk: only its significant digits.
			for rem > 0 {
				digits = append(digits, int64(rem%uint64(radix)))
				rem /= uint64(radix)
			}
		} else {
			for k := 0; k < chunkDigits; k++ {
				digits = append(digits, int64(rem%uint64(radix)))
				rem /= uint64(radix)
			}
		}
	}
	if len(digits) == 0 {
		digits = append(digits, 0)
	}
	return digits
}

// magToDigitsBig collects base-radix digits, least significant first, for
// radices wider than one limb.
func magToDigitsBig(mag []uint32, radix int64) []int64 {
	radixMag := magFromUint64(uint64(radix))
	cur := mag
	var digits []int64
	for len(cur) > 0 {
		q, r := magDivMod(cur, radixMag)
		var rv uint64
		for i := len(r) - 1; i >= 0; i-- {
			rv = rv<<limbBits | uint64(r[i])
		}
		digits = append(digits, int64(rv))
		cur = q
	}
	if len(digits) == 0 {
		digits = append(digits, 0)
	}
	return digits
}

// reverseDigits flips a digit slice in place, turning least significant
// first collection order into the most significant first output order.
func reverseDigits(d []int64) {
	for i, j := 0, len(d)-1; i < j; i, j = i+1, j-1 {
		d[j], d[i] = d[i], d[j]
	}
}
