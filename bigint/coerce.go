package bigint

import "fortio.org/safecast"

// From coerces a number-like value into an Int. This is the single point
// where the discriminated argument forms accepted at the API edge are
// normalized; every operation past this boundary works on canonical Int
// values only.
//
// Accepted forms:
//   - Int: returned unchanged.
//   - string: parsed as a decimal numeral.
//   - any built-in signed or unsigned integer type: converted exactly.
//   - float64, float32: accepted only when the value is integral and
//     representable exactly; anything else is a CoercionError.
func From(v any) (Int, error) {
	switch x := v.(type) {
	case Int:
		return x, nil
	case string:
		return FromString(x)
	case int:
		return FromInt64(int64(x)), nil
	case int8:
		return FromInt64(int64(x)), nil
	case int16:
		return FromInt64(int64(x)), nil
	case int32:
		return FromInt64(int64(x)), nil
	case int64:
		return FromInt64(x), nil
	case uint:
		return FromUint64(uint64(x)), nil
	case uint8:
		return FromUint64(uint64(x)), nil
	case uint16:
		return FromUint64(uint64(x)), nil
	case uint32:
		return FromUint64(uint64(x)), nil
	case uint64:
		return FromUint64(x), nil
	case float32:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	default:
		return Int{}, CoercionError{Value: v}
	}
}

// fromFloat accepts a float only when it carries an integral value that
// converts without loss.
func fromFloat(f float64) (Int, error) {
	i, err := safecast.Convert[int64](f)
	if err != nil {
		return Int{}, CoercionError{Value: f}
	}
	return FromInt64(i), nil
}
