package bigint

import (
	"errors"
	"math"
	"testing"
)

func TestFrom_AcceptedForms(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   any
		want string
	}{
		{"Int passthrough", FromInt64(42), "42"},
		{"decimal string", "-123456789012345678901234567890", "-123456789012345678901234567890"},
		{"int", int(-7), "-7"},
		{"int8", int8(-128), "-128"},
		{"int16", int16(32767), "32767"},
		{"int32", int32(-2147483648), "-2147483648"},
		{"int64 min", int64(math.MinInt64), "-9223372036854775808"},
		{"uint", uint(7), "7"},
		{"uint8", uint8(255), "255"},
		{"uint16", uint16(65535), "65535"},
		{"uint32", uint32(4294967295), "4294967295"},
		{"uint64 max", uint64(math.MaxUint64), "18446744073709551615"},
		{"integral float64", float64(1e15), "1000000000000000"},
		{"negative integral float64", float64(-42), "-42"},
		{"integral float32", float32(1024), "1024"},
		{"float zero", float64(0), "0"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := From(tc.in)
			if err != nil {
				t.Fatalf("From(%v) error: %v", tc.in, err)
			}
			if got.String() != tc.want {
				t.Errorf("From(%v) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestFrom_Rejections(t *testing.T) {
	t.Parallel()

	var coerceErr CoercionError
	rejected := []any{
		3.5,
		math.NaN(),
		math.Inf(1),
		math.Inf(-1),
		float64(1e300), // integral but outside the exact conversion range
		true,
		[]byte("42"),
		nil,
	}
	for _, in := range rejected {
		if _, err := From(in); !errors.As(err, &coerceErr) {
			t.Errorf("From(%v) error = %v, want CoercionError", in, err)
		}
	}

	var digitErr InvalidDigitError
	if _, err := From("12ab"); !errors.As(err, &digitErr) {
		t.Errorf("From(\"12ab\") error = %v, want InvalidDigitError", err)
	}
}
