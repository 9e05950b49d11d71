package bigint

import (
	"errors"
	"testing"
)

func TestBitwise_MatchesInt64Semantics(t *testing.T) {
	t.Parallel()

	// The infinite-precision two's-complement view must agree with the
	// host's two's complement wherever both are defined.
	values := []int64{0, 1, -1, 2, -2, 7, -7, 255, -256, 4096, -4097,
		0x7FFFFFFF, -0x80000000, 0x123456789A, -0x123456789A}

	for _, x := range values {
		for _, y := range values {
			a, b := FromInt64(x), FromInt64(y)
			if got, want := a.And(b), FromInt64(x&y); !got.Equal(want) {
				t.Errorf("And(%d, %d) = %s, want %s", x, y, got, want)
			}
			if got, want := a.Or(b), FromInt64(x|y); !got.Equal(want) {
				t.Errorf("Or(%d, %d) = %s, want %s", x, y, got, want)
			}
			if got, want := a.Xor(b), FromInt64(x^y); !got.Equal(want) {
				t.Errorf("Xor(%d, %d) = %s, want %s", x, y, got, want)
			}
		}
		if got, want := FromInt64(x).Not(), FromInt64(^x); !got.Equal(want) {
			t.Errorf("Not(%d) = %s, want %s", x, got, want)
		}
	}
}

func TestBitwise_WideOperands(t *testing.T) {
	t.Parallel()

	a := mustParse(t, "340282366920938463463374607431768211455") // 2^128 - 1
	b := mustParse(t, "18446744073709551616")                    // 2^64

	if got := a.And(b); !got.Equal(b) {
		t.Errorf("And = %s, want %s", got, b)
	}
	if got := a.Or(b); !got.Equal(a) {
		t.Errorf("Or = %s, want %s", got, a)
	}
	if got, want := a.Xor(a), (Int{}); !got.Equal(want) {
		t.Errorf("Xor(a, a) = %s, want 0", got)
	}
	// Not(a) = -(a + 1) in the two's-complement view.
	if got, want := a.Not(), a.Add(intOne).Neg(); !got.Equal(want) {
		t.Errorf("Not = %s, want %s", got, want)
	}
}

func TestShiftLeft(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		n    int64
		want string
	}{
		{"1", 10, "1024"},
		{"1", 0, "1"},
		{"1", 32, "4294967296"},
		{"1", 64, "18446744073709551616"},
		{"-3", 2, "-12"},
		{"5", 100, "6338253001141147007483516026880"},
		{"1024", -10, "1"}, // negative count shifts right
		{"0", 1000, "0"},
	}

	for _, tc := range cases {
		in := mustParse(t, tc.in)
		got, err := in.ShiftLeft(tc.n)
		if err != nil {
			t.Errorf("ShiftLeft(%s, %d) error: %v", tc.in, tc.n, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("ShiftLeft(%s, %d) = %s, want %s", tc.in, tc.n, got, tc.want)
		}
	}
}

func TestShiftRight(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		n    int64
		want string
	}{
		{"1024", 10, "1"},
		{"1025", 10, "1"},
		{"7", 1, "3"},
		{"-7", 1, "-4"}, // arithmetic shift floors
		{"-8", 1, "-4"},
		{"-8", 2, "-2"},
		{"-1", 5, "-1"},
		{"1", 1, "0"},
		{"18446744073709551616", 64, "1"},
		{"3", -4, "48"}, // negative count shifts left
	}

	for _, tc := range cases {
		in := mustParse(t, tc.in)
		got, err := in.ShiftRight(tc.n)
		if err != nil {
			t.Errorf("ShiftRight(%s, %d) error: %v", tc.in, tc.n, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("ShiftRight(%s, %d) = %s, want %s", tc.in, tc.n, got, tc.want)
		}
	}
}

func TestShift_RangeError(t *testing.T) {
	t.Parallel()

	a := mustParse(t, "1")
	var rangeErr ShiftRangeError
	if _, err := a.ShiftLeft(MaxShiftCount + 1); !errors.As(err, &rangeErr) {
		t.Errorf("ShiftLeft beyond bound error = %v, want ShiftRangeError", err)
	}
	if _, err := a.ShiftRight(-(MaxShiftCount + 1)); !errors.As(err, &rangeErr) {
		t.Errorf("ShiftRight beyond bound error = %v, want ShiftRangeError", err)
	}
	if _, err := a.ShiftRight(MaxShiftCount); err != nil {
		t.Errorf("ShiftRight at bound should succeed, got %v", err)
	}
}

func TestShift_Inverse(t *testing.T) {
	t.Parallel()

	a := mustParse(t, "123456789012345678901234567890")
	left, err := a.ShiftLeft(137)
	if err != nil {
		t.Fatalf("ShiftLeft error: %v", err)
	}
	back, err := left.ShiftRight(137)
	if err != nil {
		t.Fatalf("ShiftRight error: %v", err)
	}
	if !back.Equal(a) {
		t.Errorf("shift round-trip = %s, want %s", back, a)
	}
}
