package bigint

import "testing"

func TestAdd_Table(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b, want string
	}{
		{"0", "0", "0"},
		{"0", "5", "5"},
		{"5", "0", "5"},
		{"2", "3", "5"},
		{"-2", "-3", "-5"},
		{"5", "-3", "2"},
		{"3", "-5", "-2"},
		{"-5", "5", "0"},
		{"999999999999999999999999", "1", "1000000000000000000000000"},
		{"4294967295", "1", "4294967296"}, // limb carry boundary
		{"18446744073709551615", "1", "18446744073709551616"},
		{"-1000000000000000000000000", "999999999999999999999999", "-1"},
	}

	for _, tc := range cases {
		a, b := mustParse(t, tc.a), mustParse(t, tc.b)
		if got := a.Add(b).String(); got != tc.want {
			t.Errorf("Add(%s, %s) = %s, want %s", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSub_Table(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b, want string
	}{
		{"0", "0", "0"},
		{"5", "3", "2"},
		{"3", "5", "-2"},
		{"-3", "-5", "2"},
		{"1000000000000000000000000", "1", "999999999999999999999999"},
		{"4294967296", "1", "4294967295"}, // limb borrow boundary
		{"0", "7", "-7"},
	}

	for _, tc := range cases {
		a, b := mustParse(t, tc.a), mustParse(t, tc.b)
		if got := a.Sub(b).String(); got != tc.want {
			t.Errorf("Sub(%s, %s) = %s, want %s", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestAdd_ResultIsCanonical(t *testing.T) {
	t.Parallel()

	// Exact cancellation must produce the canonical zero, not a zero-length
	// negative or a magnitude with leftover limbs.
	a := mustParse(t, "340282366920938463463374607431768211456")
	z := a.Add(a.Neg())
	if !z.IsZero() || z.Sign() != Zero || len(z.mag) != 0 {
		t.Errorf("a + (-a) = %#v, want canonical zero", z)
	}
}

func TestAdd_DoesNotMutateOperands(t *testing.T) {
	t.Parallel()

	a := mustParse(t, "123456789012345678901234567890")
	b := mustParse(t, "987654321098765432109876543210")
	before := a.String()
	_ = a.Add(b)
	_ = a.Sub(b)
	_ = a.Mul(b)
	if a.String() != before {
		t.Errorf("operand mutated: %s", a)
	}
}
