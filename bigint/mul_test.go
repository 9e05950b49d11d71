package bigint

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func TestMul_Table(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b, want string
	}{
		{"0", "123456", "0"},
		{"123456", "0", "0"},
		{"1", "987654321", "987654321"},
		{"-1", "987654321", "-987654321"},
		{"-3", "-4", "12"},
		{"4294967296", "4294967296", "18446744073709551616"},
		{"99999999999999999999", "99999999999999999999", "9999999999999999999800000000000000000001"},
		{"-123456789", "987654321", "-121932631112635269"},
	}

	for _, tc := range cases {
		a, b := mustParse(t, tc.a), mustParse(t, tc.b)
		if got := a.Mul(b).String(); got != tc.want {
			t.Errorf("Mul(%s, %s) = %s, want %s", tc.a, tc.b, got, tc.want)
		}
		// Commutativity on every table entry.
		if got := b.Mul(a).String(); got != tc.want {
			t.Errorf("Mul(%s, %s) = %s, want %s", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestSquare_MatchesMul(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"0", "1", "-1", "999999999",
		"123456789012345678901234567890",
		"-340282366920938463463374607431768211455",
	}
	for _, in := range inputs {
		a := mustParse(t, in)
		if sq, mul := a.Square(), a.Mul(a); !sq.Equal(mul) {
			t.Errorf("Square(%s) = %s, Mul = %s", in, sq, mul)
		}
	}
}

// randomMag builds a random canonical magnitude of exactly n limbs.
func randomMag(rng *rand.Rand, n int) []uint32 {
	mag := make([]uint32, n)
	for i := range mag {
		mag[i] = uint32(rng.Uint64())
	}
	if mag[n-1] == 0 {
		mag[n-1] = 1
	}
	return mag
}

func TestKaratsuba_MatchesSchoolbook(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(42, 0))
	sizes := []int{karatsubaThreshold, karatsubaThreshold + 1, 100, 257}
	for _, n := range sizes {
		a := randomMag(rng, n)
		b := randomMag(rng, n+3)
		want := basicMul(a, b)
		got := karatsubaMul(a, b, false)
		if magCmp(got, want) != 0 {
			t.Errorf("size %d: karatsuba disagrees with schoolbook", n)
		}
		gotPar := karatsubaMul(a, b, true)
		if magCmp(gotPar, want) != 0 {
			t.Errorf("size %d: parallel karatsuba disagrees with schoolbook", n)
		}
	}
}

func TestSqr_MatchesSchoolbookMul(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 0))
	for _, n := range []int{1, 2, 5, karatsubaThreshold + 5, 200} {
		a := randomMag(rng, n)
		if got, want := magSqr(a), basicMul(a, a); magCmp(got, want) != 0 {
			t.Errorf("size %d: magSqr disagrees with basicMul", n)
		}
	}
}

func TestMul_LargeKnownValue(t *testing.T) {
	t.Parallel()

	// (10^100) * (10^100) = 10^200 exercises the multi-limb carry chain
	// with an independently checkable result.
	a := mustParse(t, "1"+strings.Repeat("0", 100))
	want := "1" + strings.Repeat("0", 200)
	if got := a.Mul(a).String(); got != want {
		t.Errorf("10^100 squared = %s", got)
	}
}
