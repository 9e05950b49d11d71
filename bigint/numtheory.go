package bigint

import "math/rand/v2"

// GCD returns the greatest common divisor of a and b, computed by the
// Euclidean algorithm on magnitudes. The result is never negative, and
// GCD(0, 0) is 0.
func (a Int) GCD(b Int) Int {
	x, y := a.Abs(), b.Abs()
	for !y.IsZero() {
		r, err := x.Mod(y)
		if err != nil {
			panic("bigint: internal error: mod by non-zero failed")
		}
		x, y = y, r.Abs()
	}
	return x
}

// LCM returns the least common multiple of a and b, |a*b| / gcd(a, b).
// LCM of zero and anything is zero.
func (a Int) LCM(b Int) Int {
	if a.sign == Zero || b.sign == Zero {
		return Int{}
	}
	g := a.GCD(b)
	q, err := a.Abs().Div(g)
	if err != nil {
		panic("bigint: internal error: gcd of non-zero operands is zero")
	}
	return q.Mul(b.Abs())
}

// Source supplies uniformly distributed random words for witness selection
// and range generation. Implementations need not be cryptographically
// secure; they must only be uniform.
type Source interface {
	// Uint64 returns a uniformly distributed random word.
	Uint64() uint64
}

// defaultSource draws from the shared math/rand/v2 generator, which is
// safe for concurrent use.
type defaultSource struct{}

func (defaultSource) Uint64() uint64 { return rand.Uint64() }

// DefaultSource returns the randomness source used when a caller passes a
// nil Source.
func DefaultSource() Source { return defaultSource{} }

// smallPrimes is the trial-division sieve applied before any Miller-Rabin
// round. It eliminates the bulk of composites at the cost of one word
// division each.
var smallPrimes = []uint32{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61,
	67, 71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137,
	139, 149, 151, 157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211,
	223, 227, 229, 233, 239, 241, 251,
}

// deterministicWitnessValues make Miller-Rabin deterministic for every
// value below 3.3 * 10^24, which covers all magnitudes that fit in two
// limbs.
var deterministicWitnessValues = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// IsPrime reports whether a is prime, treating the magnitude only: a
// negative input is prime exactly when its absolute value is.
//
// Small magnitudes are decided exactly, by trial division and a
// deterministic witness set; larger magnitudes escalate to probabilistic
// Miller-Rabin with DefaultProbablePrimeRounds random witnesses.
func (a Int) IsPrime() bool {
	n := a.Abs()
	switch basicPrimeCheck(n) {
	case primeYes:
		return true
	case primeNo:
		return false
	}
	if len(n.mag) <= 2 {
		witnesses := make([]Int, len(deterministicWitnessValues))
		for i, w := range deterministicWitnessValues {
			witnesses[i] = FromInt64(w)
		}
		return millerRabin(n, witnesses)
	}
	return millerRabin(n, randomWitnesses(n, DefaultProbablePrimeRounds, nil))
}

// IsProbablePrime reports whether a is prime with a false-positive
// probability of at most 4^-DefaultProbablePrimeRounds. Witnesses are
// drawn from src, or from DefaultSource when src is nil. Known composites
// always report false.
func (a Int) IsProbablePrime(src Source) bool {
	return a.ProbablyPrime(DefaultProbablePrimeRounds, src)
}

// ProbablyPrime is IsProbablePrime with a caller-chosen round count. The
// false-positive probability is at most 4^-rounds.
func (a Int) ProbablyPrime(rounds int, src Source) bool {
	n := a.Abs()
	switch basicPrimeCheck(n) {
	case primeYes:
		return true
	case primeNo:
		return false
	}
	return millerRabin(n, randomWitnesses(n, rounds, src))
}

// RandBetween returns a uniformly distributed value in [low, high],
// swapping the bounds when low > high. The draw generates random limb
// vectors of the range's width and rejects out-of-range values, so every
// value in the interval is equally likely. Witness draws come from src, or
// DefaultSource when src is nil.
func RandBetween(low, high Int, src Source) Int {
	if low.Cmp(high) == GreaterThan {
		low, high = high, low
	}
	span := high.Sub(low)
	return low.Add(randAtMost(span, src))
}

// primeVerdict is the outcome of the cheap pre-checks.
type primeVerdict int

const (
	primeNo primeVerdict = iota
	primeYes
	primeUnknown
)

// basicPrimeCheck decides primality for trivial cases and sieves by
// smallPrimes. n must be non-negative.
func basicPrimeCheck(n Int) primeVerdict {
	if len(n.mag) == 0 || n.IsUnit() {
		return primeNo
	}
	for _, p := range smallPrimes {
		if len(n.mag) == 1 && n.mag[0] == p {
			return primeYes
		}
		if magModWord(n.mag, p) == 0 {
			return primeNo
		}
	}
	return primeUnknown
}

// millerRabin runs one Miller-Rabin round per witness against odd n > 2.
// It returns false as soon as any witness proves n composite.
func millerRabin(n Int, witnesses []Int) bool {
	nMinus1 := n.Sub(intOne)

	// n - 1 = d * 2^r with d odd.
	d := nMinus1
	r := 0
	for d.IsEven() {
		d = makeInt(Positive, shiftRightBits(d.mag, 1))
		r++
	}

	for _, w := range witnesses {
		x, err := w.Mod(n)
		if err != nil {
			return false
		}
		if x.IsZero() || x.IsUnit() || x.Equal(nMinus1) {
			continue
		}
		if x, err = x.ModPow(d, n); err != nil {
			return false
		}
		if x.IsUnit() || x.Equal(nMinus1) {
			continue
		}
		composite := true
		for i := 0; i < r-1; i++ {
			x = x.Square()
			if x, err = x.Mod(n); err != nil {
				return false
			}
			if x.Equal(nMinus1) {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}
	return true
}

// randomWitnesses draws count witnesses in [2, n-2]. The pre-checks
// guarantee n is odd and above every small prime, so the interval is
// never empty.
func randomWitnesses(n Int, count int, src Source) []Int {
	span := n.Sub(FromInt64(4))
	witnesses := make([]Int, count)
	for i := range witnesses {
		witnesses[i] = randAtMost(span, src).Add(intTwo)
	}
	return witnesses
}

// randAtMost returns a uniform value in [0, limit] by drawing limb vectors
// of the limit's bit width and rejecting draws above it. Each draw
// succeeds with probability above one half, so the expected number of
// attempts is below two.
func randAtMost(limit Int, src Source) Int {
	if limit.sign == Zero {
		return Int{}
	}
	if src == nil {
		src = DefaultSource()
	}
	bl := limit.BitLen()
	limbs := (bl + limbBits - 1) / limbBits
	topMask := ^uint32(0)
	if rem := uint(bl % limbBits); rem != 0 {
		topMask = 1<<rem - 1
	}
	for {
		mag := make([]uint32, limbs)
		for i := 0; i < limbs; i += 2 {
			v := src.Uint64()
			mag[i] = uint32(v)
			if i+1 < limbs {
				mag[i+1] = uint32(v >> limbBits)
			}
		}
		mag[limbs-1] &= topMask
		v := makeInt(Positive, trimMag(mag))
		if v.CmpAbs(limit) != GreaterThan {
			return v
		}
	}
}

// magModWord returns the remainder of a magnitude divided by a single
// non-zero limb, without materializing the quotient.
func magModWord(mag []uint32, d uint32) uint32 {
	var rem uint64
	for i := len(mag) - 1; i >= 0; i-- {
		rem = (rem<<limbBits | uint64(mag[i])) % uint64(d)
	}
	return uint32(rem)
}
