package bigint

// ─────────────────────────────────────────────────────────────────────────────
// Tuning Constants
// ─────────────────────────────────────────────────────────────────────────────
//
// These constants control algorithm selection inside the engine. They change
// performance only; every algorithm choice produces identical results.

const (
	// karatsubaThreshold is the limb count above which multiplication
	// switches from the schoolbook convolution to Karatsuba splitting.
	//
	// Below this size the O(n^2) schoolbook loop wins on constant factors;
	// above it the O(n^1.585) recursion pays for its extra additions.
	karatsubaThreshold = 40

	// parallelThreshold is the limb count above which the three Karatsuba
	// branches are evaluated on separate goroutines. Goroutine overhead
	// swamps the gain for smaller operands.
	parallelThreshold = 4096

	// MaxShiftCount bounds the magnitude of a bit-shift count. Counts
	// beyond this are rejected with ShiftRangeError rather than attempted.
	// The bound matches the largest integer exactly representable in an
	// IEEE 754 double (2^53 - 1), the safe-integer range of the hosts the
	// original callers run on.
	MaxShiftCount = 1<<53 - 1

	// DefaultProbablePrimeRounds is the Miller-Rabin round count used by
	// IsProbablePrime and by IsPrime above the deterministic range. Each
	// round has a false-positive probability of at most 1/4, so 20 rounds
	// bound the composite-accepted probability by 4^-20.
	DefaultProbablePrimeRounds = 20

	// limbBits is the width of one magnitude limb.
	limbBits = 32
)
