package jh

// The 1024-bit state is held as sixteen big-endian 64-bit words. Lane i
// (h0..h7 in the JH paper) is the pair of words 2i (high) and 2i+1 (low).
// The bitslice layers below act on the "even" lanes h0,h2,h4,h6 and the
// "odd" lanes h1,h3,h5,h7; every bit position of a quadruple of lanes is one
// 4-bit S-box input.

// rounds is the number of round-constant tuples, one per round of the final
// schedule.
const rounds = 42

type state [16]uint64

// schedule selects the round structure of E8.
type schedule struct {
	// full rounds of substitution, linear mixing and lane swapping.
	full int
	// half adds one substitution-only round using constant tuple full.
	half bool
}

var (
	// finalSchedule is JH as standardised at the end of the SHA-3
	// competition: 42 full rounds.
	finalSchedule = schedule{full: 42}
	// legacySchedule is the 35.5-round JH from the second competition round.
	legacySchedule = schedule{full: 35, half: true}
)

// permutation is an implementation of E8. Implementations differ in word
// width and unrolling only; their output is identical.
type permutation interface {
	permute(h *state, s *schedule)
}

type word interface {
	~uint32 | ~uint64
}

// sbox runs the two JH S-boxes on every bit position of x0..x3 at once; a set
// bit of c selects S1 for that position, a clear bit S0.
func sbox[W word](x0, x1, x2, x3, c W) (W, W, W, W) {
	x3 = ^x3
	x0 ^= c &^ x2
	t := c ^ (x0 & x1)
	x0 ^= x2 & x3
	x3 ^= ^x1 & x2
	x1 ^= x0 & x2
	x2 ^= x0 &^ x3
	x0 ^= x1 | x3
	x3 ^= x1 & x2
	x1 ^= t & x0
	x2 ^= t
	return x0, x1, x2, x3
}

// linear is the MDS layer L, mixing the even quadruple x0..x3 with the odd
// quadruple x4..x7.
func linear[W word](x0, x1, x2, x3, x4, x5, x6, x7 W) (W, W, W, W, W, W, W, W) {
	x4 ^= x1
	x5 ^= x2
	x6 ^= x3 ^ x0
	x7 ^= x0
	x0 ^= x5
	x1 ^= x6
	x2 ^= x7 ^ x4
	x3 ^= x4
	return x0, x1, x2, x3, x4, x5, x6, x7
}

// interleave swaps every pair of adjacent n-bit groups of x; mask selects the
// low group of each pair.
func interleave[W word](x, mask W, n uint) W {
	t := (x & mask) << n
	return (x>>n)&mask | t
}
