package jh

// wideEngine runs E8 on 64-bit words with each group of seven rounds
// unrolled, so every swap layer is a direct call.
type wideEngine struct{}

func (wideEngine) permute(h *state, s *schedule) {
	r := 0
	for ; r+7 <= s.full; r += 7 {
		wideRound(h, r)
		wideInterleave(h, 0x5555555555555555, 1)
		wideRound(h, r+1)
		wideInterleave(h, 0x3333333333333333, 2)
		wideRound(h, r+2)
		wideInterleave(h, 0x0f0f0f0f0f0f0f0f, 4)
		wideRound(h, r+3)
		wideInterleave(h, 0x00ff00ff00ff00ff, 8)
		wideRound(h, r+4)
		wideInterleave(h, 0x0000ffff0000ffff, 16)
		wideRound(h, r+5)
		wideInterleave(h, 0x00000000ffffffff, 32)
		wideRound(h, r+6)
		wideSwapHalves(h)
	}
	for ; r < s.full; r++ {
		wideRound(h, r)
		wideSwap(h, r%7)
	}
	if s.half {
		wideSubstitute(h, s.full)
	}
}

func wideRound(h *state, r int) {
	wideSubstitute(h, r)
	h[0], h[4], h[8], h[12], h[2], h[6], h[10], h[14] =
		linear(h[0], h[4], h[8], h[12], h[2], h[6], h[10], h[14])
	h[1], h[5], h[9], h[13], h[3], h[7], h[11], h[15] =
		linear(h[1], h[5], h[9], h[13], h[3], h[7], h[11], h[15])
}

func wideSubstitute(h *state, r int) {
	c := &roundConstants[r]
	h[0], h[4], h[8], h[12] = sbox(h[0], h[4], h[8], h[12], c[0])
	h[1], h[5], h[9], h[13] = sbox(h[1], h[5], h[9], h[13], c[1])
	h[2], h[6], h[10], h[14] = sbox(h[2], h[6], h[10], h[14], c[2])
	h[3], h[7], h[11], h[15] = sbox(h[3], h[7], h[11], h[15], c[3])
}

// wideSwap applies swap layer g, for rounds outside a whole group of seven.
func wideSwap(h *state, g int) {
	switch g {
	case 0:
		wideInterleave(h, 0x5555555555555555, 1)
	case 1:
		wideInterleave(h, 0x3333333333333333, 2)
	case 2:
		wideInterleave(h, 0x0f0f0f0f0f0f0f0f, 4)
	case 3:
		wideInterleave(h, 0x00ff00ff00ff00ff, 8)
	case 4:
		wideInterleave(h, 0x0000ffff0000ffff, 16)
	case 5:
		wideInterleave(h, 0x00000000ffffffff, 32)
	case 6:
		wideSwapHalves(h)
	}
}

// wideInterleave applies a swap layer to the odd lanes.
func wideInterleave(h *state, mask uint64, n uint) {
	for i := 2; i < len(h); i += 4 {
		h[i] = interleave(h[i], mask, n)
		h[i+1] = interleave(h[i+1], mask, n)
	}
}

func wideSwapHalves(h *state) {
	for i := 2; i < len(h); i += 4 {
		h[i], h[i+1] = h[i+1], h[i]
	}
}
