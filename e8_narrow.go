package jh

// narrowState is the state split into 32-bit quarters. Lane i occupies
// words 4i..4i+3, most significant quarter first.
type narrowState [32]uint32

// narrowEngine runs E8 on 32-bit words with a single round loop, dispatching
// the swap layer on the round index modulo seven.
type narrowEngine struct{}

func (narrowEngine) permute(h *state, s *schedule) {
	var q narrowState
	q.load(h)
	g := 0
	for r := 0; r < s.full; r++ {
		q.substitute(r)
		q.mix()
		switch g {
		case 0:
			q.interleave(0x55555555, 1)
		case 1:
			q.interleave(0x33333333, 2)
		case 2:
			q.interleave(0x0f0f0f0f, 4)
		case 3:
			q.interleave(0x00ff00ff, 8)
		case 4:
			q.interleave(0x0000ffff, 16)
		case 5:
			q.swapQuarters()
		case 6:
			q.swapHalves()
		}
		if g++; g == 7 {
			g = 0
		}
	}
	if s.half {
		q.substitute(s.full)
	}
	q.store(h)
}

func (q *narrowState) load(h *state) {
	for i, w := range h {
		q[2*i] = uint32(w >> 32)
		q[2*i+1] = uint32(w)
	}
}

func (q *narrowState) store(h *state) {
	for i := range h {
		h[i] = uint64(q[2*i])<<32 | uint64(q[2*i+1])
	}
}

func (q *narrowState) substitute(r int) {
	c := &narrowConstants[r]
	for k := 0; k < 4; k++ {
		q[k], q[8+k], q[16+k], q[24+k] = sbox(q[k], q[8+k], q[16+k], q[24+k], c[k])
		q[4+k], q[12+k], q[20+k], q[28+k] = sbox(q[4+k], q[12+k], q[20+k], q[28+k], c[4+k])
	}
}

func (q *narrowState) mix() {
	for k := 0; k < 4; k++ {
		q[k], q[8+k], q[16+k], q[24+k], q[4+k], q[12+k], q[20+k], q[28+k] =
			linear(q[k], q[8+k], q[16+k], q[24+k], q[4+k], q[12+k], q[20+k], q[28+k])
	}
}

func (q *narrowState) interleave(mask uint32, n uint) {
	for i := 4; i < len(q); i += 8 {
		for k := i; k < i+4; k++ {
			q[k] = interleave(q[k], mask, n)
		}
	}
}

// swapQuarters exchanges the 32-bit halves of each 64-bit half of the odd
// lanes.
func (q *narrowState) swapQuarters() {
	for i := 4; i < len(q); i += 8 {
		q[i], q[i+1] = q[i+1], q[i]
		q[i+2], q[i+3] = q[i+3], q[i+2]
	}
}

func (q *narrowState) swapHalves() {
	for i := 4; i < len(q); i += 8 {
		q[i], q[i+2] = q[i+2], q[i]
		q[i+1], q[i+3] = q[i+3], q[i+1]
	}
}
