package jh

import "encoding/binary"

// compress is the compression function F8: the block is XORed into the first
// half of the state, E8 is applied, and the block is XORed into the second
// half.
func compress(h *state, block *[BlockSize]byte, e permutation, s *schedule) {
	var m [8]uint64
	for i := range m {
		m[i] = binary.BigEndian.Uint64(block[8*i:])
		h[i] ^= m[i]
	}
	e.permute(h, s)
	for i, w := range m {
		h[8+i] ^= w
	}
}
