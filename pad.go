package jh

import "encoding/binary"

// padding writes the JH padding for a message of blocks full blocks, ptr
// buffered bytes and n trailing bits (the top n bits of ub) into dst and
// returns it.
//
// A single 1 bit follows the message, then zero bits, then the message length
// in bits as a 128-bit big-endian integer. At least one full block of padding
// is always added: a block-aligned message gets exactly one block, anything
// else enough to reach the end of the following block.
func padding(dst *[2 * BlockSize]byte, ptr int, blocks uint64, ub byte, n uint) []byte {
	z := byte(0x80) >> n
	dst[0] = ub&-z | z
	numz := 111 - ptr
	if ptr == 0 && n == 0 {
		numz = 47
	}
	clear(dst[1 : numz+1])
	binary.BigEndian.PutUint64(dst[numz+1:], blocks>>55)
	binary.BigEndian.PutUint64(dst[numz+9:], blocks<<9+uint64(ptr)<<3+uint64(n))
	return dst[:numz+17]
}

// finish pads and absorbs the end of the message and appends the digest to b.
// The receiver is left in a finalized state; callers reset it or discard it.
func (d *Digest) finish(b []byte) []byte {
	var pad [2 * BlockSize]byte
	d.absorb(padding(&pad, d.ptr, d.blocks, d.tail, d.tailBits))

	// The digest is the tail of the second half of the state.
	var out [Size512]byte
	for i, w := range d.h[8:] {
		binary.BigEndian.PutUint64(out[8*i:], w)
	}
	return append(b, out[Size512-d.v.size:]...)
}
