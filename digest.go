package jh

import "hash"

// Digest is a streaming JH hash. It holds the 1024-bit chaining state, a
// partial message block and the number of blocks absorbed so far.
//
// A Digest is not safe for concurrent use. The zero value computes JH-256;
// other variants come from New224, New384, New512 or the Legacy constructors.
type Digest struct {
	h      state
	buf    [BlockSize]byte
	ptr    int    // bytes buffered in buf, always < BlockSize between calls
	blocks uint64 // blocks compressed, padding included

	// Trailing bits of a message that does not end on a byte boundary:
	// the top tailBits bits of tail.
	tail     byte
	tailBits uint

	v *variant
	e permutation
}

var _ hash.Hash = (*Digest)(nil)

func newDigest(v *variant, e permutation) Digest {
	return Digest{h: *v.iv, v: v, e: e}
}

func alloc(v *variant) *Digest {
	d := newDigest(v, defaultEngine)
	return &d
}

// New224 returns a Digest computing JH-224.
func New224() *Digest { return alloc(&jh224) }

// New256 returns a Digest computing JH-256.
func New256() *Digest { return alloc(&jh256) }

// New384 returns a Digest computing JH-384.
func New384() *Digest { return alloc(&jh384) }

// New512 returns a Digest computing JH-512.
func New512() *Digest { return alloc(&jh512) }

// NewLegacy224 returns a Digest computing the 35.5-round JH-224.
func NewLegacy224() *Digest { return alloc(&legacyJH224) }

// NewLegacy256 returns a Digest computing the 35.5-round JH-256.
func NewLegacy256() *Digest { return alloc(&legacyJH256) }

// NewLegacy384 returns a Digest computing the 35.5-round JH-384.
func NewLegacy384() *Digest { return alloc(&legacyJH384) }

// NewLegacy512 returns a Digest computing the 35.5-round JH-512.
func NewLegacy512() *Digest { return alloc(&legacyJH512) }

// Reset restores the initial state of the digest's variant.
func (d *Digest) Reset() {
	if d.v == nil {
		d.v, d.e = &jh256, defaultEngine
	}
	d.h = *d.v.iv
	d.ptr = 0
	d.blocks = 0
	d.tail = 0
	d.tailBits = 0
}

// Size returns the digest length in bytes.
func (d *Digest) Size() int {
	if d.v == nil {
		return Size256
	}
	return d.v.size
}

// BlockSize returns the block size of the compression function.
func (d *Digest) BlockSize() int { return BlockSize }

// Write absorbs p. It never returns an error.
//
// Write panics if a partial trailing byte has already been supplied with
// WriteBits, since no data may follow the end of the message.
func (d *Digest) Write(p []byte) (int, error) {
	if d.tailBits > 0 && len(p) > 0 {
		panic("jh: Write after a partial trailing byte")
	}
	d.absorb(p)
	return len(p), nil
}

// WriteBits absorbs p followed by the n most significant bits of ub, for
// messages whose length is not a multiple of eight bits. n must be in [0, 7];
// with n == 0 it is equivalent to Write(p). Once trailing bits have been
// supplied only Final or FinalBits may follow (or Sum, or Reset).
func (d *Digest) WriteBits(p []byte, ub byte, n uint) {
	if n > 7 {
		panic("jh: trailing bit count out of range")
	}
	if d.tailBits > 0 && (len(p) > 0 || n > 0) {
		panic("jh: WriteBits after a partial trailing byte")
	}
	d.absorb(p)
	if n > 0 {
		d.tail, d.tailBits = ub, n
	}
}

// absorb buffers p and compresses every block it completes.
func (d *Digest) absorb(p []byte) {
	if d.v == nil {
		d.Reset()
	}
	if d.ptr+len(p) < BlockSize {
		d.ptr += copy(d.buf[d.ptr:], p)
		return
	}
	if d.ptr > 0 {
		n := copy(d.buf[d.ptr:], p)
		d.block(&d.buf)
		p = p[n:]
		d.ptr = 0
	}
	for len(p) >= BlockSize {
		d.block((*[BlockSize]byte)(p))
		p = p[BlockSize:]
	}
	d.ptr = copy(d.buf[:], p)
}

func (d *Digest) block(b *[BlockSize]byte) {
	compress(&d.h, b, d.e, d.v.schedule)
	d.blocks++
}

// Sum appends the digest of the data written so far to b. The running state
// is left unchanged, so writing may continue afterwards.
func (d *Digest) Sum(b []byte) []byte {
	d0 := *d
	return d0.finish(b)
}

// Final appends the digest of the message to b and resets d, which is then
// ready to hash a new message.
func (d *Digest) Final(b []byte) []byte {
	b = d.finish(b)
	d.Reset()
	return b
}

// FinalBits is WriteBits(nil, ub, n) followed by Final(b).
func (d *Digest) FinalBits(b []byte, ub byte, n uint) []byte {
	d.WriteBits(nil, ub, n)
	return d.Final(b)
}
