// Package jh implements the JH family of hash functions (JH-224, JH-256,
// JH-384 and JH-512) from the SHA-3 competition.
//
// The default constructors and Sum functions implement JH as it stood in the
// final round of the competition (42 rounds of E8) and match its published
// test vectors. The Legacy constructors implement the earlier 35.5-round JH
// with its own initial values, for interoperating with data hashed by
// implementations of that version.
//
// E8 is computed in bitslice form on 64-bit words. Builds for 32-bit targets,
// or with the jh32 build tag, use a 32-bit word engine with identical output.
//
// Messages need not be a whole number of bytes: see Digest.WriteBits and
// Digest.FinalBits.
package jh

const (
	// Digest sizes, in bytes.
	Size224 = 28
	Size256 = 32
	Size384 = 48
	Size512 = 64

	// BlockSize is the size of a message block absorbed by the compression
	// function, in bytes.
	BlockSize = 64
)

// Sum224 returns the JH-224 digest of data.
func Sum224(data []byte) [Size224]byte {
	d := newDigest(&jh224, defaultEngine)
	d.absorb(data)
	var out [Size224]byte
	d.finish(out[:0])
	return out
}

// Sum256 returns the JH-256 digest of data.
func Sum256(data []byte) [Size256]byte {
	d := newDigest(&jh256, defaultEngine)
	d.absorb(data)
	var out [Size256]byte
	d.finish(out[:0])
	return out
}

// Sum384 returns the JH-384 digest of data.
func Sum384(data []byte) [Size384]byte {
	d := newDigest(&jh384, defaultEngine)
	d.absorb(data)
	var out [Size384]byte
	d.finish(out[:0])
	return out
}

// Sum512 returns the JH-512 digest of data.
func Sum512(data []byte) [Size512]byte {
	d := newDigest(&jh512, defaultEngine)
	d.absorb(data)
	var out [Size512]byte
	d.finish(out[:0])
	return out
}
