package jh

import (
	"io"

	"github.com/pkg/errors"
)

const (
	readBufferSize = 32 * 1024
	maxEmptyReads  = 8
)

var _ io.ReaderFrom = (*Digest)(nil)

// ReadFrom absorbs r until io.EOF and returns the number of bytes read. It
// makes io.Copy(d, r) read directly into the digest.
func (d *Digest) ReadFrom(r io.Reader) (int64, error) {
	if d.tailBits > 0 {
		panic("jh: ReadFrom after a partial trailing byte")
	}
	buf := make([]byte, readBufferSize)
	var total int64
	emptyReads := 0
	for {
		n, err := r.Read(buf)
		if n > 0 {
			emptyReads = 0
			d.absorb(buf[:n])
			total += int64(n)
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, errors.Wrapf(err, "jh: read after %d bytes", total)
		}
		if n == 0 {
			emptyReads++
			if emptyReads >= maxEmptyReads {
				return total, errors.WithStack(io.ErrNoProgress)
			}
		}
	}
}

// SumReader hashes everything r yields with d and returns the digest. d is
// reset afterwards, also on error.
func SumReader(d *Digest, r io.Reader) ([]byte, error) {
	if _, err := d.ReadFrom(r); err != nil {
		d.Reset()
		return nil, err
	}
	return d.Final(nil), nil
}
