package kyber

import (
	"hash"
	"io"

	"golang.org/x/crypto/sha3"
)

// modernPrimitives is the SHA-3/SHAKE family. All methods hand out
// freshly constructed sponge states, so no call can observe another
// call's input.
type modernPrimitives struct{}

func (modernPrimitives) G() hash.Hash { return sha3.New512() }

func (modernPrimitives) H() hash.Hash { return sha3.New256() }

func (modernPrimitives) KDF() hash.Hash {
	return &shakeDigest{ShakeHash: sha3.NewShake256(), size: 32}
}

func (modernPrimitives) XOF(seed []byte, pos MatrixPosition) io.Reader {
	x := sha3.NewShake128()
	x.Write(seed)
	x.Write([]byte{pos.Row, pos.Col})
	return x
}

func (modernPrimitives) PRF(seed []byte, nonce byte, n int) []byte {
	x := sha3.NewShake256()
	x.Write(seed)
	x.Write([]byte{nonce})

	out := make([]byte, n)
	// SHAKE reads never fail
	io.ReadFull(x, out)
	return out
}

// shakeDigest adapts a SHAKE stream to a fixed-output hash.Hash, the
// shape the scheme logic consumes for KDF.
type shakeDigest struct {
	sha3.ShakeHash
	size int
}

func (d *shakeDigest) Size() int { return d.size }

func (d *shakeDigest) Sum(b []byte) []byte {
	// Read from a clone so the digest stays usable, matching hash.Hash
	// Sum semantics.
	clone := d.Clone()
	out := make([]byte, d.size)
	io.ReadFull(clone, out)
	return append(b, out...)
}
