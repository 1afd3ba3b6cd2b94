package kyber

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"io"
)

// ninetiesPrimitives is the legacy family built from pre-SHA-3
// primitives: SHA-2 hashes and AES-256 counter-mode keystreams, keyed
// afresh for every XOF/PRF call.
type ninetiesPrimitives struct{}

func (ninetiesPrimitives) G() hash.Hash { return sha512.New() }

func (ninetiesPrimitives) H() hash.Hash { return sha256.New() }

func (ninetiesPrimitives) KDF() hash.Hash { return sha256.New() }

func (ninetiesPrimitives) XOF(seed []byte, pos MatrixPosition) io.Reader {
	iv := make([]byte, aes.BlockSize)
	iv[0] = pos.Row
	iv[1] = pos.Col
	return newCTRReader(seed, iv)
}

func (ninetiesPrimitives) PRF(seed []byte, nonce byte, n int) []byte {
	iv := make([]byte, aes.BlockSize)
	iv[0] = nonce

	out := make([]byte, n)
	newCTRReader(seed, iv).Read(out)
	return out
}

// ctrReader exposes an AES-CTR keystream as an io.Reader.
type ctrReader struct {
	stream cipher.Stream
}

// newCTRReader keys AES-256 with seed and starts the counter at the
// given IV. The scheme's seeds are 32 bytes; any other length is a
// caller bug.
func newCTRReader(seed, iv []byte) *ctrReader {
	block, err := aes.NewCipher(seed)
	if err != nil {
		panic("kyber: 90s keystream requires a 32-byte seed: " + err.Error())
	}
	return &ctrReader{stream: cipher.NewCTR(block, iv)}
}

func (r *ctrReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	r.stream.XORKeyStream(p, p)
	return len(p), nil
}
