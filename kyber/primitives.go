package kyber

import (
	"errors"
	"hash"
	"io"
	"strconv"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrUnknownMode is returned when a primitive family is requested
	// for a mode this package does not implement.
	ErrUnknownMode = errors.New("unknown kyber mode")

	// ErrInvalidEta is returned when noise sampling is requested with
	// an unsupported binomial parameter.
	ErrInvalidEta = errors.New("invalid noise parameter eta")
)

// Mode selects the symmetric-primitive family of a scheme instance.
type Mode int

const (
	// ModeModern is the SHA-3/SHAKE based family.
	ModeModern Mode = iota
	// Mode90s is the legacy AES-256-CTR/SHA-2 based family.
	Mode90s
)

func (m Mode) String() string {
	switch m {
	case ModeModern:
		return "modern"
	case Mode90s:
		return "90s"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// MatrixPosition addresses one polynomial of the public matrix: the
// (row, column) pair mixed into the XOF seed so that every matrix entry
// gets an independent keystream.
type MatrixPosition struct {
	Row uint8
	Col uint8
}

// Primitives bundles the hash, XOF and PRF operations a lattice scheme
// derives its key material with. G, H and KDF return freshly
// initialized hash instances whose state is independent of any previous
// call. XOF and PRF return deterministic streams bound to their full
// input; each call produces a fresh stream with no state carried over.
type Primitives interface {
	// G returns a 64-byte-output hash.
	G() hash.Hash
	// H returns a 32-byte-output hash.
	H() hash.Hash
	// KDF returns the 32-byte-output key derivation hash.
	KDF() hash.Hash
	// XOF returns the keystream expanding seed at the given matrix
	// position. The 90s family keys AES-256 from the seed and panics
	// if it is not 32 bytes.
	XOF(seed []byte, pos MatrixPosition) io.Reader
	// PRF produces n pseudorandom bytes bound to (seed, nonce). The
	// 90s family has the same 32-byte seed requirement as XOF.
	PRF(seed []byte, nonce byte, n int) []byte
}

// NewPrimitives returns the primitive family for the given mode.
func NewPrimitives(mode Mode) (Primitives, error) {
	switch mode {
	case ModeModern:
		return modernPrimitives{}, nil
	case Mode90s:
		return ninetiesPrimitives{}, nil
	}
	return nil, ErrUnknownMode
}
