package tls13

import (
	"hash"

	"golang.org/x/crypto/cryptobyte"
)

// Transcript maintains the running hash over all handshake messages
// exchanged so far, in wire order. The digest binds key derivation to
// the exact handshake that occurred.
type Transcript struct {
	newHash func() hash.Hash
	h       hash.Hash
}

// NewTranscript creates a transcript using the negotiated cipher
// suite's hash, e.g. sha256.New.
func NewTranscript(newHash func() hash.Hash) *Transcript {
	return &Transcript{newHash: newHash, h: newHash()}
}

// Update appends a handshake message to the transcript.
func (t *Transcript) Update(msg Message) {
	t.h.Write(msg.Marshal())
}

// UpdateRaw appends already-marshaled handshake bytes. Used when the
// record layer hands over wire bytes it has not decoded.
func (t *Transcript) UpdateRaw(wire []byte) {
	t.h.Write(wire)
}

// Current returns the transcript hash over everything appended so far.
// The transcript remains usable afterwards.
func (t *Transcript) Current() []byte {
	return t.h.Sum(nil)
}

// SubstituteMessageHash replaces the transcript with the synthetic
// message_hash construction of RFC 8446 section 4.4.1. It must be
// called after the initial ClientHello has been hashed and before the
// HelloRetryRequest is, so that retry handshakes only carry a digest of
// the first hello.
func (t *Transcript) SubstituteMessageHash() {
	chHash := t.h.Sum(nil)

	var b cryptobyte.Builder
	b.AddUint8(uint8(typeMessageHash))
	b.AddUint24LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(chHash)
	})

	t.h = t.newHash()
	t.h.Write(b.BytesOrPanic())
}
