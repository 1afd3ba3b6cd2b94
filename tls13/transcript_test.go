package tls13

import (
	"bytes"
	"crypto/sha256"
	"testing"
)

func TestTranscript_MatchesDirectHash(t *testing.T) {
	hello := testClientHello()
	serverHello := testServerHello()

	tr := NewTranscript(sha256.New)
	tr.Update(hello)
	tr.Update(serverHello)

	h := sha256.New()
	h.Write(hello.Marshal())
	h.Write(serverHello.Marshal())

	if !bytes.Equal(tr.Current(), h.Sum(nil)) {
		t.Error("transcript digest differs from direct hash of the wire bytes")
	}
}

func TestTranscript_CurrentIsNonDestructive(t *testing.T) {
	tr := NewTranscript(sha256.New)
	tr.Update(testClientHello())

	first := tr.Current()
	second := tr.Current()
	if !bytes.Equal(first, second) {
		t.Error("two Current() calls without updates differ")
	}

	tr.Update(testServerHello())
	if bytes.Equal(first, tr.Current()) {
		t.Error("digest unchanged after an update")
	}
}

func TestTranscript_UpdateRaw(t *testing.T) {
	hello := testClientHello()

	viaMessage := NewTranscript(sha256.New)
	viaMessage.Update(hello)

	viaRaw := NewTranscript(sha256.New)
	viaRaw.UpdateRaw(hello.Marshal())

	if !bytes.Equal(viaMessage.Current(), viaRaw.Current()) {
		t.Error("UpdateRaw and Update disagree for identical wire bytes")
	}
}

func TestTranscript_SubstituteMessageHash(t *testing.T) {
	hello := testClientHello()

	tr := NewTranscript(sha256.New)
	tr.Update(hello)
	tr.SubstituteMessageHash()

	// RFC 8446 4.4.1: the transcript restarts with
	// message_hash || 00 00 Hash.length || Hash(ClientHello1).
	chHash := sha256.Sum256(hello.Marshal())
	h := sha256.New()
	h.Write([]byte{254, 0, 0, 32})
	h.Write(chHash[:])

	if !bytes.Equal(tr.Current(), h.Sum(nil)) {
		t.Error("message_hash substitution does not match the manual construction")
	}

	// The substituted transcript keeps accepting messages.
	hrr := NewHelloRetryRequest(0x1301, nil, nil)
	tr.Update(hrr)
	h.Write(hrr.Marshal())
	if !bytes.Equal(tr.Current(), h.Sum(nil)) {
		t.Error("transcript diverges after the substitution")
	}
}
