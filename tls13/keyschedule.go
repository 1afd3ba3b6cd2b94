package tls13

import (
	"crypto/hmac"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/hkdf"
)

// keyScheduleStage tracks how far the extract ladder has progressed.
type keyScheduleStage uint8

const (
	stageEarly keyScheduleStage = iota
	stageHandshake
	stageMaster
)

// KeySchedule implements the TLS 1.3 key schedule (RFC 8446 section
// 7.1): the three-stage HKDF-Extract ladder and the Derive-Secret calls
// hanging off each stage. Transcript hashes are supplied by the caller,
// typically from a [Transcript] fed by the handshake state.
type KeySchedule struct {
	newHash func() hash.Hash
	hashLen int
	stage   keyScheduleStage
	secret  []byte
}

// NewKeySchedule starts the key schedule with the given cipher-suite
// hash and optional pre-shared key. A nil psk yields the standard
// all-zero early secret input.
func NewKeySchedule(newHash func() hash.Hash, psk []byte) *KeySchedule {
	hashLen := newHash().Size()
	if psk == nil {
		psk = make([]byte, hashLen)
	}

	return &KeySchedule{
		newHash: newHash,
		hashLen: hashLen,
		stage:   stageEarly,
		secret:  hkdf.Extract(newHash, psk, nil),
	}
}

// emptyTranscriptHash is Hash("").
func (k *KeySchedule) emptyTranscriptHash() []byte {
	return k.newHash().Sum(nil)
}

// deriveSecret implements Derive-Secret(secret, label, transcript).
func (k *KeySchedule) deriveSecret(secret []byte, label string, transcriptHash []byte) []byte {
	return HKDFExpandLabel(k.newHash, secret, label, transcriptHash, k.hashLen)
}

// ClientEarlyTrafficSecret derives the 0-RTT traffic secret from the
// early stage and the ClientHello transcript hash.
func (k *KeySchedule) ClientEarlyTrafficSecret(transcriptHash []byte) ([]byte, error) {
	if k.stage != stageEarly {
		return nil, fmt.Errorf("%w: early secret already consumed", ErrKeyScheduleState)
	}
	return k.deriveSecret(k.secret, "c e traffic", transcriptHash), nil
}

// InsertSharedSecret advances the schedule from the early stage to the
// handshake stage using the (EC)DHE or KEM shared secret.
func (k *KeySchedule) InsertSharedSecret(sharedSecret []byte) error {
	if k.stage != stageEarly {
		return fmt.Errorf("%w: shared secret already inserted", ErrKeyScheduleState)
	}

	derived := k.deriveSecret(k.secret, "derived", k.emptyTranscriptHash())
	k.secret = hkdf.Extract(k.newHash, sharedSecret, derived)
	k.stage = stageHandshake
	return nil
}

// ClientHandshakeTrafficSecret derives the client handshake traffic
// secret from the transcript hash through ServerHello.
func (k *KeySchedule) ClientHandshakeTrafficSecret(transcriptHash []byte) ([]byte, error) {
	if k.stage != stageHandshake {
		return nil, fmt.Errorf("%w: handshake secret not available", ErrKeyScheduleState)
	}
	return k.deriveSecret(k.secret, "c hs traffic", transcriptHash), nil
}

// ServerHandshakeTrafficSecret derives the server handshake traffic
// secret from the transcript hash through ServerHello.
func (k *KeySchedule) ServerHandshakeTrafficSecret(transcriptHash []byte) ([]byte, error) {
	if k.stage != stageHandshake {
		return nil, fmt.Errorf("%w: handshake secret not available", ErrKeyScheduleState)
	}
	return k.deriveSecret(k.secret, "s hs traffic", transcriptHash), nil
}

// AdvanceToMaster moves the schedule from the handshake stage to the
// master stage.
func (k *KeySchedule) AdvanceToMaster() error {
	if k.stage != stageHandshake {
		return fmt.Errorf("%w: handshake secret not available", ErrKeyScheduleState)
	}

	derived := k.deriveSecret(k.secret, "derived", k.emptyTranscriptHash())
	zeros := make([]byte, k.hashLen)
	k.secret = hkdf.Extract(k.newHash, zeros, derived)
	k.stage = stageMaster
	return nil
}

// ClientApplicationTrafficSecret derives the client application traffic
// secret from the transcript hash through server Finished.
func (k *KeySchedule) ClientApplicationTrafficSecret(transcriptHash []byte) ([]byte, error) {
	if k.stage != stageMaster {
		return nil, fmt.Errorf("%w: master secret not available", ErrKeyScheduleState)
	}
	return k.deriveSecret(k.secret, "c ap traffic", transcriptHash), nil
}

// ServerApplicationTrafficSecret derives the server application traffic
// secret from the transcript hash through server Finished.
func (k *KeySchedule) ServerApplicationTrafficSecret(transcriptHash []byte) ([]byte, error) {
	if k.stage != stageMaster {
		return nil, fmt.Errorf("%w: master secret not available", ErrKeyScheduleState)
	}
	return k.deriveSecret(k.secret, "s ap traffic", transcriptHash), nil
}

// ExporterMasterSecret derives the exporter secret from the transcript
// hash through server Finished.
func (k *KeySchedule) ExporterMasterSecret(transcriptHash []byte) ([]byte, error) {
	if k.stage != stageMaster {
		return nil, fmt.Errorf("%w: master secret not available", ErrKeyScheduleState)
	}
	return k.deriveSecret(k.secret, "exp master", transcriptHash), nil
}

// ResumptionMasterSecret derives the resumption secret from the
// transcript hash through client Finished.
func (k *KeySchedule) ResumptionMasterSecret(transcriptHash []byte) ([]byte, error) {
	if k.stage != stageMaster {
		return nil, fmt.Errorf("%w: master secret not available", ErrKeyScheduleState)
	}
	return k.deriveSecret(k.secret, "res master", transcriptHash), nil
}

// FinishedVerifyData computes the Finished MAC for the given traffic
// secret over the supplied transcript hash.
func (k *KeySchedule) FinishedVerifyData(trafficSecret, transcriptHash []byte) []byte {
	finishedKey := HKDFExpandLabel(k.newHash, trafficSecret, "finished", nil, k.hashLen)
	mac := hmac.New(k.newHash, finishedKey)
	mac.Write(transcriptHash)
	return mac.Sum(nil)
}

// HKDFExpandLabel implements HKDF-Expand-Label (RFC 8446 section 7.1).
// The record layer uses it to turn traffic secrets into keys and IVs.
func HKDFExpandLabel(newHash func() hash.Hash, secret []byte, label string, context []byte, length int) []byte {
	var b cryptobyte.Builder
	b.AddUint16(uint16(length))
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes([]byte("tls13 "))
		b.AddBytes([]byte(label))
	})
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(context)
	})
	info := b.BytesOrPanic()

	out := make([]byte, length)
	if _, err := io.ReadFull(hkdf.Expand(newHash, secret, info), out); err != nil {
		// Expand only fails for absurd lengths; nothing here requests one.
		panic("tls13: HKDF-Expand-Label failed: " + err.Error())
	}
	return out
}
