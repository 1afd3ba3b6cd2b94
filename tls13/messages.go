package tls13

import (
	"strconv"

	"golang.org/x/crypto/cryptobyte"
)

// HandshakeType identifies a TLS 1.3 handshake message on the wire
// (RFC 8446 section 4).
type HandshakeType uint8

const (
	TypeClientHello         HandshakeType = 1
	TypeServerHello         HandshakeType = 2
	TypeNewSessionTicket    HandshakeType = 4
	TypeEndOfEarlyData      HandshakeType = 5
	TypeEncryptedExtensions HandshakeType = 8
	TypeCertificate         HandshakeType = 11
	TypeCertificateRequest  HandshakeType = 13
	TypeCertificateVerify   HandshakeType = 15
	TypeFinished            HandshakeType = 20
	TypeKeyUpdate           HandshakeType = 24

	// typeMessageHash is the synthetic message type used for the
	// HelloRetryRequest transcript substitution (RFC 8446 section 4.4.1).
	typeMessageHash HandshakeType = 254
)

var handshakeTypeNames = map[HandshakeType]string{
	TypeClientHello:         "client_hello",
	TypeServerHello:         "server_hello",
	TypeNewSessionTicket:    "new_session_ticket",
	TypeEndOfEarlyData:      "end_of_early_data",
	TypeEncryptedExtensions: "encrypted_extensions",
	TypeCertificate:         "certificate",
	TypeCertificateRequest:  "certificate_request",
	TypeCertificateVerify:   "certificate_verify",
	TypeFinished:            "finished",
	TypeKeyUpdate:           "key_update",
}

func (t HandshakeType) String() string {
	if name, ok := handshakeTypeNames[t]; ok {
		return name
	}
	return "handshake_type(" + strconv.Itoa(int(t)) + ")"
}

// Message is a decoded TLS 1.3 handshake message. The set of
// implementations is closed: exactly the message types of RFC 8446.
type Message interface {
	// Type returns the wire identifier of the message.
	Type() HandshakeType
	// Marshal returns the wire form of the message including the
	// four-byte handshake header, as fed into the transcript hash.
	Marshal() []byte

	handshakeMessage()
}

// ClientMessage is a handshake message a client is allowed to send
// during the handshake proper.
type ClientMessage interface {
	Message
	clientMessage()
}

// ServerMessage is a handshake message a server is allowed to send
// during the handshake proper.
type ServerMessage interface {
	Message
	serverMessage()
}

// PostHandshakeMessage is a handshake message that may appear after the
// handshake has finished.
type PostHandshakeMessage interface {
	Message
	postHandshakeMessage()
}

// helloRetryRequestRandom is the magic value a HelloRetryRequest carries
// in place of the server random (RFC 8446 section 4.1.3).
var helloRetryRequestRandom = [32]byte{
	0xCF, 0x21, 0xAD, 0x74, 0xE5, 0x9A, 0x61, 0x11,
	0xBE, 0x1D, 0x8C, 0x02, 0x1E, 0x65, 0xB8, 0x91,
	0xC2, 0xA2, 0x11, 0x16, 0x7A, 0xBB, 0x8C, 0x5E,
	0x07, 0x9E, 0x09, 0xE2, 0xC8, 0xA8, 0x33, 0x9C,
}

// ClientHello is the first message of every handshake. It is the only
// message that may be amended in place after storage, when a
// HelloRetryRequest forces the client to send an updated hello.
type ClientHello struct {
	LegacyVersion   uint16
	Random          [32]byte
	LegacySessionID []byte
	CipherSuites    []uint16
	// Extensions carries the raw extensions block (without the
	// two-byte list length). Extension decoding happens elsewhere.
	Extensions []byte
}

func (m *ClientHello) Type() HandshakeType { return TypeClientHello }

func (m *ClientHello) Marshal() []byte {
	return marshalHandshake(TypeClientHello, func(b *cryptobyte.Builder) {
		b.AddUint16(m.LegacyVersion)
		b.AddBytes(m.Random[:])
		b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
			b.AddBytes(m.LegacySessionID)
		})
		b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
			for _, suite := range m.CipherSuites {
				b.AddUint16(suite)
			}
		})
		// legacy_compression_methods: null only
		b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
			b.AddUint8(0)
		})
		b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
			b.AddBytes(m.Extensions)
		})
	})
}

func (m *ClientHello) handshakeMessage() {}
func (m *ClientHello) clientMessage()    {}

// ServerHello answers a ClientHello and pins the negotiated parameters.
type ServerHello struct {
	LegacyVersion   uint16
	Random          [32]byte
	LegacySessionID []byte
	CipherSuite     uint16
	Extensions      []byte
}

func (m *ServerHello) Type() HandshakeType { return TypeServerHello }

func (m *ServerHello) Marshal() []byte {
	return marshalHandshake(TypeServerHello, func(b *cryptobyte.Builder) {
		b.AddUint16(m.LegacyVersion)
		b.AddBytes(m.Random[:])
		b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
			b.AddBytes(m.LegacySessionID)
		})
		b.AddUint16(m.CipherSuite)
		b.AddUint8(0) // legacy_compression_method
		b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
			b.AddBytes(m.Extensions)
		})
	})
}

func (m *ServerHello) handshakeMessage() {}
func (m *ServerHello) serverMessage()    {}

// HelloRetryRequest is a ServerHello carrying the magic retry random.
// It asks the client to amend and resend its ClientHello.
type HelloRetryRequest struct {
	ServerHello
}

// NewHelloRetryRequest builds a retry request with the magic random set.
func NewHelloRetryRequest(cipherSuite uint16, legacySessionID, extensions []byte) *HelloRetryRequest {
	return &HelloRetryRequest{ServerHello{
		LegacyVersion:   0x0303,
		Random:          helloRetryRequestRandom,
		LegacySessionID: legacySessionID,
		CipherSuite:     cipherSuite,
		Extensions:      extensions,
	}}
}

// IsRetryRandom reports whether the given server random is the
// HelloRetryRequest magic value.
func IsRetryRandom(random [32]byte) bool {
	return random == helloRetryRequestRandom
}

func (m *HelloRetryRequest) handshakeMessage() {}
func (m *HelloRetryRequest) serverMessage()    {}

// EndOfEarlyData marks the end of the client's 0-RTT data. It has an
// empty body and no store slot; the record layer acts on it directly.
type EndOfEarlyData struct{}

func (m *EndOfEarlyData) Type() HandshakeType { return TypeEndOfEarlyData }

func (m *EndOfEarlyData) Marshal() []byte {
	return marshalHandshake(TypeEndOfEarlyData, func(b *cryptobyte.Builder) {})
}

func (m *EndOfEarlyData) handshakeMessage() {}
func (m *EndOfEarlyData) clientMessage()    {}

// EncryptedExtensions carries the server extensions that do not affect
// record protection.
type EncryptedExtensions struct {
	Extensions []byte
}

func (m *EncryptedExtensions) Type() HandshakeType { return TypeEncryptedExtensions }

func (m *EncryptedExtensions) Marshal() []byte {
	return marshalHandshake(TypeEncryptedExtensions, func(b *cryptobyte.Builder) {
		b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
			b.AddBytes(m.Extensions)
		})
	})
}

func (m *EncryptedExtensions) handshakeMessage() {}
func (m *EncryptedExtensions) serverMessage()    {}

// CertificateRequest asks the client for a certificate.
type CertificateRequest struct {
	Context    []byte
	Extensions []byte
}

func (m *CertificateRequest) Type() HandshakeType { return TypeCertificateRequest }

func (m *CertificateRequest) Marshal() []byte {
	return marshalHandshake(TypeCertificateRequest, func(b *cryptobyte.Builder) {
		b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
			b.AddBytes(m.Context)
		})
		b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
			b.AddBytes(m.Extensions)
		})
	})
}

func (m *CertificateRequest) handshakeMessage() {}
func (m *CertificateRequest) serverMessage()    {}

// CertificateEntry is one certificate of a Certificate message chain.
type CertificateEntry struct {
	Data       []byte
	Extensions []byte
}

// Certificate carries a certificate chain. Both sides may send one.
type Certificate struct {
	Context []byte
	Entries []CertificateEntry
}

func (m *Certificate) Type() HandshakeType { return TypeCertificate }

func (m *Certificate) Marshal() []byte {
	return marshalHandshake(TypeCertificate, func(b *cryptobyte.Builder) {
		b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
			b.AddBytes(m.Context)
		})
		b.AddUint24LengthPrefixed(func(b *cryptobyte.Builder) {
			for _, entry := range m.Entries {
				b.AddUint24LengthPrefixed(func(b *cryptobyte.Builder) {
					b.AddBytes(entry.Data)
				})
				b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
					b.AddBytes(entry.Extensions)
				})
			}
		})
	})
}

func (m *Certificate) handshakeMessage() {}
func (m *Certificate) clientMessage()    {}
func (m *Certificate) serverMessage()    {}

// CertificateVerify proves possession of the certified key by signing
// the transcript.
type CertificateVerify struct {
	Algorithm uint16
	Signature []byte
}

func (m *CertificateVerify) Type() HandshakeType { return TypeCertificateVerify }

func (m *CertificateVerify) Marshal() []byte {
	return marshalHandshake(TypeCertificateVerify, func(b *cryptobyte.Builder) {
		b.AddUint16(m.Algorithm)
		b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
			b.AddBytes(m.Signature)
		})
	})
}

func (m *CertificateVerify) handshakeMessage() {}
func (m *CertificateVerify) clientMessage()    {}
func (m *CertificateVerify) serverMessage()    {}

// Finished authenticates the handshake with a MAC over the transcript.
type Finished struct {
	VerifyData []byte
}

func (m *Finished) Type() HandshakeType { return TypeFinished }

func (m *Finished) Marshal() []byte {
	return marshalHandshake(TypeFinished, func(b *cryptobyte.Builder) {
		b.AddBytes(m.VerifyData)
	})
}

func (m *Finished) handshakeMessage() {}
func (m *Finished) clientMessage()    {}
func (m *Finished) serverMessage()    {}

// NewSessionTicket is sent by the server after the handshake to offer
// resumption.
type NewSessionTicket struct {
	Lifetime   uint32
	AgeAdd     uint32
	Nonce      []byte
	Ticket     []byte
	Extensions []byte
}

func (m *NewSessionTicket) Type() HandshakeType { return TypeNewSessionTicket }

func (m *NewSessionTicket) Marshal() []byte {
	return marshalHandshake(TypeNewSessionTicket, func(b *cryptobyte.Builder) {
		b.AddUint32(m.Lifetime)
		b.AddUint32(m.AgeAdd)
		b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
			b.AddBytes(m.Nonce)
		})
		b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
			b.AddBytes(m.Ticket)
		})
		b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
			b.AddBytes(m.Extensions)
		})
	})
}

func (m *NewSessionTicket) handshakeMessage()     {}
func (m *NewSessionTicket) postHandshakeMessage() {}

// KeyUpdate requests or announces a traffic key rotation.
type KeyUpdate struct {
	// RequestUpdate is true for update_requested.
	RequestUpdate bool
}

func (m *KeyUpdate) Type() HandshakeType { return TypeKeyUpdate }

func (m *KeyUpdate) Marshal() []byte {
	return marshalHandshake(TypeKeyUpdate, func(b *cryptobyte.Builder) {
		if m.RequestUpdate {
			b.AddUint8(1)
		} else {
			b.AddUint8(0)
		}
	})
}

func (m *KeyUpdate) handshakeMessage()     {}
func (m *KeyUpdate) postHandshakeMessage() {}

// marshalHandshake frames a message body with the handshake header:
// one type byte followed by a 24-bit body length.
func marshalHandshake(typ HandshakeType, body func(*cryptobyte.Builder)) []byte {
	var b cryptobyte.Builder
	b.AddUint8(uint8(typ))
	b.AddUint24LengthPrefixed(body)
	return b.BytesOrPanic()
}
