package tls13

import (
	"bytes"
	"testing"
)

// checkHeader verifies the four-byte handshake framing: one type byte
// followed by the 24-bit body length.
func checkHeader(t *testing.T, wire []byte, typ HandshakeType) {
	t.Helper()

	if len(wire) < 4 {
		t.Fatalf("wire form too short: %d bytes", len(wire))
	}
	if HandshakeType(wire[0]) != typ {
		t.Errorf("type byte = %d, want %d", wire[0], typ)
	}

	bodyLen := int(wire[1])<<16 | int(wire[2])<<8 | int(wire[3])
	if bodyLen != len(wire)-4 {
		t.Errorf("header length = %d, body length = %d", bodyLen, len(wire)-4)
	}
}

func TestMarshal_Framing(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
	}{
		{"client_hello", testClientHello()},
		{"server_hello", testServerHello()},
		{"hello_retry_request", NewHelloRetryRequest(0x1301, nil, nil)},
		{"encrypted_extensions", &EncryptedExtensions{Extensions: []byte("exts")}},
		{"certificate_request", &CertificateRequest{Context: []byte{7}}},
		{"certificate", &Certificate{Entries: []CertificateEntry{{Data: []byte("der")}}}},
		{"certificate_verify", &CertificateVerify{Algorithm: 0x0804, Signature: []byte("sig")}},
		{"finished", &Finished{VerifyData: bytes.Repeat([]byte{0xAB}, 32)}},
		{"end_of_early_data", &EndOfEarlyData{}},
		{"new_session_ticket", &NewSessionTicket{Lifetime: 7200, Nonce: []byte{0}, Ticket: []byte("t")}},
		{"key_update", &KeyUpdate{RequestUpdate: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkHeader(t, tt.msg.Marshal(), tt.msg.Type())
		})
	}
}

func TestMarshal_Deterministic(t *testing.T) {
	msg := testClientHello()
	if !bytes.Equal(msg.Marshal(), msg.Marshal()) {
		t.Error("two marshals of the same message differ")
	}
}

func TestClientHello_MarshalBody(t *testing.T) {
	hello := &ClientHello{
		LegacyVersion:   0x0303,
		Random:          [32]byte{0x11},
		LegacySessionID: []byte{0xAA, 0xBB},
		CipherSuites:    []uint16{0x1301},
		Extensions:      []byte{0x00, 0x2B, 0x00, 0x00},
	}

	wire := hello.Marshal()
	body := wire[4:]

	if body[0] != 0x03 || body[1] != 0x03 {
		t.Error("legacy version not marshaled first")
	}
	if body[2] != 0x11 {
		t.Error("random not marshaled after the version")
	}
	// session id: length byte then contents
	if body[34] != 2 || body[35] != 0xAA || body[36] != 0xBB {
		t.Error("legacy session id malformed")
	}
	// cipher suites: u16 list length then one suite
	if body[37] != 0 || body[38] != 2 || body[39] != 0x13 || body[40] != 0x01 {
		t.Error("cipher suite list malformed")
	}
	// compression methods: single null
	if body[41] != 1 || body[42] != 0 {
		t.Error("legacy compression methods malformed")
	}
	// extensions: u16 length then raw block
	if body[43] != 0 || body[44] != 4 {
		t.Error("extensions length malformed")
	}
	if !bytes.Equal(body[45:], hello.Extensions) {
		t.Error("extensions block malformed")
	}
}

func TestHelloRetryRequest_WireType(t *testing.T) {
	hrr := NewHelloRetryRequest(0x1301, []byte{1}, nil)

	// On the wire a retry request is a server_hello.
	if hrr.Type() != TypeServerHello {
		t.Errorf("Type() = %v, want %v", hrr.Type(), TypeServerHello)
	}
	checkHeader(t, hrr.Marshal(), TypeServerHello)

	if !IsRetryRandom(hrr.Random) {
		t.Error("constructor did not set the magic random")
	}
	if IsRetryRandom([32]byte{1, 2, 3}) {
		t.Error("IsRetryRandom matched an ordinary random")
	}
}

func TestEndOfEarlyData_Marshal(t *testing.T) {
	wire := (&EndOfEarlyData{}).Marshal()

	// Type 5, empty body.
	if !bytes.Equal(wire, []byte{5, 0, 0, 0}) {
		t.Errorf("Marshal() = %x, want 05000000", wire)
	}
}

func TestKeyUpdate_Marshal(t *testing.T) {
	plain := (&KeyUpdate{}).Marshal()
	requested := (&KeyUpdate{RequestUpdate: true}).Marshal()

	if plain[4] != 0 {
		t.Errorf("update_not_requested byte = %d, want 0", plain[4])
	}
	if requested[4] != 1 {
		t.Errorf("update_requested byte = %d, want 1", requested[4])
	}
}

func TestHandshakeType_String(t *testing.T) {
	if got := TypeClientHello.String(); got != "client_hello" {
		t.Errorf("String() = %q, want %q", got, "client_hello")
	}
	if got := HandshakeType(99).String(); got != "handshake_type(99)" {
		t.Errorf("String() = %q, want %q", got, "handshake_type(99)")
	}
}
