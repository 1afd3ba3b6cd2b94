package tls13

// ConnectionSide identifies the local role of a connection. It is fixed
// for the lifetime of a handshake state.
type ConnectionSide uint8

const (
	SideClient ConnectionSide = iota + 1
	SideServer
)

func (s ConnectionSide) String() string {
	switch s {
	case SideClient:
		return "client"
	case SideServer:
		return "server"
	}
	return "unknown"
}

// messageStore keeps every handshake message exchanged so far. Each
// message type has exactly one slot per direction; a second store for
// the same slot overwrites the first. Certificate, CertificateVerify
// and Finished slots are resolved to the side that produced the
// message, derived from the local role and the message direction.
type messageStore struct {
	side ConnectionSide

	clientHello             *ClientHello
	serverHello             *ServerHello
	helloRetryRequest       *HelloRetryRequest
	encryptedExtensions     *EncryptedExtensions
	certificateRequest      *CertificateRequest
	serverCertificate       *Certificate
	clientCertificate       *Certificate
	serverCertificateVerify *CertificateVerify
	clientCertificateVerify *CertificateVerify
	serverFinished          *Finished
	clientFinished          *Finished
}

// senderIsServer reports whether a message moving in the given
// direction was produced by the server side.
func (s *messageStore) senderIsServer(fromPeer bool) bool {
	if s.side == SideServer {
		return !fromPeer
	}
	return fromPeer
}

// store writes msg into its slot and returns the stored message. A slot
// write never fails; it cannot violate any other invariant.
func (s *messageStore) store(msg Message, fromPeer bool) Message {
	switch m := msg.(type) {
	case *ClientHello:
		s.clientHello = m
	case *HelloRetryRequest:
		s.helloRetryRequest = m
	case *ServerHello:
		s.serverHello = m
	case *EncryptedExtensions:
		s.encryptedExtensions = m
	case *CertificateRequest:
		s.certificateRequest = m
	case *Certificate:
		if s.senderIsServer(fromPeer) {
			s.serverCertificate = m
		} else {
			s.clientCertificate = m
		}
	case *CertificateVerify:
		if s.senderIsServer(fromPeer) {
			s.serverCertificateVerify = m
		} else {
			s.clientCertificateVerify = m
		}
	case *Finished:
		if s.senderIsServer(fromPeer) {
			s.serverFinished = m
		} else {
			s.clientFinished = m
		}
	}
	return msg
}

func (s *messageStore) HasClientHello() bool         { return s.clientHello != nil }
func (s *messageStore) HasServerHello() bool         { return s.serverHello != nil }
func (s *messageStore) HasHelloRetryRequest() bool   { return s.helloRetryRequest != nil }
func (s *messageStore) HasEncryptedExtensions() bool { return s.encryptedExtensions != nil }
func (s *messageStore) HasCertificateRequest() bool  { return s.certificateRequest != nil }
func (s *messageStore) HasServerCertificate() bool   { return s.serverCertificate != nil }
func (s *messageStore) HasClientCertificate() bool   { return s.clientCertificate != nil }
func (s *messageStore) HasServerCertificateVerify() bool {
	return s.serverCertificateVerify != nil
}
func (s *messageStore) HasClientCertificateVerify() bool {
	return s.clientCertificateVerify != nil
}
func (s *messageStore) HasServerFinished() bool { return s.serverFinished != nil }
func (s *messageStore) HasClientFinished() bool { return s.clientFinished != nil }

// HandshakeFinished reports whether both Finished messages have been
// exchanged. This is the sole terminal predicate of the handshake.
func (s *messageStore) HandshakeFinished() bool {
	return s.HasServerFinished() && s.HasClientFinished()
}

// ClientHello returns the stored ClientHello. The returned message may
// be amended in place when a HelloRetryRequest requires the client to
// rewrite its hello; all other messages must be treated as immutable.
func (s *messageStore) ClientHello() (*ClientHello, error) {
	if s.clientHello == nil {
		return nil, notSet("client_hello")
	}
	return s.clientHello, nil
}

func (s *messageStore) ServerHello() (*ServerHello, error) {
	if s.serverHello == nil {
		return nil, notSet("server_hello")
	}
	return s.serverHello, nil
}

func (s *messageStore) HelloRetryRequest() (*HelloRetryRequest, error) {
	if s.helloRetryRequest == nil {
		return nil, notSet("hello_retry_request")
	}
	return s.helloRetryRequest, nil
}

func (s *messageStore) EncryptedExtensions() (*EncryptedExtensions, error) {
	if s.encryptedExtensions == nil {
		return nil, notSet("encrypted_extensions")
	}
	return s.encryptedExtensions, nil
}

func (s *messageStore) CertificateRequest() (*CertificateRequest, error) {
	if s.certificateRequest == nil {
		return nil, notSet("certificate_request")
	}
	return s.certificateRequest, nil
}

func (s *messageStore) ServerCertificate() (*Certificate, error) {
	if s.serverCertificate == nil {
		return nil, notSet("server certificate")
	}
	return s.serverCertificate, nil
}

func (s *messageStore) ClientCertificate() (*Certificate, error) {
	if s.clientCertificate == nil {
		return nil, notSet("client certificate")
	}
	return s.clientCertificate, nil
}

func (s *messageStore) ServerCertificateVerify() (*CertificateVerify, error) {
	if s.serverCertificateVerify == nil {
		return nil, notSet("server certificate_verify")
	}
	return s.serverCertificateVerify, nil
}

func (s *messageStore) ClientCertificateVerify() (*CertificateVerify, error) {
	if s.clientCertificateVerify == nil {
		return nil, notSet("client certificate_verify")
	}
	return s.clientCertificateVerify, nil
}

func (s *messageStore) ServerFinished() (*Finished, error) {
	if s.serverFinished == nil {
		return nil, notSet("server finished")
	}
	return s.serverFinished, nil
}

func (s *messageStore) ClientFinished() (*Finished, error) {
	if s.clientFinished == nil {
		return nil, notSet("client finished")
	}
	return s.clientFinished, nil
}

// Side returns the local role the state was created with.
func (s *messageStore) Side() ConnectionSide { return s.side }

// ClientState tracks the handshake messages of a client-side
// connection. Sending only accepts the client outbound message set;
// passing any other message type does not compile.
type ClientState struct {
	messageStore
}

// NewClientState creates the handshake state for a client connection.
func NewClientState() *ClientState {
	return &ClientState{messageStore{side: SideClient}}
}

// Sending records an outbound handshake message and returns the stored
// message so the caller can feed it into the transcript directly.
func (s *ClientState) Sending(msg ClientMessage) ClientMessage {
	s.store(msg, false)
	return msg
}

// Received dispatches an inbound handshake message into its slot. If
// the concrete type is not one a client may receive during the
// handshake, it fails with a ProtocolError carrying
// AlertUnexpectedMessage.
func (s *ClientState) Received(msg Message) (ServerMessage, error) {
	m, ok := msg.(ServerMessage)
	if !ok {
		return nil, unexpectedMessage(msg)
	}
	s.store(m, true)
	return m, nil
}

// ReceivedPostHandshake validates an inbound post-handshake message.
// Clients accept NewSessionTicket and KeyUpdate. The message is
// returned for processing but not stored; post-handshake messages have
// no slot.
func (s *ClientState) ReceivedPostHandshake(msg PostHandshakeMessage) (PostHandshakeMessage, error) {
	switch msg.(type) {
	case *NewSessionTicket, *KeyUpdate:
		return msg, nil
	}
	return nil, unexpectedMessage(msg)
}

// ServerState tracks the handshake messages of a server-side
// connection. Sending only accepts the server outbound message set;
// passing any other message type does not compile.
type ServerState struct {
	messageStore
}

// NewServerState creates the handshake state for a server connection.
func NewServerState() *ServerState {
	return &ServerState{messageStore{side: SideServer}}
}

// Sending records an outbound handshake message and returns the stored
// message so the caller can feed it into the transcript directly.
func (s *ServerState) Sending(msg ServerMessage) ServerMessage {
	s.store(msg, false)
	return msg
}

// Received dispatches an inbound handshake message into its slot. If
// the concrete type is not one a server may receive during the
// handshake, it fails with a ProtocolError carrying
// AlertUnexpectedMessage.
func (s *ServerState) Received(msg Message) (ClientMessage, error) {
	m, ok := msg.(ClientMessage)
	if !ok {
		return nil, unexpectedMessage(msg)
	}
	s.store(m, true)
	return m, nil
}

// ReceivedPostHandshake validates an inbound post-handshake message.
// Servers only accept KeyUpdate; NewSessionTicket is server-produced
// and never legal inbound.
func (s *ServerState) ReceivedPostHandshake(msg PostHandshakeMessage) (PostHandshakeMessage, error) {
	switch msg.(type) {
	case *KeyUpdate:
		return msg, nil
	}
	return nil, unexpectedMessage(msg)
}
