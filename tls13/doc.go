// Package tls13 implements TLS 1.3 handshake bookkeeping: storage of
// sent and received handshake messages, role-specialized state machines
// that restrict which message types each connection side may exchange,
// transcript hashing, and the RFC 8446 key schedule.
//
// # Handshake State
//
// [ClientState] and [ServerState] keep every handshake message that has
// been sent to or received from the peer. Each message type has exactly
// one slot per direction; storing a message a second time overwrites the
// previous value. Typed getters are provided for all message types and
// fail with an error matching [ErrInvalidState] when the slot is empty.
//
// The Sending methods only accept the message types the respective side
// is allowed to send; an attempt to send an illegal type does not
// compile. The Received methods check the concrete type of the inbound
// message at runtime and fail with a [ProtocolError] carrying
// [AlertUnexpectedMessage] for types the side never expects.
//
// The handshake state machine as described in RFC 8446 Appendix A is
// NOT validated here; only type membership per role and phase is.
//
// # Concurrency
//
// A state instance is owned by a single connection and provides no
// internal locking. All operations are synchronous in-memory
// transformations.
package tls13
