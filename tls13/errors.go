package tls13

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidState is returned when a handshake message slot is read
	// before the message has been stored. It indicates a bug in the
	// caller, not malformed peer input: the state machine rejects
	// illegal message types before they ever reach a slot.
	ErrInvalidState = errors.New("handshake message not set")

	// ErrUnexpectedMessage is matched by protocol errors raised when a
	// peer sends a handshake message type the local side never expects.
	ErrUnexpectedMessage = errors.New("unexpected handshake message")

	// ErrKeyScheduleState is returned when key schedule stages are
	// invoked out of order.
	ErrKeyScheduleState = errors.New("key schedule stage not reached")
)

// ProtocolError is an abortive protocol failure. The connection driver
// is expected to send the carried alert to the peer and close the
// connection; protocol errors are never retried.
type ProtocolError struct {
	Alert   Alert
	Message string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("tls: %s (alert: %s)", e.Message, e.Alert)
}

// Is implements errors.Is for sentinel error matching.
func (e *ProtocolError) Is(target error) bool {
	return target == ErrUnexpectedMessage && e.Alert == AlertUnexpectedMessage
}

// unexpectedMessage builds the protocol error for an illegal inbound
// message type.
func unexpectedMessage(msg Message) error {
	return &ProtocolError{
		Alert:   AlertUnexpectedMessage,
		Message: fmt.Sprintf("received an illegal handshake message (%s)", msg.Type()),
	}
}

// notSet builds the contract-violation error for an empty message slot.
func notSet(slot string) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, slot)
}
