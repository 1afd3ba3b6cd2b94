package sorrel

import "errors"

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidSecretKeySize is returned when the secret key size is invalid.
	ErrInvalidSecretKeySize = errors.New("invalid secret key size")

	// ErrInvalidPublicKeySize is returned when the public key size is invalid.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")

	// ErrInvalidCiphertextSize is returned when the ciphertext size is invalid.
	ErrInvalidCiphertextSize = errors.New("invalid ciphertext size")

	// ErrInvalidSeedSize is returned when a key-generation or
	// encapsulation seed has the wrong length.
	ErrInvalidSeedSize = errors.New("invalid seed size")
)

// SorrelError is implemented by all library errors.
type SorrelError interface {
	error
	SorrelError() // marker method
}

// KeyError reports a malformed or inconsistent key.
type KeyError struct {
	Message string
	Err     error
}

func (e *KeyError) Error() string {
	if e.Err != nil {
		return "key error: " + e.Message + ": " + e.Err.Error()
	}
	return "key error: " + e.Message
}

// Unwrap returns the underlying error.
func (e *KeyError) Unwrap() error {
	return e.Err
}

// SorrelError implements the SorrelError interface.
func (e *KeyError) SorrelError() {}
