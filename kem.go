package sorrel

import (
	"crypto/rand"
	"io"

	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
)

const (
	// PublicKeySize is the size of an ML-KEM-768 public key in bytes.
	PublicKeySize = 1184
	// SecretKeySize is the size of an ML-KEM-768 secret key in bytes.
	SecretKeySize = 2400
	// CiphertextSize is the size of an ML-KEM-768 ciphertext in bytes.
	CiphertextSize = 1088
	// SharedSecretSize is the size of the shared secret from ML-KEM-768 in bytes.
	SharedSecretSize = 32
	// EncapsulationSeedSize is the size of the seed consumed by a
	// deterministic encapsulation.
	EncapsulationSeedSize = 32

	// publicKeyOffset is the byte offset where the public key is embedded
	// within an ML-KEM-768 secret key.
	publicKeyOffset = 1152
)

// randReader is the random source used for key generation.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

// Keypair represents an ML-KEM-768 keypair for key encapsulation.
type Keypair struct {
	// PublicKey is the raw ML-KEM-768 public key bytes.
	PublicKey []byte
	// SecretKey is the raw ML-KEM-768 secret key bytes.
	SecretKey []byte
}

// GenerateKeypair creates a new ML-KEM-768 keypair.
func GenerateKeypair() (*Keypair, error) {
	pub, priv, err := mlkem768.GenerateKeyPair(randReader)
	if err != nil {
		return nil, err
	}

	// MarshalBinary never fails for valid keys from GenerateKeyPair
	pubBytes, _ := pub.MarshalBinary()
	privBytes, _ := priv.MarshalBinary()

	return &Keypair{
		PublicKey: pubBytes,
		SecretKey: privBytes,
	}, nil
}

// KeypairFromSecretKey reconstructs a keypair from the secret key.
// The public key is embedded in the secret key at offset 1152.
func KeypairFromSecretKey(secretKey []byte) (*Keypair, error) {
	if len(secretKey) != SecretKeySize {
		return nil, ErrInvalidSecretKeySize
	}

	publicKey := secretKey[publicKeyOffset : publicKeyOffset+PublicKeySize]

	return &Keypair{
		PublicKey: publicKey,
		SecretKey: secretKey,
	}, nil
}

// NewKeypairFromBytes creates a keypair from raw bytes.
func NewKeypairFromBytes(secretKeyBytes, publicKeyBytes []byte) (*Keypair, error) {
	if len(secretKeyBytes) != SecretKeySize {
		return nil, ErrInvalidSecretKeySize
	}
	if len(publicKeyBytes) != PublicKeySize {
		return nil, ErrInvalidPublicKeySize
	}

	// Validate that the secret key can be parsed
	priv := &mlkem768.PrivateKey{}
	if err := priv.Unpack(secretKeyBytes); err != nil {
		return nil, &KeyError{Message: "secret key rejected", Err: err}
	}

	return &Keypair{
		PublicKey: publicKeyBytes,
		SecretKey: secretKeyBytes,
	}, nil
}

// ValidateKeypair validates that a keypair has the correct structure and sizes.
// Returns true if all validations pass, false otherwise.
func ValidateKeypair(keypair *Keypair) bool {
	if keypair == nil {
		return false
	}

	if keypair.PublicKey == nil || keypair.SecretKey == nil {
		return false
	}

	if len(keypair.PublicKey) != PublicKeySize {
		return false
	}

	if len(keypair.SecretKey) != SecretKeySize {
		return false
	}

	// The secret key embeds the public key; the two halves must agree.
	embedded := keypair.SecretKey[publicKeyOffset : publicKeyOffset+PublicKeySize]
	for i := range embedded {
		if embedded[i] != keypair.PublicKey[i] {
			return false
		}
	}

	return true
}

// DerivePublicKeyFromSecret extracts the public key from a secret key.
// In ML-KEM-768, the public key is embedded in the secret key.
// Returns an error if the secret key has an invalid size.
func DerivePublicKeyFromSecret(secretKey []byte) ([]byte, error) {
	if len(secretKey) != SecretKeySize {
		return nil, ErrInvalidSecretKeySize
	}

	publicKey := make([]byte, PublicKeySize)
	copy(publicKey, secretKey[publicKeyOffset:publicKeyOffset+PublicKeySize])
	return publicKey, nil
}

// Encapsulate generates a fresh shared secret for the given public key
// and returns the KEM ciphertext carrying it.
func Encapsulate(publicKey []byte) (ciphertext, sharedSecret []byte, err error) {
	return encapsulate(publicKey, nil)
}

// EncapsulateDeterministically is like Encapsulate but derives the shared
// secret from the given 32-byte seed. Intended for known-answer tests.
func EncapsulateDeterministically(publicKey, seed []byte) (ciphertext, sharedSecret []byte, err error) {
	if len(seed) != EncapsulationSeedSize {
		return nil, nil, ErrInvalidSeedSize
	}
	return encapsulate(publicKey, seed)
}

func encapsulate(publicKey, seed []byte) (ciphertext, sharedSecret []byte, err error) {
	if len(publicKey) != PublicKeySize {
		return nil, nil, ErrInvalidPublicKeySize
	}

	var pub mlkem768.PublicKey
	if err := pub.Unpack(publicKey); err != nil {
		return nil, nil, &KeyError{Message: "public key rejected", Err: err}
	}

	if seed == nil {
		seed = make([]byte, EncapsulationSeedSize)
		r := randReader
		if r == nil {
			r = rand.Reader
		}
		if _, err := io.ReadFull(r, seed); err != nil {
			return nil, nil, err
		}
	}

	ciphertext = make([]byte, CiphertextSize)
	sharedSecret = make([]byte, SharedSecretSize)
	pub.EncapsulateTo(ciphertext, sharedSecret, seed)

	return ciphertext, sharedSecret, nil
}

// Decapsulate decapsulates a shared secret from the encapsulated key.
func (k *Keypair) Decapsulate(encapsulatedKey []byte) ([]byte, error) {
	if len(encapsulatedKey) != CiphertextSize {
		return nil, ErrInvalidCiphertextSize
	}

	var privKey mlkem768.PrivateKey
	if err := privKey.Unpack(k.SecretKey); err != nil {
		return nil, &KeyError{Message: "secret key rejected", Err: err}
	}

	sharedSecret := make([]byte, SharedSecretSize)
	privKey.DecapsulateTo(sharedSecret, encapsulatedKey)

	return sharedSecret, nil
}
