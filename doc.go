// Package sorrel provides post-quantum cryptographic building blocks:
// an ML-KEM-768 key encapsulation facade, the symmetric-primitive
// families used by lattice-based schemes, and TLS 1.3 handshake state
// tracking.
//
// # Algorithm Suite
//
// The library is built around the following algorithms:
//
//   - ML-KEM-768 (NIST FIPS 203): Post-quantum key encapsulation
//     mechanism for establishing shared secrets. Provides 192-bit
//     classical and quantum security levels.
//
//   - SHA-3/SHAKE (NIST FIPS 202): Hash and extendable-output functions
//     backing the modern lattice symmetric-primitive family and the
//     seed-expansion XOF. See the kyber subpackage.
//
//   - AES-256-CTR: Counter-mode keystream backing the legacy ("90s")
//     lattice symmetric-primitive family.
//
//   - HKDF (RFC 5869): Key derivation for the TLS 1.3 key schedule.
//     See the tls13 subpackage.
//
// # Package Layout
//
// The root package exposes the ML-KEM-768 keypair API. Two subpackages
// carry the protocol machinery:
//
//   - tls13: handshake message storage, role-specialized handshake
//     state machines, transcript hashing, and the TLS 1.3 key schedule.
//
//   - kyber: the G/H/KDF/XOF/PRF symmetric-primitive indirection used
//     by lattice KEM/signature schemes, with modern (SHA-3) and legacy
//     (AES-256-CTR) families, plus matrix and noise sampling.
//
// Basic usage:
//
//	keypair, err := sorrel.GenerateKeypair()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ciphertext, sharedSecret, err := sorrel.Encapsulate(keypair.PublicKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	recovered, err := keypair.Decapsulate(ciphertext)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// sharedSecret and recovered are equal.
//
// # Key Management
//
// Use [GenerateKeypair] to create a new ML-KEM-768 keypair. The secret
// key contains an embedded copy of the public key at offset 1152, which
// can be extracted using [KeypairFromSecretKey] or
// [DerivePublicKeyFromSecret].
//
// Keep secret keys secure. They should never be logged, transmitted in
// plaintext, or stored in version control.
package sorrel
