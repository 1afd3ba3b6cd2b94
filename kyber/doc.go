// Package kyber provides the symmetric-primitive indirection used by
// Kyber-style lattice schemes: the G/H/KDF hash bundle, the
// position-addressed XOF for matrix expansion, and the nonce-addressed
// PRF for noise sampling, together with the samplers built on top.
//
// Two primitive families implement the same contract:
//
//   - [ModeModern]: SHA3-512 (G), SHA3-256 (H), SHAKE-256 (KDF, PRF)
//     and SHAKE-128 for the matrix XOF.
//
//   - [Mode90s]: SHA-512 (G), SHA-256 (H, KDF) and AES-256 in counter
//     mode for both XOF and PRF, reseeded per call.
//
// The family is selected when the owning scheme is constructed and is
// never switched mid-use.
//
// # Determinism
//
// XOF(seed, position) and PRF(seed, nonce, n) are fully deterministic:
// identical inputs reproduce identical output streams, which is what
// makes independently generated matrices interoperable. Every call
// returns a freshly seeded stream; no state is shared between calls.
//
// # Concurrency
//
// A Primitives value is safe to share only for sequential use. The
// streams it hands out are owned by one derivation at a time and must
// not be read concurrently.
package kyber
