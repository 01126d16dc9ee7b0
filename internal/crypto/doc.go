// Package crypto exposes the two primitives behind the mnemonic codec.
//
// Contents
//
//   - Entropy checksums: the leading bits of a SHA-256 digest, used to
//     detect transcription errors in a phrase (Checksum)
//   - Seed derivation: PBKDF2 with HMAC-SHA512 over the normalized phrase
//     and salt (DeriveSeed)
//
// # Notes
//
// Both functions are pure and operate on already-normalized input. Callers
// should treat derived seeds as sensitive and rely on memzero.Zero when
// practical to reduce their lifetime in memory.
package crypto
