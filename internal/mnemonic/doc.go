// Package mnemonic implements the BIP-39 mnemonic code: encoding entropy
// as a phrase of dictionary words, validating such phrases, and deriving
// the 512-bit seed from a phrase and passphrase.
//
// # Flows
//
// Generation:
//  1. Caller supplies 16-32 bytes of entropy (or Generate draws them from
//     crypto/rand).
//  2. A SHA-256 checksum is appended and the bit string is split into
//     11-bit word indices.
//  3. The indices are mapped through one language's word list.
//
// Recovery:
//  1. The phrase is NFKD-normalized and its language detected from the
//     compiled-in word lists.
//  2. Words are mapped back to indices and the bit string reassembled.
//  3. The checksum is recomputed over the entropy bits and compared,
//     unless the caller chose one of the *Unchecked parsers.
//
// Seed derivation runs PBKDF2-HMAC-SHA512 over the normalized phrase and
// passphrase. It is defined for every constructed Mnemonic, including
// phrases parsed without checksum verification.
//
// # Errors
//
// ErrEntropyLength, ErrWordCount, ErrUnknownWord, ErrChecksum and
// ErrAmbiguousLanguage are sentinel values; returned errors wrap them and
// carry the offending input, so errors.Is matching works throughout.
package mnemonic
