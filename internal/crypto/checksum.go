package crypto

import "crypto/sha256"

// Checksum returns the checksum bits for entropy: the leading
// len(entropy)/4 bits of its SHA-256 digest, left-aligned in the returned
// byte. Entropy of 16..32 bytes yields 4..8 checksum bits, so a single
// byte always suffices.
func Checksum(entropy []byte) byte {
	sum := sha256.Sum256(entropy)
	bits := len(entropy) / 4
	return sum[0] & (0xff << (8 - bits))
}
