package crypto

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
)

// SeedBytes is the length of a derived seed (512 bits).
const SeedBytes = 64

const (
	seedRounds     = 2048
	seedSaltPrefix = "mnemonic"
)

// DeriveSeed stretches a normalized mnemonic phrase and passphrase into a
// 64-byte seed with PBKDF2-HMAC-SHA512. The salt is the ASCII literal
// "mnemonic" followed by the passphrase.
func DeriveSeed(phrase, passphrase []byte) []byte {
	salt := make([]byte, 0, len(seedSaltPrefix)+len(passphrase))
	salt = append(salt, seedSaltPrefix...)
	salt = append(salt, passphrase...)
	return pbkdf2.Key(phrase, salt, seedRounds, SeedBytes, sha512.New)
}
