package crypto_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"wordseed/internal/crypto"
)

func TestChecksum(t *testing.T) {
	cases := []struct {
		entropy string
		want    byte
	}{
		// SHA-256 first byte masked to the leading len/4 bits.
		{"00000000000000000000000000000000", 0x30},
		{"ffffffffffffffffffffffffffffffff", 0x50},
		{"9e885d952ad362caeb4efe34a8e91bd2", 0x10},
		{"0000000000000000000000000000000000000000000000000000000000000000", 0x66},
	}
	for _, c := range cases {
		entropy, err := hex.DecodeString(c.entropy)
		if err != nil {
			t.Fatalf("DecodeString: %v", err)
		}
		if got := crypto.Checksum(entropy); got != c.want {
			t.Errorf("Checksum(%s) = %#02x, want %#02x", c.entropy, got, c.want)
		}
	}
}

func TestChecksumMasksLowBits(t *testing.T) {
	entropy := make([]byte, 16)
	for i := range entropy {
		entropy[i] = byte(i * 17)
	}
	if got := crypto.Checksum(entropy); got&0x0f != 0 {
		t.Fatalf("Checksum = %#02x, low four bits not cleared", got)
	}
}

func TestDeriveSeed(t *testing.T) {
	phrase := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	seed := crypto.DeriveSeed([]byte(phrase), nil)
	if len(seed) != crypto.SeedBytes {
		t.Fatalf("seed length %d, want %d", len(seed), crypto.SeedBytes)
	}
	want, _ := hex.DecodeString(
		"5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc1" +
			"9a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4")
	if !bytes.Equal(seed, want) {
		t.Fatalf("seed = %x, want %x", seed, want)
	}

	seed = crypto.DeriveSeed([]byte(phrase), []byte("TREZOR"))
	want, _ = hex.DecodeString(
		"c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e5349553" +
			"1f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04")
	if !bytes.Equal(seed, want) {
		t.Fatalf("seed with passphrase = %x, want %x", seed, want)
	}
}
