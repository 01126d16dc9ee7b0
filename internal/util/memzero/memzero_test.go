package memzero_test

import (
	"testing"

	"wordseed/internal/util/memzero"
)

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5}
	memzero.Zero(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d not cleared: %#02x", i, v)
		}
	}
	memzero.Zero(nil) // must not panic
}
