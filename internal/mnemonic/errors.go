package mnemonic

import "errors"

var (
	// ErrEntropyLength is returned when entropy is not 16, 20, 24, 28 or
	// 32 bytes long.
	ErrEntropyLength = errors.New("entropy length must be 128-256 bits and a multiple of 32 bits")

	// ErrWordCount is returned when a phrase does not have 12, 15, 18,
	// 21 or 24 words.
	ErrWordCount = errors.New("mnemonic must have 12, 15, 18, 21 or 24 words")

	// ErrUnknownWord is returned when a word is absent from the selected
	// word list, or from every list during detection.
	ErrUnknownWord = errors.New("word not in word list")

	// ErrChecksum is returned when the recomputed checksum does not match
	// the bits encoded in the phrase's last word.
	ErrChecksum = errors.New("mnemonic checksum mismatch")

	// ErrAmbiguousLanguage is returned when a phrase is valid in more
	// than one compiled-in word list at once.
	ErrAmbiguousLanguage = errors.New("words match more than one language")
)
