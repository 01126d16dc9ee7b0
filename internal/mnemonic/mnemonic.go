package mnemonic

import (
	"crypto/rand"
	"fmt"
	"strings"

	"wordseed/internal/crypto"
	"wordseed/internal/util/memzero"
	"wordseed/internal/wordlist"
)

// Valid entropy sizes in bytes. Each extra 4 bytes adds one checksum bit
// and three words.
const (
	minEntropyBytes = 16
	maxEntropyBytes = 32
)

// Mnemonic is an immutable, validated phrase. The backing string is
// NFKD-normalized with words joined by single ASCII spaces, which is also
// the canonical interchange form.
type Mnemonic struct {
	phrase string
	lang   wordlist.Language
}

// FromEntropy encodes entropy as an English mnemonic.
func FromEntropy(entropy []byte) (Mnemonic, error) {
	return FromEntropyIn(wordlist.English, entropy)
}

// FromEntropyIn encodes entropy as a mnemonic in the given language.
// Entropy must be 16, 20, 24, 28 or 32 bytes.
func FromEntropyIn(lang wordlist.Language, entropy []byte) (Mnemonic, error) {
	if len(entropy)%4 != 0 || len(entropy) < minEntropyBytes || len(entropy) > maxEntropyBytes {
		return Mnemonic{}, fmt.Errorf("%w: got %d bits", ErrEntropyLength, len(entropy)*8)
	}

	// Entropy bits followed by the left-aligned checksum bits. One extra
	// byte always holds the 4..8 checksum bits.
	data := make([]byte, len(entropy)+1)
	copy(data, entropy)
	data[len(entropy)] = crypto.Checksum(entropy)
	defer memzero.Zero(data)

	words := make([]string, len(entropy)*3/4)
	for i := range words {
		words[i] = lang.Word(group11(data, i))
	}
	return Mnemonic{phrase: strings.Join(words, " "), lang: lang}, nil
}

// Generate encodes fresh crypto/rand entropy as an English mnemonic of
// wordCount words.
func Generate(wordCount int) (Mnemonic, error) {
	return GenerateIn(wordlist.English, wordCount)
}

// GenerateIn encodes fresh crypto/rand entropy as a mnemonic of wordCount
// words in the given language. wordCount must be 12, 15, 18, 21 or 24.
func GenerateIn(lang wordlist.Language, wordCount int) (Mnemonic, error) {
	if !validWordCount(wordCount) {
		return Mnemonic{}, fmt.Errorf("%w: got %d", ErrWordCount, wordCount)
	}
	entropy := make([]byte, wordCount/3*4)
	if _, err := rand.Read(entropy); err != nil {
		return Mnemonic{}, fmt.Errorf("read entropy: %w", err)
	}
	defer memzero.Zero(entropy)
	return FromEntropyIn(lang, entropy)
}

// Parse normalizes s, detects its language among the compiled-in word
// lists, and validates word count, vocabulary and checksum.
func Parse(s string) (Mnemonic, error) {
	return parse(s, true)
}

// ParseUnchecked is Parse without the checksum comparison. Word count and
// vocabulary are still enforced. It is meant for recovering entropy or
// seeds from a phrase the caller already trusts, or whose checksum is
// deliberately unverified.
func ParseUnchecked(s string) (Mnemonic, error) {
	return parse(s, false)
}

// ParseIn validates s against one specific language.
func ParseIn(lang wordlist.Language, s string) (Mnemonic, error) {
	return parseIn(lang, normalize(s), true)
}

// ParseInUnchecked is ParseIn without the checksum comparison.
func ParseInUnchecked(lang wordlist.Language, s string) (Mnemonic, error) {
	return parseIn(lang, normalize(s), false)
}

func parse(s string, verify bool) (Mnemonic, error) {
	normalized := normalize(s)
	lang, err := LanguageOf(normalized)
	if err != nil {
		return Mnemonic{}, err
	}
	return parseIn(lang, normalized, verify)
}

func parseIn(lang wordlist.Language, normalized string, verify bool) (Mnemonic, error) {
	words := strings.Fields(normalized)
	if !validWordCount(len(words)) {
		return Mnemonic{}, fmt.Errorf("%w: got %d", ErrWordCount, len(words))
	}

	entropyLen := len(words) / 3 * 4
	data := make([]byte, entropyLen+1)
	defer memzero.Zero(data)
	for i, w := range words {
		idx, ok := lang.Index(w)
		if !ok {
			return Mnemonic{}, fmt.Errorf("%w: %q", ErrUnknownWord, w)
		}
		put11(data, i, idx)
	}

	if verify {
		// The final byte holds the claimed checksum bits, left-aligned,
		// with the remainder zero; Checksum masks its result the same way.
		if data[entropyLen] != crypto.Checksum(data[:entropyLen]) {
			return Mnemonic{}, ErrChecksum
		}
	}
	return Mnemonic{phrase: strings.Join(words, " "), lang: lang}, nil
}

// String returns the canonical space-joined phrase.
func (m Mnemonic) String() string { return m.phrase }

// Words returns the phrase's words in order.
func (m Mnemonic) Words() []string { return strings.Fields(m.phrase) }

// WordCount returns the number of words in the phrase.
func (m Mnemonic) WordCount() int { return len(m.Words()) }

// Language returns the word list the phrase was encoded or parsed with.
func (m Mnemonic) Language() wordlist.Language { return m.lang }

// Entropy decodes the phrase back to the entropy it encodes, dropping the
// checksum bits. It cannot fail on a constructed Mnemonic.
func (m Mnemonic) Entropy() []byte {
	words := m.Words()
	data := make([]byte, len(words)/3*4+1)
	for i, w := range words {
		idx, _ := m.lang.Index(w)
		put11(data, i, idx)
	}
	return data[:len(words)/3*4]
}

// Seed derives the 64-byte seed for the phrase and passphrase. The
// derivation is independent of checksum validity, so phrases from the
// *Unchecked parsers work too. Callers should wipe the result with
// memzero.Zero once it is no longer needed.
func (m Mnemonic) Seed(passphrase string) []byte {
	return crypto.DeriveSeed([]byte(m.phrase), []byte(normalize(passphrase)))
}

// MarshalText encodes the mnemonic as its canonical phrase.
func (m Mnemonic) MarshalText() ([]byte, error) {
	return []byte(m.phrase), nil
}

// UnmarshalText parses a phrase produced by MarshalText, running full
// language detection and checksum validation.
func (m *Mnemonic) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func validWordCount(n int) bool {
	return n%3 == 0 && n >= 12 && n <= 24
}

// group11 reads the i-th 11-bit big-endian group from data.
func group11(data []byte, i int) int {
	v := 0
	for b := i * 11; b < (i+1)*11; b++ {
		v <<= 1
		if data[b/8]&(1<<(7-b%8)) != 0 {
			v |= 1
		}
	}
	return v
}

// put11 writes idx as the i-th 11-bit big-endian group of data.
func put11(data []byte, i, idx int) {
	for j := 0; j < 11; j++ {
		if idx&(1<<(10-j)) != 0 {
			b := i*11 + j
			data[b/8] |= 1 << (7 - b%8)
		}
	}
}
