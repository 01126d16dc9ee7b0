package mnemonic_test

import (
	"bytes"
	"errors"
	"testing"

	"wordseed/internal/mnemonic"
	"wordseed/internal/wordlist"
)

func TestFromEntropyRejectsBadLengths(t *testing.T) {
	for _, n := range []int{0, 4, 15, 17, 36} {
		_, err := mnemonic.FromEntropy(make([]byte, n))
		if !errors.Is(err, mnemonic.ErrEntropyLength) {
			t.Errorf("FromEntropy(%d bytes): %v, want ErrEntropyLength", n, err)
		}
	}
}

func TestParseRejectsInvalidPhrases(t *testing.T) {
	// Valid phrase for reference:
	// "letter advice cage absurd amount doctor acoustic avoid letter advice cage above"
	cases := []struct {
		phrase string
		want   error
	}{
		{
			"getter advice cage absurd amount doctor acoustic avoid letter advice cage above",
			mnemonic.ErrUnknownWord,
		},
		{
			"letter advice cagex absurd amount doctor acoustic avoid letter advice cage above",
			mnemonic.ErrUnknownWord,
		},
		{
			"advice cage absurd amount doctor acoustic avoid letter advice cage above",
			mnemonic.ErrWordCount,
		},
		{
			"primary advice cage absurd amount doctor acoustic avoid letter advice cage above",
			mnemonic.ErrChecksum,
		},
		{
			"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon",
			mnemonic.ErrChecksum,
		},
		{"", mnemonic.ErrWordCount},
	}
	for _, c := range cases {
		_, err := mnemonic.Parse(c.phrase)
		if !errors.Is(err, c.want) {
			t.Errorf("Parse(%q): %v, want %v", c.phrase, err, c.want)
		}
	}
}

func TestParseUnchecked(t *testing.T) {
	// First word swapped, so the checksum no longer matches.
	phrase := "primary advice cage absurd amount doctor acoustic avoid letter advice cage above"

	if _, err := mnemonic.Parse(phrase); !errors.Is(err, mnemonic.ErrChecksum) {
		t.Fatalf("Parse: %v, want ErrChecksum", err)
	}

	m, err := mnemonic.ParseUnchecked(phrase)
	if err != nil {
		t.Fatalf("ParseUnchecked: %v", err)
	}
	inLang, err := mnemonic.ParseInUnchecked(wordlist.English, phrase)
	if err != nil {
		t.Fatalf("ParseInUnchecked: %v", err)
	}
	if m != inLang {
		t.Fatal("ParseUnchecked and ParseInUnchecked disagree")
	}

	// Seed derivation hashes the phrase and ignores the checksum.
	seed := m.Seed("")
	if len(seed) != 64 {
		t.Fatalf("seed length %d", len(seed))
	}
	if !bytes.Equal(seed, inLang.Seed("")) {
		t.Fatal("seeds differ for the same phrase")
	}

	// Vocabulary and word count are still enforced.
	if _, err := mnemonic.ParseUnchecked("getter advice cage"); !errors.Is(err, mnemonic.ErrWordCount) {
		t.Fatalf("ParseUnchecked short phrase: %v, want ErrWordCount", err)
	}
}

func TestGenerateWordCounts(t *testing.T) {
	for _, n := range []int{12, 15, 18, 21, 24} {
		m, err := mnemonic.Generate(n)
		if err != nil {
			t.Fatalf("Generate(%d): %v", n, err)
		}
		if m.WordCount() != n {
			t.Fatalf("Generate(%d): %d words", n, m.WordCount())
		}
		if got := len(m.Entropy()); got != n/3*4 {
			t.Fatalf("Generate(%d): %d entropy bytes", n, got)
		}

		parsed, err := mnemonic.Parse(m.String())
		if err != nil {
			t.Fatalf("Parse(Generate(%d)): %v", n, err)
		}
		if parsed != m {
			t.Fatalf("Generate(%d): parse round trip differs", n)
		}

		recoded, err := mnemonic.FromEntropy(m.Entropy())
		if err != nil {
			t.Fatalf("FromEntropy(Entropy()): %v", err)
		}
		if recoded != m {
			t.Fatalf("Generate(%d): entropy round trip differs", n)
		}
	}

	for _, n := range []int{0, 9, 13, 27} {
		if _, err := mnemonic.Generate(n); !errors.Is(err, mnemonic.ErrWordCount) {
			t.Errorf("Generate(%d): %v, want ErrWordCount", n, err)
		}
	}
}

func TestGenerateInAllLanguages(t *testing.T) {
	for _, lang := range wordlist.All() {
		m, err := mnemonic.GenerateIn(lang, 24)
		if err != nil {
			t.Fatalf("GenerateIn(%s): %v", lang, err)
		}
		if m.Language() != lang {
			t.Fatalf("GenerateIn(%s): language %s", lang, m.Language())
		}

		detected, err := mnemonic.LanguageOf(m.String())
		if err != nil {
			t.Fatalf("LanguageOf(%s phrase): %v", lang, err)
		}
		if detected != lang {
			t.Fatalf("LanguageOf(%s phrase) = %s", lang, detected)
		}

		parsed, err := mnemonic.ParseIn(lang, m.String())
		if err != nil {
			t.Fatalf("ParseIn(%s): %v", lang, err)
		}
		if parsed != m {
			t.Fatalf("GenerateIn(%s): parse round trip differs", lang)
		}
	}
}

func TestSeedPassphraseNormalization(t *testing.T) {
	m, err := mnemonic.Parse(englishVectors[0].phrase)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// Composed and decomposed encodings of the same passphrase.
	composed := m.Seed("café")
	decomposed := m.Seed("café")
	if !bytes.Equal(composed, decomposed) {
		t.Fatal("seeds differ between NFC and NFD passphrase encodings")
	}
	if bytes.Equal(composed, m.Seed("cafe")) {
		t.Fatal("passphrase accent did not change the seed")
	}
}

func TestMnemonicText(t *testing.T) {
	m, err := mnemonic.Parse(englishVectors[0].phrase)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	text, err := m.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(text) != englishVectors[0].phrase {
		t.Fatalf("MarshalText = %q", text)
	}

	var decoded mnemonic.Mnemonic
	if err := decoded.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if decoded != m {
		t.Fatal("text round trip differs")
	}

	err = decoded.UnmarshalText([]byte("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon"))
	if !errors.Is(err, mnemonic.ErrChecksum) {
		t.Fatalf("UnmarshalText invalid phrase: %v, want ErrChecksum", err)
	}
}
