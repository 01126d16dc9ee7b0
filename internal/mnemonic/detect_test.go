package mnemonic_test

import (
	"errors"
	"testing"

	"wordseed/internal/mnemonic"
	"wordseed/internal/wordlist"
)

func TestLanguageOf(t *testing.T) {
	cases := []struct {
		phrase string
		want   wordlist.Language
	}{
		// A unique-vocabulary list is decided by the first word alone.
		{"abdikace", wordlist.Czech},
		{"あいこくしん", wordlist.Japanese},
		// "zebra" is English-only, so one word past the shared
		// vocabulary settles English versus French.
		{"abandon amateur angle animal zebra", wordlist.English},
		{"letter advice cage absurd", wordlist.English},
	}
	for _, c := range cases {
		got, err := mnemonic.LanguageOf(c.phrase)
		if err != nil {
			t.Errorf("LanguageOf(%q): %v", c.phrase, err)
			continue
		}
		if got != c.want {
			t.Errorf("LanguageOf(%q) = %s, want %s", c.phrase, got, c.want)
		}
	}
}

func TestLanguageOfAmbiguous(t *testing.T) {
	// Every word here appears in both the English and French lists.
	phrase := "abandon amateur angle animal aspect badge bicycle bonus brave canal capable caution"

	_, err := mnemonic.LanguageOf(phrase)
	if !errors.Is(err, mnemonic.ErrAmbiguousLanguage) {
		t.Fatalf("LanguageOf: %v, want ErrAmbiguousLanguage", err)
	}

	// Detection-based parsing fails the same way, while naming a list
	// explicitly resolves it.
	if _, err := mnemonic.Parse(phrase); !errors.Is(err, mnemonic.ErrAmbiguousLanguage) {
		t.Fatalf("Parse: %v, want ErrAmbiguousLanguage", err)
	}
	if _, err := mnemonic.ParseInUnchecked(wordlist.French, phrase); err != nil {
		t.Fatalf("ParseInUnchecked(french): %v", err)
	}
}

func TestLanguageOfErrors(t *testing.T) {
	if _, err := mnemonic.LanguageOf(""); !errors.Is(err, mnemonic.ErrWordCount) {
		t.Fatalf("LanguageOf(\"\"): %v, want ErrWordCount", err)
	}
	_, err := mnemonic.LanguageOf("notaword")
	if !errors.Is(err, mnemonic.ErrUnknownWord) {
		t.Fatalf("LanguageOf(notaword): %v, want ErrUnknownWord", err)
	}
	// A phrase that starts valid but wanders off every list.
	_, err = mnemonic.LanguageOf("abandon amateur notaword")
	if !errors.Is(err, mnemonic.ErrUnknownWord) {
		t.Fatalf("LanguageOf: %v, want ErrUnknownWord", err)
	}
}
