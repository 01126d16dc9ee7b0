package mnemonic

import (
	"fmt"
	"strings"

	"wordseed/internal/wordlist"
)

// LanguageOf determines which compiled-in word list covers every word of
// the phrase s.
//
// Lists whose vocabulary is unique across all languages are decided by
// the first word alone. The overlapping lists (English/French and the two
// Chinese lists) are eliminated word by word; if more than one survives
// the whole phrase the detection fails with ErrAmbiguousLanguage rather
// than guessing.
func LanguageOf(s string) (wordlist.Language, error) {
	words := strings.Fields(normalize(s))
	if len(words) == 0 {
		return 0, fmt.Errorf("%w: got 0", ErrWordCount)
	}

	var candidates []wordlist.Language
	for _, lang := range wordlist.All() {
		if lang.UniqueWords() {
			if _, ok := lang.Index(words[0]); ok {
				return lang, nil
			}
		} else {
			candidates = append(candidates, lang)
		}
	}

	for _, w := range words {
		kept := candidates[:0]
		for _, lang := range candidates {
			if _, ok := lang.Index(w); ok {
				kept = append(kept, lang)
			}
		}
		candidates = kept

		switch len(candidates) {
		case 1:
			return candidates[0], nil
		case 0:
			return 0, fmt.Errorf("%w: %q", ErrUnknownWord, w)
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrAmbiguousLanguage, candidates)
}
