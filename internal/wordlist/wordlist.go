package wordlist

import (
	"fmt"
	"strings"
	"sync"
)

// ListLen is the number of words in every BIP-39 word list.
const ListLen = 2048

// Language selects one of the compiled-in word lists. The zero value is
// English, the only list the BIP-39 reference treats as mandatory.
type Language int

const (
	English Language = iota
	SimplifiedChinese
	TraditionalChinese
	Czech
	French
	Italian
	Japanese
	Korean
	Portuguese
	Spanish

	numLanguages
)

var languageNames = [numLanguages]string{
	English:            "english",
	SimplifiedChinese:  "chinese_simplified",
	TraditionalChinese: "chinese_traditional",
	Czech:              "czech",
	French:             "french",
	Italian:            "italian",
	Japanese:           "japanese",
	Korean:             "korean",
	Portuguese:         "portuguese",
	Spanish:            "spanish",
}

var languageLists = [numLanguages]string{
	English:            englishList,
	SimplifiedChinese:  simplifiedChineseList,
	TraditionalChinese: traditionalChineseList,
	Czech:              czechList,
	French:             frenchList,
	Italian:            italianList,
	Japanese:           japaneseList,
	Korean:             koreanList,
	Portuguese:         portugueseList,
	Spanish:            spanishList,
}

// All returns every language compiled into the binary, in enumeration
// order.
func All() []Language {
	langs := make([]Language, numLanguages)
	for i := range langs {
		langs[i] = Language(i)
	}
	return langs
}

// ParseLanguage maps a list name like "english" or "chinese_simplified"
// to its Language.
func ParseLanguage(name string) (Language, error) {
	for l, n := range languageNames {
		if n == name {
			return Language(l), nil
		}
	}
	return 0, fmt.Errorf("unknown language %q", name)
}

// String returns the list name, e.g. "japanese".
func (l Language) String() string {
	if l < 0 || l >= numLanguages {
		return fmt.Sprintf("Language(%d)", int(l))
	}
	return languageNames[l]
}

// MarshalText encodes the language as its list name.
func (l Language) MarshalText() ([]byte, error) {
	if l < 0 || l >= numLanguages {
		return nil, fmt.Errorf("unknown language %d", int(l))
	}
	return []byte(languageNames[l]), nil
}

// UnmarshalText decodes a list name produced by MarshalText.
func (l *Language) UnmarshalText(text []byte) error {
	parsed, err := ParseLanguage(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// UniqueWords reports whether the language's vocabulary is known to be
// disjoint from every other compiled-in list. English and French share
// words, as do the two Chinese lists.
func (l Language) UniqueWords() bool {
	switch l {
	case English, French, SimplifiedChinese, TraditionalChinese:
		return false
	}
	return true
}

// Word returns the list entry at idx. idx must be in [0, ListLen); a word
// index decoded from an 11-bit group always is.
func (l Language) Word(idx int) string {
	return l.table().words[idx]
}

// Index returns the position of word in the list. The word must already
// be normalized; matching is exact, not by prefix.
func (l Language) Index(word string) (int, bool) {
	idx, ok := l.table().index[word]
	return int(idx), ok
}

// Words returns the full list in index order. The returned slice is
// shared and must not be modified.
func (l Language) Words() []string {
	return l.table().words
}

// WordsByPrefix returns the contiguous run of list entries starting with
// prefix. The empty prefix returns the whole list.
func (l Language) WordsByPrefix(prefix string) []string {
	words := l.table().words
	first := -1
	for i, w := range words {
		if strings.HasPrefix(w, prefix) {
			first = i
			break
		}
	}
	if first < 0 {
		return nil
	}
	n := 0
	for _, w := range words[first:] {
		if !strings.HasPrefix(w, prefix) {
			break
		}
		n++
	}
	return words[first : first+n]
}

type table struct {
	once  sync.Once
	words []string
	index map[string]uint16
}

var tables [numLanguages]table

func (l Language) table() *table {
	t := &tables[l]
	t.once.Do(func() {
		t.words = strings.Split(languageLists[l], "\n")
		if len(t.words) != ListLen {
			panic(fmt.Sprintf("wordlist: %s list has %d entries", l, len(t.words)))
		}
		t.index = make(map[string]uint16, ListLen)
		for i, w := range t.words {
			t.index[w] = uint16(i)
		}
	})
	return t
}
