package wordlist_test

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"wordseed/internal/wordlist"
)

// Digests of each list as published alongside the reference word lists:
// SHA-256 over the words joined by newlines, with a trailing newline.
var listDigests = map[wordlist.Language]string{
	wordlist.English:            "2f5eed53a4727b4bf8880d8f3f199efc90e58503646d9ff8eff3a2ed3b24dbda",
	wordlist.SimplifiedChinese:  "5c5942792bd8340cb8b27cd592f1015edf56a8c5b26276ee18a482428e7c5726",
	wordlist.TraditionalChinese: "417b26b3d8500a4ae3d59717d7011952db6fc2fb84b807f3f94ac734e89c1b5f",
	wordlist.Czech:              "7e80e161c3e93d9554c2efb78d4e3cebf8fc727e9c52e03b83b94406bdcc95fc",
	wordlist.French:             "ebc3959ab7801a1df6bac4fa7d970652f1df76b683cd2f4003c941c63d517e59",
	wordlist.Italian:            "d392c49fdb700a24cd1fceb237c1f65dcc128f6b34a8aacb58b59384b5c648c2",
	wordlist.Japanese:           "2eed0aef492291e061633d7ad8117f1a2b03eb80a29d0e4e3117ac2528d05ffd",
	wordlist.Korean:             "9e95f86c167de88f450f0aaf89e87f6624a57f973c67b516e338e8e8b8897f60",
	wordlist.Portuguese:         "2685e9c194c82ae67e10ba59d9ea5345a23dc093e92276fc5361f6667d79cd3f",
	wordlist.Spanish:            "46846a5a0139d1e3cb77293e521c2865f7bcdb82c44e8d0a06a2cd0ecba48c0b",
}

func TestListDigests(t *testing.T) {
	for _, lang := range wordlist.All() {
		sum := sha256.Sum256([]byte(strings.Join(lang.Words(), "\n") + "\n"))
		if got := hex.EncodeToString(sum[:]); got != listDigests[lang] {
			t.Errorf("%s: list digest %s, want %s", lang, got, listDigests[lang])
		}
	}
}

func TestIndexRoundTrip(t *testing.T) {
	for _, lang := range wordlist.All() {
		words := lang.Words()
		if len(words) != wordlist.ListLen {
			t.Fatalf("%s: %d words, want %d", lang, len(words), wordlist.ListLen)
		}
		for i, w := range words {
			if lang.Word(i) != w {
				t.Fatalf("%s: Word(%d) = %q, want %q", lang, i, lang.Word(i), w)
			}
			idx, ok := lang.Index(w)
			if !ok || idx != i {
				t.Fatalf("%s: Index(%q) = %d, %v, want %d", lang, w, idx, ok, i)
			}
		}
	}
}

func TestUniqueWords(t *testing.T) {
	for _, lang := range wordlist.All() {
		if !lang.UniqueWords() {
			continue
		}
		for _, other := range wordlist.All() {
			if other == lang {
				continue
			}
			for _, w := range lang.Words() {
				if _, ok := other.Index(w); ok {
					t.Fatalf("%s claims unique words but shares %q with %s", lang, w, other)
				}
			}
		}
	}

	// The known overlaps that force UniqueWords to report false.
	if _, ok := wordlist.French.Index("abandon"); !ok {
		t.Error("expected English/French to share \"abandon\"")
	}
	shared := false
	for _, w := range wordlist.SimplifiedChinese.Words() {
		if _, ok := wordlist.TraditionalChinese.Index(w); ok {
			shared = true
			break
		}
	}
	if !shared {
		t.Error("expected the Chinese lists to overlap")
	}
}

func TestWordsByPrefix(t *testing.T) {
	got := wordlist.English.WordsByPrefix("woo")
	if len(got) != 2 || got[0] != "wood" || got[1] != "wool" {
		t.Fatalf("WordsByPrefix(woo) = %v, want [wood wool]", got)
	}
	if got := wordlist.English.WordsByPrefix("zoo"); len(got) != 1 || got[0] != "zoo" {
		t.Fatalf("WordsByPrefix(zoo) = %v, want [zoo]", got)
	}
	if got := wordlist.English.WordsByPrefix(""); len(got) != wordlist.ListLen {
		t.Fatalf("WordsByPrefix(\"\") returned %d words", len(got))
	}
	if got := wordlist.English.WordsByPrefix("zzz"); got != nil {
		t.Fatalf("WordsByPrefix(zzz) = %v, want nil", got)
	}
}

func TestParseLanguage(t *testing.T) {
	for _, lang := range wordlist.All() {
		parsed, err := wordlist.ParseLanguage(lang.String())
		if err != nil {
			t.Fatalf("ParseLanguage(%s): %v", lang, err)
		}
		if parsed != lang {
			t.Fatalf("ParseLanguage(%s) = %s", lang, parsed)
		}
	}
	if _, err := wordlist.ParseLanguage("klingon"); err == nil {
		t.Fatal("ParseLanguage accepted an unknown name")
	}
}

func TestLanguageText(t *testing.T) {
	text, err := wordlist.Japanese.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(text) != "japanese" {
		t.Fatalf("MarshalText = %q", text)
	}
	var lang wordlist.Language
	if err := lang.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if lang != wordlist.Japanese {
		t.Fatalf("UnmarshalText = %s", lang)
	}
	if err := lang.UnmarshalText([]byte("klingon")); err == nil {
		t.Fatal("UnmarshalText accepted an unknown name")
	}
}
