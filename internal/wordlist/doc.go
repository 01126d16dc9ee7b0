// Package wordlist holds the ten published BIP-39 word lists and the
// lookup tables built over them.
//
// Contents
//
//   - Language, an enumeration of the compiled-in lists (All, ParseLanguage)
//   - Index-to-word and word-to-index lookup (Word, Index)
//   - Prefix search over a list (WordsByPrefix)
//
// # Notes
//
// Every list has exactly 2048 entries, stored in NFKD form, and is
// immutable after package init. The reverse index for a language is built
// once on first use and shared by all callers without locking afterwards.
package wordlist
