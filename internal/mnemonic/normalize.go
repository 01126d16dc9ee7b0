package mnemonic

import "golang.org/x/text/unicode/norm"

// normalize puts s into NFKD form, so that composed and decomposed
// encodings of the same word compare equal. Word lists are stored in NFKD
// and seed derivation hashes the normalized bytes, so every input passes
// through here exactly once. ASCII text is returned unchanged without
// allocating.
func normalize(s string) string {
	if isASCII(s) {
		return s
	}
	return norm.NFKD.String(s)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
