// Package commands defines the wordseed CLI.
//
// Commands
//
//   - generate     Encode fresh random entropy as a mnemonic
//   - inspect      Validate a mnemonic and report language and entropy
//   - entropy      Print only the entropy a mnemonic encodes
//   - seed         Derive the 64-byte seed from a mnemonic and passphrase
//   - words        Look up word-list entries by prefix
//   - languages    List the compiled-in word lists
//
// # Implementation
//
// Mnemonics are taken from positional arguments or, when absent, read from
// stdin, so phrases can be piped between commands. Passphrases are read
// hidden from the terminal unless passed with --passphrase.
package commands
