package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"wordseed/internal/util/memzero"
)

func Execute() error {
	root := &cobra.Command{
		Use:   "wordseed",
		Short: "BIP-39 mnemonic and seed tool",
	}
	root.AddCommand(
		generateCmd(),
		inspectCmd(),
		entropyCmd(),
		seedCmd(),
		wordsCmd(),
		languagesCmd(),
	)
	return root.Execute()
}

// readPhrase returns the mnemonic from the positional arguments, or from
// stdin when none are given.
func readPhrase(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// readPassphrase prompts for a passphrase with echo disabled.
func readPassphrase(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return "", err
	}
	defer memzero.Zero(b)
	return string(b), nil
}
