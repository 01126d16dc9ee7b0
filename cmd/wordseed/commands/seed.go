package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordseed/internal/mnemonic"
	"wordseed/internal/util/memzero"
)

func seedCmd() *cobra.Command {
	var (
		passphrase string
		unchecked  bool
	)
	cmd := &cobra.Command{
		Use:   "seed [mnemonic...]",
		Short: "Derive the 64-byte seed from a mnemonic and passphrase",
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase, err := readPhrase(args)
			if err != nil {
				return err
			}
			parse := mnemonic.Parse
			if unchecked {
				parse = mnemonic.ParseUnchecked
			}
			m, err := parse(phrase)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("passphrase") && len(args) > 0 {
				passphrase, err = readPassphrase("Passphrase (empty for none): ")
				if err != nil {
					return err
				}
			}
			seed := m.Seed(passphrase)
			defer memzero.Zero(seed)
			fmt.Printf("%x\n", seed)
			return nil
		},
	}
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase (prompted when omitted)")
	cmd.Flags().BoolVar(&unchecked, "unchecked", false, "skip checksum verification")
	return cmd
}
