package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordseed/internal/mnemonic"
)

func entropyCmd() *cobra.Command {
	var unchecked bool
	cmd := &cobra.Command{
		Use:   "entropy [mnemonic...]",
		Short: "Print the entropy a mnemonic encodes",
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
			fmt.Printf("%x\n", m.Entropy())
			return nil
		},
	}
	cmd.Flags().BoolVar(&unchecked, "unchecked", false, "skip checksum verification")
	return cmd
}
