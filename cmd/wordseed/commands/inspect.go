package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordseed/internal/mnemonic"
)

func inspectCmd() *cobra.Command {
	var unchecked bool
	cmd := &cobra.Command{
		Use:   "inspect [mnemonic...]",
		Short: "Validate a mnemonic and report language and entropy",
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
			fmt.Printf("Language: %s\n", m.Language())
			fmt.Printf("Words:    %d\n", m.WordCount())
			fmt.Printf("Entropy:  %x\n", m.Entropy())
			return nil
		},
	}
	cmd.Flags().BoolVar(&unchecked, "unchecked", false, "skip checksum verification")
	return cmd
}
