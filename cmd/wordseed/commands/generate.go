package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordseed/internal/mnemonic"
	"wordseed/internal/wordlist"
)

func generateCmd() *cobra.Command {
	var (
		words    int
		langName string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Encode fresh random entropy as a mnemonic",
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := wordlist.ParseLanguage(langName)
			if err != nil {
				return err
			}
			m, err := mnemonic.GenerateIn(lang, words)
			if err != nil {
				return err
			}
			fmt.Println(m)
			return nil
		},
	}
	cmd.Flags().IntVarP(&words, "words", "w", 24, "word count (12, 15, 18, 21 or 24)")
	cmd.Flags().StringVarP(&langName, "language", "l", "english", "word list to encode with")
	return cmd
}
