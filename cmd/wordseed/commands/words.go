package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordseed/internal/wordlist"
)

func wordsCmd() *cobra.Command {
	var langName string
	cmd := &cobra.Command{
		Use:   "words <prefix>",
		Short: "Look up word-list entries by prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := wordlist.ParseLanguage(langName)
			if err != nil {
				return err
			}
			for _, w := range lang.WordsByPrefix(args[0]) {
				fmt.Println(w)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&langName, "language", "l", "english", "word list to search")
	return cmd
}
