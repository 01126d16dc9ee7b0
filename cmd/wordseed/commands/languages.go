package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordseed/internal/wordlist"
)

func languagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the compiled-in word lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, lang := range wordlist.All() {
				fmt.Println(lang)
			}
			return nil
		},
	}
}
