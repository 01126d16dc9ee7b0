package main

import (
	"os"

	"wordseed/cmd/wordseed/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
