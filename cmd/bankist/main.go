package main

import (
	"os"

	"github.com/bankist-dev/bankist/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
