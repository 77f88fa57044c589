package main

import (
	"os"

	"github.com/moneybank/moneybank/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
