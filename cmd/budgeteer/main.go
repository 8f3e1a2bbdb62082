package main

import (
	"os"

	"github.com/budgeteer-dev/budgeteer/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
