package main

import (
	"os"

	"github.com/budgetd-dev/budgetd/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
