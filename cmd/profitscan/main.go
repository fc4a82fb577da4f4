package main

import (
	"os"

	"github.com/katalvlaran/profitscan/cmd/profitscan/commands"
)

// main is the entry point for the profitscan CLI.
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
