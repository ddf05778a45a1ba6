// Package main is the entry point for the qb command.
package main

import (
	"fmt"
	"os"

	"github.com/golobby/qb/cmd/qb/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
