package main

import (
	"os"

	"bolt/cmd/bolt/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
