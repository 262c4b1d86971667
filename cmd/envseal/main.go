package main

import (
	"os"

	"envseal/cmd/envseal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
