package main

import (
	"os"

	"github.com/medwise/llmcost/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
