package main

import (
	"fmt"
	"os"

	"github.com/Ramya-Perumal-code/ai-trip-agent/cmd/trip-agent-cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
