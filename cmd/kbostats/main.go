package main

import (
	"os"

	"github.com/wonny/kbostats/cmd/kbostats/commands"
)

// main is the entry point for the portal CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/kbostats [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
