// Package main provides the CLI entrypoint for mock-factory.
//
// mock-factory synthesizes example values from type descriptors:
//   - declared in a YAML schema file (generate)
//   - extracted from Go packages (analyze)
package main

import (
	"fmt"
	"os"

	"mock-factory/cmd/mock-factory/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
