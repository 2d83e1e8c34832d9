// Command jsonfmt is the CLI entry point: lex, parse, and fmt
// subcommands over the internal/lexer, internal/parser, and pkg/printer
// packages.
package main

import (
	"os"

	"github.com/cwbudde/jsonfmt/cmd/jsonfmt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
