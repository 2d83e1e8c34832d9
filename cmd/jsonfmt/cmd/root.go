package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "jsonfmt [file]",
	Short: "A streaming JSON lexer, parser, and canonical printer",
	Long: `jsonfmt reads JSON text, tokenizes and parses it into an in-memory
value tree, and pretty-prints it back out in a canonical two-space
indented form.

It implements the JSON grammar directly (structural tokens, strings,
numbers, true/false/null) rather than delegating to encoding/json, so
the lexer, parser, and printer stages are each independently
inspectable via the lex/parse/fmt subcommands.

Run with no subcommand to read a complete JSON document (from a file
argument, or standard input if none is given), parse it, and print its
canonical pretty-printed form to standard output.`,
	Args:    cobra.MaximumNArgs(1),
	Version: Version,
	RunE:    runRoot,
}

// runRoot implements spec.md §6's entry-binary contract directly on the
// root command: read, parse, print the canonical form, or fail with a
// diagnostic on stderr and a non-zero exit.
func runRoot(cmd *cobra.Command, args []string) error {
	return runFmt(cmd, args)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
