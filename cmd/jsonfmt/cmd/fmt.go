package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/jsonfmt/internal/parser"
	"github.com/cwbudde/jsonfmt/pkg/printer"
)

var (
	fmtWrite     bool   // -w: write result to (source) file instead of stdout
	fmtList      bool   // -l: list files whose formatting differs
	fmtDiff      bool   // -d: display diffs instead of rewriting files
	fmtStyle     string // --style: pretty or compact
	fmtIndent    int    // --indent: number of spaces per indentation level
	fmtRecursive bool   // -r: process directories recursively
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [files or directories...]",
	Short: "Format JSON text into its canonical form",
	Long: `Format JSON text by parsing it into a value tree and pretty-printing
it back out in a canonical, deterministic form.

By default, fmt formats the files named on the command line and writes
the result to standard output. If no path is provided, it reads from
standard input.

Flags:
  -w         write result to (source) file instead of stdout
  -l         list files whose formatting differs
  -d         display diffs instead of rewriting files
  -r         process directories recursively
  --style    pretty (default) or compact
  --indent   number of spaces per indentation level (default: 2)

Examples:
  # Format a single file to stdout
  jsonfmt fmt data.json

  # Format and overwrite files
  jsonfmt fmt -w a.json b.json

  # Format from stdin
  cat data.json | jsonfmt fmt

  # List all files that need formatting
  jsonfmt fmt -l -r src/

  # Use compact style
  jsonfmt fmt --style compact data.json`,
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result to (source) file instead of stdout")
	fmtCmd.Flags().BoolVarP(&fmtList, "list", "l", false, "list files whose formatting differs")
	fmtCmd.Flags().BoolVarP(&fmtDiff, "diff", "d", false, "display diffs instead of rewriting files")
	fmtCmd.Flags().BoolVarP(&fmtRecursive, "recursive", "r", false, "process directories recursively")
	fmtCmd.Flags().StringVar(&fmtStyle, "style", "pretty", "formatting style: pretty or compact")
	fmtCmd.Flags().IntVar(&fmtIndent, "indent", 2, "number of spaces per indentation level")
}

func runFmt(cmd *cobra.Command, args []string) error {
	if fmtWrite && fmtList {
		return fmt.Errorf("cannot use -w and -l together")
	}
	if fmtWrite && fmtDiff {
		return fmt.Errorf("cannot use -w and -d together")
	}

	var style printer.Style
	switch strings.ToLower(fmtStyle) {
	case "pretty":
		style = printer.StylePretty
	case "compact":
		style = printer.StyleCompact
	default:
		return fmt.Errorf("unknown style: %s (use pretty or compact)", fmtStyle)
	}

	opts := printer.Options{Style: style, IndentWidth: fmtIndent}

	if len(args) == 0 {
		return formatStdin(opts)
	}

	hasErrors := false
	for _, path := range args {
		if err := processPath(path, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", path, err)
			hasErrors = true
		}
	}

	if hasErrors {
		return fmt.Errorf("formatting failed for one or more files")
	}

	return nil
}

func processPath(path string, opts printer.Options) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if info.IsDir() {
		if fmtRecursive {
			return processDirectory(path, opts)
		}
		return fmt.Errorf("%s is a directory (use -r to process recursively)", path)
	}

	return formatFile(path, opts)
}

// processDirectory recursively processes all .json files in a directory.
func processDirectory(dir string, opts printer.Options) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".json") {
			return nil
		}
		if err := formatFile(path, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting %s: %v\n", path, err)
		}
		return nil
	})
}

func formatStdin(opts printer.Options) error {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("error reading stdin: %w", err)
	}

	formatted, err := formatSource(string(src), opts)
	if err != nil {
		return err
	}

	fmt.Println(formatted)
	return nil
}

func formatFile(filename string, opts printer.Options) error {
	src, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	original := string(src)
	formatted, err := formatSource(original, opts)
	if err != nil {
		return err
	}

	changed := original != formatted

	switch {
	case fmtList:
		if changed {
			fmt.Println(filename)
		}

	case fmtDiff:
		if changed {
			fmt.Printf("--- %s (original)\n", filename)
			fmt.Printf("+++ %s (formatted)\n", filename)
			showDiff(original, formatted)
		}

	case fmtWrite:
		if changed {
			if err := os.WriteFile(filename, []byte(formatted), 0644); err != nil {
				return fmt.Errorf("error writing file: %w", err)
			}
		}

	default:
		fmt.Println(formatted)
	}

	return nil
}

// formatSource parses and formats JSON text. A nil parse result means
// the input does not form a valid value (the parser's absent-value
// sentinel); that is surfaced to the caller as an ordinary error.
func formatSource(source string, opts printer.Options) (string, error) {
	value := parser.Parse(source)
	if value == nil {
		return "", fmt.Errorf("input does not form a valid JSON value")
	}

	pr := printer.New(opts)
	return pr.Print(value), nil
}

// showDiff shows a simple line-by-line diff.
func showDiff(original, formatted string) {
	origLines := strings.Split(original, "\n")
	fmtLines := strings.Split(formatted, "\n")

	maxLines := len(origLines)
	if len(fmtLines) > maxLines {
		maxLines = len(fmtLines)
	}

	for i := 0; i < maxLines; i++ {
		var origLine, fmtLine string
		if i < len(origLines) {
			origLine = origLines[i]
		}
		if i < len(fmtLines) {
			fmtLine = fmtLines[i]
		}

		if origLine != fmtLine {
			if origLine != "" {
				fmt.Printf("- %s\n", origLine)
			}
			if fmtLine != "" {
				fmt.Printf("+ %s\n", fmtLine)
			}
		}
	}
}

// isFormattedCorrectly reports whether source is already in canonical form.
func isFormattedCorrectly(source string, opts printer.Options) (bool, error) {
	formatted, err := formatSource(source, opts)
	if err != nil {
		return false, err
	}
	return source == formatted, nil
}

// FormatBytes formats JSON text provided as bytes. Useful for embedding
// jsonfmt's formatter in other tools.
func FormatBytes(src []byte, opts printer.Options) ([]byte, error) {
	formatted, err := formatSource(string(src), opts)
	if err != nil {
		return nil, err
	}
	return []byte(formatted), nil
}

// FormatFile formats a file in place. Returns true if the file was
// modified.
func FormatFile(filename string, opts printer.Options) (bool, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return false, err
	}

	formatted, err := FormatBytes(src, opts)
	if err != nil {
		return false, err
	}

	changed := !bytes.Equal(src, formatted)
	if changed {
		if err := os.WriteFile(filename, formatted, 0644); err != nil {
			return false, err
		}
	}

	return changed, nil
}
