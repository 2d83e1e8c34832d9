package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/jsonfmt/internal/lexer"
)

var (
	evalExpr string
	showType bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize JSON text and print the resulting tokens",
	Long: `Tokenize (lex) JSON text and print the resulting tokens, one per
line, until EOF.

If no file is given, lex reads from standard input.

Examples:
  # Tokenize a file
  jsonfmt lex data.json

  # Tokenize inline text
  jsonfmt lex -e '{"a":1}'

  # Show token type names alongside each token
  jsonfmt lex --show-type data.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline text instead of reading a file")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
}

func lexScript(cmd *cobra.Command, args []string) error {
	input, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	l := lexer.New(input)
	tokenCount := 0

	for {
		tok := l.NextToken()
		tokenCount++
		printToken(tok)
		if tok.Type == lexer.EOF {
			break
		}
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", tokenCount)
	}

	return nil
}

// readSource resolves the lex/parse input precedence: inline eval text,
// then a file argument, then standard input.
func readSource(eval string, args []string) (string, error) {
	if eval != "" {
		return eval, nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("error reading stdin: %w", err)
	}
	return string(data), nil
}

func printToken(tok lexer.Token) {
	var output string

	if showType {
		output = fmt.Sprintf("[%-12s]", tok.Type)
	}

	switch {
	case tok.Type == lexer.EOF:
		output += " EOF"
	case tok.Type == lexer.String:
		output += fmt.Sprintf(" %q", tok.Str)
	case tok.Type == lexer.Number:
		output += fmt.Sprintf(" %g", tok.Num)
	default:
		output += fmt.Sprintf(" %s", tok.Type)
	}

	fmt.Println(output)
}
