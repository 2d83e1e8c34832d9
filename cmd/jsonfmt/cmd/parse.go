package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/jsonfmt/internal/jsonvalue"
	"github.com/cwbudde/jsonfmt/internal/parser"
	"github.com/cwbudde/jsonfmt/pkg/printer"
)

var (
	parseExpression bool
	parseDumpTree   bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse JSON text and display the resulting value tree",
	Long: `Parse JSON text into the in-memory value tree and print it.

If no file is provided, reads from stdin. Use -e to parse a single
expression from the command line. Use --dump-tree to show the
kind-by-kind structure of the tree instead of its canonical form.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false, "parse text given on the command line")
	parseCmd.Flags().BoolVar(&parseDumpTree, "dump-tree", false, "dump the value tree structure")
}

func runParse(cmd *cobra.Command, args []string) error {
	var input string
	if parseExpression {
		if len(args) == 0 {
			return fmt.Errorf("no expression provided")
		}
		input = args[0]
	} else {
		src, err := readSource("", args)
		if err != nil {
			return err
		}
		input = src
	}

	value := parser.Parse(input)
	if value == nil {
		fmt.Fprintln(os.Stderr, "parse error: input does not form a valid JSON value")
		return fmt.Errorf("parsing failed")
	}

	if parseDumpTree {
		dumpValue(value, 0)
	} else {
		fmt.Println(printer.Print(value, 0))
	}

	return nil
}

func dumpValue(v *jsonvalue.Value, indent int) {
	prefix := ""
	for i := 0; i < indent; i++ {
		prefix += "  "
	}

	switch v.Kind() {
	case jsonvalue.KindObject:
		keys := v.ObjectKeys()
		fmt.Printf("%sObject (%d keys)\n", prefix, len(keys))
		for _, key := range keys {
			fmt.Printf("%s  %q:\n", prefix, key)
			dumpValue(v.ObjectGet(key), indent+2)
		}
	case jsonvalue.KindArray:
		elems := v.ArrayElements()
		fmt.Printf("%sArray (%d elements)\n", prefix, len(elems))
		for _, elem := range elems {
			dumpValue(elem, indent+1)
		}
	case jsonvalue.KindString:
		fmt.Printf("%sString: %q\n", prefix, v.StringValue())
	case jsonvalue.KindNumber:
		fmt.Printf("%sNumber: %g\n", prefix, v.NumberValue())
	default:
		fmt.Printf("%s%s\n", prefix, v.Kind())
	}
}
