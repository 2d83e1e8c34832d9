// Package printer renders an internal/jsonvalue tree back to text. The
// default Style produces the canonical two-space-indented form of
// spec.md §4.3 and §6; StyleCompact renders the same tree with no
// whitespace at all, an enrichment beyond the minimal spec grounded on
// the teacher's own printer.Style distinction (detailed vs compact).
//
// The printer does not re-escape quotes or control characters found
// inside String payloads (spec.md §9 Open Question 2): a String value
// containing `"` will produce syntactically invalid JSON text. This is
// a known, intentional limitation of the core, not an oversight.
package printer

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/cwbudde/jsonfmt/internal/jsonvalue"
)

// Style selects the overall layout of the printed text.
type Style int

const (
	// StylePretty is the canonical indented form specified by spec.md §4.3.
	StylePretty Style = iota
	// StyleCompact renders the same tree with no inter-token whitespace.
	StyleCompact
)

// Options configures a Printer.
type Options struct {
	Style Style
	// IndentWidth is the number of spaces per indentation level in
	// StylePretty. Zero means "use the default of 2".
	IndentWidth int
}

// DefaultOptions returns the canonical two-space StylePretty options.
func DefaultOptions() Options {
	return Options{Style: StylePretty, IndentWidth: 2}
}

// Printer renders jsonvalue.Value trees according to its Options.
type Printer struct {
	opts Options
}

// New creates a Printer with the given options, defaulting IndentWidth
// to 2 when unset.
func New(opts Options) *Printer {
	if opts.IndentWidth <= 0 {
		opts.IndentWidth = 2
	}
	return &Printer{opts: opts}
}

// Print renders v to text. The top-level call always starts at
// indentation level 0, matching spec.md §4.3's "top-level call passes
// indent = 0".
func (pr *Printer) Print(v *jsonvalue.Value) string {
	var sb strings.Builder
	pr.print(&sb, v, 0)
	return sb.String()
}

// Print renders v using the canonical two-space StylePretty form,
// matching spec.md §4.3/§6 exactly. It is the free function used by the
// rest of this module; Printer exists for callers that want to
// configure Style/IndentWidth once and render many values.
func Print(v *jsonvalue.Value, indent int) string {
	var sb strings.Builder
	New(DefaultOptions()).print(&sb, v, indent)
	return sb.String()
}

func (pr *Printer) print(sb *strings.Builder, v *jsonvalue.Value, indent int) {
	switch v.Kind() {
	case jsonvalue.KindNull:
		sb.WriteString("null")
	case jsonvalue.KindTrue:
		sb.WriteString("true")
	case jsonvalue.KindFalse:
		sb.WriteString("false")
	case jsonvalue.KindNumber:
		sb.WriteString(formatNumber(v.NumberValue()))
	case jsonvalue.KindString:
		sb.WriteByte('"')
		sb.WriteString(norm.NFC.String(v.StringValue()))
		sb.WriteByte('"')
	case jsonvalue.KindArray:
		pr.printArray(sb, v, indent)
	case jsonvalue.KindObject:
		pr.printObject(sb, v, indent)
	}
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}

func (pr *Printer) printArray(sb *strings.Builder, v *jsonvalue.Value, indent int) {
	elems := v.ArrayElements()
	compact := pr.opts.Style == StyleCompact

	sb.WriteByte('[')
	if !compact {
		sb.WriteByte('\n')
	}

	childIndent := indent + pr.opts.IndentWidth
	for i, elem := range elems {
		if !compact {
			sb.WriteString(strings.Repeat(" ", childIndent))
		}
		pr.print(sb, elem, childIndent)
		if i < len(elems)-1 {
			sb.WriteByte(',')
		}
		if !compact {
			sb.WriteByte('\n')
		}
	}

	if !compact {
		sb.WriteString(strings.Repeat(" ", indent))
	}
	sb.WriteByte(']')
}

func (pr *Printer) printObject(sb *strings.Builder, v *jsonvalue.Value, indent int) {
	keys := v.ObjectKeys()
	compact := pr.opts.Style == StyleCompact

	sb.WriteByte('{')
	if !compact {
		sb.WriteByte('\n')
	}

	childIndent := indent + pr.opts.IndentWidth
	for i, key := range keys {
		if !compact {
			sb.WriteString(strings.Repeat(" ", childIndent))
		}
		sb.WriteByte('"')
		sb.WriteString(key)
		sb.WriteByte('"')
		if compact {
			sb.WriteByte(':')
		} else {
			sb.WriteString(": ")
		}
		pr.print(sb, v.ObjectGet(key), childIndent)
		if i < len(keys)-1 {
			sb.WriteByte(',')
		}
		if !compact {
			sb.WriteByte('\n')
		}
	}

	if !compact {
		sb.WriteString(strings.Repeat(" ", indent))
	}
	sb.WriteByte('}')
}
