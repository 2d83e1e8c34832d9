package parser

import (
	"testing"

	"github.com/cwbudde/jsonfmt/internal/jsonvalue"
)

func TestParseScalars(t *testing.T) {
	tests := []struct {
		input string
		kind  jsonvalue.Kind
	}{
		{"true", jsonvalue.KindTrue},
		{"false", jsonvalue.KindFalse},
		{"null", jsonvalue.KindNull},
		{`"hello"`, jsonvalue.KindString},
		{"-123.45", jsonvalue.KindNumber},
	}

	for _, tt := range tests {
		v := Parse(tt.input)
		if v.Kind() != tt.kind {
			t.Errorf("Parse(%q).Kind() = %v, want %v", tt.input, v.Kind(), tt.kind)
		}
	}
}

func TestParseArray(t *testing.T) {
	v := Parse("[1,2,3]")
	if v.Kind() != jsonvalue.KindArray {
		t.Fatalf("Kind() = %v, want KindArray", v.Kind())
	}
	elems := v.ArrayElements()
	if len(elems) != 3 {
		t.Fatalf("len(elems) = %d, want 3", len(elems))
	}
	for i, want := range []float64{1, 2, 3} {
		if elems[i].NumberValue() != want {
			t.Errorf("elems[%d] = %v, want %v", i, elems[i].NumberValue(), want)
		}
	}
}

func TestParseEmptyArray(t *testing.T) {
	v := Parse("[]")
	if v.Kind() != jsonvalue.KindArray || v.ArrayLen() != 0 {
		t.Fatalf("Parse(\"[]\") = %#v, want empty array", v)
	}
}

func TestParseEmptyObject(t *testing.T) {
	v := Parse("{}")
	if v.Kind() != jsonvalue.KindObject || len(v.ObjectKeys()) != 0 {
		t.Fatalf("Parse(\"{}\") = %#v, want empty object", v)
	}
}

func TestParseObjectPreservesKeyOrder(t *testing.T) {
	v := Parse(`{"str":"hello","num":-32.054,"array":[1,2,3]}`)
	if v.Kind() != jsonvalue.KindObject {
		t.Fatalf("Kind() = %v, want KindObject", v.Kind())
	}
	keys := v.ObjectKeys()
	want := []string{"str", "num", "array"}
	if len(keys) != len(want) {
		t.Fatalf("ObjectKeys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("ObjectKeys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}

	if got := v.ObjectGet("str").StringValue(); got != "hello" {
		t.Errorf(`ObjectGet("str") = %q, want "hello"`, got)
	}
	if got := v.ObjectGet("array").ArrayLen(); got != 3 {
		t.Errorf(`ObjectGet("array").ArrayLen() = %d, want 3`, got)
	}
}

func TestParseNestedMixedContainers(t *testing.T) {
	v := Parse(`[1,[2,[3,[4]]]]`)
	if v.Kind() != jsonvalue.KindArray {
		t.Fatalf("Kind() = %v, want KindArray", v.Kind())
	}
	cursor := v
	for depth := 0; depth < 3; depth++ {
		elems := cursor.ArrayElements()
		if len(elems) != 2 {
			t.Fatalf("depth %d: len(elems) = %d, want 2", depth, len(elems))
		}
		cursor = elems[1]
	}
}

func TestParseBoundaryFailures(t *testing.T) {
	tests := []string{
		"",
		"   ",
		`{"a":1,}`,
		`[1,2,]`,
		`{a:1}`,
		`{"a":1`,
		`[1,2`,
		`{"a" 1}`,
	}

	for _, input := range tests {
		if v := Parse(input); v != nil {
			t.Errorf("Parse(%q) = %#v, want nil (absent value)", input, v)
		}
	}
}

func TestParseObjectDropsFailedValueButKeepsParsing(t *testing.T) {
	// spec.md §4.2 parse_object step c: an absent inner value silently
	// drops that key, it does not abort the whole object. Here "a" has no
	// value token before the comma, so "a" is dropped and "b" still parses.
	v := Parse(`{"a":,"b":2}`)
	if v.Kind() != jsonvalue.KindObject {
		t.Fatalf("Kind() = %v, want KindObject", v.Kind())
	}
	if v.ObjectGet("a") != nil || v.ObjectGet("b").NumberValue() != 2 {
		t.Fatalf("unexpected object contents: %v", v.ObjectKeys())
	}
}

func TestParseDuplicateKeysLastWriteWins(t *testing.T) {
	v := Parse(`{"a":1,"a":2}`)
	if got := v.ObjectGet("a").NumberValue(); got != 2 {
		t.Fatalf(`ObjectGet("a") = %v, want 2`, got)
	}
	if keys := v.ObjectKeys(); len(keys) != 1 {
		t.Fatalf("ObjectKeys() = %v, want single entry", keys)
	}
}

func TestParseRepeatedParsesAreEqual(t *testing.T) {
	inputs := []string{
		"true", "false", "null",
		`"hello"`,
		"12345", "123.45", "-123.45",
		"[1,2,3]",
		`{"a":1,"b":[1,2,3]}`,
	}
	for _, input := range inputs {
		first := Parse(input)
		second := Parse(input)
		if !jsonvalue.Equal(first, second) {
			t.Errorf("Parse(%q) not self-consistent between calls", input)
		}
	}
}
