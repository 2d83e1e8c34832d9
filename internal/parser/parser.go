// Package parser implements a recursive-descent parser over the token
// stream produced by internal/lexer, building an internal/jsonvalue
// tree per the grammar in spec.md §4.2.
//
// Failure has no dedicated representation: any grammar violation simply
// returns a nil *jsonvalue.Value (the "absent value" sentinel of
// spec.md's glossary). An array whose element is absent fails in turn;
// an object whose member value is absent drops that key and keeps
// parsing the remaining members. There is no recovery and no exception
// unwind — every failure path is an ordinary return.
package parser

import (
	"github.com/cwbudde/jsonfmt/internal/jsonvalue"
	"github.com/cwbudde/jsonfmt/internal/lexer"
)

// Parser owns a Lexer and a single buffered lookahead token.
type Parser struct {
	l            *lexer.Lexer
	currentToken lexer.Token
}

// New constructs a Parser over l and primes currentToken with the first
// token.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.currentToken = p.l.NextToken()
}

// Parse consumes the entire token stream and returns the resulting
// value, or nil if the input violates the grammar.
func (p *Parser) Parse() *jsonvalue.Value {
	return p.parseValue()
}

func (p *Parser) parseValue() *jsonvalue.Value {
	switch p.currentToken.Type {
	case lexer.LeftBrace:
		return p.parseObject()
	case lexer.LeftBracket:
		return p.parseArray()
	case lexer.String:
		v := jsonvalue.NewString(p.currentToken.Str)
		p.advance()
		return v
	case lexer.Number:
		v := jsonvalue.NewNumber(p.currentToken.Num)
		p.advance()
		return v
	case lexer.True:
		p.advance()
		return jsonvalue.NewTrue()
	case lexer.False:
		p.advance()
		return jsonvalue.NewFalse()
	case lexer.Null:
		p.advance()
		return jsonvalue.NewNull()
	default:
		return nil
	}
}

func (p *Parser) parseObject() *jsonvalue.Value {
	if p.currentToken.Type != lexer.LeftBrace {
		return nil
	}
	p.advance()

	obj := jsonvalue.NewObject()

	if p.currentToken.Type == lexer.RightBrace {
		p.advance()
		return obj
	}

	for {
		if p.currentToken.Type != lexer.String {
			return nil
		}
		key := p.currentToken.Str
		p.advance()

		if p.currentToken.Type != lexer.Colon {
			return nil
		}
		p.advance()

		value := p.parseValue()
		if value != nil {
			obj.ObjectSet(key, value)
		}
		// A failed value is silently dropped rather than aborting the
		// whole object (spec.md §4.2 parse_object step c).

		switch p.currentToken.Type {
		case lexer.Comma:
			p.advance()
			continue
		case lexer.RightBrace:
			p.advance()
			return obj
		default:
			return nil
		}
	}
}

func (p *Parser) parseArray() *jsonvalue.Value {
	if p.currentToken.Type != lexer.LeftBracket {
		return nil
	}
	p.advance()

	arr := jsonvalue.NewArray()

	if p.currentToken.Type == lexer.RightBracket {
		p.advance()
		return arr
	}

	for {
		value := p.parseValue()
		if value == nil {
			return nil
		}
		arr.ArrayAppend(value)

		switch p.currentToken.Type {
		case lexer.Comma:
			p.advance()
			continue
		case lexer.RightBracket:
			p.advance()
			return arr
		default:
			return nil
		}
	}
}

// Parse is a convenience wrapper that lexes and parses source in one
// call, returning nil on any grammar violation.
func Parse(source string) *jsonvalue.Value {
	return New(lexer.New(source)).Parse()
}
