/*
File    : lumascript/parser/parser.go
Package parser implements a Pratt (top-down operator precedence) parser
for lumascript source code, producing an *ast.Program or a single
syntax error.

The Parser struct shape — a two-token lookahead window refilled by a
dedicated token-pump method — is grounded on go-mix/parser/parser.go's
Lex/CurrToken/NextToken fields. Unlike go-mix, which folds an
environment and constant-folding state into the same struct because its
parser doubles as a light evaluator, lumascript's Parser carries nothing
but lookahead and the automatic-terminator bookkeeping: semantic
analysis is out of scope (spec non-goals).
*/
package parser

import (
	"github.com/lumascript/lumascript/ast"
	"github.com/lumascript/lumascript/errs"
	"github.com/lumascript/lumascript/lexer"
)

// Parser turns a token stream into an AST. Parse constructs one with New
// and drives it over the whole token stream; a Parser is not reusable
// after that.
type Parser struct {
	lex  *lexer.Lexer
	sink *errs.Sink

	current lexer.Token
	next    lexer.Token

	// semicolonSkippableNow records whether a statement terminator may
	// be omitted before the current token, because a NewLine,
	// SymbolRightBrace, or Eof was consumed while the lexer was filling
	// the *next* slot. semicolonSkippableNext accumulates that fact for
	// the upcoming shift; both fields are grounded field-for-field on
	// the reference parser's read_token (spec §4.2.1).
	semicolonSkippableNow  bool
	semicolonSkippableNext bool
}

// New creates a Parser reading from lex. Errors encountered while
// parsing are recorded in sink.
func New(lex *lexer.Lexer, sink *errs.Sink) *Parser {
	p := &Parser{lex: lex, sink: sink}
	p.readToken()
	p.readToken()
	return p
}

// readToken shifts next into current and pulls a fresh token from the
// lexer into next, discarding any run of NewLine tokens along the way.
// A NewLine, or a SymbolRightBrace/Eof (which is kept as next), marks
// the upcoming shift as terminator-optional. It returns false if
// the lexer reported an illegal character, in which case the sink
// already holds the error.
func (p *Parser) readToken() bool {
	p.current = p.next

	p.semicolonSkippableNow = p.semicolonSkippableNext
	p.semicolonSkippableNext = false

	for {
		tok, ok := p.lex.NextToken(p.sink)
		if !ok {
			return false
		}

		switch tok.Type {
		case lexer.NewLine:
			p.semicolonSkippableNext = true
			continue
		case lexer.SymbolRightBrace, lexer.Eof:
			p.semicolonSkippableNext = true
			p.next = tok
		default:
			p.next = tok
		}
		break
	}

	return true
}

// errorf records a syntax error built from format/args and returns
// false, the uniform "stop parsing" signal used throughout this
// package (mirroring the reference parser's Option<T>::None-on-error
// convention).
func (p *Parser) errorf(format string, args ...any) bool {
	p.sink.Set(errs.NewSyntaxError(format, args...))
	return false
}

// unexpected reports a one-token "expected X, but got Y" syntax error,
// the single most common diagnostic shape in this grammar (spec §7).
func (p *Parser) unexpected(expected string) bool {
	return p.errorf("expected token: %s, but got token: %s", expected, p.current.Category())
}

// Parse consumes the entire token stream and returns the resulting
// Program, or nil if a syntax error occurred (retrievable from sink).
func Parse(lex *lexer.Lexer, sink *errs.Sink) *ast.Program {
	p := New(lex, sink)
	if sink.HasError() {
		return nil
	}

	var body []ast.Statement
	for p.current.Type != lexer.Eof {
		stmt, ok := p.parseStatement()
		if !ok {
			return nil
		}
		body = append(body, stmt)
	}

	return &ast.Program{Body: body}
}
