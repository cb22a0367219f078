/*
File : lumascript/parser/parser_statements.go
Statement-position parsing: dispatch plus every keyword-led statement
form. Grounded field-for-field on the reference parser's parse_statement
and its parse_*_statement siblings (spec §4.2).
*/
package parser

import (
	"github.com/lumascript/lumascript/ast"
	"github.com/lumascript/lumascript/lexer"
)

func (p *Parser) parseStatement() (ast.Statement, bool) {
	switch p.current.Type {
	case lexer.SymbolLeftBrace:
		return p.parseBlockStatement()
	case lexer.KeywordIf:
		return p.parseIfStatement()
	case lexer.KeywordLoop:
		return p.parseLoopStatement()
	case lexer.KeywordReturn:
		return p.parseReturnStatement()
	case lexer.KeywordBreak:
		return p.parseBreakStatement()
	case lexer.KeywordContinue:
		return p.parseContinueStatement()
	default:
		return p.parseAssignmentOrExpressionStatement()
	}
}

// consumeTerminator consumes a trailing SymbolSemicolon if present, or
// accepts its absence when semicolonSkippableNow is set (spec §4.2.1's
// automatic terminator rule). It reports an error otherwise.
func (p *Parser) consumeTerminator() bool {
	if p.current.Type == lexer.SymbolSemicolon {
		return p.readToken()
	}
	if p.semicolonSkippableNow {
		return true
	}
	return p.unexpected(lexer.SymbolSemicolon.Category())
}

func (p *Parser) parseBlockStatement() (*ast.Block, bool) {
	if !p.readToken() {
		return nil, false
	}

	var body []ast.Statement
	for p.current.Type != lexer.SymbolRightBrace {
		if p.current.Type == lexer.Eof {
			return nil, p.unexpected(lexer.SymbolRightBrace.Category())
		}

		stmt, ok := p.parseStatement()
		if !ok {
			return nil, false
		}
		body = append(body, stmt)
	}

	if !p.readToken() {
		return nil, false
	}

	return &ast.Block{Body: body}, true
}

func (p *Parser) parseIfStatement() (*ast.If, bool) {
	if !p.readToken() {
		return nil, false
	}

	condition, ok := p.parseExpression(ast.PrecedenceLowest)
	if !ok {
		return nil, false
	}

	if p.current.Type != lexer.SymbolLeftBrace {
		return nil, p.unexpected(lexer.SymbolLeftBrace.Category())
	}

	consequent, ok := p.parseBlockStatement()
	if !ok {
		return nil, false
	}

	var alternate ast.Statement = &ast.Empty{}
	if p.current.Type == lexer.KeywordElse {
		if !p.readToken() {
			return nil, false
		}

		if p.current.Type == lexer.SymbolLeftBrace || p.current.Type == lexer.KeywordIf {
			alternate, ok = p.parseStatement()
			if !ok {
				return nil, false
			}
		} else {
			return nil, p.errorf(
				"expected token: %s or token: %s, but got token: %s",
				lexer.SymbolLeftBrace.Category(), lexer.KeywordIf.Category(), p.current.Category(),
			)
		}
	}

	return &ast.If{Condition: condition, Consequent: consequent, Alternate: alternate}, true
}

func (p *Parser) parseLoopStatement() (*ast.Loop, bool) {
	if !p.readToken() {
		return nil, false
	}

	if p.current.Type != lexer.SymbolLeftBrace {
		return nil, p.unexpected(lexer.SymbolLeftBrace.Category())
	}

	body, ok := p.parseBlockStatement()
	if !ok {
		return nil, false
	}

	return &ast.Loop{Body: body}, true
}

func (p *Parser) parseReturnStatement() (*ast.Return, bool) {
	if !p.readToken() {
		return nil, false
	}

	argument, ok := p.parseExpression(ast.PrecedenceLowest)
	if !ok {
		return nil, false
	}

	if !p.consumeTerminator() {
		return nil, false
	}

	return &ast.Return{Argument: argument}, true
}

func (p *Parser) parseBreakStatement() (*ast.Break, bool) {
	if !p.readToken() {
		return nil, false
	}
	if !p.consumeTerminator() {
		return nil, false
	}
	return &ast.Break{}, true
}

func (p *Parser) parseContinueStatement() (*ast.Continue, bool) {
	if !p.readToken() {
		return nil, false
	}
	if !p.consumeTerminator() {
		return nil, false
	}
	return &ast.Continue{}, true
}

// parseAssignmentOrExpressionStatement parses an expression, then
// decides whether it is the target of an assignment (spec §4.2.3): the
// grammar discovers assignment only after having already parsed the
// left-hand side as a plain expression, exactly as the reference parser
// does.
func (p *Parser) parseAssignmentOrExpressionStatement() (ast.Statement, bool) {
	target, ok := p.parseExpression(ast.PrecedenceLowest)
	if !ok {
		return nil, false
	}

	switch p.current.Type {
	case lexer.SymbolEqual, lexer.SymbolColonEqual:
		isDeclaration := p.current.Type == lexer.SymbolColonEqual
		if !p.readToken() {
			return nil, false
		}

		value, ok := p.parseExpression(ast.PrecedenceLowest)
		if !ok {
			return nil, false
		}
		if !p.consumeTerminator() {
			return nil, false
		}

		return &ast.Assignment{Target: target, Value: value, IsDeclaration: isDeclaration}, true

	default:
		if !p.consumeTerminator() {
			return nil, false
		}
		return &ast.ExpressionStatement{Expr: target}, true
	}
}
