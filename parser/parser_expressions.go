/*
File : lumascript/parser/parser_expressions.go
The Pratt expression loop: null-denotation dispatch on the leading
token, then a left-denotation loop that climbs the precedence ladder.
Grounded on the reference parser's parse_expression and on go-mix's
UnaryFuncs/BinaryFuncs dispatch idiom (parser/parser_precedence.go),
collapsed here to two switch statements since lumascript's token set is
small enough that a registration map buys nothing a switch doesn't
(spec §4.2.2).
*/
package parser

import (
	"github.com/lumascript/lumascript/ast"
	"github.com/lumascript/lumascript/lexer"
)

func (p *Parser) parseExpression(minPrecedence ast.Precedence) (ast.Expression, bool) {
	left, ok := p.parseNullDenotation()
	if !ok {
		return nil, false
	}

	for minPrecedence < ast.PrecedenceOf(p.current.Type) {
		switch p.current.Type {
		case lexer.SymbolPlus, lexer.SymbolMinus, lexer.SymbolAsterisk, lexer.SymbolSlash,
			lexer.SymbolPipe, lexer.SymbolAmpersand, lexer.SymbolCaret,
			lexer.SymbolLessLess, lexer.SymbolGreaterGreater,
			lexer.SymbolLess, lexer.SymbolGreater,
			lexer.SymbolEqualEqual, lexer.SymbolLessEqual, lexer.SymbolGreaterEqual, lexer.SymbolBangEqual,
			lexer.SymbolPipePipe, lexer.SymbolAmpersandAmpersand:
			left, ok = p.parseInfixExpression(left)
		case lexer.SymbolLeftParenthesis:
			left, ok = p.parseCallExpression(left)
		case lexer.SymbolLeftSquareBracket, lexer.SymbolDot:
			left, ok = p.parseMemberExpression(left)
		default:
			return left, true
		}
		if !ok {
			return nil, false
		}
	}

	return left, true
}

// parseNullDenotation parses whatever can start an expression: a
// literal, an identifier, a table or func literal, a parenthesized
// group, or a prefix operator.
func (p *Parser) parseNullDenotation() (ast.Expression, bool) {
	switch p.current.Type {
	case lexer.Literal:
		return p.parseLiteralExpression()
	case lexer.Identifier:
		return p.parseIdentifierExpression()
	case lexer.KeywordTable:
		return p.parseTableExpression()
	case lexer.KeywordFunc:
		return p.parseFuncExpression()
	case lexer.SymbolLeftParenthesis:
		return p.parseGroupedExpression()
	case lexer.SymbolMinus, lexer.SymbolBang:
		return p.parsePrefixExpression()
	default:
		return nil, p.errorf("unexpected token: %s", p.current.Category())
	}
}

func (p *Parser) parseLiteralExpression() (*ast.Literal, bool) {
	lit := &ast.Literal{Text: p.current.Literal}
	if !p.readToken() {
		return nil, false
	}
	return lit, true
}

func (p *Parser) parseIdentifierExpression() (*ast.Identifier, bool) {
	ident := &ast.Identifier{Name: p.current.Literal}
	if !p.readToken() {
		return nil, false
	}
	return ident, true
}

func (p *Parser) parseGroupedExpression() (ast.Expression, bool) {
	if !p.readToken() {
		return nil, false
	}

	expr, ok := p.parseExpression(ast.PrecedenceLowest)
	if !ok {
		return nil, false
	}

	if p.current.Type != lexer.SymbolRightParenthesis {
		return nil, p.unexpected(lexer.SymbolRightParenthesis.Category())
	}
	if !p.readToken() {
		return nil, false
	}

	return expr, true
}

func (p *Parser) parsePrefixExpression() (*ast.Prefix, bool) {
	operator := p.current.Type
	if !p.readToken() {
		return nil, false
	}

	operand, ok := p.parseExpression(ast.PrecedencePrefix)
	if !ok {
		return nil, false
	}

	return &ast.Prefix{Operand: operand, Operator: operator}, true
}

func (p *Parser) parseInfixExpression(left ast.Expression) (*ast.Infix, bool) {
	operator := p.current.Type
	if !p.readToken() {
		return nil, false
	}

	right, ok := p.parseExpression(ast.PrecedenceOf(operator))
	if !ok {
		return nil, false
	}

	return &ast.Infix{Left: left, Right: right, Operator: operator}, true
}
