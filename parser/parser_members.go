/*
File : lumascript/parser/parser_members.go
Member-expression parsing for both `target[argument]` and
`target.argument` notations. Grounded on the reference parser's
parse_member_expression (spec §4.2.8).
*/
package parser

import (
	"github.com/lumascript/lumascript/ast"
	"github.com/lumascript/lumascript/lexer"
)

func (p *Parser) parseMemberExpression(target ast.Expression) (*ast.Member, bool) {
	switch p.current.Type {
	case lexer.SymbolLeftSquareBracket:
		if !p.readToken() {
			return nil, false
		}

		argument, ok := p.parseExpression(ast.PrecedenceLowest)
		if !ok {
			return nil, false
		}

		if p.current.Type != lexer.SymbolRightSquareBracket {
			return nil, p.unexpected(lexer.SymbolRightSquareBracket.Category())
		}
		if !p.readToken() {
			return nil, false
		}

		return &ast.Member{Target: target, Argument: argument, Notation: ast.Bracket}, true

	case lexer.SymbolDot:
		if !p.readToken() {
			return nil, false
		}

		if p.current.Type != lexer.Identifier {
			return nil, p.unexpected(lexer.Identifier.Category())
		}

		argument, ok := p.parseIdentifierExpression()
		if !ok {
			return nil, false
		}

		return &ast.Member{Target: target, Argument: argument, Notation: ast.Dot}, true

	default:
		panic("parseMemberExpression called on non-member token")
	}
}
