/*
File : lumascript/parser/parser_collections.go
Table literal parsing. Grounded on the reference parser's
parse_table_expression (spec §4.2.5).
*/
package parser

import (
	"github.com/lumascript/lumascript/ast"
	"github.com/lumascript/lumascript/lexer"
)

func (p *Parser) parseTableExpression() (*ast.Table, bool) {
	if !p.readToken() {
		return nil, false
	}

	var properties []ast.TableEntry

	if p.current.Type == lexer.SymbolLeftSquareBracket {
		if !p.readToken() {
			return nil, false
		}

		for {
			var key ast.Expression
			var ok bool

			switch p.current.Type {
			case lexer.Literal:
				key, ok = p.parseLiteralExpression()
			case lexer.Identifier:
				key, ok = p.parseIdentifierExpression()
			default:
				return nil, p.errorf(
					"expected token: %s or token: %s, but got token: %s",
					lexer.Literal.Category(), lexer.Identifier.Category(), p.current.Category(),
				)
			}
			if !ok {
				return nil, false
			}

			if p.current.Type != lexer.SymbolColon {
				return nil, p.unexpected(lexer.SymbolColon.Category())
			}
			if !p.readToken() {
				return nil, false
			}

			value, ok := p.parseExpression(ast.PrecedenceLowest)
			if !ok {
				return nil, false
			}

			properties = append(properties, ast.TableEntry{Key: key, Value: value})

			switch p.current.Type {
			case lexer.SymbolComma:
				if !p.readToken() {
					return nil, false
				}
			case lexer.SymbolRightSquareBracket:
				if !p.readToken() {
					return nil, false
				}
				return &ast.Table{Properties: properties}, true
			default:
				return nil, p.unexpected(lexer.SymbolComma.Category())
			}
		}
	}

	return &ast.Table{Properties: properties}, true
}
