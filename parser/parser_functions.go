/*
File : lumascript/parser/parser_functions.go
Func literal and call-expression parsing. Grounded on the reference
parser's parse_func_expression and parse_call_expression (spec §4.2.6,
§4.2.7).
*/
package parser

import (
	"github.com/lumascript/lumascript/ast"
	"github.com/lumascript/lumascript/lexer"
)

func (p *Parser) parseFuncExpression() (*ast.Func, bool) {
	if !p.readToken() {
		return nil, false
	}

	var parameters []*ast.Identifier

	if p.current.Type == lexer.Identifier {
	params:
		for {
			if p.current.Type != lexer.Identifier {
				return nil, p.unexpected(lexer.Identifier.Category())
			}

			param, ok := p.parseIdentifierExpression()
			if !ok {
				return nil, false
			}
			parameters = append(parameters, param)

			switch p.current.Type {
			case lexer.SymbolComma:
				if !p.readToken() {
					return nil, false
				}
			case lexer.SymbolLeftBrace:
				break params
			default:
				return nil, p.unexpected(lexer.SymbolComma.Category())
			}
		}
	} else if p.current.Type != lexer.SymbolLeftBrace {
		return nil, p.unexpected(lexer.SymbolLeftBrace.Category())
	}

	body, ok := p.parseBlockStatement()
	if !ok {
		return nil, false
	}

	return &ast.Func{Parameters: parameters, Body: body}, true
}

func (p *Parser) parseCallExpression(target ast.Expression) (*ast.Call, bool) {
	if !p.readToken() {
		return nil, false
	}

	var arguments []ast.Expression

	if p.current.Type != lexer.SymbolRightParenthesis {
	args:
		for {
			arg, ok := p.parseExpression(ast.PrecedenceLowest)
			if !ok {
				return nil, false
			}
			arguments = append(arguments, arg)

			switch p.current.Type {
			case lexer.SymbolComma:
				if !p.readToken() {
					return nil, false
				}
			case lexer.SymbolRightParenthesis:
				break args
			default:
				return nil, p.unexpected(lexer.SymbolComma.Category())
			}
		}
	}

	if !p.readToken() {
		return nil, false
	}

	return &ast.Call{Target: target, Arguments: arguments}, true
}
