/*
File    : lumascript/ast/precedence.go
*/
package ast

import "github.com/lumascript/lumascript/lexer"

// Precedence is the operator-precedence ladder the Pratt parser climbs
// (spec §3.3). Grounded on go-mix/parser/parser_precedence.go's
// const-block-plus-lookup-function idiom, trimmed from go-mix's
// fourteen C-style levels to spec §3.3's ten, and reordered to match
// node.rs::Precedence's enum order exactly (Lowest is the zero value,
// so an uninitialized Precedence behaves as the weakest binding, same
// as go-mix's MINIMUM_PRIORITY = 0 convention).
type Precedence int

const (
	PrecedenceLowest Precedence = iota
	PrecedenceAssignment
	PrecedenceLogical
	PrecedenceBitwise
	PrecedenceComparative
	PrecedenceAdditive
	PrecedenceMultiplicative
	PrecedencePrefix
	PrecedenceCall
	PrecedenceMember
)

// PrecedenceOf returns the precedence level associated with a token
// type when it appears as an infix/postfix continuation. Tokens that
// never continue an expression (including Eof, NewLine, and every
// token with no entry below) bind at PrecedenceLowest, which is what
// lets the Pratt loop's `min < PrecedenceOf(current)` test terminate on
// them (spec §3.3's "everything else -> Lowest").
//
// Note per spec §3.3 and §9: SymbolEqual and SymbolColonEqual carry an
// assignment precedence for completeness of the ladder, but the parser's
// left-denotation loop (parser.parseExpression) never dispatches on them — assignment is
// parsed only at the statement boundary (spec §4.2.3).
func PrecedenceOf(tt lexer.TokenType) Precedence {
	switch tt {
	case lexer.SymbolEqual, lexer.SymbolColonEqual:
		return PrecedenceAssignment
	case lexer.SymbolPipePipe, lexer.SymbolAmpersandAmpersand:
		return PrecedenceLogical
	case lexer.SymbolPipe, lexer.SymbolAmpersand, lexer.SymbolCaret,
		lexer.SymbolLessLess, lexer.SymbolGreaterGreater:
		return PrecedenceBitwise
	case lexer.SymbolEqualEqual, lexer.SymbolBangEqual,
		lexer.SymbolLess, lexer.SymbolGreater,
		lexer.SymbolLessEqual, lexer.SymbolGreaterEqual:
		return PrecedenceComparative
	case lexer.SymbolPlus, lexer.SymbolMinus:
		return PrecedenceAdditive
	case lexer.SymbolAsterisk, lexer.SymbolSlash:
		return PrecedenceMultiplicative
	case lexer.SymbolLeftParenthesis:
		return PrecedenceCall
	case lexer.SymbolLeftSquareBracket, lexer.SymbolDot:
		return PrecedenceMember
	default:
		return PrecedenceLowest
	}
}

// MemberNotation distinguishes `target[argument]` from `target.argument`
// member expressions (spec §3.2).
type MemberNotation int

const (
	Bracket MemberNotation = iota
	Dot
)

func (n MemberNotation) String() string {
	if n == Dot {
		return "Dot"
	}
	return "Bracket"
}
