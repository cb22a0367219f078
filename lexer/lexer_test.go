/*
File : lumascript/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumascript/lumascript/errs"
)

func scanAll(t *testing.T, src string) ([]Token, *errs.Sink) {
	t.Helper()

	var sink errs.Sink
	lex := New(src)

	var tokens []Token
	for {
		tok, ok := lex.NextToken(&sink)
		if !ok {
			return tokens, &sink
		}
		tokens = append(tokens, tok)
		if tok.Type == Eof {
			return tokens, &sink
		}
	}
}

func TestLexer_SingleCharacterSymbols(t *testing.T) {
	tokens, sink := scanAll(t, "(){}[],.;")
	assert.False(t, sink.HasError())

	want := []TokenType{
		SymbolLeftParenthesis, SymbolRightParenthesis,
		SymbolLeftBrace, SymbolRightBrace,
		SymbolLeftSquareBracket, SymbolRightSquareBracket,
		SymbolComma, SymbolDot, SymbolSemicolon,
		Eof,
	}
	assert.Equal(t, len(want), len(tokens))
	for i, tt := range want {
		assert.Equal(t, tt, tokens[i].Type)
	}
}

func TestLexer_TwoCharacterSymbols(t *testing.T) {
	tokens, sink := scanAll(t, "== != <= >= << >> && || :=")
	assert.False(t, sink.HasError())

	want := []TokenType{
		SymbolEqualEqual, SymbolBangEqual, SymbolLessEqual, SymbolGreaterEqual,
		SymbolLessLess, SymbolGreaterGreater,
		SymbolAmpersandAmpersand, SymbolPipePipe, SymbolColonEqual,
		Eof,
	}
	assert.Equal(t, len(want), len(tokens))
	for i, tt := range want {
		assert.Equal(t, tt, tokens[i].Type)
	}
}

func TestLexer_TwoCharacterSymbolsDoNotGreedilyConsume(t *testing.T) {
	tokens, sink := scanAll(t, "= ! < > & | :")
	assert.False(t, sink.HasError())

	want := []TokenType{
		SymbolEqual, SymbolBang, SymbolLess, SymbolGreater,
		SymbolAmpersand, SymbolPipe, SymbolColon,
		Eof,
	}
	assert.Equal(t, len(want), len(tokens))
	for i, tt := range want {
		assert.Equal(t, tt, tokens[i].Type)
	}
}

func TestLexer_IntegerLiteral(t *testing.T) {
	tokens, sink := scanAll(t, "12345")
	assert.False(t, sink.HasError())
	assert.Equal(t, Literal, tokens[0].Type)
	assert.Equal(t, "12345", tokens[0].Literal)
}

func TestLexer_KeywordsAndLiteralWords(t *testing.T) {
	tokens, sink := scanAll(t, "if else loop table func return break continue none true false foo")
	assert.False(t, sink.HasError())

	want := []TokenType{
		KeywordIf, KeywordElse, KeywordLoop, KeywordTable, KeywordFunc,
		KeywordReturn, KeywordBreak, KeywordContinue,
		Literal, Literal, Literal,
		Identifier,
		Eof,
	}
	assert.Equal(t, len(want), len(tokens))
	for i, tt := range want {
		assert.Equal(t, tt, tokens[i].Type, "token %d", i)
	}
	assert.Equal(t, "none", tokens[8].Literal)
	assert.Equal(t, "true", tokens[9].Literal)
	assert.Equal(t, "false", tokens[10].Literal)
	assert.Equal(t, "foo", tokens[11].Literal)
}

func TestLexer_NewlineIsATokenNotWhitespace(t *testing.T) {
	tokens, sink := scanAll(t, "a\nb")
	assert.False(t, sink.HasError())

	want := []TokenType{Identifier, NewLine, Identifier, Eof}
	assert.Equal(t, len(want), len(tokens))
	for i, tt := range want {
		assert.Equal(t, tt, tokens[i].Type)
	}
}

func TestLexer_SpacesAndTabsAreSkipped(t *testing.T) {
	tokens, sink := scanAll(t, "a \t\t b")
	assert.False(t, sink.HasError())

	want := []TokenType{Identifier, Identifier, Eof}
	assert.Equal(t, len(want), len(tokens))
	for i, tt := range want {
		assert.Equal(t, tt, tokens[i].Type)
	}
}

func TestLexer_IllegalCharacterSetsSink(t *testing.T) {
	tokens, sink := scanAll(t, "a @ b")
	assert.True(t, sink.HasError())
	assert.Equal(t, Identifier, tokens[0].Type)
	assert.Equal(t, "unexpected character: @", sink.Get().Error())
}

func TestLexer_EofIsRestartable(t *testing.T) {
	var sink errs.Sink
	lex := New("")

	first, ok := lex.NextToken(&sink)
	assert.True(t, ok)
	assert.Equal(t, Eof, first.Type)

	second, ok := lex.NextToken(&sink)
	assert.True(t, ok)
	assert.Equal(t, Eof, second.Type)
}

func TestTokenType_Category(t *testing.T) {
	assert.Equal(t, "SymbolSemicolon", SymbolSemicolon.Category())
	assert.Equal(t, "Identifier", Identifier.Category())
	assert.Equal(t, "Eof", Eof.Category())
}

func TestToken_Equal(t *testing.T) {
	a := Token{Type: Identifier, Literal: "foo"}
	b := Token{Type: Identifier, Literal: "foo"}
	c := Token{Type: Identifier, Literal: "bar"}
	d := Token{Type: SymbolPlus}
	e := Token{Type: SymbolPlus}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, d.Equal(e))
}
