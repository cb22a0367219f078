/*
File    : lumascript/lexer/lexer.go
Author  : adapted from go-mix/lexer/lexer.go's byte-scanning Lexer.
*/
package lexer

import "github.com/lumascript/lumascript/errs"

// Lexer performs lexical analysis of lumascript source code. It scans
// the input byte-at-a-time with one byte of lookahead (current + peek),
// grounded on go-mix/lexer/lexer.go's Current/Position/peekChar shape.
//
// Unlike go-mix's lexer, lumascript treats newlines as tokens (NewLine)
// rather than whitespace: the parser's automatic-terminator rule (spec
// §4.2.1) depends on seeing them. Source position is not tracked (spec
// non-goals); a failing lexer or parser reports only the offending
// token, not where it sat in the input.
type Lexer struct {
	input        string
	position     int  // index of current byte in input
	readPosition int  // index of the next byte to read
	current      byte // current byte, 0 if past the end
	peek         byte // lookahead byte, 0 if past the end
}

// New creates a Lexer positioned at the start of input, with current
// and peek already primed (spec §4.1 "Construction").
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.advance()
	l.advance()
	return l
}

// advance moves peek into current and reads one more byte into peek
// (spec §4.1 "Primitive"). position always indexes current: readPosition
// is one ahead of peek, so current's index is readPosition-1.
func (l *Lexer) advance() {
	l.current = l.peek
	l.position = l.readPosition - 1
	if l.readPosition < len(l.input) {
		l.peek = l.input[l.readPosition]
	} else {
		l.peek = 0
	}
	l.readPosition++
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func (l *Lexer) skipSpacesAndTabs() {
	for l.current == ' ' || l.current == '\t' {
		l.advance()
	}
}

func (l *Lexer) readInt() string {
	start := l.position
	for isDigit(l.current) {
		l.advance()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readWord() string {
	start := l.position
	for isLetter(l.current) || isDigit(l.current) {
		l.advance()
	}
	return l.input[start:l.position]
}

// simple builds a single-character token and advances past it.
func (l *Lexer) simple(tt TokenType) Token {
	l.advance()
	return Token{Type: tt}
}

// two builds a two-character token and advances past both characters.
// The caller has already confirmed peek matches the disambiguator.
func (l *Lexer) two(tt TokenType) Token {
	l.advance()
	l.advance()
	return Token{Type: tt}
}

// NextToken returns the next token from the input. On an illegal
// character it records a SyntaxError in sink and returns the zero
// Token with ok=false, mirroring lexer.rs::next's Option<Token> plus
// ErrorHandler side effect.
//
// Once Eof has been produced, every subsequent call returns Eof again
// (spec §4.1 "Restartability") because the lexer never advances past
// the end of input.
func (l *Lexer) NextToken(sink *errs.Sink) (Token, bool) {
	l.skipSpacesAndTabs()

	switch {
	case l.current == 0:
		return Token{Type: Eof}, true

	case isDigit(l.current):
		text := l.readInt()
		return Token{Type: Literal, Literal: text}, true

	case isLetter(l.current):
		text := l.readWord()
		return Token{Type: lookupWord(text), Literal: text}, true

	case l.current == '\n':
		return l.simple(NewLine), true

	case l.current == '=':
		if l.peek == '=' {
			return l.two(SymbolEqualEqual), true
		}
		return l.simple(SymbolEqual), true

	case l.current == '!':
		if l.peek == '=' {
			return l.two(SymbolBangEqual), true
		}
		return l.simple(SymbolBang), true

	case l.current == '<':
		switch l.peek {
		case '<':
			return l.two(SymbolLessLess), true
		case '=':
			return l.two(SymbolLessEqual), true
		default:
			return l.simple(SymbolLess), true
		}

	case l.current == '>':
		switch l.peek {
		case '>':
			return l.two(SymbolGreaterGreater), true
		case '=':
			return l.two(SymbolGreaterEqual), true
		default:
			return l.simple(SymbolGreater), true
		}

	case l.current == '&':
		if l.peek == '&' {
			return l.two(SymbolAmpersandAmpersand), true
		}
		return l.simple(SymbolAmpersand), true

	case l.current == '|':
		if l.peek == '|' {
			return l.two(SymbolPipePipe), true
		}
		return l.simple(SymbolPipe), true

	case l.current == ':':
		if l.peek == '=' {
			return l.two(SymbolColonEqual), true
		}
		return l.simple(SymbolColon), true

	case l.current == '+':
		return l.simple(SymbolPlus), true
	case l.current == '-':
		return l.simple(SymbolMinus), true
	case l.current == '*':
		return l.simple(SymbolAsterisk), true
	case l.current == '/':
		return l.simple(SymbolSlash), true
	case l.current == '^':
		return l.simple(SymbolCaret), true
	case l.current == '(':
		return l.simple(SymbolLeftParenthesis), true
	case l.current == ')':
		return l.simple(SymbolRightParenthesis), true
	case l.current == '{':
		return l.simple(SymbolLeftBrace), true
	case l.current == '}':
		return l.simple(SymbolRightBrace), true
	case l.current == '[':
		return l.simple(SymbolLeftSquareBracket), true
	case l.current == ']':
		return l.simple(SymbolRightSquareBracket), true
	case l.current == ',':
		return l.simple(SymbolComma), true
	case l.current == '.':
		return l.simple(SymbolDot), true
	case l.current == ';':
		return l.simple(SymbolSemicolon), true

	default:
		sink.Set(errs.NewSyntaxError("unexpected character: %c", l.current))
		return Token{}, false
	}
}
