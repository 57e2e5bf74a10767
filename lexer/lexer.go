package lexer

import (
	"unicode"
	"unicode/utf8"

	"jam/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readRune()
	return l
}

func (l *Lexer) readRune() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.readPosition += 1
	} else {
		runeVal, runeW := utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.ch = runeVal
		l.position = l.readPosition
		l.readPosition += runeW
	}
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	line := l.line

	if l.ch == 0 {
		return token.Token{Type: token.EOF, Line: line}
	}

	if tok := l.consumeOperator(); tok != nil {
		tok.Line = line
		return *tok
	}

	if isLetter(l.ch) {
		lit := l.readIdentifier()
		return token.Token{Type: token.LookupID(lit), Literal: lit, Line: line}
	}

	if isDigit(l.ch) {
		return token.Token{Type: token.INT, Literal: l.readNumber(), Line: line}
	}

	tok := token.Token{Type: token.ILLEGAL, Literal: string(l.ch), Line: line}
	l.readRune()
	return tok
}

// identifiers may end in '?' so that primitive names like number? lex as one
// token
func (l *Lexer) readIdentifier() string {
	position := l.position

	for isLetter(l.ch) || isDigit(l.ch) {
		l.readRune()
	}
	if l.ch == '?' {
		l.readRune()
	}

	return l.input[position:l.position]
}

func (l *Lexer) readNumber() string {
	position := l.position

	for isDigit(l.ch) {
		l.readRune()
	}

	return l.input[position:l.position]
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == '\n':
			l.line++
			l.readRune()
		case unicode.IsSpace(l.ch):
			l.readRune()
		case l.ch == '/' && l.peekRune() == '/':
			for l.ch != '\n' && l.ch != 0 {
				l.readRune()
			}
		default:
			return
		}
	}
}

func (l *Lexer) peekRune() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) consumeOperator() *token.Token {
	for _, tok := range token.GetOperators() {
		opStr := tok.Literal

		if len(l.input) >= l.position+len(opStr) &&
			l.input[l.position:l.position+len(opStr)] == opStr {
			// advance the counter
			for i := 0; i < len(opStr); i++ {
				l.readRune()
			}
			return &tok
		}
	}

	// none found, so return nil
	return nil
}

func isLetter(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
