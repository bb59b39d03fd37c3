package workout

import (
	"unicode"
	"unicode/utf8"
)

// symbols maps single-character tokens to their type.
var symbols = map[byte]TokenType{
	'+': PLUS,
	'-': MINUS,
	'*': STAR,
	'(': LPAREN,
	')': RPAREN,
	'@': AT,
	'_': UNDERSCORE,
	'|': PIPE,
	'w': WATT,
	'W': WATT,
	'h': HOUR,
	'H': HOUR,
	'm': MINUTE,
	'M': MINUTE,
	's': SECOND,
	'S': SECOND,
}

// Lexer produces tokens lazily in a single left-to-right pass over src.
// It is not safe to share between goroutines and cannot be rewound.
type Lexer struct {
	src string
	pos int // index of the next byte to consume
	err *Error
}

// NewLexer returns a Lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Err returns the lexical error that stopped the scan, if any.
func (l *Lexer) Err() *Error {
	return l.err
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		l.pos += size
	}
}

// scanNumber collects the longest Integer or Float starting at l.pos.
// The first digit must still be at l.peek().
func (l *Lexer) scanNumber() Token {
	start := l.pos
	for l.pos < len(l.src) && isDigit(l.peek()) {
		l.pos++
	}
	if l.peek() != '.' {
		return Token{Type: INTEGER, Lexeme: l.src[start:l.pos], Pos: start}
	}
	l.pos++ // consume '.'
	for l.pos < len(l.src) && isDigit(l.peek()) {
		l.pos++
	}
	return Token{Type: FLOAT, Lexeme: l.src[start:l.pos], Pos: start}
}

// illegal records the first lexical error and returns the ILLEGAL token that
// carries it. Every later call to Next returns the same token.
func (l *Lexer) illegal() Token {
	r, size := utf8.DecodeRuneInString(l.src[l.pos:])
	l.err = newError(IllegalCharacter, l.src, l.pos, l.pos, "Unrecognized character '%c'", r)
	return Token{Type: ILLEGAL, Lexeme: l.src[l.pos : l.pos+size], Pos: l.pos}
}

// Next returns the next token. Once the input is exhausted it keeps returning EOF.
func (l *Lexer) Next() Token {
	if l.err != nil {
		return Token{Type: ILLEGAL, Lexeme: l.src[l.err.Pos:], Pos: l.err.Pos}
	}
	l.skipWhitespace()
	if l.pos >= len(l.src) {
		return Token{Type: EOF, Pos: len(l.src)}
	}

	ch := l.peek()
	if isDigit(ch) {
		return l.scanNumber()
	}
	if tt, ok := symbols[ch]; ok {
		tok := Token{Type: tt, Lexeme: l.src[l.pos : l.pos+1], Pos: l.pos}
		l.pos++
		return tok
	}
	return l.illegal()
}

// Lex tokenises src and returns all tokens including the final EOF token.
// It returns the first lexical error instead if src contains an illegal character.
func Lex(src string) ([]Token, error) {
	l := NewLexer(src)
	var tokens []Token
	for {
		tok := l.Next()
		if tok.Type == ILLEGAL {
			return tokens, l.err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}
