package workout

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF     TokenType = iota // sentinel: end of input
	ILLEGAL                  // carries a lexical error to the parser

	// Literals
	INTEGER // 30
	FLOAT   // 0.5

	// Units
	WATT   // w W
	HOUR   // h H
	MINUTE // m M
	SECOND // s S

	// Symbols
	PLUS       // +
	MINUS      // -
	STAR       // *
	LPAREN     // (
	RPAREN     // )
	AT         // @
	UNDERSCORE // _
	PIPE       // |
)

var tokenNames = [...]string{
	EOF:        "<end of input>",
	ILLEGAL:    "<illegal>",
	INTEGER:    "Integer",
	FLOAT:      "Float",
	WATT:       "w",
	HOUR:       "h",
	MINUTE:     "m",
	SECOND:     "s",
	PLUS:       "+",
	MINUS:      "-",
	STAR:       "*",
	LPAREN:     "(",
	RPAREN:     ")",
	AT:         "@",
	UNDERSCORE: "_",
	PIPE:       "|",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// IsNumber reports whether tt is an Integer or Float literal.
func (tt TokenType) IsNumber() bool {
	return tt == INTEGER || tt == FLOAT
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Pos    int    // byte offset of the first character
}

// End returns the byte offset just past the token.
func (t Token) End() int {
	return t.Pos + len(t.Lexeme)
}

func (t Token) String() string {
	switch t.Type {
	case INTEGER, FLOAT:
		return fmt.Sprintf("<%s, %s>", t.Type, t.Lexeme)
	default:
		return t.Type.String()
	}
}
