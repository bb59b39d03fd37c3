package workout

import (
	"math"
	"strconv"
)

// maxSeconds bounds every duration, and the total of the workout, so emitted
// integer fields never overflow.
const maxSeconds = math.MaxInt32

// Parser consumes tokens from a Lexer and builds the abstract workout tree.
//
// Grammar:
//
//	Workout = Stages FTP
//	Stages  = Stage { "+" Stage }
//	Stage   = (Integer "*" "(" Stages ")") | (Time "@" Power)
//	Time    = (Integer | Float) TUnit
//	TUnit   = "h" | "H" | "m" | "M" | "s" | "S"
//	Power   = (Integer WUnit ["-" Integer WUnit]) | "_"
//	WUnit   = "w" | "W"
//	FTP     = "|" Integer WUnit
//
// A Stage starting with an Integer is a Repeat only when the next token is "*",
// so at most two tokens of lookahead are ever buffered.
type Parser struct {
	src     string
	lex     *Lexer
	buf     []Token // lookahead, filled on demand
	lastEnd int     // offset just past the last consumed token
}

// NewParser returns a Parser over src.
func NewParser(src string) *Parser {
	return &Parser{src: src, lex: NewLexer(src)}
}

// Parse parses a complete workout specification.
func Parse(src string) (*Workout, error) {
	return NewParser(src).ParseWorkout()
}

// peekAt returns the token at the given offset from the current position.
func (p *Parser) peekAt(offset int) Token {
	for len(p.buf) <= offset {
		p.buf = append(p.buf, p.lex.Next())
	}
	return p.buf[offset]
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	return p.peekAt(0)
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.peek()
	if tok.Type != EOF && tok.Type != ILLEGAL {
		p.buf = p.buf[1:]
		p.lastEnd = tok.End()
	}
	return tok
}

// failAt reports that tok is not acceptable here. A lexical error always takes
// precedence because it is the leftmost failure.
func (p *Parser) failAt(tok Token, msg string) error {
	if tok.Type == ILLEGAL {
		return p.lex.Err()
	}
	return newError(UnexpectedToken, p.src, tok.Pos, p.lastEnd, "%s", msg)
}

func (p *Parser) fail(msg string) error {
	return p.failAt(p.peek(), msg)
}

// expect consumes the current token if it matches tt, otherwise returns an error with msg.
func (p *Parser) expect(tt TokenType, msg string) (Token, error) {
	if p.peek().Type != tt {
		return Token{}, p.fail(msg)
	}
	return p.advance(), nil
}

// expectInt consumes an Integer token and returns its value.
func (p *Parser) expectInt(msg string) (Token, int, error) {
	tok := p.peek()
	if tok.Type != INTEGER {
		return tok, 0, p.fail(msg)
	}
	n, err := strconv.Atoi(tok.Lexeme)
	if err != nil || n > math.MaxInt32 {
		return tok, 0, p.failAt(tok, "Integer out of range")
	}
	p.advance()
	return tok, n, nil
}

// ParseWorkout parses Workout = Stages FTP and requires the input to end there.
func (p *Parser) ParseWorkout() (*Workout, error) {
	stages, _, err := p.parseStages()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(PIPE, "+ or | expected"); err != nil {
		return nil, err
	}
	tok, ftp, err := p.expectInt("Integer expected")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(WATT, "w expected"); err != nil {
		return nil, err
	}
	if p.peek().Type != EOF {
		return nil, p.fail("end of input expected")
	}
	return &Workout{Stages: stages, FTP: ftp, FTPPos: tok.Pos, Source: p.src}, nil
}

// parseStages handles Stage { "+" Stage }. The caller checks the token that follows.
// It also returns the unrolled duration of the stages in seconds, which never
// exceeds maxSeconds.
func (p *Parser) parseStages() ([]Stage, int64, error) {
	var (
		stages []Stage
		total  int64
	)
	for {
		start := p.peek()
		stage, seconds, err := p.parseStage()
		if err != nil {
			return nil, 0, err
		}
		if total += seconds; total > maxSeconds {
			return nil, 0, p.failAt(start, "Duration out of range")
		}
		stages = append(stages, stage)
		if p.peek().Type != PLUS {
			return stages, total, nil
		}
		p.advance()
	}
}

func (p *Parser) parseStage() (Stage, int64, error) {
	tok := p.peek()
	switch {
	case tok.Type == INTEGER && p.peekAt(1).Type == STAR:
		return p.parseRepeat()
	case tok.Type.IsNumber():
		return p.parseBlock()
	default:
		return nil, 0, p.fail("Number expected")
	}
}

// parseRepeat handles Integer "*" "(" Stages ")".
func (p *Parser) parseRepeat() (Stage, int64, error) {
	tok, count, err := p.expectInt("Integer expected")
	if err != nil {
		return nil, 0, err
	}
	p.advance() // *
	if _, err := p.expect(LPAREN, "( expected"); err != nil {
		return nil, 0, err
	}
	body, seconds, err := p.parseStages()
	if err != nil {
		return nil, 0, err
	}
	if _, err := p.expect(RPAREN, "+ or ) expected"); err != nil {
		return nil, 0, err
	}
	// both factors are at most maxSeconds, so the product fits an int64
	total := int64(count) * seconds
	if total > maxSeconds {
		return nil, 0, p.failAt(tok, "Duration out of range")
	}
	return &Repeat{Count: count, Body: body}, total, nil
}

// parseBlock handles Time "@" Power.
func (p *Parser) parseBlock() (Stage, int64, error) {
	t, err := p.parseTime()
	if err != nil {
		return nil, 0, err
	}
	if _, err := p.expect(AT, "@ expected"); err != nil {
		return nil, 0, err
	}
	power, err := p.parsePower()
	if err != nil {
		return nil, 0, err
	}
	return &Block{Time: t, Power: power}, int64(NormalizeTime(t)), nil
}

func (p *Parser) parseTime() (Time, error) {
	num := p.peek()
	magnitude, err := strconv.ParseFloat(num.Lexeme, 64)
	if err != nil {
		return Time{}, p.failAt(num, "Number out of range")
	}
	p.advance()

	var unit TimeUnit
	switch p.peek().Type {
	case HOUR:
		unit = Hours
	case MINUTE:
		unit = Minutes
	case SECOND:
		unit = Seconds
	default:
		if num.Type == INTEGER {
			return Time{}, p.fail("*, h, m or s expected")
		}
		return Time{}, p.fail("h, m or s expected")
	}
	if magnitude*unit.Factor() > maxSeconds {
		return Time{}, p.failAt(num, "Duration out of range")
	}
	p.advance()
	return Time{Magnitude: magnitude, Unit: unit, Literal: num.Lexeme}, nil
}

func (p *Parser) parsePower() (Power, error) {
	switch p.peek().Type {
	case UNDERSCORE:
		p.advance()
		return Power{Kind: FreeRide}, nil
	case INTEGER:
		_, watts, err := p.expectInt("Integer expected")
		if err != nil {
			return Power{}, err
		}
		if _, err := p.expect(WATT, "w expected"); err != nil {
			return Power{}, err
		}
		if p.peek().Type != MINUS {
			return Power{Kind: Steady, Watts: watts}, nil
		}
		p.advance()
		_, end, err := p.expectInt("Integer expected")
		if err != nil {
			return Power{}, err
		}
		if _, err := p.expect(WATT, "w expected"); err != nil {
			return Power{}, err
		}
		return Power{Kind: Range, Watts: watts, EndWatts: end}, nil
	default:
		return Power{}, p.fail("Integer or _ expected")
	}
}
