package workout

import (
	"errors"
	"fmt"
)

// ErrorKind discriminates the three ways a compilation can fail.
type ErrorKind int

const (
	IllegalCharacter ErrorKind = iota + 1 // lexical
	UnexpectedToken                       // syntactic
	InvalidFTP                            // semantic
)

func (k ErrorKind) String() string {
	switch k {
	case IllegalCharacter:
		return "IllegalCharacter"
	case UnexpectedToken:
		return "UnexpectedToken"
	case InvalidFTP:
		return "InvalidFTP"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrIllegalCharacter = &Error{Kind: IllegalCharacter, Message: "illegal character"}
	ErrUnexpectedToken  = &Error{Kind: UnexpectedToken, Message: "unexpected token"}
	ErrInvalidFTP       = &Error{Kind: InvalidFTP, Message: "invalid FTP"}
)

// Error is the single structured failure value of the pipeline.
type Error struct {
	Kind      ErrorKind
	Pos       int    // byte offset of the offending character or token
	Remainder string // unconsumed input at the failure point
	Message   string
}

// Error returns the two-line report: remaining input, then the message.
func (e *Error) Error() string {
	return fmt.Sprintf("%s\n%s", e.Remainder, e.Message)
}

// Is matches sentinel errors by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// AsError extracts a *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func newError(kind ErrorKind, src string, pos, from int, format string, args ...any) *Error {
	if from > len(src) {
		from = len(src)
	}
	return &Error{
		Kind:      kind,
		Pos:       pos,
		Remainder: src[from:],
		Message:   fmt.Sprintf(format, args...),
	}
}
