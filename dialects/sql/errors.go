package sql

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// Sentinel errors.
var (
	// ErrParse is returned when a statement cannot be parsed.
	ErrParse = errors.New("sql: parse error")

	// ErrUnknownDialect is returned when an unknown dialect is requested.
	ErrUnknownDialect = errors.New("sql: unknown dialect")

	// ErrUnknownNameCase is returned when an unknown name case is requested.
	ErrUnknownNameCase = errors.New("sql: unknown name case")

	// ErrInvalidSettings is returned when parser settings are invalid.
	ErrInvalidSettings = errors.New("sql: invalid parser settings")
)

// ParseError is a syntax or resolution error at a position in the input.
type ParseError struct {
	Pos lexer.Position
	Msg string
}

func (e *ParseError) Error() string {
	if e.Pos.Line == 0 {
		return fmt.Sprintf("%s: %s", ErrParse, e.Msg)
	}

	return fmt.Sprintf("%s: %d:%d: %s", ErrParse, e.Pos.Line, e.Pos.Column, e.Msg)
}

// Unwrap returns ErrParse.
func (e *ParseError) Unwrap() error {
	return ErrParse
}

func parseErrorf(pos lexer.Position, format string, args ...any) *ParseError {
	return &ParseError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
