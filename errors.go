package jsonv

import (
	"errors"
	"fmt"
)

// ErrNotArrayOrObject is a common error that multiple methods of Node return.
// It signals that the Node is a standalone value.
var ErrNotArrayOrObject = errors.New("not array or object")

// LexError captures information on character-level errors: malformed
// literals, strings and numbers. Line and Col are 1-indexed.
type LexError struct {
	Msg  string
	Line int
	Col  int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("Lexer error at line %d, column %d: %s", e.Line, e.Col, e.Msg)
}

// Where returns the line and column where the error occurred.
func (e *LexError) Where() (line, col int) { return e.Line, e.Col }

// ParseError captures information on grammar violations: unexpected token
// kinds, duplicate keys, trailing commas, content after the document.
type ParseError struct {
	Msg  string
	Line int
	Col  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Parser error at line %d, column %d: %s", e.Line, e.Col, e.Msg)
}

// Where returns the line and column where the error occurred.
func (e *ParseError) Where() (line, col int) { return e.Line, e.Col }

func lexErrf(line, col int, format string, args ...interface{}) *LexError {
	return &LexError{Msg: fmt.Sprintf(format, args...), Line: line, Col: col}
}

func parseErrf(t Token, format string, args ...interface{}) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Line: t.Line, Col: t.Col}
}
