package jsonv

import (
	"io"

	"github.com/pkg/errors"
)

// Tokenize runs the lexer over data and returns the complete token sequence,
// including the terminal EOF token, or the first LexError.
func Tokenize(data []byte) ([]Token, error) {
	l := NewLexer(string(data))
	var tt []Token
	for {
		t, err := l.Next()
		if err != nil {
			return nil, err
		}
		tt = append(tt, t)
		if t.Kind == EOF {
			return tt, nil
		}
	}
}

// Parse builds the value tree for data. The returned node is the root of the
// tree and is owned by the caller.
func Parse(data []byte) (*Node, error) {
	return NewParser(NewLexer(string(data))).Parse()
}

// NewJSON reads all of r and parses it.
func NewJSON(r io.Reader) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return Parse(data)
}

// Validate runs lexer and parser over data. A nil return means data is a
// valid JSON document; otherwise the error is the *LexError or *ParseError
// locating the first violation.
func Validate(data []byte) error {
	_, err := Parse(data)
	return err
}

// Valid reports whether data is a valid JSON encoding.
func Valid(data []byte) bool {
	return Validate(data) == nil
}
