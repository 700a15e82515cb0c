package jsonv

import "fmt"

// Kind is an enum of the lexical token kinds of the JSON grammar.
type Kind uint8

// All token kinds the lexer can produce. The zero value signals invalid and
// is never part of a successful token stream. EOF is terminal: once the lexer
// has reached it, further calls keep returning it.
const (
	Invalid Kind = iota
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	Colon
	Comma
	String
	Number
	True
	False
	Null
	EOF
)

var kindNames = [...]string{
	Invalid:      "invalid",
	LeftBrace:    "'{'",
	RightBrace:   "'}'",
	LeftBracket:  "'['",
	RightBracket: "']'",
	Colon:        "':'",
	Comma:        "','",
	String:       "string",
	Number:       "number",
	True:         "'true'",
	False:        "'false'",
	Null:         "'null'",
	EOF:          "end of input",
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return kindNames[Invalid]
	}
	return kindNames[k]
}

// Token is one lexeme of the input classified by the lexer. Value holds the
// decoded payload: string for String, int64 or float64 for Number, bool for
// True/False and nil otherwise. Line and Col are 1-indexed and point at the
// first character of the lexeme.
type Token struct {
	Kind  Kind
	Value interface{}
	Line  int
	Col   int
}

// String generates a readable form of a token meant for debugging.
func (t Token) String() string {
	switch t.Kind {
	case String:
		return fmt.Sprintf("string %q", t.Value)
	case Number:
		return fmt.Sprintf("number %v", t.Value)
	default:
		return t.Kind.String()
	}
}
