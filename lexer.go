package jsonv

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Lexer generates tokens from JSON text. It owns the read-only input and a
// cursor of byte offset plus 1-indexed line/column; only advance mutates the
// cursor. After the first error a Lexer must not be reused.
type Lexer struct {
	input string
	pos   int
	line  int
	col   int
}

// NewLexer returns a lexer reading from input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input, line: 1, col: 1}
}

// advance moves the cursor one rune forward, tracking line and column.
func (l *Lexer) advance() {
	if l.pos >= len(l.input) {
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += w
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
}

func (l *Lexer) skipSpace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\r', '\n':
			l.advance()
		default:
			return
		}
	}
}

// Next returns the next token of the input. At the end of the input it
// returns an EOF token; calling Next again keeps returning that same token.
func (l *Lexer) Next() (Token, error) {
	l.skipSpace()
	line, col := l.line, l.col
	if l.pos >= len(l.input) {
		return Token{Kind: EOF, Line: line, Col: col}, nil
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	switch {
	case r == '{':
		l.advance()
		return Token{Kind: LeftBrace, Line: line, Col: col}, nil
	case r == '}':
		l.advance()
		return Token{Kind: RightBrace, Line: line, Col: col}, nil
	case r == '[':
		l.advance()
		return Token{Kind: LeftBracket, Line: line, Col: col}, nil
	case r == ']':
		l.advance()
		return Token{Kind: RightBracket, Line: line, Col: col}, nil
	case r == ':':
		l.advance()
		return Token{Kind: Colon, Line: line, Col: col}, nil
	case r == ',':
		l.advance()
		return Token{Kind: Comma, Line: line, Col: col}, nil
	case r == '"':
		return l.lexString()
	case r == '\'':
		return Token{}, lexErrf(line, col, "single quotes not allowed, strings must use double quotes")
	case r == '-' || (r >= '0' && r <= '9'):
		return l.lexNumber()
	case r < utf8.RuneSelf && isIdentChar(byte(r)):
		return l.lexLiteral()
	default:
		return Token{}, lexErrf(line, col, "unexpected character %q", r)
	}
}

// lexString consumes a double-quoted string and decodes all escapes. An
// unterminated string is reported at the opening quote, every other failure
// at the offending character.
func (l *Lexer) lexString() (Token, error) {
	line, col := l.line, l.col
	l.advance() // opening quote
	var sb strings.Builder
	for {
		if l.pos >= len(l.input) {
			return Token{}, lexErrf(line, col, "unterminated string")
		}
		r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
		switch {
		case r == '"':
			l.advance()
			return Token{Kind: String, Value: sb.String(), Line: line, Col: col}, nil
		case r < 0x20:
			return Token{}, lexErrf(l.line, l.col, "unescaped control character in string")
		case r == '\\':
			if err := l.lexEscape(&sb, line, col); err != nil {
				return Token{}, err
			}
		default:
			sb.WriteRune(r)
			l.advance()
		}
	}
}

// lexEscape decodes one backslash escape into sb. strLine/strCol locate the
// string start for unterminated-string errors.
func (l *Lexer) lexEscape(sb *strings.Builder, strLine, strCol int) error {
	escLine, escCol := l.line, l.col
	l.advance() // backslash
	if l.pos >= len(l.input) {
		return lexErrf(strLine, strCol, "unterminated string")
	}
	e, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	switch e {
	case '"':
		sb.WriteByte('"')
	case '\\':
		sb.WriteByte('\\')
	case '/':
		sb.WriteByte('/')
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case 'u':
		l.advance() // 'u'
		r1, err := l.hex4(escLine, escCol)
		if err != nil {
			return err
		}
		if !utf16.IsSurrogate(r1) {
			sb.WriteRune(r1)
			return nil
		}
		if strings.HasPrefix(l.input[l.pos:], `\u`) {
			pairLine, pairCol := l.line, l.col
			l.advance()
			l.advance()
			r2, err := l.hex4(pairLine, pairCol)
			if err != nil {
				return err
			}
			if dec := utf16.DecodeRune(r1, r2); dec != utf8.RuneError {
				sb.WriteRune(dec)
				return nil
			}
			// Not a valid pair: each half decodes on its own, an
			// unpaired surrogate becomes U+FFFD.
			sb.WriteRune(utf8.RuneError)
			if utf16.IsSurrogate(r2) {
				sb.WriteRune(utf8.RuneError)
			} else {
				sb.WriteRune(r2)
			}
			return nil
		}
		sb.WriteRune(utf8.RuneError)
		return nil
	default:
		return lexErrf(escLine, escCol, "Invalid escape sequence: '\\%c'", e)
	}
	l.advance()
	return nil
}

// hex4 reads exactly four hex digits of a \uXXXX escape. line/col locate the
// escape's backslash for error reporting.
func (l *Lexer) hex4(line, col int) (rune, error) {
	var n rune
	for i := 0; i < 4; i++ {
		if l.pos >= len(l.input) {
			return 0, lexErrf(line, col, "Invalid Unicode escape: expected 4 hex digits")
		}
		c := l.input[l.pos]
		switch {
		case c >= '0' && c <= '9':
			n = n*16 + rune(c-'0')
		case c >= 'a' && c <= 'f':
			n = n*16 + rune(c-'a'+10)
		case c >= 'A' && c <= 'F':
			n = n*16 + rune(c-'A'+10)
		default:
			return 0, lexErrf(line, col, "Invalid Unicode escape: expected 4 hex digits")
		}
		l.advance()
	}
	return n, nil
}

// lexNumber consumes a literal of the RFC 8259 number grammar
//
//	-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
//
// and decodes it as int64 when no fraction or exponent is present, else as
// float64.
func (l *Lexer) lexNumber() (Token, error) {
	line, col := l.line, l.col
	start := l.pos
	isFloat := false
	if l.input[l.pos] == '-' {
		l.advance()
	}
	switch {
	case l.pos >= len(l.input) || !isDigit(l.input[l.pos]):
		return Token{}, lexErrf(l.line, l.col, "expected digit after minus sign")
	case l.input[l.pos] == '0':
		l.advance()
		if l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			return Token{}, lexErrf(l.line, l.col, "leading zeros not allowed")
		}
	default:
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.advance()
		}
	}
	if l.pos < len(l.input) && l.input[l.pos] == '.' {
		isFloat = true
		l.advance()
		if l.pos >= len(l.input) || !isDigit(l.input[l.pos]) {
			return Token{}, lexErrf(l.line, l.col, "expected digit after decimal point")
		}
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.advance()
		}
	}
	if l.pos < len(l.input) && (l.input[l.pos] == 'e' || l.input[l.pos] == 'E') {
		isFloat = true
		l.advance()
		if l.pos < len(l.input) && (l.input[l.pos] == '+' || l.input[l.pos] == '-') {
			l.advance()
		}
		if l.pos >= len(l.input) || !isDigit(l.input[l.pos]) {
			return Token{}, lexErrf(l.line, l.col, "expected digit after exponent")
		}
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.advance()
		}
	}
	if l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\r', '\n', ',', ']', '}':
		default:
			r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
			return Token{}, lexErrf(l.line, l.col, "unexpected character %q after number", r)
		}
	}
	lit := l.input[start:l.pos]
	if !isFloat {
		// Integers that fit decode exactly; on overflow fall back to float64.
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return Token{Kind: Number, Value: i, Line: line, Col: col}, nil
		}
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return Token{}, lexErrf(line, col, "number %s out of range", lit)
	}
	return Token{Kind: Number, Value: f, Line: line, Col: col}, nil
}

// lexLiteral consumes a word and accepts exactly true, false or null. The
// word is maximal, so trailing alphanumerics reject the literal as a whole.
func (l *Lexer) lexLiteral() (Token, error) {
	line, col := l.line, l.col
	start := l.pos
	for l.pos < len(l.input) && isIdentChar(l.input[l.pos]) {
		l.advance()
	}
	switch word := l.input[start:l.pos]; word {
	case "true":
		return Token{Kind: True, Value: true, Line: line, Col: col}, nil
	case "false":
		return Token{Kind: False, Value: false, Line: line, Col: col}, nil
	case "null":
		return Token{Kind: Null, Line: line, Col: col}, nil
	default:
		return Token{}, lexErrf(line, col, "invalid literal '%s'", word)
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || isDigit(b) || b == '_'
}
