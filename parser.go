package jsonv

// Parser builds a value tree from the lexer's token stream by recursive
// descent, holding a single token of lookahead at all times. Nesting depth is
// bounded only by the stack; deeply nested input is accepted until resource
// exhaustion.
type Parser struct {
	lex *Lexer
	tok Token
}

// NewParser returns a parser pulling tokens from l.
func NewParser(l *Lexer) *Parser {
	return &Parser{lex: l}
}

func (p *Parser) next() error {
	t, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

// eat consumes the current token if it matches want and advances to the next
// one, otherwise it reports both the expected and the actual kind at the
// current token's position.
func (p *Parser) eat(want Kind) error {
	if p.tok.Kind != want {
		return parseErrf(p.tok, "Expected %s, got %s", want, p.tok)
	}
	return p.next()
}

// Parse consumes the whole token stream and returns the root of the value
// tree. Exactly one document must be present; any trailing content is an
// error.
func (p *Parser) Parse() (*Node, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	n, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != EOF {
		return nil, parseErrf(p.tok, "Unexpected content after top-level value")
	}
	return n, nil
}

func (p *Parser) parseValue() (*Node, error) {
	switch t := p.tok; t.Kind {
	case LeftBrace:
		return p.parseObject()
	case LeftBracket:
		return p.parseArray()
	case String:
		if err := p.next(); err != nil {
			return nil, err
		}
		return &Node{typ: TypeString, value: t.Value}, nil
	case Number:
		if err := p.next(); err != nil {
			return nil, err
		}
		return &Node{typ: TypeNumber, value: t.Value}, nil
	case True, False:
		if err := p.next(); err != nil {
			return nil, err
		}
		return &Node{typ: TypeBool, value: t.Value}, nil
	case Null:
		if err := p.next(); err != nil {
			return nil, err
		}
		return &Node{typ: TypeNull}, nil
	case EOF:
		return nil, parseErrf(t, "Unexpected end of input, expected a value")
	default:
		return nil, parseErrf(t, "Unexpected token %s, expected a value", t)
	}
}

func (p *Parser) parseObject() (*Node, error) {
	if err := p.eat(LeftBrace); err != nil {
		return nil, err
	}
	var members []Member
	if p.tok.Kind == RightBrace {
		if err := p.next(); err != nil {
			return nil, err
		}
		return &Node{typ: TypeObject, value: members}, nil
	}
	seen := make(map[string]bool)
	for {
		if p.tok.Kind != String {
			return nil, parseErrf(p.tok, "Object key must be a string, got %s", p.tok)
		}
		key := p.tok.Value.(string)
		if seen[key] {
			return nil, parseErrf(p.tok, "Duplicate key '%s' in object", key)
		}
		seen[key] = true
		if err := p.next(); err != nil {
			return nil, err
		}
		if err := p.eat(Colon); err != nil {
			return nil, err
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		members = append(members, Member{Key: key, Node: *v})
		switch p.tok.Kind {
		case Comma:
			if err := p.next(); err != nil {
				return nil, err
			}
			if p.tok.Kind == RightBrace {
				return nil, parseErrf(p.tok, "Trailing comma before '}'")
			}
		case RightBrace:
			if err := p.next(); err != nil {
				return nil, err
			}
			return &Node{typ: TypeObject, value: members}, nil
		default:
			return nil, parseErrf(p.tok, "Expected ',' or '}' in object, got %s", p.tok)
		}
	}
}

func (p *Parser) parseArray() (*Node, error) {
	if err := p.eat(LeftBracket); err != nil {
		return nil, err
	}
	var elems []Node
	if p.tok.Kind == RightBracket {
		if err := p.next(); err != nil {
			return nil, err
		}
		return &Node{typ: TypeArray, value: elems}, nil
	}
	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		elems = append(elems, *v)
		switch p.tok.Kind {
		case Comma:
			if err := p.next(); err != nil {
				return nil, err
			}
			if p.tok.Kind == RightBracket {
				return nil, parseErrf(p.tok, "Trailing comma before ']'")
			}
		case RightBracket:
			if err := p.next(); err != nil {
				return nil, err
			}
			return &Node{typ: TypeArray, value: elems}, nil
		default:
			return nil, parseErrf(p.tok, "Expected ',' or ']' in array, got %s", p.tok)
		}
	}
}
