package jsonv

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Type is an enum for the JSON value types.
type Type uint8

// Types to compare nodes of a value tree with. The zero value signals
// invalid.
const (
	TypeInvalid Type = iota
	TypeNull
	TypeBool
	TypeNumber
	TypeString
	TypeArray
	TypeObject
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeNull:    "null",
	TypeBool:    "bool",
	TypeNumber:  "number",
	TypeString:  "string",
	TypeArray:   "array",
	TypeObject:  "object",
}

func (t Type) String() string {
	if int(t) >= len(typeNames) {
		return typeNames[TypeInvalid]
	}
	return typeNames[t]
}

// Node is one node of a value tree built by the parser. Depending on its
// type it holds a different value:
//
//	Type        ValueType
//	TypeInvalid nil
//	TypeNull    nil
//	TypeBool    bool
//	TypeNumber  int64 or float64
//	TypeString  string (decoded)
//	TypeArray   []Node
//	TypeObject  []Member
//
// Object members keep their insertion order and have unique keys. The tree
// holds no references back into tokens or lexer state.
type Node struct {
	typ   Type
	value interface{}
}

// Member is a single key/value entry of an object node.
type Member struct {
	Key string
	Node
}

// Type returns the JSON type of a node.
func (n *Node) Type() Type {
	if n == nil {
		return TypeInvalid
	}
	return n.typ
}

// Value creates the Go representation of a node. Like encoding/json the
// possible underlying types of the first return parameter are:
//
//	TypeObject  map[string]interface{}
//	TypeArray   []interface{}
//	TypeString  string
//	TypeNumber  int64 or float64
//	TypeBool    bool
//	TypeNull    nil (with the error being nil too)
//
// Note that the map form loses the member order of an object.
func (n *Node) Value() (interface{}, error) {
	if !n.wellFormed() {
		return nil, fmt.Errorf("internal type mismatch; want %s, got %T", n.typ, n.value)
	}
	switch n.typ {
	case TypeObject:
		m := make(map[string]interface{}, n.Len())
		for _, f := range n.members() {
			itf, err := f.Value()
			if err != nil {
				return nil, err
			}
			m[f.Key] = itf
		}
		return m, nil
	case TypeArray:
		ee := n.elems()
		s := make([]interface{}, 0, len(ee))
		for i := range ee {
			itf, err := ee[i].Value()
			if err != nil {
				return nil, err
			}
			s = append(s, itf)
		}
		return s, nil
	default:
		return n.value, nil
	}
}

// Len gives the number of elements of an array or members of an object. It
// is 0 for invalid nodes and 1 for every other standalone value.
func (n *Node) Len() int {
	switch n.Type() {
	case TypeArray:
		return len(n.elems())
	case TypeObject:
		return len(n.members())
	case TypeInvalid:
		return 0
	default:
		return 1
	}
}

// Get returns the member of an object node with the given key. It panics if
// n is not an object.
func (n *Node) Get(key string) (*Node, bool) {
	if n.Type() != TypeObject {
		panic(errors.Wrapf(ErrNotArrayOrObject, "is %s", n.Type()))
	}
	mm := n.members()
	for i := range mm {
		if mm[i].Key == key {
			return &mm[i].Node, true
		}
	}
	return nil, false
}

// Index returns the i-th element of an array node. It panics if n is not an
// array.
func (n *Node) Index(i int) (*Node, bool) {
	if n.Type() != TypeArray {
		panic(errors.Wrapf(ErrNotArrayOrObject, "is %s", n.Type()))
	}
	ee := n.elems()
	if i < 0 || i >= len(ee) {
		return nil, false
	}
	return &ee[i], true
}

// Keys returns the member keys of an object node in insertion order, or nil
// if n is not an object.
func (n *Node) Keys() []string {
	if n.Type() != TypeObject {
		return nil
	}
	mm := n.members()
	ss := make([]string, len(mm))
	for i := range mm {
		ss[i] = mm[i].Key
	}
	return ss
}

func (n *Node) members() []Member { mm, _ := n.value.([]Member); return mm }
func (n *Node) elems() []Node     { ee, _ := n.value.([]Node); return ee }

// wellFormed reports whether the dynamic value matches the node's type tag.
func (n *Node) wellFormed() bool {
	switch n.value.(type) {
	case nil:
		return n.typ == TypeNull || n.typ == TypeInvalid ||
			n.typ == TypeArray || n.typ == TypeObject
	case bool:
		return n.typ == TypeBool
	case int64, float64:
		return n.typ == TypeNumber
	case string:
		return n.typ == TypeString
	case []Node:
		return n.typ == TypeArray
	case []Member:
		return n.typ == TypeObject
	default:
		return false
	}
}

// format writes a valid JSON representation of n to w with prefix as indent,
// postfix after opening containers and values, commaSep after each comma and
// colonSep after keys.
func (n *Node) format(w io.Writer, prefix, postfix, commaSep, colonSep string) (int, error) {
	if n == nil {
		return 0, errors.New("format of <nil> node")
	}
	buf, err := n.appendJSON(make([]byte, 0, 64), prefix, postfix, commaSep, colonSep, 0)
	if err != nil {
		return 0, err
	}
	return w.Write(buf)
}

func (n *Node) appendJSON(buf []byte, prefix, postfix, commaSep, colonSep string, level int) ([]byte, error) {
	if !n.wellFormed() {
		return nil, fmt.Errorf("format: node of unknown shape: %#v", n)
	}
	indent := func(lvl int) {
		for i := 0; i < lvl; i++ {
			buf = append(buf, prefix...)
		}
	}
	var err error
	switch n.typ {
	case TypeNull:
		buf = append(buf, "null"...)
	case TypeBool:
		if n.value.(bool) {
			buf = append(buf, "true"...)
		} else {
			buf = append(buf, "false"...)
		}
	case TypeNumber:
		switch v := n.value.(type) {
		case int64:
			buf = strconv.AppendInt(buf, v, 10)
		case float64:
			buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		}
	case TypeString:
		buf = appendQuote(buf, n.value.(string))
	case TypeArray:
		cc := n.elems()
		if len(cc) == 0 {
			buf = append(buf, "[]"...)
			break
		}
		buf = append(buf, '[')
		buf = append(buf, postfix...)
		for i := range cc {
			indent(level + 1)
			buf, err = cc[i].appendJSON(buf, prefix, postfix, commaSep, colonSep, level+1)
			if err != nil {
				return nil, err
			}
			if i < len(cc)-1 {
				buf = append(buf, ',')
				buf = append(buf, commaSep...)
			}
			buf = append(buf, postfix...)
		}
		indent(level)
		buf = append(buf, ']')
	case TypeObject:
		cc := n.members()
		if len(cc) == 0 {
			buf = append(buf, "{}"...)
			break
		}
		buf = append(buf, '{')
		buf = append(buf, postfix...)
		for i := range cc {
			indent(level + 1)
			buf = appendQuote(buf, cc[i].Key)
			buf = append(buf, ':')
			buf = append(buf, colonSep...)
			buf, err = cc[i].appendJSON(buf, prefix, postfix, commaSep, colonSep, level+1)
			if err != nil {
				return nil, err
			}
			if i < len(cc)-1 {
				buf = append(buf, ',')
				buf = append(buf, commaSep...)
			}
			buf = append(buf, postfix...)
		}
		indent(level)
		buf = append(buf, '}')
	default:
		return nil, fmt.Errorf("format: node of unknown type: %#v", n)
	}
	return buf, nil
}

const hexDigits = "0123456789abcdef"

// appendQuote escapes s per RFC 8259: quote, backslash and control
// characters are escaped, everything else passes through verbatim.
func appendQuote(buf []byte, s string) []byte {
	buf = append(buf, '"')
	for _, r := range s {
		switch r {
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '\b':
			buf = append(buf, '\\', 'b')
		case '\f':
			buf = append(buf, '\\', 'f')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		default:
			if r < 0x20 {
				buf = append(buf, '\\', 'u', '0', '0',
					hexDigits[r>>4], hexDigits[r&0xf])
			} else {
				buf = utf8.AppendRune(buf, r)
			}
		}
	}
	return append(buf, '"')
}

// String formats the tree as valid JSON with no whitespace.
func (n *Node) String() string {
	b := &strings.Builder{}
	if _, err := n.format(b, "", "", "", ""); err != nil {
		return ""
	}
	return b.String()
}

// WriteJSON writes the tree held by n to w with the same representation as
// n.String().
func (n *Node) WriteJSON(w io.Writer) (int, error) {
	return n.format(w, "", "", "", "")
}

// WriteIndent writes the tree held by n to w with the given indent
// (preferably spaces or a tab), one member or element per line.
func (n *Node) WriteIndent(w io.Writer, indent string) (int, error) {
	return n.format(w, indent, "\n", "", " ")
}

// MarshalJSON implements the json.Marshaler interface for Node.
func (n *Node) MarshalJSON() ([]byte, error) {
	b := &bytes.Buffer{}
	if _, err := n.format(b, "", "", " ", " "); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface for Node.
func (n *Node) UnmarshalJSON(data []byte) error {
	m, err := Parse(data)
	if err != nil {
		return err
	}
	*n = *m
	return nil
}

// Equal compares the nodes and all their children. Object member order is
// arbitrary, array element order is not.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.typ != b.typ {
		return false
	}
	switch a.typ {
	case TypeArray:
		an, bn := a.elems(), b.elems()
		if len(an) != len(bn) {
			return false
		}
		for i := range an {
			if !Equal(&an[i], &bn[i]) {
				return false
			}
		}
		return true
	case TypeObject:
		am, bm := a.members(), b.members()
		if len(am) != len(bm) {
			return false
		}
		for i := range am {
			m, ok := b.Get(am[i].Key)
			if !ok || !Equal(&am[i].Node, m) {
				return false
			}
		}
		return true
	default:
		return a.value == b.value
	}
}
