package jsonv

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/andreyvit/diff"
)

func TestNodeString(t *testing.T) {
	tests := []struct {
		have string
		want string
	}{
		{`{"a": 20, "b": [true, null]}`, `{"a":20,"b":[true,null]}`},
		{`[ 1 , 2.5 , "x" ]`, `[1,2.5,"x"]`},
		{`{}`, `{}`},
		{`[]`, `[]`},
		{`null`, `null`},
		{`"he said \"hi\"\n"`, `"he said \"hi\"\n"`},
		{`"tab\tslash\\end"`, `"tab\tslash\\end"`},
		{`""`, `""`},
		{`-0.5`, `-0.5`},
		{`{"k":"é😀"}`, `{"k":"é😀"}`},
	}
	for _, test := range tests {
		n, err := Parse([]byte(test.have))
		if err != nil {
			t.Errorf("Parse(%q): %v", test.have, err)
			continue
		}
		if got := n.String(); got != test.want {
			t.Errorf("String of %q: got %s, want %s", test.have, got, test.want)
		}
	}
}

func TestWriteIndent(t *testing.T) {
	input := `{"servlet":{"name":"cofax","params":[1,2]},"ok":true,"none":null}`
	want := `
{
  "servlet": {
    "name": "cofax",
    "params": [
      1,
      2
    ]
  },
  "ok": true,
  "none": null
}`
	n, err := Parse([]byte(input))
	if err != nil {
		t.Fatal(err)
	}
	b := &bytes.Buffer{}
	if _, err := n.WriteIndent(b, "  "); err != nil {
		t.Fatal(err)
	}
	if b.String() != strings.TrimSpace(want) {
		t.Errorf("indented representation mismatch:\n%s",
			diff.LineDiff(b.String(), strings.TrimSpace(want)))
	}
}

func TestNodeValue(t *testing.T) {
	n, err := Parse([]byte(`[{"a": null}, true, 3, "s", 2.5]`))
	if err != nil {
		t.Fatal(err)
	}
	v, err := n.Value()
	if err != nil {
		t.Fatal(err)
	}
	want := []interface{}{
		map[string]interface{}{"a": nil},
		true,
		int64(3),
		"s",
		2.5,
	}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("got %#v, want %#v", v, want)
	}
}

func TestNodeAccessors(t *testing.T) {
	n, err := Parse([]byte(`{"a": 1, "b": [10, 20], "c": "x"}`))
	if err != nil {
		t.Fatal(err)
	}
	if n.Len() != 3 {
		t.Errorf("Len: got %d, want 3", n.Len())
	}
	if got := n.Keys(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Keys: got %v", got)
	}
	b, ok := n.Get("b")
	if !ok || b.Type() != TypeArray || b.Len() != 2 {
		t.Fatalf("Get(b): got %v, %v", b, ok)
	}
	e, ok := b.Index(1)
	if !ok {
		t.Fatal("Index(1): missing")
	}
	if v, _ := e.Value(); v != int64(20) {
		t.Errorf("Index(1): got %v, want 20", v)
	}
	if _, ok := n.Get("missing"); ok {
		t.Error("Get(missing): unexpectedly found")
	}
	if _, ok := b.Index(2); ok {
		t.Error("Index(2): unexpectedly found")
	}
}

func TestNodeGetPanicsOnScalar(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get on scalar did not panic")
		}
	}()
	n, _ := Parse([]byte(`42`))
	n.Get("a")
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{`{"a":1,"b":2}`, `{"b":2,"a":1}`, true},
		{`[1,2]`, `[2,1]`, false},
		{`{"a":[true,null]}`, `{"a":[true,null]}`, true},
		{`1`, `1.0`, false},
		{`"a"`, `"a"`, true},
		{`{"a":1}`, `{"a":1,"b":2}`, false},
		{`null`, `false`, false},
	}
	for _, test := range tests {
		a, err := Parse([]byte(test.a))
		if err != nil {
			t.Fatal(err)
		}
		b, err := Parse([]byte(test.b))
		if err != nil {
			t.Fatal(err)
		}
		if got := Equal(a, b); got != test.want {
			t.Errorf("Equal(%s, %s): got %v, want %v", test.a, test.b, got, test.want)
		}
	}
	if !Equal(nil, nil) {
		t.Error("Equal(nil, nil): got false")
	}
	if Equal(nil, &Node{typ: TypeNull}) {
		t.Error("Equal(nil, null node): got true")
	}
}

func TestMarshalJSON(t *testing.T) {
	n, err := Parse([]byte(`{"Num":3.125,"Str":"Hello, World!"}`))
	if err != nil {
		t.Fatal(err)
	}
	data, err := n.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"Num": 3.125, "Str": "Hello, World!"}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	var n Node
	if err := n.UnmarshalJSON([]byte(`{"a": 20, "b": [true, null]}`)); err != nil {
		t.Fatal(err)
	}
	if got := n.String(); got != `{"a":20,"b":[true,null]}` {
		t.Errorf("got %s", got)
	}
	if err := n.UnmarshalJSON([]byte(`{"a":`)); err == nil {
		t.Error("expected error for truncated input")
	}
}
