package fdon

import (
	"bytes"
	"testing"
)

func appendJSON(t *testing.T, input string) string {
	t.Helper()
	arena := NewArena()
	v, err := Parse([]byte(input), arena)
	if err != nil {
		t.Fatalf("Parse(%q) = %v", input, err)
	}
	buf, err := AppendJSON(nil, v)
	if err != nil {
		t.Fatalf("AppendJSON(%q) = %v", input, err)
	}
	return string(buf)
}

func TestAppendJSONScalars(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"N1", "1"},
		{"N-7", "-7"},
		{"Btrue", "true"},
		{"Bfalse", "false"},
		{"null", "null"},
		{`S"hi"`, `"hi"`},
		{`SE"line\nbreak"`, `"line\nbreak"`},
		{`D"2025-11-09"`, `"2025-11-09"`},
		{"T1699999999", "1699999999"},
		{`T"2025-11-09T00:00:00Z"`, `"2025-11-09T00:00:00Z"`},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			if got := appendJSON(t, c.input); got != c.want {
				t.Errorf("AppendJSON(%q) = %q, want %q", c.input, got, c.want)
			}
		})
	}
}

func TestAppendJSONArray(t *testing.T) {
	got := appendJSON(t, `A[N1,N2,N3]`)
	if want := `[1,2,3]`; got != want {
		t.Errorf("AppendJSON = %q, want %q", got, want)
	}
}

func TestAppendJSONEmptyContainers(t *testing.T) {
	if got := appendJSON(t, "A[]"); got != "[]" {
		t.Errorf("AppendJSON(A[]) = %q", got)
	}
	if got := appendJSON(t, "O{}"); got != "{}" {
		t.Errorf("AppendJSON(O{}) = %q", got)
	}
}

func TestAppendJSONObjectSingleKey(t *testing.T) {
	got := appendJSON(t, `O{a:N1}`)
	if want := `{"a":1}`; got != want {
		t.Errorf("AppendJSON = %q, want %q", got, want)
	}
}

func TestAppendJSONNestedStructure(t *testing.T) {
	got := appendJSON(t, `O{list:A[N1,Btrue,null]}`)
	if want := `{"list":[1,true,null]}`; got != want {
		t.Errorf("AppendJSON = %q, want %q", got, want)
	}
}

func TestAppendJSONEscapesSpecialCharacters(t *testing.T) {
	got := appendJSON(t, `S"quote\"inside"`)
	// Minify never ran here: the raw string body includes a literal
	// backslash-quote sequence, which RawString parsing borrows
	// verbatim without decoding (spec.md Invariant 1); re-encoding to
	// JSON must still escape the embedded quote and backslash.
	if !bytes.Contains([]byte(got), []byte(`\"`)) {
		t.Errorf("AppendJSON did not escape embedded quote: %q", got)
	}
}

func TestWriteJSON(t *testing.T) {
	// Object key order is unspecified (see DESIGN.md), so this uses a
	// single-key object to keep the expected output deterministic.
	arena := NewArena()
	v, err := Parse([]byte(`O{a:S"x"}`), arena)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteJSON(&buf, v); err != nil {
		t.Fatal(err)
	}
	if want := `{"a":"x"}`; buf.String() != want {
		t.Errorf("WriteJSON = %q, want %q", buf.String(), want)
	}
}
