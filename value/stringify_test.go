/*
File    : atto/value/stringify_test.go
*/
package value

import "testing"

func TestToString_CharListJoinsWithoutBrackets(t *testing.T) {
	got := ToString(ListOf(CharsOf("hi")))
	if got != "hi" {
		t.Fatalf("expected %q, got %q", "hi", got)
	}
}

func TestToString_MixedListUsesBrackets(t *testing.T) {
	l := NewList([]Value{Num(1), Bool(true)})
	got := ToString(ListOf(l))
	if got != "[1, true]" {
		t.Fatalf("expected %q, got %q", "[1, true]", got)
	}
}

func TestToString_Primitives(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Null, "null"},
		{Bool(false), "false"},
		{Num(2.5), "2.5"},
		{Char('z'), "z"},
	}
	for _, c := range cases {
		if got := ToString(c.v); got != c.want {
			t.Errorf("ToString(%#v) = %q, want %q", c.v, got, c.want)
		}
	}
}
