/*
File    : atto/value/stringify.go
*/
package value

import (
	"strconv"
	"strings"
)

// ToString renders v the way __print and __debug both do: primitives in a
// plain text form, a List made entirely of Chars as the joined characters
// with no brackets, any other List as "[e1, e2, ...]".
func ToString(v Value) string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindNum:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case KindChar:
		return string(v.Char)
	case KindList:
		if isCharList(v.List) {
			var b strings.Builder
			for _, e := range v.List.Elements() {
				b.WriteRune(e.Char)
			}
			return b.String()
		}
		elems := v.List.Elements()
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = ToString(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindFunc:
		return "<func>"
	case KindUniverse:
		return "<universe>"
	default:
		return "?"
	}
}

// isCharList reports whether every element of l is a Char -- an empty
// list does not count, since there's nothing to distinguish it from any
// other empty list, and it renders as "[]" rather than "".
func isCharList(l *List) bool {
	elems := l.Elements()
	if len(elems) == 0 {
		return false
	}
	for _, e := range elems {
		if e.Kind != KindChar {
			return false
		}
	}
	return true
}

// CharsOf builds a List of Chars from a Go string, the shape __input
// returns its line in.
func CharsOf(s string) *List {
	runes := []rune(s)
	elems := make([]Value, len(runes))
	for i, r := range runes {
		elems[i] = Char(r)
	}
	return NewList(elems)
}
