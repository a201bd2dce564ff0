/*
File    : atto/lexer/token.go
*/

// Package lexer turns Atto source text into a sequence of arity-tagged
// tokens. Every identifier token already carries the count of trailing
// quote marks found at its defining occurrence, plus whether it was
// prefixed with '$' (a scalar reference); the parser's two-pass arity
// scheme depends on that payload being present on the token itself.
package lexer

import (
	"fmt"

	"github.com/attolang/atto/srcerr"
)

// Kind identifies the lexeme carried by a Token. Reserved words get their
// own Kind rather than reusing KindIdent, since the grammar treats them as
// distinct productions (spec.md §3, "Tokens").
type Kind int

const (
	KindIdent Kind = iota
	KindNum
	KindStr
	KindDef
	KindLet
	KindIf
	KindTrue
	KindFalse
	KindNull
	KindPipe
	KindArrow
)

func (k Kind) String() string {
	switch k {
	case KindIdent:
		return "Ident"
	case KindNum:
		return "Num"
	case KindStr:
		return "Str"
	case KindDef:
		return "def"
	case KindLet:
		return "let"
	case KindIf:
		return "if"
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindNull:
		return "null"
	case KindPipe:
		return "|"
	case KindArrow:
		return "->"
	default:
		return "?"
	}
}

// reservedWords maps an alphanumeric identifier spelling to its reserved
// Kind. Symbolic identifiers (runs of punctuation) are never reserved --
// only "->" gets special treatment there, handled directly in the lexer.
var reservedWords = map[string]Kind{
	"def":   KindDef,
	"let":   KindLet,
	"if":    KindIf,
	"true":  KindTrue,
	"false": KindFalse,
	"null":  KindNull,
}

// Token is a single lexeme plus the source range it was read from.
//
// Name, Scalar, and Arity are only meaningful when Kind is KindIdent.
// Text carries the raw text of a KindNum token or the decoded body of a
// KindStr token.
type Token struct {
	Kind   Kind
	Name   string
	Scalar bool
	Arity  int
	Text   string
	Range  srcerr.SrcRange
}

// String renders the token the way a diagnostic or debug trace would want
// to see it, e.g. "Ident(add, arity=2)" or "Num(42)".
func (t Token) String() string {
	switch t.Kind {
	case KindIdent:
		prefix := ""
		if t.Scalar {
			prefix = "$"
		}
		return fmt.Sprintf("Ident(%s%s, arity=%d)", prefix, t.Name, t.Arity)
	case KindNum:
		return fmt.Sprintf("Num(%s)", t.Text)
	case KindStr:
		return fmt.Sprintf("Str(%q)", t.Text)
	default:
		return t.Kind.String()
	}
}
