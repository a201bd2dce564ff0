/*
File    : atto/value/value.go
*/

// Package value implements Atto's runtime values and the Locals
// environment that closures capture. A Value is one of Null, Bool, Num,
// Char, List, Func, or Universe (spec.md §3); Kind tags which field is
// live, mirroring the tagged-union style the teacher repo uses for its
// own GoMixObject variants, but as a single struct rather than an
// interface -- Atto has a small, closed set of runtime shapes and no
// user-defined types, so there is nothing an interface would buy beyond
// what a tag switch already gives directly.
package value

import "github.com/attolang/atto/ast"

type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNum
	KindChar
	KindList
	KindFunc
	KindUniverse
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNum:
		return "num"
	case KindChar:
		return "char"
	case KindList:
		return "list"
	case KindFunc:
		return "func"
	case KindUniverse:
		return "universe"
	default:
		return "?"
	}
}

// Value is a single Atto runtime value. Only the field matching Kind is
// meaningful; the rest are zero.
type Value struct {
	Kind     Kind
	Bool     bool
	Num      float64
	Char     rune
	List     *List
	Func     *Func
	Universe int
}

var Null = Value{Kind: KindNull}

func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }
func Num(n float64) Value { return Value{Kind: KindNum, Num: n} }
func Char(c rune) Value { return Value{Kind: KindChar, Char: c} }

func ListOf(l *List) Value { return Value{Kind: KindList, List: l} }

func FuncOf(env *Locals, decl ast.Decl, body ast.Expr) Value {
	return Value{Kind: KindFunc, Func: &Func{Env: env, Decl: decl, Body: body}}
}

func UniverseOf(n int) Value { return Value{Kind: KindUniverse, Universe: n} }

// Func is a lexical closure: the Locals in view at the moment the
// Closure expression was evaluated, plus the declaration it binds its
// argument to and the body it evaluates with that binding in scope.
// Globals are deliberately not captured here -- they resolve by name at
// call time, never by value (spec.md §3, "Invariants").
type Func struct {
	Env  *Locals
	Decl ast.Decl
	Body ast.Expr
}
