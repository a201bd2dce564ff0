/*
File    : atto/eval/evaluator.go
*/

// Package eval walks the AST a program was parsed into, producing runtime
// value.Value results. Eval itself never threads pending call arguments
// through the recursion -- a Closure always evaluates to a Func value;
// Apply is the separate, explicit place currying happens, re-entering
// itself whenever a Func's body evaluates to another Func (spec.md §4.4,
// "Application (currying)").
package eval

import (
	"github.com/attolang/atto/ast"
	"github.com/attolang/atto/value"
)

// bindDecl extends locals by decl, binding v either as a single name or,
// for a destructuring decl, element-wise across a List of matching
// length. Both Let and Apply share this -- spec.md specifies identical
// binding rules for each.
func bindDecl(locals *value.Locals, decl ast.Decl, v value.Value) (*value.Locals, error) {
	if !decl.Destructure {
		return locals.Extend(decl.Names[0], v), nil
	}
	if v.Kind != value.KindList {
		return nil, fatalf("cannot destructure non-list")
	}
	elems := v.List.Elements()
	if len(elems) != len(decl.Names) {
		return nil, fatalf("cannot destructure list of incorrect length")
	}
	return locals.ExtendAll(decl.Names, elems), nil
}

// Eval recursively reduces expr to a value. prog supplies global
// definitions reachable from Call; locals is the chain of bindings
// introduced by enclosing Let/Closure/Apply forms.
func Eval(prog *ast.Program, locals *value.Locals, expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case ast.Literal:
		return evalLiteral(e), nil

	case *ast.If:
		cond, err := Eval(prog, locals, e.Cond)
		if err != nil {
			return value.Value{}, err
		}
		if cond.Kind == value.KindBool && cond.Bool {
			return Eval(prog, locals, e.Then)
		}
		return Eval(prog, locals, e.Else)

	case *ast.Let:
		v, err := Eval(prog, locals, e.Value)
		if err != nil {
			return value.Value{}, err
		}
		next, err := bindDecl(locals, e.Decl, v)
		if err != nil {
			return value.Value{}, err
		}
		return Eval(prog, next, e.Body)

	case *ast.Closure:
		return value.FuncOf(locals, e.Decl, e.Body), nil

	case *ast.Call:
		args := make([]value.Value, len(e.Args))
		for i, a := range e.Args {
			v, err := Eval(prog, locals, a)
			if err != nil {
				return value.Value{}, err
			}
			args[i] = v
		}

		if v, ok := locals.Lookup(e.Name); ok {
			return Apply(prog, v, args)
		}
		if body, ok := prog.Globals[e.Name]; ok {
			v, err := Eval(prog, nil, body)
			if err != nil {
				return value.Value{}, err
			}
			return Apply(prog, v, args)
		}
		return value.Value{}, fatalf("could not find item %q", e.Name)

	case *ast.Builtin:
		return evalBuiltin(prog, locals, e)

	default:
		return value.Value{}, fatalf("unreachable: unknown expression node")
	}
}

func evalLiteral(lit ast.Literal) value.Value {
	switch {
	case lit.IsNum:
		return value.Num(lit.Num)
	case lit.IsBool:
		return value.Bool(lit.Bool)
	case lit.IsNull:
		return value.Null
	default:
		runes := []rune(lit.Str)
		if len(runes) == 1 {
			return value.Char(runes[0])
		}
		return value.ListOf(value.CharsOf(lit.Str))
	}
}

// Apply implements currying: an empty args list is a no-op, otherwise
// callee must be a Func; its decl binds args[0], its body evaluates with
// that binding, and whatever the body produces is applied to the
// remaining args in turn -- so a body that itself evaluates to another
// Func keeps consuming args without the caller doing anything special.
func Apply(prog *ast.Program, callee value.Value, args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return callee, nil
	}
	if callee.Kind != value.KindFunc {
		return value.Value{}, fatalf("too many arguments")
	}

	f := callee.Func
	next, err := bindDecl(f.Env, f.Decl, args[0])
	if err != nil {
		return value.Value{}, err
	}
	result, err := Eval(prog, next, f.Body)
	if err != nil {
		return value.Value{}, err
	}
	return Apply(prog, result, args[1:])
}

// Run evaluates the program's "main" global, the sole entry point
// (spec.md §4.5). If main evaluates to a Func it is called with the
// initial universe token; otherwise its value is returned unchanged.
func Run(prog *ast.Program) (value.Value, error) {
	main, ok := prog.Globals["main"]
	if !ok {
		return value.Value{}, ErrNoMain
	}

	v, err := Eval(prog, nil, main)
	if err != nil {
		return value.Value{}, err
	}
	if v.Kind != value.KindFunc {
		return v, nil
	}
	return Apply(prog, v, []value.Value{value.UniverseOf(CurrentUniverse())})
}
