/*
File    : atto/eval/builtins.go
*/
package eval

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/attolang/atto/ast"
	"github.com/attolang/atto/value"
)

// stdin is shared across every __input call, exactly as the teacher's
// readline-backed REPL keeps one reader alive across a session rather
// than reopening the terminal each time.
var stdin = bufio.NewReader(os.Stdin)

func evalBuiltin(prog *ast.Program, locals *value.Locals, b *ast.Builtin) (value.Value, error) {
	operands := make([]value.Value, len(b.Operands))
	for i, o := range b.Operands {
		v, err := Eval(prog, locals, o)
		if err != nil {
			return value.Value{}, err
		}
		operands[i] = v
	}

	switch b.Op {
	case ast.OpHead:
		a := operands[0]
		if a.Kind != value.KindList {
			return a, nil
		}
		if h, ok := a.List.Head(); ok {
			return h, nil
		}
		return value.Null, nil

	case ast.OpTail:
		a := operands[0]
		if a.Kind != value.KindList {
			return value.Null, nil
		}
		return value.ListOf(a.List.Tail()), nil

	case ast.OpWrap:
		return value.ListOf(value.Wrap(operands[0])), nil

	case ast.OpCat:
		return opCat(operands[0], operands[1]), nil

	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpRem:
		return opArith(b.Op, operands[0], operands[1])

	case ast.OpEq:
		return value.Bool(value.Eq(operands[0], operands[1])), nil

	case ast.OpLess, ast.OpLessEq:
		return opCompare(b.Op, operands[0], operands[1])

	case ast.OpFloor, ast.OpCeil:
		return opRound(b.Op, operands[0])

	case ast.OpInput:
		return opInput(operands[0])

	case ast.OpPrint:
		return opPrint(operands[0], operands[1])

	case ast.OpDebug:
		fmt.Fprintf(os.Stderr, "%s\n", value.ToString(operands[0]))
		return operands[0], nil

	default:
		return value.Value{}, fatalf("unreachable: unknown builtin op")
	}
}

// opCat: both lists concatenate; exactly one list appends the other value
// on the appropriate side; neither list yields Null (spec.md §4.4).
func opCat(a, b value.Value) value.Value {
	switch {
	case a.Kind == value.KindList && b.Kind == value.KindList:
		return value.ListOf(value.Cat(a.List, b.List))
	case a.Kind == value.KindList:
		elems := append(append([]value.Value{}, a.List.Elements()...), b)
		return value.ListOf(value.NewList(elems))
	case b.Kind == value.KindList:
		elems := append([]value.Value{a}, b.List.Elements()...)
		return value.ListOf(value.NewList(elems))
	default:
		return value.Null
	}
}

func opArith(op ast.BuiltinOp, a, b value.Value) (value.Value, error) {
	if a.Kind != value.KindNum || b.Kind != value.KindNum {
		return value.Value{}, fatalf("%s requires two Num operands", op)
	}
	switch op {
	case ast.OpAdd:
		return value.Num(a.Num + b.Num), nil
	case ast.OpSub:
		return value.Num(a.Num - b.Num), nil
	case ast.OpMul:
		return value.Num(a.Num * b.Num), nil
	case ast.OpDiv:
		return value.Num(a.Num / b.Num), nil
	default: // ast.OpRem
		return value.Num(math.Mod(a.Num, b.Num)), nil
	}
}

func opCompare(op ast.BuiltinOp, a, b value.Value) (value.Value, error) {
	if a.Kind != value.KindNum || b.Kind != value.KindNum {
		return value.Value{}, fatalf("%s requires two Num operands", op)
	}
	if op == ast.OpLess {
		return value.Bool(a.Num < b.Num), nil
	}
	return value.Bool(a.Num <= b.Num), nil
}

func opRound(op ast.BuiltinOp, a value.Value) (value.Value, error) {
	if a.Kind != value.KindNum {
		return value.Value{}, fatalf("%s requires a Num operand", op)
	}
	if op == ast.OpFloor {
		return value.Num(math.Floor(a.Num)), nil
	}
	return value.Num(math.Ceil(a.Num)), nil
}

// opInput consumes the universe token u, reads one line (newline
// preserved, matching original_source's io::stdin().read_line), and
// returns [u+1, chars(line)].
func opInput(u value.Value) (value.Value, error) {
	if u.Kind != value.KindUniverse || !consumeUniverse(u.Universe) {
		return value.Value{}, fatalf("invalid universe value")
	}
	line, err := stdin.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return value.Value{}, fatalf("input: %v", err)
	}
	elems := []value.Value{
		value.UniverseOf(u.Universe + 1),
		value.ListOf(value.CharsOf(line)),
	}
	return value.ListOf(value.NewList(elems)), nil
}

// opPrint consumes the universe token u, writes v's stringified form plus
// a newline, and returns u+1.
func opPrint(u, v value.Value) (value.Value, error) {
	if u.Kind != value.KindUniverse || !consumeUniverse(u.Universe) {
		return value.Value{}, fatalf("invalid universe value")
	}
	fmt.Println(value.ToString(v))
	return value.UniverseOf(u.Universe + 1), nil
}
