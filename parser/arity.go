/*
File    : atto/parser/arity.go
*/
package parser

import (
	"github.com/attolang/atto/ast"
	"github.com/attolang/atto/lexer"
	"github.com/attolang/atto/srcerr"
)

// builtinArities is the fixed table of primitive operations, consulted
// only after locals and globals fail to resolve a name (see resolveIdent).
var builtinArities = func() map[string]ast.BuiltinOp {
	ops := []ast.BuiltinOp{
		ast.OpHead, ast.OpTail, ast.OpWrap, ast.OpCat,
		ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpRem,
		ast.OpEq, ast.OpLess, ast.OpLessEq,
		ast.OpFloor, ast.OpCeil,
		ast.OpInput, ast.OpPrint, ast.OpDebug,
	}
	m := make(map[string]ast.BuiltinOp, len(ops))
	for _, op := range ops {
		m[op.String()] = op
	}
	return m
}()

func lookupBuiltin(name string) (ast.BuiltinOp, bool) {
	op, ok := builtinArities[name]
	return op, ok
}

// BuildArityTable is the prepass described in spec.md §4.2: a single linear
// scan collecting (name, arity) for every "def", before any body is
// parsed. Later defs of the same name win, matching the original's
// "last-wins" insertion order.
func BuildArityTable(tokens []lexer.Token) (map[string]int, error) {
	arities := make(map[string]int)

	for i := 0; i < len(tokens); i++ {
		if tokens[i].Kind != lexer.KindDef {
			continue
		}
		if i+1 >= len(tokens) {
			return nil, srcerr.UnexpectedEOF()
		}
		nameTok := tokens[i+1]
		if nameTok.Kind != lexer.KindIdent {
			return nil, srcerr.ExpectedNoArityIdent().At(nameTok.Range)
		}
		arities[nameTok.Name] = nameTok.Arity
	}

	return arities, nil
}
