/*
File    : atto/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/attolang/atto/ast"
	"github.com/attolang/atto/lexer"
	"github.com/stretchr/testify/assert"
)

func TestParseSource_Globals(t *testing.T) {
	src := `def main' u -> __print u 42`
	prog, errs := ParseSource(src)
	assert.Nil(t, errs)
	assert.Contains(t, prog.Globals, "main")

	closure, ok := prog.Globals["main"].(*ast.Closure)
	assert.True(t, ok)
	assert.Equal(t, "u", closure.Decl.Names[0])

	builtin, ok := closure.Body.(*ast.Builtin)
	assert.True(t, ok)
	assert.Equal(t, ast.OpPrint, builtin.Op)
	assert.Len(t, builtin.Operands, 2)
}

func TestParseSource_CurriedGlobal(t *testing.T) {
	src := `def add'' x -> y -> __add x y
def main' u -> __print u add 2 3`
	prog, errs := ParseSource(src)
	assert.Nil(t, errs)

	main := prog.Globals["main"].(*ast.Closure)
	print := main.Body.(*ast.Builtin)
	call := print.Operands[1].(*ast.Call)
	assert.Equal(t, "add", call.Name)
	assert.Len(t, call.Args, 2)
}

func TestParseSource_Destructure(t *testing.T) {
	src := `def main' u -> let |a b| __cat __wrap 1 __wrap 2 a`
	prog, errs := ParseSource(src)
	assert.Nil(t, errs)

	main := prog.Globals["main"].(*ast.Closure)
	let := main.Body.(*ast.Let)
	assert.True(t, let.Decl.Destructure)
	assert.Equal(t, []string{"a", "b"}, let.Decl.Names)
}

func TestParseSource_ScalarReference(t *testing.T) {
	src := `def one' x -> x
def main' u -> __wrap $one`
	prog, errs := ParseSource(src)
	assert.Nil(t, errs)

	main := prog.Globals["main"].(*ast.Closure)
	wrap := main.Body.(*ast.Builtin)
	call := wrap.Operands[0].(*ast.Call)
	assert.Equal(t, "one", call.Name)
	assert.Empty(t, call.Args)
}

func TestParseSource_IfAndLet(t *testing.T) {
	src := `def main' u -> let z if true 1 2 __wrap z`
	prog, errs := ParseSource(src)
	assert.Nil(t, errs)

	main := prog.Globals["main"].(*ast.Closure)
	let := main.Body.(*ast.Let)
	assert.Equal(t, "z", let.Decl.Names[0])
	_, ok := let.Value.(*ast.If)
	assert.True(t, ok)
}

func TestParseSource_UnknownIdentFails(t *testing.T) {
	src := `def main' u -> nosuchthing`
	_, errs := ParseSource(src)
	assert.NotNil(t, errs)
}

func TestParseSource_PipeParamsRejectArity(t *testing.T) {
	src := `def main' u -> let |a' b| __wrap a`
	_, errs := ParseSource(src)
	assert.NotNil(t, errs)
}

func TestBuildArityTable(t *testing.T) {
	tokens, lexErrs := lexer.Lex(`def add'' x -> y -> __add x y`)
	assert.Nil(t, lexErrs)

	table, err := BuildArityTable(tokens)
	assert.NoError(t, err)
	assert.Equal(t, 2, table["add"])
}
