/*
File    : atto/atto.go
*/

// Package atto ties the lexer, parser, and evaluator into the single
// entry point cmd/atto and the repl package both call: Exec. It mirrors
// the shape of original_source's own crate root, which exposes exec()
// over the same parse-then-run pipeline.
package atto

import (
	"github.com/attolang/atto/eval"
	"github.com/attolang/atto/parser"
	"github.com/attolang/atto/value"
)

// Prelude is prepended to every source string Exec runs, the hook a
// standard library of Atto-defined globals would occupy. Atto's
// original core.at prelude isn't part of this distribution, so this is
// left empty rather than invented.
var Prelude = ""

// Exec parses src (with Prelude prepended) and runs its "main" global.
// Lex or parse failures are returned as-is without attempting to run
// anything; a runtime fatal error comes back as the sole element of the
// returned slice, matching ParseSource's one-error-per-call shape.
func Exec(src string) (value.Value, []error) {
	prog, errs := parser.ParseSource(Prelude + src)
	if errs != nil {
		return value.Value{}, errs
	}
	v, err := eval.Run(prog)
	if err != nil {
		return value.Value{}, []error{err}
	}
	return v, nil
}
