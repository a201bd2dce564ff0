/*
File    : atto/eval/error.go
*/
package eval

import "fmt"

// FatalError is a runtime error: the evaluator has reached a state
// spec.md's behavioral contract calls fatal. Unlike srcerr.Error (parse
// time, carries a source range), a FatalError has no location -- by the
// time evaluation runs, the program has already been reduced to an AST
// with no token positions left to report.
type FatalError struct {
	Msg string
}

func (e *FatalError) Error() string { return e.Msg }

func fatalf(format string, args ...any) *FatalError {
	return &FatalError{Msg: fmt.Sprintf(format, args...)}
}

// ErrNoMain is returned by Run when the program has no "main" global.
var ErrNoMain = &FatalError{Msg: "NoMain"}
