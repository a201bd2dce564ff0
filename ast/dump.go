/*
File    : atto/ast/dump.go
*/
package ast

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

const dumpIndentSize = 2

// Dumper renders a Program as an indented tree, one line per node. It is
// the debugging aid invoked by cmd/atto's -dump-ast flag -- useful for
// seeing how a source file's arity and scoping actually resolved.
type Dumper struct {
	indent int
	buf    bytes.Buffer
}

func (d *Dumper) writeIndent() {
	for i := 0; i < d.indent; i++ {
		d.buf.WriteByte(' ')
	}
}

func (d *Dumper) line(format string, args ...any) {
	d.writeIndent()
	d.buf.WriteString(fmt.Sprintf(format, args...))
	d.buf.WriteByte('\n')
}

// DumpProgram writes an indented rendering of every global in prog, in
// name-sorted order, to w.
func DumpProgram(w io.Writer, prog *Program) {
	d := &Dumper{}
	names := make([]string, 0, len(prog.Globals))
	for name := range prog.Globals {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		d.line("def %s", name)
		d.indent += dumpIndentSize
		d.dumpExpr(prog.Globals[name])
		d.indent -= dumpIndentSize
	}
	io.WriteString(w, d.buf.String())
}

func (d *Dumper) dumpExpr(expr Expr) {
	switch e := expr.(type) {
	case Literal:
		switch {
		case e.IsNum:
			d.line("Literal num=%g", e.Num)
		case e.IsStr:
			d.line("Literal str=%q", e.Str)
		case e.IsBool:
			d.line("Literal bool=%t", e.Bool)
		default:
			d.line("Literal null")
		}

	case *If:
		d.line("If")
		d.indent += dumpIndentSize
		d.dumpExpr(e.Cond)
		d.dumpExpr(e.Then)
		d.dumpExpr(e.Else)
		d.indent -= dumpIndentSize

	case *Let:
		d.line("Let %s", declString(e.Decl))
		d.indent += dumpIndentSize
		d.dumpExpr(e.Value)
		d.dumpExpr(e.Body)
		d.indent -= dumpIndentSize

	case *Builtin:
		d.line("Builtin %s", e.Op)
		d.indent += dumpIndentSize
		for _, o := range e.Operands {
			d.dumpExpr(o)
		}
		d.indent -= dumpIndentSize

	case *Call:
		d.line("Call %s/%d", e.Name, len(e.Args))
		d.indent += dumpIndentSize
		for _, a := range e.Args {
			d.dumpExpr(a)
		}
		d.indent -= dumpIndentSize

	case *Closure:
		d.line("Closure %s", declString(e.Decl))
		d.indent += dumpIndentSize
		d.dumpExpr(e.Body)
		d.indent -= dumpIndentSize

	default:
		d.line("<unknown node>")
	}
}

func declString(decl Decl) string {
	if !decl.Destructure {
		return decl.Names[0]
	}
	s := "|"
	for i, n := range decl.Names {
		if i > 0 {
			s += " "
		}
		s += n
	}
	return s + "|"
}
