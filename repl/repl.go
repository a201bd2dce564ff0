/*
File    : atto/repl/repl.go
*/

// Package repl implements an interactive Read-Eval-Print Loop for Atto.
// Atto has no notion of a standalone top-level expression -- every
// program is a set of "def"s with a "main" entry point -- so each line a
// user enters here is treated as a complete program in its own right,
// exactly as original_source's own prompt() loop calls exec() once per
// line rather than threading state between them.
package repl

import (
	"io"
	"strings"

	"github.com/attolang/atto"
	"github.com/attolang/atto/value"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a configured interactive session: banner text, version info,
// and the prompt string shown before each line.
type Repl struct {
	Banner  string
	Version string
	License string
	Line    string
	Prompt  string
}

// NewRepl builds a Repl ready to Start.
func NewRepl(banner, version, license, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, License: license, Line: line, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and short usage hint to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Each line is run as a complete program: it needs its own \"def main\".")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the loop, reading lines from reader and writing prompts,
// banners, and results to writer. Both are wired into readline's own
// Config rather than assumed to be the process's stdin/stdout, so the
// same Repl can drive a network connection in server mode.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  io.NopCloser(reader),
		Stdout: writer,
	})
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			return
		}
		rl.SaveHistory(line)

		r.execute(writer, line)
	}
}

// execute runs one line as a complete program and reports the outcome.
func (r *Repl) execute(writer io.Writer, line string) {
	v, errs := atto.Exec(line)
	if errs != nil {
		for _, e := range errs {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}
	if v.Kind == value.KindNull {
		return
	}
	yellowColor.Fprintf(writer, "%s\n", value.ToString(v))
}
