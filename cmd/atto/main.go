/*
File    : atto/cmd/atto/main.go
*/

// Command atto is the interpreter's entry point. It provides three modes
// of operation; the first two are the ones original_source's own cli.rs
// exposes, and server mode is carried over from the teacher's CLI:
//  1. REPL mode (default): an interactive session over stdin/stdout.
//  2. File mode: run a single source file and exit.
//  3. Server mode: a REPL over TCP, one goroutine per connection.
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/attolang/atto"
	"github.com/attolang/atto/ast"
	"github.com/attolang/atto/parser"
	"github.com/attolang/atto/repl"
	"github.com/attolang/atto/value"
	"github.com/fatih/color"
)

const (
	version = "v0.1.0"
	license = "MIT"
	prompt  = "atto >>> "
)

const banner = `
   ▄▄▄▄▄  ▄▄▄▄▄▄▄  ▄▄▄▄▄▄▄  ▄▄▄▄▄▄
  ██   ██    ██       ██   ██    ██
  ███████    ██       ██   ██    ██
  ██   ██    ██       ██   ██    ██
  ██   ██    ██       ██    ██▄▄██
`

const line = "----------------------------------------------------------------"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	args := os.Args[1:]

	if len(args) == 0 {
		repler := repl.NewRepl(banner, version, license, line, prompt)
		repler.Start(os.Stdin, os.Stdout)
		return
	}

	switch args[0] {
	case "--help", "-h":
		showHelp()
	case "--version", "-v":
		showVersion()
	case "server":
		if len(args) < 2 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing port for server mode. Usage: atto server <port>\n")
			os.Exit(1)
		}
		startServer(args[1])
	case "-dump-ast":
		if len(args) < 2 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing file for -dump-ast. Usage: atto -dump-ast <file>\n")
			os.Exit(1)
		}
		dumpAST(args[1])
	default:
		if len(args) > 1 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] too many arguments. Usage: atto [<file>]\n")
			os.Exit(1)
		}
		runFile(args[0])
	}
}

func showHelp() {
	cyanColor.Println("atto - a whitespace-free, arity-annotated functional language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  atto                     Start interactive REPL mode")
	fmt.Println("  atto <path-to-file>      Execute an atto source file")
	fmt.Println("  atto server <port>       Start a REPL server on the given port")
	fmt.Println("  atto -dump-ast <file>    Print the parsed AST instead of running it")
	fmt.Println("  atto --help              Display this help message")
	fmt.Println("  atto --version           Display version information")
}

func showVersion() {
	cyanColor.Printf("atto %s (%s)\n", version, license)
}

func runFile(fileName string) {
	src, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}

	v, errs := atto.Exec(string(src))
	if errs != nil {
		for _, e := range errs {
			redColor.Fprintf(os.Stderr, "%s\n", e)
		}
		os.Exit(1)
	}
	if v.Kind != value.KindNull {
		fmt.Println(value.ToString(v))
	}
}

func dumpAST(fileName string) {
	src, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}

	prog, errs := parser.ParseSource(atto.Prelude + string(src))
	if errs != nil {
		for _, e := range errs {
			redColor.Fprintf(os.Stderr, "%s\n", e)
		}
		os.Exit(1)
	}
	ast.DumpProgram(os.Stdout, prog)
}

func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("atto REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(banner, version, license, line, prompt)
	repler.Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}
