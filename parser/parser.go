/*
File    : atto/parser/parser.go
*/

// Package parser implements Atto's two-pass parse: BuildArityTable scans
// every "def" for its name and declared arity before any body is parsed,
// then Parse walks the token stream a second time, consulting that table
// (plus the local scope in view at each point) to know how many following
// expressions a bare identifier's call site must consume. Atto has no
// parentheses for application, so this arity lookup is not an optimization
// -- it is the only way a call site's boundary is known at all.
package parser

import (
	"strconv"

	"github.com/attolang/atto/ast"
	"github.com/attolang/atto/lexer"
	"github.com/attolang/atto/srcerr"
)

// scopeEntry is a name visible while parsing a body, tagged with the
// arity it was declared with. Locals carry arity too (not just globals):
// a Let or a bare "name -> body" closure may bind a name that is itself
// meant to be called with several following expressions, e.g. a
// higher-order parameter standing in for a multi-argument function.
type scopeEntry struct {
	Name  string
	Arity int
}

// parseDecl is the parser's view of a Decl: which names a Let or closure
// introduces, and (for the non-destructuring case) what arity each
// carries for the body's own call sites.
type parseDecl struct {
	single      scopeEntry
	destructure []scopeEntry
	isDestruct  bool
}

func (d parseDecl) toAST() ast.Decl {
	if d.isDestruct {
		names := make([]string, len(d.destructure))
		for i, e := range d.destructure {
			names[i] = e.Name
		}
		return ast.DestructureDecl(names)
	}
	return ast.SingleDecl(d.single.Name)
}

// state walks the token stream with a cursor; globals is the arity table
// built in the prepass.
type state struct {
	tokens  []lexer.Token
	pos     int
	globals map[string]int
}

func (s *state) peek() (lexer.Token, bool) {
	if s.pos >= len(s.tokens) {
		return lexer.Token{}, false
	}
	return s.tokens[s.pos], true
}

func (s *state) next() (lexer.Token, bool) {
	tok, ok := s.peek()
	if ok {
		s.pos++
	}
	return tok, ok
}

// readParams reads a pipe-delimited parameter list "| p1 p2 ... |". Every
// name must be a bare, zero-arity, non-scalar identifier -- these are
// destructuring targets, not callable references (spec.md §4.3).
func readParams(s *state) ([]scopeEntry, error) {
	tok, ok := s.next()
	if !ok {
		return nil, srcerr.ExpectedPipe()
	}
	if tok.Kind != lexer.KindPipe {
		return nil, srcerr.ExpectedPipe().At(tok.Range)
	}

	var params []scopeEntry
	for {
		tok, ok := s.next()
		if !ok {
			return nil, srcerr.ExpectedDelimiter('|')
		}
		switch tok.Kind {
		case lexer.KindPipe:
			return params, nil
		case lexer.KindIdent:
			if tok.Scalar || tok.Arity != 0 {
				return nil, srcerr.ExpectedArityIdent().At(tok.Range)
			}
			params = append(params, scopeEntry{Name: tok.Name, Arity: 0})
		default:
			return nil, srcerr.ExpectedPipe().At(tok.Range)
		}
	}
}

// readDecl reads either a bare identifier (Single) or a pipe-delimited
// list (Destructure), used by both Let and the full closure form.
func readDecl(s *state) (parseDecl, error) {
	tok, ok := s.peek()
	if !ok {
		return parseDecl{}, srcerr.ExpectedArityIdent()
	}
	if tok.Kind == lexer.KindPipe {
		params, err := readParams(s)
		if err != nil {
			return parseDecl{}, err
		}
		return parseDecl{destructure: params, isDestruct: true}, nil
	}
	if tok.Kind == lexer.KindIdent && !tok.Scalar {
		s.next()
		return parseDecl{single: scopeEntry{Name: tok.Name, Arity: tok.Arity}}, nil
	}
	return parseDecl{}, srcerr.ExpectedArityIdent().At(tok.Range)
}

// resolution is the outcome of resolving a bare identifier at a call
// site: its arity, and, if nothing local or global shadows it, the
// builtin operation it names.
type resolution struct {
	arity   int
	builtin ast.BuiltinOp
	isOp    bool
	found   bool
}

// resolveIdent looks up name in the order spec.md mandates: locals
// (innermost first), then globals, then builtins.
func resolveIdent(name string, globals map[string]int, locals []scopeEntry) resolution {
	for i := len(locals) - 1; i >= 0; i-- {
		if locals[i].Name == name {
			return resolution{arity: locals[i].Arity, found: true}
		}
	}
	if arity, ok := globals[name]; ok {
		return resolution{arity: arity, found: true}
	}
	if op, ok := lookupBuiltin(name); ok {
		return resolution{arity: op.Arity(), builtin: op, isOp: true, found: true}
	}
	return resolution{}
}

// readBuiltin consumes a builtin's fixed operand count as sub-expressions.
func readBuiltin(s *state, op ast.BuiltinOp, globals map[string]int, locals []scopeEntry) (*ast.Builtin, error) {
	n := op.Arity()
	operands := make([]ast.Expr, n)
	for i := 0; i < n; i++ {
		expr, err := readExpr(s, globals, locals)
		if err != nil {
			return nil, err
		}
		operands[i] = expr
	}
	return &ast.Builtin{Op: op, Operands: operands}, nil
}

// readExpr parses a single expression, recursively pulling in as many
// sub-expressions as arity demands (spec.md §4.3, "read_expr").
func readExpr(s *state, globals map[string]int, locals []scopeEntry) (ast.Expr, error) {
	tok, ok := s.peek()
	if !ok {
		return nil, srcerr.UnexpectedEOF()
	}

	switch tok.Kind {
	case lexer.KindNum:
		s.next()
		n, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, srcerr.BadNumber().At(tok.Range)
		}
		return ast.NumLiteral(n), nil

	case lexer.KindTrue:
		s.next()
		return ast.BoolLiteral(true), nil

	case lexer.KindFalse:
		s.next()
		return ast.BoolLiteral(false), nil

	case lexer.KindNull:
		s.next()
		return ast.NullLiteral(), nil

	case lexer.KindStr:
		s.next()
		return ast.StrLiteral(tok.Text), nil

	case lexer.KindIdent:
		s.next()

		if arrow, ok := s.peek(); ok && arrow.Kind == lexer.KindArrow {
			s.next()
			bodyLocals := append(append([]scopeEntry{}, locals...), scopeEntry{Name: tok.Name, Arity: tok.Arity})
			body, err := readExpr(s, globals, bodyLocals)
			if err != nil {
				return nil, err
			}
			return &ast.Closure{Decl: ast.SingleDecl(tok.Name), Body: body}, nil
		}

		res := resolveIdent(tok.Name, globals, locals)
		if !res.found {
			return nil, srcerr.UnknownIdent(tok.Name).At(tok.Range)
		}
		if tok.Arity != 0 {
			return nil, srcerr.ExpectedNoArityIdent().At(tok.Range)
		}
		if tok.Scalar {
			return &ast.Call{Name: tok.Name, Args: nil}, nil
		}
		if res.isOp {
			return readBuiltin(s, res.builtin, globals, locals)
		}

		args := make([]ast.Expr, res.arity)
		for i := 0; i < res.arity; i++ {
			arg, err := readExpr(s, globals, locals)
			if err != nil {
				return nil, err
			}
			args[i] = arg
		}
		return &ast.Call{Name: tok.Name, Args: args}, nil

	case lexer.KindPipe:
		params, err := readParams(s)
		if err != nil {
			return nil, err
		}
		arrow, ok := s.next()
		if !ok {
			return nil, srcerr.ExpectedArrow()
		}
		if arrow.Kind != lexer.KindArrow {
			return nil, srcerr.ExpectedArrow().At(arrow.Range)
		}
		bodyLocals := append(append([]scopeEntry{}, locals...), params...)
		body, err := readExpr(s, globals, bodyLocals)
		if err != nil {
			return nil, err
		}
		names := make([]string, len(params))
		for i, p := range params {
			names[i] = p.Name
		}
		return &ast.Closure{Decl: ast.DestructureDecl(names), Body: body}, nil

	case lexer.KindIf:
		s.next()
		cond, err := readExpr(s, globals, locals)
		if err != nil {
			return nil, err
		}
		then, err := readExpr(s, globals, locals)
		if err != nil {
			return nil, err
		}
		els, err := readExpr(s, globals, locals)
		if err != nil {
			return nil, err
		}
		return &ast.If{Cond: cond, Then: then, Else: els}, nil

	case lexer.KindLet:
		s.next()
		decl, err := readDecl(s)
		if err != nil {
			return nil, err
		}
		value, err := readExpr(s, globals, locals)
		if err != nil {
			return nil, err
		}

		var bodyLocals []scopeEntry
		if decl.isDestruct {
			bodyLocals = append(append([]scopeEntry{}, locals...), decl.destructure...)
		} else {
			bodyLocals = append(append([]scopeEntry{}, locals...), decl.single)
		}

		body, err := readExpr(s, globals, bodyLocals)
		if err != nil {
			return nil, err
		}
		return &ast.Let{Decl: decl.toAST(), Value: value, Body: body}, nil

	case lexer.KindDef:
		s.next()
		return nil, srcerr.UnexpectedDef().At(tok.Range)

	default:
		return nil, srcerr.UnexpectedEOF()
	}
}

// Parse walks the full token stream, expecting "def <ident> <body>" pairs
// until input is exhausted. Parse errors stop at the first failure
// (spec.md §7); lexing has already collected its own errors separately.
func Parse(tokens []lexer.Token) (*ast.Program, error) {
	globals, err := BuildArityTable(tokens)
	if err != nil {
		return nil, err
	}

	prog := ast.NewProgram()
	s := &state{tokens: tokens, globals: globals}

	for {
		tok, ok := s.next()
		if !ok {
			break
		}
		if tok.Kind != lexer.KindDef {
			return nil, srcerr.ExpectedDef().At(tok.Range)
		}

		nameTok, ok := s.next()
		if !ok {
			return nil, srcerr.UnexpectedEOF()
		}
		if nameTok.Kind != lexer.KindIdent {
			return nil, srcerr.ExpectedArityIdent().At(nameTok.Range)
		}
		if nameTok.Scalar {
			return nil, srcerr.ExpectedArityIdent().At(nameTok.Range)
		}

		body, err := readExpr(s, globals, nil)
		if err != nil {
			return nil, err
		}
		prog.Globals[nameTok.Name] = body
	}

	return prog, nil
}

// ParseSource lexes then parses src in one call, the shape most callers
// want. Lex errors (if any) are returned as-is, collected; a parse error
// is wrapped in a single-element slice to keep the return shape uniform.
func ParseSource(src string) (*ast.Program, []error) {
	tokens, lexErrs := lexer.Lex(src)
	if lexErrs != nil {
		return nil, lexErrs
	}
	prog, err := Parse(tokens)
	if err != nil {
		return nil, []error{err}
	}
	return prog, nil
}
