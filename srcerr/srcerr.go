/*
File    : atto/srcerr/srcerr.go
*/

// Package srcerr defines the source-range-aware error values shared by the
// lexer and parser. An Error carries a Kind plus whatever payload that kind
// needs (an offending character, an identifier name, ...) and an optional
// SrcRange attached once the caller knows where in the source it occurred.
package srcerr

import "fmt"

// SrcLoc is a 1-indexed line/column position in the original source text.
type SrcLoc struct {
	Line int
	Col  int
}

// NewSrcLoc builds a SrcLoc at the given line and column.
func NewSrcLoc(line, col int) SrcLoc {
	return SrcLoc{Line: line, Col: col}
}

func (l SrcLoc) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Col)
}

// SrcRange spans Len runes starting at Start. A lexeme's range starts where
// its first rune was read and grows by one for every rune consumed while
// the lexer remained in the same state.
type SrcRange struct {
	Start SrcLoc
	Len   int
}

// NewSrcRange builds a SrcRange of the given length starting at start.
func NewSrcRange(start SrcLoc, length int) SrcRange {
	return SrcRange{Start: start, Len: length}
}

// GrowBy returns a copy of the range extended by n runes. Used for the
// single-rune Pipe lexeme, whose range is computed before the rune is
// actually consumed.
func (r SrcRange) GrowBy(n int) SrcRange {
	return SrcRange{Start: r.Start, Len: r.Len + n}
}

func (r SrcRange) String() string {
	return fmt.Sprintf("%s+%d", r.Start, r.Len)
}

// Kind tags the distinct error shapes a lex or parse pass can produce. It is
// a string, not an int, so mismatches are legible in test failures and
// panics alike -- the same choice the teacher repo makes for TokenType and
// GoMixType.
type Kind string

const (
	KindUnexpectedChar       Kind = "unexpected_char"
	KindExpectedDelimiter    Kind = "expected_delimiter"
	KindExpectedMore         Kind = "expected_more"
	KindExpectedArityIdent   Kind = "expected_arity_ident"
	KindExpectedNoArityIdent Kind = "expected_no_arity_ident"
	KindExpectedPipe         Kind = "expected_pipe"
	KindExpectedArrow        Kind = "expected_arrow"
	KindExpectedDef          Kind = "expected_def"
	KindUnexpectedEOF        Kind = "unexpected_eof"
	KindUnexpectedDef        Kind = "unexpected_def"
	KindBadNumber            Kind = "bad_number"
	KindUnknownIdent         Kind = "unknown_ident"
)

// Error is a single lex or parse failure. Only the fields relevant to Kind
// are populated; the rest are zero values.
type Error struct {
	Kind  Kind
	Char  rune
	Ident string
	Range *SrcRange
}

func (e *Error) Error() string {
	body := ""
	switch e.Kind {
	case KindUnexpectedChar:
		body = fmt.Sprintf("unexpected character %q", e.Char)
	case KindExpectedDelimiter:
		body = fmt.Sprintf("expected delimiter %q, found end of input", e.Char)
	case KindExpectedMore:
		body = "expected one or more tokens, found end of input"
	case KindExpectedArityIdent:
		body = "expected an identifier that may carry arity marks"
	case KindExpectedNoArityIdent:
		body = "expected a bare identifier with no arity marks"
	case KindExpectedPipe:
		body = "expected '|'"
	case KindExpectedArrow:
		body = "expected '->'"
	case KindExpectedDef:
		body = "expected 'def'"
	case KindUnexpectedEOF:
		body = "unexpected end of input"
	case KindUnexpectedDef:
		body = "'def' is not a valid expression"
	case KindBadNumber:
		body = "malformed number literal"
	case KindUnknownIdent:
		body = fmt.Sprintf("unknown identifier %q", e.Ident)
	default:
		body = string(e.Kind)
	}
	if e.Range != nil {
		return fmt.Sprintf("%s (at %s)", body, e.Range.Start)
	}
	return body
}

// At attaches a source range to the error and returns it, so errors can be
// built and located in one expression: srcerr.UnexpectedChar(c).At(rng).
func (e *Error) At(r SrcRange) *Error {
	e.Range = &r
	return e
}

func UnexpectedChar(c rune) *Error { return &Error{Kind: KindUnexpectedChar, Char: c} }

func ExpectedDelimiter(c rune) *Error { return &Error{Kind: KindExpectedDelimiter, Char: c} }

func ExpectedMore() *Error { return &Error{Kind: KindExpectedMore} }

func ExpectedArityIdent() *Error { return &Error{Kind: KindExpectedArityIdent} }

func ExpectedNoArityIdent() *Error { return &Error{Kind: KindExpectedNoArityIdent} }

func ExpectedPipe() *Error { return &Error{Kind: KindExpectedPipe} }

func ExpectedArrow() *Error { return &Error{Kind: KindExpectedArrow} }

func ExpectedDef() *Error { return &Error{Kind: KindExpectedDef} }

func UnexpectedEOF() *Error { return &Error{Kind: KindUnexpectedEOF} }

func UnexpectedDef() *Error { return &Error{Kind: KindUnexpectedDef} }

func BadNumber() *Error { return &Error{Kind: KindBadNumber} }

func UnknownIdent(name string) *Error { return &Error{Kind: KindUnknownIdent, Ident: name} }
