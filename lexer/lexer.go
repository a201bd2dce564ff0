/*
File    : atto/lexer/lexer.go
*/
package lexer

import (
	"strings"
	"unicode"

	"github.com/attolang/atto/srcerr"
)

// singularPunct always ends a symbolic identifier run after exactly one
// character, even inside an otherwise-greedy punctuation run. '|' is
// special-cased earlier (it becomes its own Pipe token), but the set still
// matters for disambiguating things like "(" or "'" from a longer run of
// operator characters such as "<->".
const singularPunct = "|()[]{}',;"

func isSingular(c rune) bool {
	return strings.ContainsRune(singularPunct, c)
}

// isASCIIPunct mirrors Rust's char::is_ascii_punctuation(): the printable
// ASCII ranges that are neither letters, digits, nor whitespace.
func isASCIIPunct(c rune) bool {
	return (c >= '!' && c <= '/') ||
		(c >= ':' && c <= '@') ||
		(c >= '[' && c <= '`') ||
		(c >= '{' && c <= '~')
}

// lexState is the lexer's current mode. Default is re-entered between
// every lexeme; the remaining states accumulate a lexeme's text until a
// terminating rune is seen.
type lexState int

const (
	stateDefault lexState = iota
	stateScalar
	stateString
	stateIdent
	stateSym
	stateNum
)

// Lex tokenizes Atto source text, returning every recognised token in
// order. Lex errors do not stop tokenization -- all of them are collected
// and returned together, the way a compiler front end reports every
// misspelled token found in a single pass rather than one at a time. If
// any error was found, no tokens are returned.
func Lex(code string) ([]Token, []error) {
	runes := []rune(code)
	pos := 0
	peek := func() rune {
		if pos >= len(runes) {
			return 0
		}
		return runes[pos]
	}

	var tokens []Token
	var errs []error

	state := stateDefault
	var text strings.Builder
	var scalar, singular, escaped bool
	var arity int

	cloc := srcerr.NewSrcLoc(1, 1)
	sloc := cloc
	rangeLen := 0

	advance := func() {
		if peek() == '\n' {
			cloc.Line++
			cloc.Col = 1
		} else {
			cloc.Col++
		}
		pos++
		rangeLen++
	}

	finishIdent := func(rng srcerr.SrcRange) {
		name := text.String()
		if arity == 0 && !scalar {
			if kind, ok := reservedWords[name]; ok {
				tokens = append(tokens, Token{Kind: kind, Range: rng})
				return
			}
		}
		tokens = append(tokens, Token{Kind: KindIdent, Name: name, Scalar: scalar, Arity: arity, Range: rng})
	}

	finishSym := func(rng srcerr.SrcRange) {
		name := text.String()
		if name == "->" {
			tokens = append(tokens, Token{Kind: KindArrow, Range: rng})
			return
		}
		tokens = append(tokens, Token{Kind: KindIdent, Name: name, Scalar: scalar, Arity: arity, Range: rng})
	}

	for {
		incr := true
		c := peek()

		if state == stateDefault {
			sloc = cloc
			rangeLen = 0
		}
		rng := srcerr.NewSrcRange(sloc, rangeLen)

		switch state {
		case stateDefault:
			switch {
			case c == '"':
				state = stateString
				text.Reset()
				escaped = false
			case c == '|':
				tokens = append(tokens, Token{Kind: KindPipe, Range: rng.GrowBy(1)})
			case c == '$':
				state = stateScalar
			case c == 0:
				goto eof
			case unicode.IsSpace(c):
				// insignificant
			case unicode.IsLetter(c) || c == '_':
				state = stateIdent
				text.Reset()
				text.WriteRune(c)
				scalar, arity = false, 0
			case unicode.IsDigit(c):
				state = stateNum
				text.Reset()
				text.WriteRune(c)
			case isASCIIPunct(c):
				state = stateSym
				text.Reset()
				text.WriteRune(c)
				scalar = false
				singular = isSingular(c)
				arity = 0
			default:
				errs = append(errs, srcerr.UnexpectedChar(c).At(rng))
			}

		case stateScalar:
			switch {
			case unicode.IsLetter(c):
				state = stateIdent
				text.Reset()
				scalar = true
				arity = 0
				incr = false
			case isASCIIPunct(c):
				state = stateSym
				text.Reset()
				text.WriteRune(c)
				scalar = true
				singular = isSingular(c)
				arity = 0
			default:
				errs = append(errs, srcerr.UnexpectedChar('$').At(rng))
				state = stateDefault
				incr = false
			}

		case stateString:
			switch {
			case c == '"':
				tokens = append(tokens, Token{Kind: KindStr, Text: text.String(), Range: rng})
				state = stateDefault
			case c == 0:
				goto eof
			case escaped:
				switch c {
				case '\\':
					text.WriteRune('\\')
				case 'n':
					text.WriteRune('\n')
				default:
					// Unknown escapes are silently dropped (documented behaviour).
				}
				escaped = false
			case c == '\\':
				escaped = true
			default:
				text.WriteRune(c)
			}

		case stateIdent:
			switch {
			case c == '\'':
				arity++
			case (unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_') && arity == 0:
				text.WriteRune(c)
			default:
				finishIdent(rng)
				state = stateDefault
				incr = false
			}

		case stateNum:
			switch {
			case unicode.IsLetter(c) || unicode.IsDigit(c):
				text.WriteRune(c)
			default:
				tokens = append(tokens, Token{Kind: KindNum, Text: text.String(), Range: rng})
				state = stateDefault
				incr = false
			}

		case stateSym:
			switch {
			case c == '\'':
				arity++
			case isASCIIPunct(c) && !isSingular(c) && arity == 0 && !singular:
				text.WriteRune(c)
			default:
				finishSym(rng)
				state = stateDefault
				incr = false
			}
		}

		if incr {
			advance()
		}
	}

eof:
	if state == stateString {
		errs = append(errs, srcerr.ExpectedDelimiter('"').At(srcerr.NewSrcRange(sloc, rangeLen)))
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return tokens, nil
}
