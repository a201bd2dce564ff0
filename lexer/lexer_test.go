/*
File    : atto/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type lexCase struct {
	Name  string
	Input string
	Want  []Token
}

func tok(kind Kind, name string) Token {
	return Token{Kind: kind, Name: name}
}

func TestLex_Tokens(t *testing.T) {
	tests := []lexCase{
		{
			Name:  "simple def and call",
			Input: `def main' x -> __print x`,
			Want: []Token{
				{Kind: KindDef},
				{Kind: KindIdent, Name: "main", Arity: 1},
				{Kind: KindIdent, Name: "x"},
				{Kind: KindArrow},
				{Kind: KindIdent, Name: "__print"},
				{Kind: KindIdent, Name: "x"},
			},
		},
		{
			Name:  "number and string literals",
			Input: `42 7 "hi"`,
			Want: []Token{
				{Kind: KindNum, Text: "42"},
				{Kind: KindNum, Text: "7"},
				{Kind: KindStr, Text: "hi"},
			},
		},
		{
			Name:  "reserved words",
			Input: `if let true false null`,
			Want: []Token{
				{Kind: KindIf},
				{Kind: KindLet},
				{Kind: KindTrue},
				{Kind: KindFalse},
				{Kind: KindNull},
			},
		},
		{
			Name:  "pipe destructure decl",
			Input: `|a b| -> a`,
			Want: []Token{
				{Kind: KindPipe},
				{Kind: KindIdent, Name: "a"},
				{Kind: KindIdent, Name: "b"},
				{Kind: KindPipe},
				{Kind: KindArrow},
				{Kind: KindIdent, Name: "a"},
			},
		},
		{
			Name:  "scalar reference",
			Input: `$x`,
			Want: []Token{
				{Kind: KindIdent, Name: "x", Scalar: true},
			},
		},
		{
			Name:  "arity marks stack",
			Input: `add''`,
			Want: []Token{
				{Kind: KindIdent, Name: "add", Arity: 2},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.Name, func(t *testing.T) {
			got, errs := Lex(tc.Input)
			assert.Nil(t, errs)
			assert.Equal(t, len(tc.Want), len(got), "token count")
			for i := range tc.Want {
				assert.Equal(t, tc.Want[i].Kind, got[i].Kind, "token %d kind", i)
				assert.Equal(t, tc.Want[i].Name, got[i].Name, "token %d name", i)
				assert.Equal(t, tc.Want[i].Arity, got[i].Arity, "token %d arity", i)
				assert.Equal(t, tc.Want[i].Scalar, got[i].Scalar, "token %d scalar", i)
				if tc.Want[i].Text != "" {
					assert.Equal(t, tc.Want[i].Text, got[i].Text, "token %d text", i)
				}
			}
		})
	}
}

func TestLex_Errors(t *testing.T) {
	_, errs := Lex(`"unterminated`)
	assert.NotEmpty(t, errs)

	_, errs = Lex("\x01")
	assert.NotEmpty(t, errs)
}

func TestLex_ScalarSingularPunctIdent(t *testing.T) {
	got, errs := Lex(`$(`)
	assert.Nil(t, errs)
	assert.Len(t, got, 1)
	assert.Equal(t, KindIdent, got[0].Kind)
	assert.Equal(t, "(", got[0].Name)
	assert.True(t, got[0].Scalar)
}

func TestLex_StringEscapes(t *testing.T) {
	got, errs := Lex(`"a\nb\\c"`)
	assert.Nil(t, errs)
	assert.Len(t, got, 1)
	assert.Equal(t, "a\nb\\c", got[0].Text)
}
