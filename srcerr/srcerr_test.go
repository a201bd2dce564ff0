/*
File    : atto/srcerr/srcerr_test.go
*/
package srcerr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_RendersLocationWhenAttached(t *testing.T) {
	err := UnexpectedChar('#').At(NewSrcRange(NewSrcLoc(3, 5), 1))
	assert.Equal(t, `unexpected character '#' (at 3:5)`, err.Error())
}

func TestError_RendersWithoutLocation(t *testing.T) {
	err := ExpectedMore()
	assert.Equal(t, "expected one or more tokens, found end of input", err.Error())
}

func TestUnknownIdent_IncludesName(t *testing.T) {
	err := UnknownIdent("frobnicate")
	assert.Contains(t, err.Error(), "frobnicate")
}

func TestSrcRange_GrowBy(t *testing.T) {
	r := NewSrcRange(NewSrcLoc(1, 1), 0)
	grown := r.GrowBy(2)
	assert.Equal(t, 2, grown.Len)
	assert.Equal(t, 0, r.Len, "original range must not be mutated")
}
