/*
File    : atto/eval/evaluator_test.go
*/
package eval

import (
	"testing"

	"github.com/attolang/atto/parser"
	"github.com/attolang/atto/value"
)

func runSrc(t *testing.T, src string) value.Value {
	t.Helper()
	prog, errs := parser.ParseSource(src)
	if errs != nil {
		t.Fatalf("parse error for %q: %v", src, errs)
	}
	v, err := Run(prog)
	if err != nil {
		t.Fatalf("eval error for %q: %v", src, err)
	}
	return v
}

func TestRun_Arithmetic(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{`def main' u -> __add 1 2`, 3},
		{`def main' u -> __sub 5 2`, 3},
		{`def main' u -> __mul 3 4`, 12},
		{`def main' u -> __div 9 3`, 3},
		{`def main' u -> __rem 10 3`, 1},
	}

	for _, tt := range tests {
		got := runSrc(t, tt.src)
		if got.Kind != value.KindNum {
			t.Fatalf("%q: expected Num, got %s", tt.src, got.Kind)
		}
		if got.Num != tt.want {
			t.Errorf("%q: expected %v, got %v", tt.src, tt.want, got.Num)
		}
	}
}

func TestRun_CurriedGlobal(t *testing.T) {
	src := `def add'' x -> y -> __add x y
def main' u -> add 2 3`
	got := runSrc(t, src)
	if got.Kind != value.KindNum || got.Num != 5 {
		t.Fatalf("expected Num(5), got %#v", got)
	}
}

func TestRun_IfBranchesOnExactBoolTrue(t *testing.T) {
	got := runSrc(t, `def main' u -> if true 1 2`)
	if got.Num != 1 {
		t.Fatalf("expected 1, got %v", got.Num)
	}

	got = runSrc(t, `def main' u -> if 0 1 2`)
	if got.Num != 2 {
		t.Fatalf("non-bool condition should take else branch, got %v", got.Num)
	}
}

func TestRun_ListHeadTailWrapCat(t *testing.T) {
	got := runSrc(t, `def main' u -> __head __wrap 7`)
	if got.Kind != value.KindNum || got.Num != 7 {
		t.Fatalf("expected Num(7), got %#v", got)
	}

	got = runSrc(t, `def main' u -> __head __tail __cat __wrap 1 __wrap 2`)
	if got.Kind != value.KindNum || got.Num != 2 {
		t.Fatalf("expected Num(2), got %#v", got)
	}
}

func TestRun_TailPastEndIsEmptyNotError(t *testing.T) {
	src := `def main' u -> __tail __tail __tail __wrap 1`
	got := runSrc(t, src)
	if got.Kind != value.KindList || got.List.Len() != 0 {
		t.Fatalf("expected empty list, got %#v", got)
	}
}

func TestRun_EqIsDeepAndPermissive(t *testing.T) {
	got := runSrc(t, `def main' u -> __eq __wrap 1 __wrap 1`)
	if got.Kind != value.KindBool || !got.Bool {
		t.Fatalf("expected Bool(true), got %#v", got)
	}

	got = runSrc(t, `def main' u -> __eq 1 true`)
	if got.Kind != value.KindBool || got.Bool {
		t.Fatalf("cross-variant eq should be false, got %#v", got)
	}
}

func TestRun_LetDestructure(t *testing.T) {
	src := `def main' u -> let |a b| __cat __wrap 1 __wrap 2 __add a b`
	got := runSrc(t, src)
	if got.Kind != value.KindNum || got.Num != 3 {
		t.Fatalf("expected Num(3), got %#v", got)
	}
}

func TestRun_DestructureWrongLengthIsFatal(t *testing.T) {
	prog, errs := parser.ParseSource(`def main' u -> let |a b| __wrap 1 __add a b`)
	if errs != nil {
		t.Fatalf("unexpected parse error: %v", errs)
	}
	if _, err := Run(prog); err == nil {
		t.Fatalf("expected a fatal error destructuring a 1-element list into 2 names")
	}
}

func TestRun_MissingMain(t *testing.T) {
	prog, errs := parser.ParseSource(`def notmain' u -> u`)
	if errs != nil {
		t.Fatalf("unexpected parse error: %v", errs)
	}
	if _, err := Run(prog); err != ErrNoMain {
		t.Fatalf("expected ErrNoMain, got %v", err)
	}
}

func TestRun_NonClosureMainReturnedDirectly(t *testing.T) {
	got := runSrc(t, `def main 42`)
	if got.Kind != value.KindNum || got.Num != 42 {
		t.Fatalf("expected Num(42), got %#v", got)
	}
}

func TestRun_StringLiteralsBecomeCharOrCharList(t *testing.T) {
	got := runSrc(t, `def main' u -> "a"`)
	if got.Kind != value.KindChar || got.Char != 'a' {
		t.Fatalf("single-char string should be a Char, got %#v", got)
	}

	got = runSrc(t, `def main' u -> "hi"`)
	if got.Kind != value.KindList || got.List.Len() != 2 {
		t.Fatalf("multi-char string should be a Char list, got %#v", got)
	}
}
