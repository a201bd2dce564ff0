/*
File    : atto/value/eq.go
*/
package value

// Eq is __eq's deep, permissive equality: same-variant comparison for
// primitives, element-wise for lists, false (never fatal) across variants
// or for variants that carry no sensible notion of equality (Func,
// Universe). Grounded on original_source/src/exec/ast.rs's Value::eq.
func Eq(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNull:
		return true
	case KindBool:
		return a.Bool == b.Bool
	case KindNum:
		return a.Num == b.Num
	case KindChar:
		return a.Char == b.Char
	case KindList:
		return ListEq(a.List, b.List)
	default:
		return false
	}
}
