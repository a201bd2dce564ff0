/*
File    : atto/value/list.go
*/
package value

// List is a shared, immutable backing buffer plus an offset into it. Tail
// advances Offset without ever mutating Buf, giving O(1) tail at the cost
// of keeping the whole prefix alive as long as any view into it survives
// -- the same tradeoff spec.md §3 and §9 call out explicitly.
type List struct {
	Buf    []Value
	Offset int
}

// EmptyList is the canonical empty list value, reused rather than
// allocated fresh every time one is needed.
var EmptyList = &List{}

// NewList wraps elems as a fresh list starting at offset 0. Callers must
// not mutate elems afterwards -- ownership of the backing slice transfers
// to the List.
func NewList(elems []Value) *List {
	if len(elems) == 0 {
		return EmptyList
	}
	return &List{Buf: elems}
}

// Elements returns the live slice from Offset onward.
func (l *List) Elements() []Value {
	if l == nil {
		return nil
	}
	return l.Buf[l.Offset:]
}

// Len is the number of elements visible from Offset onward.
func (l *List) Len() int {
	return len(l.Elements())
}

// Head returns the first visible element, or false if the list is empty.
func (l *List) Head() (Value, bool) {
	elems := l.Elements()
	if len(elems) == 0 {
		return Value{}, false
	}
	return elems[0], true
}

// Tail returns a view advanced by one element. Advancing past the end
// clamps at len(Buf), the same list every further Tail call returns
// (spec.md §8: "tail(tail(...))" beyond length always yields empty, never
// an error).
func (l *List) Tail() *List {
	offset := l.Offset + 1
	if offset > len(l.Buf) {
		offset = len(l.Buf)
	}
	return &List{Buf: l.Buf, Offset: offset}
}

// Wrap builds a single-element list containing v.
func Wrap(v Value) *List {
	return &List{Buf: []Value{v}}
}

// Cat concatenates the visible elements of a and b into a fresh buffer at
// offset 0. The teacher's list/array concatenation in objects.go follows
// the same copy-then-append shape for its Array type.
func Cat(a, b *List) *List {
	ae, be := a.Elements(), b.Elements()
	buf := make([]Value, 0, len(ae)+len(be))
	buf = append(buf, ae...)
	buf = append(buf, be...)
	return NewList(buf)
}

// ListEq is deep, element-wise equality on the live slices. Two empty
// lists compare equal regardless of their backing buffer (SPEC_FULL.md §3's
// SUPPLEMENTED FEATURES note on original_source/exec/ast.rs's Value::eq).
func ListEq(a, b *List) bool {
	ae, be := a.Elements(), b.Elements()
	if len(ae) == 0 && len(be) == 0 {
		return true
	}
	if len(ae) != len(be) {
		return false
	}
	for i := range ae {
		if !Eq(ae[i], be[i]) {
			return false
		}
	}
	return true
}
