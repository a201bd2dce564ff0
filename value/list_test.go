/*
File    : atto/value/list_test.go
*/
package value

import "testing"

func TestList_TailClampsAtEnd(t *testing.T) {
	l := NewList([]Value{Num(1), Num(2)})
	l = l.Tail().Tail().Tail()
	if l.Len() != 0 {
		t.Fatalf("expected empty list, got len %d", l.Len())
	}
}

func TestList_HeadOnEmpty(t *testing.T) {
	if _, ok := EmptyList.Head(); ok {
		t.Fatalf("expected no head on empty list")
	}
}

func TestCat_PreservesOrder(t *testing.T) {
	a := NewList([]Value{Num(1), Num(2)})
	b := NewList([]Value{Num(3)})
	c := Cat(a, b)
	if c.Len() != 3 || c.Elements()[2].Num != 3 {
		t.Fatalf("unexpected concat result: %#v", c.Elements())
	}
}

func TestListEq_EmptyListsAlwaysEqual(t *testing.T) {
	a := NewList([]Value{Num(1)}).Tail()
	b := EmptyList
	if !ListEq(a, b) {
		t.Fatalf("expected two empty lists to compare equal regardless of backing buffer")
	}
}
