// Package dlist contains unit tests for List.
package dlist

import "testing"

func TestAddNewDedup(t *testing.T) {
	l := New(0)
	if !l.AddNew(5) {
		t.Fatalf("AddNew(5): want true on first insert")
	}
	if l.AddNew(5) {
		t.Fatalf("AddNew(5): want false on duplicate")
	}
	if l.Len() != 1 {
		t.Fatalf("Len: want 1, got %d", l.Len())
	}
}

func TestAddAlwaysAppends(t *testing.T) {
	l := New(0)
	if idx := l.Add(10); idx != 0 {
		t.Fatalf("Add: want index 0, got %d", idx)
	}
	if idx := l.Add(10); idx != 1 {
		t.Fatalf("Add: want index 1 (no dedup), got %d", idx)
	}
	if l.Len() != 2 {
		t.Fatalf("Len: want 2, got %d", l.Len())
	}
}

func TestPop(t *testing.T) {
	l := New(0)
	if _, ok := l.Pop(); ok {
		t.Fatalf("Pop on empty: want ok=false")
	}
	l.Add(1)
	l.Add(2)
	v, ok := l.Pop()
	if !ok || v != 2 {
		t.Fatalf("Pop: want (2,true), got (%d,%v)", v, ok)
	}
	if l.Len() != 1 {
		t.Fatalf("Len after Pop: want 1, got %d", l.Len())
	}
}

func TestChange(t *testing.T) {
	l := New(0)
	l.Add(1)
	l.Add(2)
	l.Add(1)
	if !l.Change(1, 9) {
		t.Fatalf("Change: want true")
	}
	want := []int{9, 2, 9}
	got := l.Values()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values[%d]: want %d, got %d", i, want[i], got[i])
		}
	}
	if l.Change(42, 0) {
		t.Fatalf("Change on absent value: want false")
	}
}

func TestSwapByPosValue(t *testing.T) {
	l := New(0)
	l.Add(10)
	l.Add(20)
	l.Add(30)
	origin := l.SwapByPosValue(30, 0)
	if origin != 2 {
		t.Fatalf("SwapByPosValue: want origin index 2, got %d", origin)
	}
	want := []int{30, 20, 10}
	got := l.Values()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values[%d]: want %d, got %d", i, want[i], got[i])
		}
	}
	if l.SwapByPosValue(999, 0) != -1 {
		t.Fatalf("SwapByPosValue on absent value: want -1")
	}
	if l.SwapByPosValue(30, 99) != -1 {
		t.Fatalf("SwapByPosValue with out-of-range pos: want -1")
	}
}

func TestCloneAndCopy(t *testing.T) {
	l := New(0)
	l.Add(1)
	l.Add(2)
	c := l.Clone()
	c.Add(3)
	if l.Len() != 2 {
		t.Fatalf("original mutated by clone: Len=%d", l.Len())
	}
	dst := New(0)
	dst.Copy(l)
	if dst.Len() != 2 || dst.At(0) != 1 || dst.At(1) != 2 {
		t.Fatalf("Copy: unexpected contents %v", dst.Values())
	}
}

func TestEmpty(t *testing.T) {
	l := New(0)
	l.Add(1)
	l.Empty()
	if l.Len() != 0 {
		t.Fatalf("Empty: want Len 0, got %d", l.Len())
	}
}

func TestSwapByPosValueSlice(t *testing.T) {
	s := []int{-1, -1, 7, -1}
	if idx := SwapByPosValue(s, 7, 0); idx != 2 {
		t.Fatalf("SwapByPosValue(slice): want 2, got %d", idx)
	}
	if s[0] != 7 || s[2] != -1 {
		t.Fatalf("SwapByPosValue(slice): unexpected contents %v", s)
	}
}
