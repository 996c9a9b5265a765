// Package bitgrid contains unit tests for Grid.
package bitgrid

import (
	"reflect"
	"testing"
)

func TestGetSetDefaultFalse(t *testing.T) {
	g := NewGrid(3, 4)
	if g.Get(1, 2) {
		t.Fatalf("new grid cell must default to false")
	}
	g.Set(1, 2, true)
	if !g.Get(1, 2) {
		t.Fatalf("Set then Get mismatch")
	}
}

func TestSwapRows(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(0, 0, true)
	g.Set(1, 1, true)
	g.SwapRows(0, 1)
	if g.Get(1, 0) != true || g.Get(0, 1) != true {
		t.Fatalf("SwapRows did not exchange row contents")
	}
	if g.Get(0, 0) || g.Get(1, 1) {
		t.Fatalf("SwapRows left stale bits")
	}
}

func TestSwapCols(t *testing.T) {
	g := NewGrid(2, 3)
	g.Set(0, 0, true)
	g.Set(1, 2, true)
	g.SwapCols(0, 2)
	if !g.Get(0, 2) || !g.Get(1, 0) {
		t.Fatalf("SwapCols did not exchange column contents")
	}
}

func TestSwapRowsNoop(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, true)
	g.SwapRows(0, 0)
	if !g.Get(0, 0) {
		t.Fatalf("SwapRows(a,a) must be a no-op")
	}
}

func TestRowTrueColTrue(t *testing.T) {
	g := NewGrid(2, 4)
	g.Set(0, 1, true)
	g.Set(0, 3, true)
	g.Set(1, 3, true)
	if got := g.RowTrue(0); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Fatalf("RowTrue(0): want [1 3], got %v", got)
	}
	if got := g.ColTrue(3); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Fatalf("ColTrue(3): want [0 1], got %v", got)
	}
}

func TestClear(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, true)
	g.Set(1, 1, true)
	g.Clear()
	if g.Get(0, 0) || g.Get(1, 1) {
		t.Fatalf("Clear must reset all cells")
	}
}

func TestIndexPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on out-of-range access")
		}
	}()
	g := NewGrid(2, 2)
	g.Get(5, 0)
}
