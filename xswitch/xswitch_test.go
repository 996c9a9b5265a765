// Package xswitch contains unit tests for Global and G4.
package xswitch

import "testing"

func TestMapStateToGlobalFillsBothChannels(t *testing.T) {
	g := NewGlobal()
	if !MapStateToGlobal(g, []int{3}, 10) {
		t.Fatalf("first map into empty channel should succeed")
	}
	if !MapStateToGlobal(g, []int{3}, 20) {
		t.Fatalf("second map into remaining empty channel should succeed")
	}
	if MapStateToGlobal(g, []int{3}, 30) {
		t.Fatalf("third map should fail: both channels occupied")
	}
	if g.Src[3][0] != 10 || g.Src[3][1] != 20 {
		t.Fatalf("channels: want [10 20], got %v", g.Src[3])
	}
}

func TestMapStateToGlobalAtomicOverDestinations(t *testing.T) {
	g := NewGlobal()
	// Saturate destination 7.
	MapStateToGlobal(g, []int{7}, 1)
	MapStateToGlobal(g, []int{7}, 2)

	// A state fanning out to 5 and 7 must be rejected wholesale: 7 has
	// no free channel, so 5 must stay untouched too.
	if MapStateToGlobal(g, []int{5, 7}, 3) {
		t.Fatalf("map spanning a saturated destination should fail")
	}
	if g.Src[5][0] != -1 {
		t.Fatalf("destination 5 mutated by a rejected commit: %v", g.Src[5])
	}
}

func TestMapStateToGlobalPreservedBusyBlocksReuse(t *testing.T) {
	g := NewGlobal()
	MapStateToGlobal(g, []int{0}, 1)
	MapStateToGlobal(g, []int{0}, 2)
	g.PreserveBusy()
	if MapStateToGlobal(g, []int{0}, 99) {
		t.Fatalf("preserved-busy channels must not accept a new state")
	}
}

func TestCloneAndCopyGlobal(t *testing.T) {
	g := NewGlobal()
	MapStateToGlobal(g, []int{5}, 42)
	c := g.Clone()
	if c.Src[5][0] != 42 {
		t.Fatalf("Clone: want copied state 42, got %d", c.Src[5][0])
	}
	MapStateToGlobal(g, []int{5}, 43)
	if c.Src[5][1] != -1 {
		t.Fatalf("Clone must be independent of subsequent mutation on source")
	}
}

func TestMapStateToG4FillsAllChannels(t *testing.T) {
	g := NewG4()
	for i := 0; i < 8; i++ {
		if !MapStateToG4(g, []int{1}, 100+i) {
			t.Fatalf("channel %d should accept a new state", i)
		}
	}
	if MapStateToG4(g, []int{1}, 999) {
		t.Fatalf("ninth state should fail: all 8 channels occupied")
	}
}

func TestMapStateToG4AtomicOverDestinations(t *testing.T) {
	g := NewG4()
	for i := 0; i < 8; i++ {
		MapStateToG4(g, []int{2}, 100+i)
	}
	if MapStateToG4(g, []int{2, 4}, 999) {
		t.Fatalf("map spanning a saturated destination should fail")
	}
	if g.Src[4][0] != -1 {
		t.Fatalf("destination 4 mutated by a rejected commit: %v", g.Src[4])
	}
}

func TestG4PreserveBusy(t *testing.T) {
	g := NewG4()
	MapStateToG4(g, []int{2}, 7)
	g.PreserveBusy()
	if g.Src[2][0] != Preserved {
		t.Fatalf("channel not retagged: %v", g.Src[2])
	}
}
