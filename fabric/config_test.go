// Package fabric contains unit tests for Config and FabricOption resolution.
package fabric

import (
	"fmt"
	"strings"
	"testing"
)

func assertPanics(t *testing.T, f func(), wantSubstr string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q, got none", wantSubstr)
			return
		}
		got := fmt.Sprint(r)
		if wantSubstr != "" && !strings.Contains(got, wantSubstr) {
			t.Fatalf("panic mismatch: want substring %q, got %q", wantSubstr, got)
		}
	}()
	f()
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.GlobalNum() != 8 {
		t.Errorf("GlobalNum: want 8, got %d", c.GlobalNum())
	}
	if !c.G4Enabled() {
		t.Errorf("G4Enabled: want true")
	}
	if c.Threshold() != DefaultThreshold {
		t.Errorf("Threshold: want %d, got %d", DefaultThreshold, c.Threshold())
	}
	if c.MaxOut() != 24 || c.MaxIn() != 24 {
		t.Errorf("MaxOut/MaxIn: want 24/24, got %d/%d", c.MaxOut(), c.MaxIn())
	}
	if c.SwitchCapacity() != 24 {
		t.Errorf("SwitchCapacity: want 24, got %d", c.SwitchCapacity())
	}
}

func TestWithGlobalNum4(t *testing.T) {
	c := NewConfig(WithGlobalNum(4), WithG4(false))
	if c.GlobalNum() != 4 {
		t.Errorf("GlobalNum: want 4, got %d", c.GlobalNum())
	}
	if c.MaxOut() != 16 {
		t.Errorf("MaxOut: want 16, got %d", c.MaxOut())
	}
	if c.SwitchCapacity() != 8 {
		t.Errorf("SwitchCapacity (no g4): want 8, got %d", c.SwitchCapacity())
	}
}

func TestWithGlobalNumInvalid(t *testing.T) {
	assertPanics(t, func() { WithGlobalNum(5) }, "must be 4 or 8")
}

func TestWithThresholdInvalid(t *testing.T) {
	assertPanics(t, func() { WithThreshold(-1) }, "must be >= 0")
}

func TestOptionOrderLastWins(t *testing.T) {
	c := NewConfig(WithGlobalNum(4), WithGlobalNum(8))
	if c.GlobalNum() != 8 {
		t.Errorf("GlobalNum: want 8 (last option wins), got %d", c.GlobalNum())
	}
}
