package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/apfabric/apmap/fabric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// chainGraphFile writes an n-state chain graph file (s0->s1->...->s(n-1))
// and returns its path.
func chainGraphFile(t *testing.T, dir, name string, n int) string {
	t.Helper()
	var sb []byte
	for i := 0; i < n; i++ {
		line := fmt.Sprintf("s%d 0 0 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000", i)
		if i < n-1 {
			line += fmt.Sprintf(" %d", i+2)
		}
		sb = append(sb, []byte(line+"\n")...)
	}
	return writeFile(t, dir, name, string(sb))
}

func TestEngineRunSingleSmallAutomaton(t *testing.T) {
	dir := t.TempDir()
	gpath := chainGraphFile(t, dir, "a.graph", 5)
	mpath := writeFile(t, dir, "batch.map", fmt.Sprintf("1\n5 4 %s\n", gpath))

	e := New(fabric.DefaultConfig(), false, nil)
	res, err := e.Run([]string{mpath})
	require.NoError(t, err)
	require.Len(t, res.Chips, fabric.ChipNum)
	assert.Equal(t, 0, res.Chips[0].CurTile)
	assert.Equal(t, 5, res.Chips[0].Tiles[0].NState)
	assert.Equal(t, fabric.TileSize-5, res.Chips[0].Remain)
}

func TestEngineRunPacksSmallerAutomatonIntoLeftoverCapacity(t *testing.T) {
	dir := t.TempDir()
	big := chainGraphFile(t, dir, "big.graph", 200)
	small := chainGraphFile(t, dir, "small.graph", 10)
	mpath := writeFile(t, dir, "batch.map", fmt.Sprintf(
		"2\n200 199 %s\n10 9 %s\n", big, small))

	e := New(fabric.DefaultConfig(), false, nil)
	res, err := e.Run([]string{mpath})
	require.NoError(t, err)

	// With Remain = 256-200 = 56 >= Threshold(25), the packing loop must
	// have folded the 10-state automaton into tile 0 alongside the
	// 200-state one before closing it.
	assert.Equal(t, 210, res.Chips[0].Tiles[0].NState)
}

func TestEngineRunClosesTileWhenLeftoverBelowThreshold(t *testing.T) {
	dir := t.TempDir()
	big := chainGraphFile(t, dir, "big.graph", fabric.TileSize-10)
	mpath := writeFile(t, dir, "batch.map", fmt.Sprintf(
		"1\n%d %d %s\n", fabric.TileSize-10, fabric.TileSize-11, big))

	e := New(fabric.DefaultConfig(), false, nil)
	res, err := e.Run([]string{mpath})
	require.NoError(t, err)

	// Remain = 10 < Threshold(25): the tile must be closed rather than
	// left open for further packing attempts.
	assert.Equal(t, 1, res.Chips[0].CurTile)
	assert.Equal(t, fabric.TileSize, res.Chips[0].Remain)
}

func TestEngineRunChipFullAborts(t *testing.T) {
	dir := t.TempDir()
	// An automaton larger than both chips combined can hold cannot fit
	// anywhere.
	n := fabric.TileSize*fabric.TileNum*fabric.ChipNum + 1
	path := writeFile(t, dir, "huge.graph", "")
	mpath := writeFile(t, dir, "batch.map", fmt.Sprintf("1\n%d %d %s\n", n, 0, path))

	e := New(fabric.DefaultConfig(), false, nil)
	_, err := e.Run([]string{mpath})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChipsFull)
}

func TestEngineRunMissingDescriptorFile(t *testing.T) {
	e := New(fabric.DefaultConfig(), false, nil)
	_, err := e.Run([]string{filepath.Join(t.TempDir(), "missing.map")})
	require.Error(t, err)
}
