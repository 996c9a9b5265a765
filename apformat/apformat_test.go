package apformat

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadMapFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "batch.map", `% three automata
3
4 3 a.graph
10 9 b.graph
2 1 c.graph
`)

	autos, err := ReadMapFile(path)
	require.NoError(t, err)
	require.Len(t, autos, 3)
	assert.Equal(t, Automaton{NState: 4, NEdge: 3, Path: "a.graph"}, autos[0])
	assert.Equal(t, Automaton{NState: 10, NEdge: 9, Path: "b.graph"}, autos[1])
	assert.Equal(t, Automaton{NState: 2, NEdge: 1, Path: "c.graph"}, autos[2])
}

func TestReadMapFileMissingFile(t *testing.T) {
	_, err := ReadMapFile(filepath.Join(t.TempDir(), "missing.map"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCannotOpen))
}

func TestReadMapFileBadHeader(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.map", "not-a-number\n")
	_, err := ReadMapFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedHeader))
}

func TestReadMapFilePrematureEOF(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "short.map", "2\n4 3 a.graph\n")
	_, err := ReadMapFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPrematureEOF))
}

func TestReadGraphFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "chain.graph", `s0 1 0 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000061 2
s1 0 0 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000062 3
s2 0 1 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000063
`)

	g, err := ReadGraphFile(path, Automaton{NState: 3, NEdge: 2, Path: path})
	require.NoError(t, err)
	assert.Equal(t, 3, g.NVtxs)
	assert.Equal(t, []string{"s0", "s1", "s2"}, g.Name)
	assert.True(t, g.Start[0])
	assert.False(t, g.Start[1])
	assert.True(t, g.Report[2])
	assert.Equal(t, uint32(0x61), g.Pattern[0][7])
	assert.Equal(t, []int{0, 1, 2, 2}, g.XAdj)
	assert.Equal(t, []int{1, 2}, g.Adjncy)
}

func TestReadGraphFileEdgeCountMismatch(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.graph", `s0 1 1 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000061 2
s1 0 1 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000062
`)
	_, err := ReadGraphFile(path, Automaton{NState: 2, NEdge: 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEdgeCountMismatch))
}

func TestReadGraphFileSuccessorOutOfRange(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "oob.graph", `s0 1 1 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000061 5
`)
	_, err := ReadGraphFile(path, Automaton{NState: 1, NEdge: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSuccessorOutOfRange))
}
