package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/tisgrid/grid"
	"github.com/ezrec/tisgrid/node"
)

func writeFile(t *testing.T, dir, name, text string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))

	return path
}

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	assert.NoError(Validate(&cfg))
	assert.False(cfg.Verbose)

	programs, err := cfg.Programs()
	require.NoError(t, err)
	require.Len(t, programs, grid.NODE_COUNT)

	assert.Equal([]node.Opcode{
		node.MakeAdd(node.Number(1)),
		node.MakeSave(),
		node.MakeAdd(node.Number(1)),
		node.MakeSwap(),
		node.MakeNegate(),
	}, programs[0].Opcodes())
	assert.Equal([]node.Opcode{
		node.MakeAdd(node.Number(2)),
		node.MakeSub(node.Number(400)),
	}, programs[1].Opcodes())
	assert.Equal([]node.Opcode{
		node.MakeAdd(node.Number(-400)),
	}, programs[2].Opcodes())
	assert.Equal(4, programs[3].Len())

	g, err := cfg.Grid()
	require.NoError(t, err)
	assert.NoError(g.Step())
	assert.Equal(int16(-400), g.Node(2).Acc)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	writeFile(t, dir, "counter.tis", "; counts up\nADD STEP\n")
	path := writeFile(t, dir, "grid.yaml", `
verbose: true
language: en-US
defines:
  STEP: "5"
nodes:
  - file: counter.tis
  - source: |
      SUB STEP
      NEG
  - source: SAV
  - source: ADD $(STEP * 2)
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(cfg.Verbose)
	assert.Equal("en-US", cfg.Language)
	assert.Equal(map[string]string{"STEP": "5"}, cfg.Defines)
	assert.Equal(dir, cfg.Dir)
	assert.Equal("counter.tis", cfg.Nodes[0].File)

	g, err := cfg.Grid()
	require.NoError(t, err)
	assert.True(g.Verbose)

	assert.NoError(g.Step())
	assert.Equal(int16(5), g.Node(0).Acc)
	assert.Equal(int16(-5), g.Node(1).Acc)
	assert.Equal(int16(10), g.Node(3).Acc)
	assert.Equal(2, g.LineNo(0, 0))
}

func TestLoadKeepsDefaults(t *testing.T) {
	assert := assert.New(t)

	path := writeFile(t, t.TempDir(), "grid.yaml", "verbose: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(cfg.Verbose)
	assert.Len(cfg.Nodes, grid.NODE_COUNT)
	assert.Equal(Default().Nodes, cfg.Nodes)
}

func TestLoadErrors(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(err, os.ErrNotExist)

	_, err = Load(writeFile(t, dir, "bad.yaml", "nodes: [\n"))
	assert.ErrorContains(err, "failed to parse config file")

	table := [](struct {
		name  string
		text  string
		field string
	}){
		{"too_few", "nodes:\n  - source: SAV\n", "nodes"},
		{"both", "nodes:\n  - source: SAV\n    file: x.tis\n  - source: SAV\n  - source: SAV\n  - source: SAV\n", "nodes[0]"},
		{"neither", "nodes:\n  - source: SAV\n  - {}\n  - source: SAV\n  - source: SAV\n", "nodes[1]"},
		{"blank", "nodes:\n  - source: SAV\n  - source: SAV\n  - source: '  '\n  - source: SAV\n", "nodes[2]"},
		{"define", "defines:\n  'A B': '1'\n", "defines"},
	}

	for _, entry := range table {
		_, err := Load(writeFile(t, dir, entry.name+".yaml", entry.text))
		var verr ValidationError
		if assert.True(errors.As(err, &verr), entry.name) {
			assert.Equal(entry.field, verr.Field, entry.name)
		}
	}
}

func TestProgramsErrors(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	cfg := Default()
	cfg.Dir = dir
	cfg.Nodes[1] = NodeConfig{File: "missing.tis"}
	_, err := cfg.Programs()
	assert.ErrorIs(err, os.ErrNotExist)
	assert.ErrorContains(err, "node 1")

	cfg = Default()
	cfg.Nodes[2] = NodeConfig{Source: "ADD 1\nJMP 0\n"}
	_, err = cfg.Programs()
	assert.ErrorIs(err, node.ErrInstructionInvalid)
	var syntax *node.ErrSyntax
	if assert.True(errors.As(err, &syntax)) {
		assert.Equal(2, syntax.LineNo)
	}

	cfg = Default()
	cfg.Nodes[3] = NodeConfig{Source: "; nothing here\n"}
	_, err = cfg.Grid()
	var verr ValidationError
	if assert.True(errors.As(err, &verr)) {
		assert.Equal("nodes[3]", verr.Field)
	}
}

func TestFromFiles(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	var paths []string
	for _, source := range []string{"ADD 1", "ADD 2", "ADD 3", "ADD 4"} {
		paths = append(paths, writeFile(t, dir, source[4:]+".tis", source))
	}

	cfg, err := FromFiles(paths...)
	require.NoError(t, err)

	g, err := cfg.Grid()
	require.NoError(t, err)
	require.NoError(t, g.Step())
	for index, state := range g.Nodes() {
		assert.Equal(int16(index+1), state.Acc)
	}

	_, err = FromFiles(paths[:2]...)
	var verr ValidationError
	assert.True(errors.As(err, &verr))
}
