package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/tisgrid/grid"
	"github.com/ezrec/tisgrid/node"
)

func demoGrid(t *testing.T) *grid.Grid {
	t.Helper()

	g, err := grid.NewGrid(
		[]node.Opcode{
			node.MakeAdd(node.Number(1)),
			node.MakeSave(),
			node.MakeAdd(node.Number(1)),
			node.MakeSwap(),
			node.MakeNegate(),
		},
		[]node.Opcode{
			node.MakeAdd(node.Number(2)),
			node.MakeSub(node.Number(400)),
		},
		[]node.Opcode{
			node.MakeAdd(node.Number(-400)),
		},
		[]node.Opcode{
			node.MakeAdd(node.Number(1)),
			node.MakeSub(node.Number(2)),
			node.MakeSub(node.Number(4)),
			node.MakeSub(node.Number(5)),
		},
	)
	require.NoError(t, err)

	return g
}

func TestFormat(t *testing.T) {
	assert := assert.New(t)

	g := demoGrid(t)
	require.NoError(t, g.Step())

	expected := strings.Join([]string{
		"+----------------------+      +----------------------+",
		"| ACC:    1 BAK:    0  |      | ACC:    2 BAK:    0  |      ",
		"+----------------------+      +----------------------+",
		"|  ADD 1               |      |  ADD 2               |      ",
		"|> SAV                 |      |> SUB 400             |      ",
		"|  ADD 1               |      |                      |      ",
		"|  SWP                 |      |                      |      ",
		"|  NEG                 |      |                      |      ",
		"|                      |      |                      |      ",
		"+----------------------+      +----------------------+",
		"",
		"+----------------------+      +----------------------+",
		"| ACC: -400 BAK:    0  |      | ACC:    1 BAK:    0  |      ",
		"+----------------------+      +----------------------+",
		"|> ADD -400            |      |  ADD 1               |      ",
		"|                      |      |> SUB 2               |      ",
		"|                      |      |  SUB 4               |      ",
		"|                      |      |  SUB 5               |      ",
		"|                      |      |                      |      ",
		"|                      |      |                      |      ",
		"+----------------------+      +----------------------+",
		"",
	}, "\n") + "\n"

	assert.Equal(expected, Format(g.Snapshot()))
}

func TestFormatLongProgram(t *testing.T) {
	assert := assert.New(t)

	long := make([]node.Opcode, 8)
	for n := range long {
		long[n] = node.MakeAdd(node.Number(int16(n)))
	}

	g, err := grid.NewGrid(long, nil, nil, []node.Opcode{node.MakeNegate()})
	require.NoError(t, err)

	for range 7 {
		// Nodes 1 and 2 are empty, so only look at the diagram.
		_ = g.Step()
	}

	text := Format(g.Snapshot())
	lines := strings.Split(text, "\n")

	// Top row grows to fit the eight line program, bottom row does not.
	assert.Equal((8+5)+(MIN_LINES+5)+1, len(lines))
	assert.Contains(text, "|  ADD 6               |")
	assert.Contains(text, "|> ADD 7               |")

	g.Reset()
	assert.Contains(Format(g.Snapshot()), "|> ADD 0               |")
}

func TestFormatMarker(t *testing.T) {
	assert := assert.New(t)

	g := demoGrid(t)
	for range 4 {
		require.NoError(t, g.Step())
	}

	text := Format(g.Snapshot())
	assert.Contains(text, "|> NEG                 |")
	assert.Contains(text, "| ACC:    1 BAK:    2  |")
	assert.Equal(1, strings.Count(text, "> ADD -400"))
}

func TestWrite(t *testing.T) {
	assert := assert.New(t)

	g := demoGrid(t)

	buf := &bytes.Buffer{}
	err := Write(buf, g.Snapshot())
	assert.NoError(err)
	assert.Equal(Format(g.Snapshot()), buf.String())

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if len(line) == 0 {
			continue
		}
		assert.True(strings.HasPrefix(line, "+") || strings.HasPrefix(line, "|"), line)
	}
}
