// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package grid steps a fixed 2x2 grid of nodes in lockstep.
package grid

import (
	"iter"
	"log"

	"github.com/ezrec/tisgrid/node"
)

const (
	NODE_COUNT   = 4 // Nodes in the grid.
	GRID_COLUMNS = 2 // Nodes per grid row.
	GRID_ROWS    = NODE_COUNT / GRID_COLUMNS
)

// Grid state. Four nodes, stepped in index order.
type Grid struct {
	Verbose bool                     // If set, enables verbose logging.
	Program [NODE_COUNT]*node.Program // Source listings, if assembled.
	Ticks   int                      // Completed steps since reset.

	nodes [NODE_COUNT]node.Node
}

// Snapshot is a copy of the grid state, for presentation.
type Snapshot struct {
	Ticks int
	Nodes [NODE_COUNT]node.State
}

// Position returns the presentation row and column of a node index.
func Position(index int) (row, col int) {
	return index / GRID_COLUMNS, index % GRID_COLUMNS
}

// NewGrid creates a grid from exactly four opcode lists, one per node.
func NewGrid(programs ...[]node.Opcode) (grid *Grid, err error) {
	if len(programs) != NODE_COUNT {
		err = ErrGridSize
		return
	}

	grid = &Grid{}
	for index, program := range programs {
		grid.nodes[index] = *node.NewNode(program...)
		grid.nodes[index].Index = index
	}

	return
}

// NewGridFromPrograms creates a grid from exactly four assembled programs,
// keeping the listings for error reports.
func NewGridFromPrograms(programs ...*node.Program) (grid *Grid, err error) {
	if len(programs) != NODE_COUNT {
		err = ErrGridSize
		return
	}

	opcodes := make([][]node.Opcode, 0, NODE_COUNT)
	for _, prog := range programs {
		opcodes = append(opcodes, prog.Opcodes())
	}

	grid, err = NewGrid(opcodes...)
	if err != nil {
		return
	}

	copy(grid.Program[:], programs)

	return
}

// Node returns a copy of a node's state.
func (grid *Grid) Node(index int) node.State {
	return grid.nodes[index].State()
}

// Nodes iterates over the state of every node, in step order.
func (grid *Grid) Nodes() iter.Seq2[int, node.State] {
	return func(yield func(int, node.State) bool) {
		for index := range grid.nodes {
			if !yield(index, grid.nodes[index].State()) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the grid state.
func (grid *Grid) Snapshot() (snap Snapshot) {
	snap.Ticks = grid.Ticks
	for index, state := range grid.Nodes() {
		snap.Nodes[index] = state
	}

	return
}

// LineNo returns the source line of a node's opcode, or 0 if unknown.
func (grid *Grid) LineNo(index int, pc int) int {
	dbg := grid.Program[index].Debug(pc)
	if dbg.Line == nil {
		return 0
	}

	return dbg.LineNo
}

// Reset clears the registers and program counters of every node.
func (grid *Grid) Reset() {
	if grid.Verbose {
		log.Printf("grid: reset")
	}

	for index := range grid.nodes {
		grid.nodes[index].Reset()
	}

	grid.Ticks = 0
}

// Step executes one opcode on every node, in index order.
//
// A failing node stops the step. Nodes before it keep their changes,
// and nodes after it are not stepped.
func (grid *Grid) Step() (err error) {
	for index := range grid.nodes {
		nd := &grid.nodes[index]
		nd.Verbose = grid.Verbose

		pc := nd.Pc()
		err = nd.Step()
		if err != nil {
			err = &ErrRuntime{Node: index, Pc: pc, LineNo: grid.LineNo(index, pc), Err: err}
			return
		}
	}

	grid.Ticks++

	if grid.Verbose {
		log.Printf("grid: tick %d", grid.Ticks)
	}

	return
}

// Empty returns the indexes of nodes without a program.
func (grid *Grid) Empty() (empty []int) {
	for index := range grid.nodes {
		if grid.nodes[index].Len() == 0 {
			empty = append(empty, index)
		}
	}

	return
}
