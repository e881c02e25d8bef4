// Package render formats a grid snapshot as a text diagram.
//
// Each row of the grid is drawn as boxes side by side. A box shows the
// ACC and BAK registers, then the program with a '>' marker at the PC:
//
//	+----------------------+      +----------------------+
//	| ACC:    1 BAK:    0  |      | ACC:    2 BAK:    0  |
//	+----------------------+      +----------------------+
//	|  ADD 1               |      |  ADD 2               |
//	|> SAV                 |      |> SUB 400             |
//	...
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/tisgrid/grid"
	"github.com/ezrec/tisgrid/node"
)

const (
	NODE_WIDTH = 22 // Inner width of a node box.
	NODE_GAP   = 6  // Spaces between node boxes.
	MIN_LINES  = 6  // Fewest program lines drawn per box.
)

// border draws the horizontal edge of a row of boxes.
func border(sb *strings.Builder, columns int) {
	dashes := strings.Repeat("-", NODE_WIDTH)
	for col := range columns {
		if col > 0 {
			sb.WriteString(strings.Repeat(" ", NODE_GAP))
		}
		sb.WriteString("+" + dashes + "+")
	}
	sb.WriteString("\n")
}

// cell draws the contents of one box on the current line.
func cell(sb *strings.Builder, text string) {
	fmt.Fprintf(sb, "|%-*s|%s", NODE_WIDTH, text, strings.Repeat(" ", NODE_GAP))
}

// programLine returns the text of a program line, with the PC marker.
func programLine(state node.State, line int) string {
	marker := "  "
	if state.Pc == line {
		marker = "> "
	}

	var text string
	if line < len(state.Program) {
		text = state.Program[line].String()
	}

	return marker + text
}

// rows returns the number of program lines drawn for a row of nodes.
func rows(states []node.State) (lines int) {
	lines = MIN_LINES
	for _, state := range states {
		lines = max(lines, len(state.Program))
	}

	return
}

// Format returns the text diagram of a grid snapshot.
func Format(snap grid.Snapshot) string {
	sb := &strings.Builder{}

	for row := range grid.GRID_ROWS {
		states := snap.Nodes[row*grid.GRID_COLUMNS : (row+1)*grid.GRID_COLUMNS]

		border(sb, len(states))
		for _, state := range states {
			cell(sb, fmt.Sprintf(" ACC: %4d BAK: %4d", state.Acc, state.Bak))
		}
		sb.WriteString("\n")
		border(sb, len(states))

		for line := range rows(states) {
			for _, state := range states {
				cell(sb, programLine(state, line))
			}
			sb.WriteString("\n")
		}

		border(sb, len(states))
		sb.WriteString("\n")
	}

	return sb.String()
}

// Write writes the text diagram of a grid snapshot.
func Write(w io.Writer, snap grid.Snapshot) (err error) {
	_, err = io.WriteString(w, Format(snap))
	return
}
