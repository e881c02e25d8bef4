// Package debugger drives a grid one step per line of input.
package debugger

import (
	"bufio"
	"io"
	"log"
	"strings"

	"github.com/ezrec/tisgrid/grid"
	"github.com/ezrec/tisgrid/render"
)

// Debugger single steps a grid, drawing it before every step.
type Debugger struct {
	Verbose bool       // If set, enables verbose logging.
	Grid    *grid.Grid // Grid being debugged.
	Input   io.Reader  // One line per step.
	Output  io.Writer  // Grid diagrams.
}

// Quit returns true if the input line requests the end of the session.
func Quit(line string) bool {
	return strings.ContainsAny(line, "qQ")
}

// Run loops until a quit request, end of input, or a step error:
//   - Draw the grid.
//   - Wait for a line of input.
//   - Step the grid.
//   - Stop if the line contained a 'q'.
//
// The step for a quitting line is still performed. End of input stops
// the loop without a step.
func (dbg *Debugger) Run() (err error) {
	scanner := bufio.NewScanner(dbg.Input)

	for {
		err = render.Write(dbg.Output, dbg.Grid.Snapshot())
		if err != nil {
			return
		}
		_, err = io.WriteString(dbg.Output, "\n")
		if err != nil {
			return
		}

		if !scanner.Scan() {
			err = scanner.Err()
			if dbg.Verbose {
				log.Printf("debugger: end of input after %d ticks", dbg.Grid.Ticks)
			}
			return
		}
		line := scanner.Text()

		err = dbg.Grid.Step()
		if err != nil {
			return
		}

		if Quit(line) {
			if dbg.Verbose {
				log.Printf("debugger: quit after %d ticks", dbg.Grid.Ticks)
			}
			return
		}
	}
}
