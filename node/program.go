package node

import (
	"fmt"
	"iter"
)

// Line is a single assembled source line.
type Line struct {
	LineNo int      // Source line number.
	Words  []string // Source words, after equate and macro expansion.
	Opcode Opcode   // Assembled opcode.
}

// Program is an assembled node program listing.
type Program struct {
	Lines []Line
}

// Debug locates the source line of an opcode.
type Debug struct {
	*Line
	Pc int
}

// Len returns the number of opcodes in the program.
func (prog *Program) Len() int {
	if prog == nil {
		return 0
	}

	return len(prog.Lines)
}

// Debug returns the source information for the opcode at pc.
// The Line is nil if pc is outside of the program.
func (prog *Program) Debug(pc int) (dbg Debug) {
	dbg.Pc = pc

	if pc >= 0 && pc < prog.Len() {
		dbg.Line = &prog.Lines[pc]
	}

	return
}

// Codes iterates over the opcodes of the program, by PC.
func (prog *Program) Codes() iter.Seq2[int, Opcode] {
	return func(yield func(pc int, op Opcode) bool) {
		for pc := range prog.Len() {
			if !yield(pc, prog.Lines[pc].Opcode) {
				return
			}
		}
	}
}

// Opcodes returns the opcodes of the program, in order.
func (prog *Program) Opcodes() (ops []Opcode) {
	for _, op := range prog.Codes() {
		ops = append(ops, op)
	}

	return
}

// String returns a listing of the program, one opcode per line.
func (prog *Program) String() (text string) {
	for pc, op := range prog.Codes() {
		text += fmt.Sprintf("%02d: %-12v ; line %d\n", pc, op.String(), prog.Lines[pc].LineNo)
	}

	return
}
