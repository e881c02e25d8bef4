package node

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"slices"
)

// ACC register limits.
const (
	ACC_MIN = -999 // Lowest value ACC saturates to.
	ACC_MAX = 999  // Highest value ACC saturates to.
)

// Node is the simulation context for a single execution node.
type Node struct {
	Verbose bool // Set to enable verbose logging.
	Index   int  // Position in the grid, for logging.

	acc     int16    // ACC register.
	bak     int16    // BAK register.
	program []Opcode // Program; never modified after NewNode.
	pc      int      // Index of the next opcode to execute.
}

// State is a point in time copy of a node's registers and program.
type State struct {
	Acc     int16
	Bak     int16
	Pc      int
	Program []Opcode
}

// NewNode creates a node running the program.
func NewNode(program ...Opcode) (node *Node) {
	node = &Node{
		program: slices.Clone(program),
	}

	return
}

// Acc returns the ACC register.
func (node *Node) Acc() int16 {
	return node.acc
}

// Bak returns the BAK register.
func (node *Node) Bak() int16 {
	return node.bak
}

// Pc returns the index of the next opcode to execute.
func (node *Node) Pc() int {
	return node.pc
}

// Len returns the number of opcodes in the program.
func (node *Node) Len() int {
	return len(node.program)
}

// Program iterates over the program's opcodes, by index.
func (node *Node) Program() iter.Seq2[int, Opcode] {
	return slices.All(node.program)
}

// Opcode returns the next opcode to execute.
func (node *Node) Opcode() (op Opcode, ok bool) {
	if len(node.program) == 0 {
		return
	}

	return node.program[node.pc], true
}

// State returns a copy of the node state.
func (node *Node) State() State {
	return State{
		Acc:     node.acc,
		Bak:     node.bak,
		Pc:      node.pc,
		Program: slices.Clone(node.program),
	}
}

// String returns the current node state as a string.
func (node *Node) String() string {
	return fmt.Sprintf("acc:%d bak:%d pc:%d", node.acc, node.bak, node.pc)
}

// Reset clears the registers and restarts the program.
func (node *Node) Reset() {
	node.acc = 0
	node.bak = 0
	node.pc = 0
}

// Step executes the opcode at PC, then advances PC to the next
// opcode, wrapping at the end of the program.
//
// On error the registers and PC are left untouched.
func (node *Node) Step() (err error) {
	op, ok := node.Opcode()
	if !ok {
		err = ErrProgramEmpty
		return
	}

	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(op), err)
		}
	}()

	if node.Verbose {
		log.Printf("node %d: %02d: %v", node.Index, node.pc, op)
	}

	switch op.Op {
	case OP_ADD, OP_SUB:
		var num int16
		num, err = node.getValue(op.Value)
		if err != nil {
			return
		}
		acc := int32(node.acc)
		if op.Op == OP_ADD {
			acc += int32(num)
		} else {
			acc -= int32(num)
		}
		node.acc = clamp(acc)
	case OP_SWP:
		node.acc, node.bak = node.bak, node.acc
	case OP_SAV:
		node.bak = node.acc
	case OP_NEG:
		// ACC is always in the symmetric range, so this cannot overflow.
		node.acc = -node.acc
	default:
		err = ErrOpcodeInvalid
		return
	}

	node.pc++
	if node.pc >= len(node.program) {
		node.pc = 0
	}

	return
}

// getValue resolves an operand to a number.
func (node *Node) getValue(value Value) (num int16, err error) {
	switch value.Kind {
	case VALUE_NUMBER:
		num = value.Number
	case VALUE_PORT:
		// No port transport exists; see package documentation.
		err = errors.Join(ErrOperandUnsupported, ErrPort(value.Port))
	default:
		err = ErrOperandUnsupported
	}

	return
}

// clamp saturates a value to the ACC range.
func clamp(value int32) int16 {
	return int16(max(ACC_MIN, min(ACC_MAX, value)))
}
