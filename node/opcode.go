package node

import (
	"fmt"
)

// CodeOp is an opcode operation type.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_ADD = CodeOp(0) // ADD
	OP_SUB = CodeOp(1) // SUB
	OP_SWP = CodeOp(2) // SWP
	OP_SAV = CodeOp(3) // SAV
	OP_NEG = CodeOp(4) // NEG
)

// opMap maps mnemonics to operations.
var opMap = map[string]CodeOp{
	"ADD": OP_ADD,
	"SUB": OP_SUB,
	"SWP": OP_SWP,
	"SAV": OP_SAV,
	"NEG": OP_NEG,
}

// HasValue returns true if the operation takes a Value operand.
func (op CodeOp) HasValue() bool {
	return op == OP_ADD || op == OP_SUB
}

// Opcode is a single node instruction.
type Opcode struct {
	Op    CodeOp
	Value Value // Only used by ADD and SUB.
}

// MakeAdd creates an instruction adding value to ACC.
func MakeAdd(value Value) Opcode {
	return Opcode{Op: OP_ADD, Value: value}
}

// MakeSub creates an instruction subtracting value from ACC.
func MakeSub(value Value) Opcode {
	return Opcode{Op: OP_SUB, Value: value}
}

// MakeSwap creates an instruction exchanging ACC and BAK.
func MakeSwap() Opcode {
	return Opcode{Op: OP_SWP}
}

// MakeSave creates an instruction copying ACC to BAK.
func MakeSave() Opcode {
	return Opcode{Op: OP_SAV}
}

// MakeNegate creates an instruction negating ACC.
func MakeNegate() Opcode {
	return Opcode{Op: OP_NEG}
}

// String returns the assembly language representation of this instruction.
func (op Opcode) String() string {
	if op.Op.HasValue() {
		return fmt.Sprintf("%v %v", op.Op, op.Value)
	}

	return op.Op.String()
}
