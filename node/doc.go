// Package node implements a single execution node of the tisgrid system,
// along with the assembler for its programs.
//
// A node has two 16-bit signed registers, the accumulator (ACC) and the
// backup register (BAK), a fixed program of opcodes, and a program counter
// (PC). Each Step executes one opcode and advances the PC, wrapping to the
// start of the program after the last opcode. ACC is saturated to the range
// [ACC_MIN, ACC_MAX] after every ADD and SUB.
//
// Opcode values are either literal numbers or one of the six communication
// ports. Ports are not wired to any transport; an opcode that reads a port
// fails with ErrOperandUnsupported.
package node
