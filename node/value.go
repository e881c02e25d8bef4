package node

import (
	"strconv"
)

// Port is a communication port of a node.
type Port int

//go:generate go tool stringer -linecomment -type=Port
const (
	PORT_LEFT  = Port(0) // Left
	PORT_RIGHT = Port(1) // Right
	PORT_UP    = Port(2) // Up
	PORT_DOWN  = Port(3) // Down
	PORT_ANY   = Port(4) // Any
	PORT_LAST  = Port(5) // Last
)

// portMap maps upper case port names to ports.
var portMap = map[string]Port{
	"LEFT":  PORT_LEFT,
	"RIGHT": PORT_RIGHT,
	"UP":    PORT_UP,
	"DOWN":  PORT_DOWN,
	"ANY":   PORT_ANY,
	"LAST":  PORT_LAST,
}

// ValueKind selects the source of a Value.
type ValueKind int

const (
	VALUE_NUMBER = ValueKind(0) // Literal number.
	VALUE_PORT   = ValueKind(1) // Communication port.
)

// Value is an opcode operand: a literal number, or a port.
type Value struct {
	Kind   ValueKind
	Number int16
	Port   Port
}

// Number makes a literal number operand.
func Number(num int16) Value {
	return Value{Kind: VALUE_NUMBER, Number: num}
}

// PortOf makes a port operand.
func PortOf(port Port) Value {
	return Value{Kind: VALUE_PORT, Port: port}
}

// IsPort returns true if the value refers to a port.
func (v Value) IsPort() bool {
	return v.Kind == VALUE_PORT
}

// String returns the decimal number, or the port name.
func (v Value) String() string {
	if v.IsPort() {
		return v.Port.String()
	}

	return strconv.Itoa(int(v.Number))
}
