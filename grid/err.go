package grid

import (
	"errors"

	"github.com/ezrec/tisgrid/translate"
)

var f = translate.From

var (
	ErrGridSize = errors.New(f("grid requires exactly four programs"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Node   int // Index of the failing node.
	Pc     int // Program counter of the failing opcode.
	LineNo int // Source line of the failing opcode, if known.
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo > 0 {
		return f("node %d pc %d line %d %v", err.Node, err.Pc, err.LineNo, err.Err)
	}
	return f("node %d pc %d %v", err.Node, err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
