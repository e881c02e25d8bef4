package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	Use("en-US")

	assert.Equal("node 2 pc 3", From("node %d pc %d", 2, 3))
	assert.Equal("port Left", From("port %v", "Left"))
}

func TestUseEmpty(t *testing.T) {
	assert := assert.New(t)

	Use()
	assert.Equal("bad opcode NEG", From("bad opcode %v", "NEG"))
}
