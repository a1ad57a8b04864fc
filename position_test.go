package stringozzi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTellTracksLineColumn(t *testing.T) {
	ctx := NewContext("ab\ncd\nef", 0)
	ctx.SetPosition(0)
	assert.Equal(t, Position{Offset: 0, Line: 1, Column: 1}, ctx.Tell())

	ctx.SetPosition(4)
	assert.Equal(t, Position{Offset: 4, Line: 2, Column: 2}, ctx.Tell())

	ctx.SetPosition(7)
	assert.Equal(t, Position{Offset: 7, Line: 3, Column: 2}, ctx.Tell())
}
