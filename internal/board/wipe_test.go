package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoshMDonato/Pentris/internal/pentomino"
)

func TestWipeStep(t *testing.T) {
	b := New(Config{Width: 6, Height: 6, Buffer: 2})
	b.grid.Set(2, 5, Cell{Color: gray})

	require.True(t, b.WipeStep())

	c, ok := b.Cell(2, 5)
	require.True(t, ok)
	assert.True(t, c.Wiped)
	assert.Equal(t, gray, c.Color, "settled cells keep their colour")

	c, ok = b.Cell(0, 5)
	require.True(t, ok)
	assert.Equal(t, pentomino.WipeTint, c.Color)
	assert.False(t, b.grid.Occupied(0, 4))

	steps := 1
	for b.WipeStep() {
		steps++
	}
	assert.Equal(t, 6, steps)
	assert.True(t, b.Wiped())
	assert.False(t, b.WipeStep())
	assert.False(t, b.grid.Occupied(0, -1), "the buffer is never wiped")
}
