package hold

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JoshMDonato/Pentris/internal/pentomino"
)

func TestSwapSingleSlot(t *testing.T) {
	h := New(DefaultCapacity)
	assert.Equal(t, []pentomino.Shape{pentomino.None}, h.Held())

	assert.Equal(t, pentomino.None, h.Swap(pentomino.T))
	assert.Equal(t, []pentomino.Shape{pentomino.T}, h.Held())

	assert.Equal(t, pentomino.T, h.Swap(pentomino.L))
	assert.Equal(t, []pentomino.Shape{pentomino.L}, h.Held())
}

func TestSwapMultipleSlots(t *testing.T) {
	h := New(3)

	assert.Equal(t, pentomino.None, h.Swap(pentomino.C))
	assert.Equal(t, pentomino.None, h.Swap(pentomino.D))
	assert.Equal(t, pentomino.None, h.Swap(pentomino.F))
	assert.Equal(t, []pentomino.Shape{pentomino.C, pentomino.D, pentomino.F}, h.Held())

	assert.Equal(t, pentomino.C, h.Swap(pentomino.I))
	assert.Equal(t, []pentomino.Shape{pentomino.D, pentomino.F, pentomino.I}, h.Held())
}

func TestCapacity(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{1, 1},
		{3, 3},
		{0, 1},
		{-2, 1},
	}

	for _, tt := range tests {
		if got := New(tt.in).Capacity(); got != tt.want {
			t.Errorf("New(%d).Capacity() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestReset(t *testing.T) {
	h := New(2)
	h.Swap(pentomino.X)
	h.Swap(pentomino.Y)

	h.Reset()
	assert.Equal(t, []pentomino.Shape{pentomino.None, pentomino.None}, h.Held())
}
