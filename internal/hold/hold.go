// Package hold implements the hold slots: a fixed-capacity FIFO of shapes
// set aside by the player.
package hold

import "github.com/JoshMDonato/Pentris/internal/pentomino"

// DefaultCapacity is the standard number of hold slots.
const DefaultCapacity = 1

// Slot holds up to capacity shapes, oldest first. Empty slots hold
// pentomino.None.
type Slot struct {
	slots []pentomino.Shape
}

// New creates an empty hold. Capacities below 1 become 1.
func New(capacity int) *Slot {
	h := &Slot{slots: make([]pentomino.Shape, max(capacity, 1))}
	h.Reset()
	return h
}

// Swap stores s as the most recent entry and returns the entry pushed out
// of the oldest slot, or pentomino.None when that slot was empty.
func (h *Slot) Swap(s pentomino.Shape) pentomino.Shape {
	out := h.slots[0]
	copy(h.slots, h.slots[1:])
	h.slots[len(h.slots)-1] = s
	return out
}

// Held returns the slots, oldest first.
func (h *Slot) Held() []pentomino.Shape {
	out := make([]pentomino.Shape, len(h.slots))
	copy(out, h.slots)
	return out
}

// Capacity returns the number of slots.
func (h *Slot) Capacity() int {
	return len(h.slots)
}

// Reset empties every slot.
func (h *Slot) Reset() {
	for i := range h.slots {
		h.slots[i] = pentomino.None
	}
}
