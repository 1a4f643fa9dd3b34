// Package queue deals pieces from grouped random bags and keeps a fixed
// preview of what comes next.
package queue

import (
	"math/rand"

	"github.com/JoshMDonato/Pentris/internal/pentomino"
)

// Groups lists the shapes that share a slot in every bag. Each bag takes
// one shape from every group plus the fixed long piece.
var Groups = [][]pentomino.Shape{
	{pentomino.K, pentomino.N, pentomino.W},
	{pentomino.C, pentomino.L, pentomino.Z},
	{pentomino.P, pentomino.Q},
	{pentomino.F, pentomino.U},
	{pentomino.J, pentomino.S, pentomino.V},
	{pentomino.D, pentomino.T, pentomino.X, pentomino.Y},
}

// Fixed is dealt exactly once per bag.
const Fixed = pentomino.I

// BagSize is the number of shapes in one bag: one per group plus Fixed.
const BagSize = 7

// Bag deals shapes from shuffled batches, drawing from the back.
type Bag struct {
	rng     *rand.Rand
	pending []pentomino.Shape
}

// NewBag creates a bag driven by rng.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

// Draw returns the next shape, refilling the bag when it runs dry.
func (b *Bag) Draw() pentomino.Shape {
	if len(b.pending) == 0 {
		b.pending = b.batch()
	}
	last := len(b.pending) - 1
	s := b.pending[last]
	b.pending = b.pending[:last]
	return s
}

// Remaining returns how many shapes are left in the current batch.
func (b *Bag) Remaining() int {
	return len(b.pending)
}

func (b *Bag) batch() []pentomino.Shape {
	out := make([]pentomino.Shape, 0, BagSize)
	for _, g := range Groups {
		out = append(out, g[b.rng.Intn(len(g))])
	}
	out = append(out, Fixed)
	b.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
