package queue

import (
	"math/rand"

	"github.com/JoshMDonato/Pentris/internal/pentomino"
)

// DefaultPreview is the number of upcoming shapes shown to the player.
const DefaultPreview = 6

// Queue keeps a preview window of upcoming shapes in front of a bag.
type Queue struct {
	bag     *Bag
	preview int
	entries []pentomino.Shape
}

// New creates a queue with the given preview length, seeded from seed.
func New(preview int, seed int64) *Queue {
	return NewWithBag(preview, NewBag(rand.New(rand.NewSource(seed))))
}

// NewWithBag creates a queue that deals from bag.
func NewWithBag(preview int, bag *Bag) *Queue {
	preview = max(preview, 0)
	q := &Queue{
		bag:     bag,
		preview: preview,
		entries: make([]pentomino.Shape, 0, preview+1),
	}
	for range preview {
		q.entries = append(q.entries, bag.Draw())
	}
	return q
}

// Next consumes the front shape. The window is topped up before the front
// is removed, so it always holds preview+1 entries at that moment.
func (q *Queue) Next() pentomino.Shape {
	q.entries = append(q.entries, q.bag.Draw())
	s := q.entries[0]
	copy(q.entries, q.entries[1:])
	q.entries = q.entries[:len(q.entries)-1]
	return s
}

// Preview returns a copy of the upcoming shapes, nearest first.
func (q *Queue) Preview() []pentomino.Shape {
	out := make([]pentomino.Shape, len(q.entries))
	copy(out, q.entries)
	return out
}

// Len returns the preview length.
func (q *Queue) Len() int {
	return q.preview
}
