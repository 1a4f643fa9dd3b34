// Package pentomino holds the static piece catalog: the eighteen five-cell
// shapes, their spawn layouts, rotation deltas, wall kicks and tints.
// Everything here is immutable and safe to share.
package pentomino

import "strings"

// Shape identifies one of the eighteen pentominoes.
type Shape uint8

const (
	C Shape = iota
	D
	F
	I
	J
	K
	L
	N
	P
	Q
	S
	T
	U
	V
	W
	X
	Y
	Z

	// None marks an empty hold slot or "no piece".
	None Shape = 99
)

// Count is the number of real shapes.
const Count = 18

// CellCount is the number of cells in every piece.
const CellCount = 5

var shapeNames = [Count]string{
	"C", "D", "F", "I", "J", "K", "L", "N", "P",
	"Q", "S", "T", "U", "V", "W", "X", "Y", "Z",
}

// String returns the single-letter name of the shape.
func (s Shape) String() string {
	if s.Valid() {
		return shapeNames[s]
	}
	if s == None {
		return "-"
	}
	return "?"
}

// Valid reports whether s is one of the eighteen real shapes.
func (s Shape) Valid() bool {
	return s < Count
}

// Parse converts a letter (case-insensitive) to a Shape.
func Parse(name string) (Shape, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, n := range shapeNames {
		if n == name {
			return Shape(i), true
		}
	}
	return None, false
}

// All returns every real shape in catalog order.
func All() []Shape {
	shapes := make([]Shape, Count)
	for i := range shapes {
		shapes[i] = Shape(i)
	}
	return shapes
}
