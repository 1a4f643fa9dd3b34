package pentomino

// Point is an integer grid coordinate or offset. Y grows downward.
type Point struct {
	X, Y int
}

// Add returns p translated by o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Neg returns the point mirrored through the origin.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// RGB is a 24-bit colour.
type RGB struct {
	R, G, B uint8
}

// WipeTint colours cells filled in by the game-over wipe.
var WipeTint = RGB{30, 30, 30}

type entry struct {
	tint    RGB
	offsets [CellCount]Point // spawn offsets from the anchor
	deltas  [CellCount]Point // first counter-clockwise step per cell
	kicks   *kickTable
	pivot   int // spin pivot cell index, -1 when the shape has none
}

var catalog = [Count]entry{
	C: {
		tint:    RGB{85, 43, 0},
		offsets: [5]Point{{0, 0}, {0, 1}, {1, 1}, {2, 1}, {2, 0}},
		deltas:  [5]Point{{1, 1}, {2, 0}, {1, -1}, {0, -2}, {-1, -1}},
		kicks:   &kicksCommon,
		pivot:   -1,
	},
	D: {
		tint:    RGB{170, 85, 255},
		offsets: [5]Point{{1, 0}, {0, 1}, {1, 1}, {2, 1}, {3, 1}},
		deltas:  [5]Point{{0, 1}, {2, 1}, {1, 0}, {0, -1}, {-1, -2}},
		kicks:   &kicksLong,
		pivot:   2,
	},
	F: {
		tint:    RGB{0, 85, 0},
		offsets: [5]Point{{1, 0}, {1, 1}, {2, 1}, {1, 2}, {0, 2}},
		deltas:  [5]Point{{-1, 1}, {0, 0}, {-1, -1}, {1, -1}, {2, 0}},
		kicks:   &kicksCommon,
		pivot:   -1,
	},
	I: {
		tint:    RGB{85, 255, 170},
		offsets: [5]Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}},
		deltas:  [5]Point{{2, 2}, {1, 1}, {0, 0}, {-1, -1}, {-2, -2}},
		kicks:   &kicksI,
		pivot:   -1,
	},
	J: {
		tint:    RGB{0, 0, 255},
		offsets: [5]Point{{0, 0}, {0, 1}, {1, 1}, {2, 1}, {3, 1}},
		deltas:  [5]Point{{1, 2}, {2, 1}, {1, 0}, {0, -1}, {-1, -2}},
		kicks:   &kicksLong,
		pivot:   -1,
	},
	K: {
		tint:    RGB{85, 0, 0},
		offsets: [5]Point{{1, 0}, {0, 1}, {1, 1}, {1, 2}, {2, 2}},
		deltas:  [5]Point{{-1, 1}, {1, 1}, {0, 0}, {1, -1}, {0, -2}},
		kicks:   &kicksCommon,
		pivot:   -1,
	},
	L: {
		tint:    RGB{255, 128, 0},
		offsets: [5]Point{{3, 0}, {0, 1}, {1, 1}, {2, 1}, {3, 1}},
		deltas:  [5]Point{{-2, -1}, {2, 1}, {1, 0}, {0, -1}, {-1, -2}},
		kicks:   &kicksLong,
		pivot:   -1,
	},
	N: {
		tint:    RGB{255, 0, 0},
		offsets: [5]Point{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {3, 1}},
		deltas:  [5]Point{{1, 2}, {0, 1}, {1, 0}, {0, -1}, {-1, -2}},
		kicks:   &kicksLong,
		pivot:   -1,
	},
	P: {
		tint:    RGB{255, 255, 0},
		offsets: [5]Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 1}},
		deltas:  [5]Point{{1, 1}, {0, 0}, {2, 0}, {1, -1}, {0, -2}},
		kicks:   &kicksCommon,
		pivot:   -1,
	},
	Q: {
		tint:    RGB{170, 170, 0},
		offsets: [5]Point{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}},
		deltas:  [5]Point{{0, 0}, {-1, -1}, {2, 0}, {1, -1}, {0, -2}},
		kicks:   &kicksCommon,
		pivot:   -1,
	},
	S: {
		tint:    RGB{0, 128, 255},
		offsets: [5]Point{{1, 0}, {2, 0}, {1, 1}, {0, 2}, {1, 2}},
		deltas:  [5]Point{{-1, 1}, {-2, 0}, {0, 0}, {2, 0}, {1, -1}},
		kicks:   &kicksCommon,
		pivot:   -1,
	},
	T: {
		tint:    RGB{128, 0, 255},
		offsets: [5]Point{{1, 0}, {1, 1}, {0, 2}, {1, 2}, {2, 2}},
		deltas:  [5]Point{{-1, 1}, {0, 0}, {2, 0}, {1, -1}, {0, -2}},
		kicks:   &kicksCommon,
		pivot:   3,
	},
	U: {
		tint:    RGB{0, 255, 0},
		offsets: [5]Point{{2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}},
		deltas:  [5]Point{{-1, 0}, {-2, -1}, {2, 1}, {1, 0}, {0, -1}},
		kicks:   &kicksLong,
		pivot:   -1,
	},
	V: {
		tint:    RGB{0, 255, 255},
		offsets: [5]Point{{2, 0}, {2, 1}, {2, 2}, {1, 2}, {0, 2}},
		deltas:  [5]Point{{-2, 0}, {-1, -1}, {0, -2}, {1, -1}, {2, 0}},
		kicks:   &kicksCommon,
		pivot:   -1,
	},
	W: {
		tint:    RGB{255, 0, 128},
		offsets: [5]Point{{0, 0}, {0, 1}, {1, 1}, {1, 2}, {2, 2}},
		deltas:  [5]Point{{0, 2}, {1, 1}, {0, 0}, {1, -1}, {0, -2}},
		kicks:   &kicksCommon,
		pivot:   -1,
	},
	X: {
		tint:    RGB{43, 0, 85},
		offsets: [5]Point{{1, 0}, {0, 1}, {1, 1}, {2, 1}, {1, 2}},
		deltas:  [5]Point{{-1, 1}, {1, 1}, {0, 0}, {-1, -1}, {1, -1}},
		kicks:   nil,
		pivot:   -1,
	},
	Y: {
		tint:    RGB{255, 128, 255},
		offsets: [5]Point{{2, 0}, {0, 1}, {1, 1}, {2, 1}, {3, 1}},
		deltas:  [5]Point{{-1, 0}, {2, 1}, {1, 0}, {0, -1}, {-1, -2}},
		kicks:   &kicksLong,
		pivot:   3,
	},
	Z: {
		tint:    RGB{255, 170, 85},
		offsets: [5]Point{{0, 0}, {1, 0}, {1, 1}, {1, 2}, {2, 2}},
		deltas:  [5]Point{{0, 2}, {-1, 1}, {0, 0}, {1, -1}, {0, -2}},
		kicks:   &kicksCommon,
		pivot:   -1,
	},
}

// Offsets returns the spawn layout of s relative to the spawn anchor.
// Unknown shapes yield the zero layout.
func Offsets(s Shape) [CellCount]Point {
	if !s.Valid() {
		return [CellCount]Point{}
	}
	return catalog[s].offsets
}

// Deltas returns the per-cell counter-clockwise rotation deltas of s in its
// spawn orientation.
func Deltas(s Shape) [CellCount]Point {
	if !s.Valid() {
		return [CellCount]Point{}
	}
	return catalog[s].deltas
}

// Tint returns the display colour of s. None and unknown shapes get WipeTint.
func Tint(s Shape) RGB {
	if !s.Valid() {
		return WipeTint
	}
	return catalog[s].tint
}

// Rotates reports whether rotating s can change its cells.
// X is symmetric under rotation and always reports false.
func Rotates(s Shape) bool {
	return s.Valid() && catalog[s].kicks != nil
}

// Pivot returns the index of the cell whose diagonal neighbours decide the
// spin bonus. The index is fixed per shape and ignores orientation.
func Pivot(s Shape) (int, bool) {
	if !s.Valid() || catalog[s].pivot < 0 {
		return 0, false
	}
	return catalog[s].pivot, true
}
