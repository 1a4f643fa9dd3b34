package pentomino

// KickCount is the number of kick candidates tried after the unkicked turn.
const KickCount = 4

const (
	turnCCW = iota
	turnCW
)

// kickTable is indexed by [from orientation][turn direction].
type kickTable [4][2][KickCount]Point

var kicksCommon = kickTable{
	0: {
		turnCCW: {{1, 0}, {1, -1}, {0, 2}, {1, 2}},
		turnCW:  {{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	},
	1: {
		turnCCW: {{1, 0}, {1, 1}, {0, -2}, {1, -2}},
		turnCW:  {{1, 0}, {1, 1}, {0, -2}, {1, -2}},
	},
	2: {
		turnCCW: {{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		turnCW:  {{1, 0}, {1, -1}, {0, 2}, {1, 2}},
	},
	3: {
		turnCCW: {{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		turnCW:  {{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	},
}

var kicksLong = kickTable{
	0: {
		turnCCW: {{-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
		turnCW:  {{-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	},
	1: {
		turnCCW: {{2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
		turnCW:  {{-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	},
	2: {
		turnCCW: {{1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
		turnCW:  {{2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	},
	3: {
		turnCCW: {{-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
		turnCW:  {{1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	},
}

var (
	kicksIFlat  = [KickCount]Point{{1, -1}, {-1, 1}, {2, -2}, {-2, 2}}
	kicksISteep = [KickCount]Point{{1, 1}, {-1, -1}, {2, 2}, {-2, -2}}
)

// The I table is symmetric: 0<->1 and 2<->3 share one list, 1<->2 and 3<->0
// share the other.
var kicksI = kickTable{
	0: {turnCCW: kicksISteep, turnCW: kicksIFlat},
	1: {turnCCW: kicksIFlat, turnCW: kicksISteep},
	2: {turnCCW: kicksISteep, turnCW: kicksIFlat},
	3: {turnCCW: kicksIFlat, turnCW: kicksISteep},
}

// Kicks returns the ordered kick candidates for turning s from one
// orientation to an adjacent one. It reports false for X, for unknown
// shapes and when to is not one quarter turn away from from.
func Kicks(s Shape, from, to int) ([KickCount]Point, bool) {
	if !Rotates(s) {
		return [KickCount]Point{}, false
	}
	from, to = mod4(from), mod4(to)
	var dir int
	switch to {
	case mod4(from + 1):
		dir = turnCW
	case mod4(from + 3):
		dir = turnCCW
	default:
		return [KickCount]Point{}, false
	}
	return catalog[s].kicks[from][dir], true
}

func mod4(o int) int {
	return ((o % 4) + 4) % 4
}
