package pentomino

import "testing"

func TestShapeString(t *testing.T) {
	tests := []struct {
		shape Shape
		want  string
	}{
		{C, "C"},
		{I, "I"},
		{X, "X"},
		{Z, "Z"},
		{None, "-"},
		{Shape(42), "?"},
	}

	for _, tt := range tests {
		if got := tt.shape.String(); got != tt.want {
			t.Errorf("Shape(%d).String() = %q, want %q", tt.shape, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	for _, s := range All() {
		got, ok := Parse(s.String())
		if !ok || got != s {
			t.Errorf("Parse(%q) = %v, %v; want %v, true", s.String(), got, ok, s)
		}
	}

	if got, ok := Parse(" y "); !ok || got != Y {
		t.Errorf("Parse(\" y \") = %v, %v; want Y, true", got, ok)
	}
	if _, ok := Parse("O"); ok {
		t.Error("Parse(\"O\") should fail")
	}
}

func TestAllShapes(t *testing.T) {
	shapes := All()
	if len(shapes) != Count {
		t.Fatalf("len(All()) = %d, want %d", len(shapes), Count)
	}
	for i, s := range shapes {
		if int(s) != i {
			t.Errorf("All()[%d] = %v, want catalog order", i, s)
		}
	}
	if None.Valid() {
		t.Error("None should not be valid")
	}
}

func TestOffsetsDistinct(t *testing.T) {
	for _, s := range All() {
		seen := make(map[Point]bool)
		for _, p := range Offsets(s) {
			if seen[p] {
				t.Errorf("%v: duplicate spawn offset %v", s, p)
			}
			seen[p] = true
			if p.X < 0 || p.Y < 0 {
				t.Errorf("%v: spawn offset %v is negative", s, p)
			}
		}
	}
}

// rotateCCW applies one counter-clockwise turn the way the board does.
func rotateCCW(cells, deltas [CellCount]Point) ([CellCount]Point, [CellCount]Point) {
	for i := range cells {
		cells[i] = cells[i].Add(deltas[i])
		deltas[i] = Point{X: deltas[i].Y, Y: -deltas[i].X}
	}
	return cells, deltas
}

func TestFourTurnsReturnToSpawn(t *testing.T) {
	for _, s := range All() {
		start := Offsets(s)
		cells, deltas := start, Deltas(s)

		for turn := 1; turn <= 4; turn++ {
			cells, deltas = rotateCCW(cells, deltas)

			seen := make(map[Point]bool)
			for _, p := range cells {
				if seen[p] {
					t.Errorf("%v: turn %d overlaps itself at %v", s, turn, p)
				}
				seen[p] = true
			}
		}

		if cells != start {
			t.Errorf("%v: four turns ended at %v, want %v", s, cells, start)
		}
		if deltas != Deltas(s) {
			t.Errorf("%v: four turns left deltas %v, want %v", s, deltas, Deltas(s))
		}
	}
}

func TestXDoesNotRotate(t *testing.T) {
	if Rotates(X) {
		t.Error("X should not rotate")
	}
	if _, ok := Kicks(X, 0, 1); ok {
		t.Error("X should have no kicks")
	}

	for _, s := range All() {
		if s != X && !Rotates(s) {
			t.Errorf("%v should rotate", s)
		}
	}
}

func TestKicks(t *testing.T) {
	tests := []struct {
		name     string
		shape    Shape
		from, to int
		first    Point
	}{
		{"common 0->1", T, 0, 1, Point{-1, 0}},
		{"common 0->3", T, 0, 3, Point{1, 0}},
		{"common 3->0", C, 3, 0, Point{-1, 0}},
		{"long 0->1", J, 0, 1, Point{-2, 0}},
		{"long 2->1", U, 2, 1, Point{1, 0}},
		{"I 0->1", I, 0, 1, Point{1, -1}},
		{"I 1->0", I, 1, 0, Point{1, -1}},
		{"I 3->0", I, 3, 0, Point{1, 1}},
		{"wraps negative", N, 0, -1, Point{-1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kicks, ok := Kicks(tt.shape, tt.from, tt.to)
			if !ok {
				t.Fatalf("Kicks(%v, %d, %d) not found", tt.shape, tt.from, tt.to)
			}
			if kicks[0] != tt.first {
				t.Errorf("first kick = %v, want %v", kicks[0], tt.first)
			}
		})
	}

	if _, ok := Kicks(T, 0, 2); ok {
		t.Error("half turns should have no kick table")
	}
}

func TestPivot(t *testing.T) {
	want := map[Shape]int{D: 2, T: 3, Y: 3}

	for _, s := range All() {
		idx, ok := Pivot(s)
		w, hasPivot := want[s]
		if ok != hasPivot {
			t.Errorf("Pivot(%v) ok = %v, want %v", s, ok, hasPivot)
			continue
		}
		if ok && idx != w {
			t.Errorf("Pivot(%v) = %d, want %d", s, idx, w)
		}
	}
}

func TestTint(t *testing.T) {
	if Tint(I) != (RGB{85, 255, 170}) {
		t.Errorf("Tint(I) = %v", Tint(I))
	}
	if Tint(None) != WipeTint {
		t.Errorf("Tint(None) = %v, want %v", Tint(None), WipeTint)
	}
}
