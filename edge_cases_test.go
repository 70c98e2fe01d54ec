package voxtree

import (
	"testing"
)

func TestEdgeCase_DepthZeroVolume(t *testing.T) {
	e := newTestEngine[string, Face[string]](t, 3)
	f := OpaqueSurfacer("")
	n := e.Volumes().Leaf("stone")

	if got := collectBorders(t, e.InteriorBorders(f, n, Face[string]{})); len(got) != 0 {
		t.Errorf("a single cell has no interior borders, got %v", got)
	}
	got := collectBorders(t, e.Borders(f, n, "", Face[string]{}))
	if len(got) != 6 {
		t.Fatalf("expected 6 faces around a single cell, got %d", len(got))
	}
	for _, a := range Axes(3) {
		if v := got[borderKey{Pt(0, 0, 0), a}]; v != (Face[string]{"stone", FacingPositive}) {
			t.Errorf("high face along %v = %v", a, v)
		}
		if v := got[borderKey{Pt(0, 0, 0).Step(a, -1), a}]; v != (Face[string]{"stone", FacingNegative}) {
			t.Errorf("low face along %v = %v", a, v)
		}
	}
}

func TestEdgeCase_LeafExterior(t *testing.T) {
	e := newTestEngine[string, Face[string]](t, 3)
	ext := e.Exterior(OpaqueSurfacer(""), e.Volumes().Leaf("stone"), "")
	if len(ext) != 3 {
		t.Fatalf("expected one pair per axis, got %d", len(ext))
	}
	for a, pair := range ext {
		if !pair[0].IsLeaf() || !pair[1].IsLeaf() {
			t.Errorf("axis %d: exterior of a leaf should be leaves", a)
		}
		if pair[0].Dimension() != 2 {
			t.Errorf("axis %d: exterior dimension %d, want 2", a, pair[0].Dimension())
		}
	}
}

func TestEdgeCase_AllExcluded(t *testing.T) {
	e := newTestEngine[string, Face[string]](t, 3)
	f := OpaqueSurfacer("")
	n := e.Volumes().Solid("", 5)

	count := 0
	for range e.Borders(f, n, "", Face[string]{}) {
		count++
	}
	if count != 0 {
		t.Errorf("empty space inside empty space should have no borders, got %d", count)
	}
}

// The exterior of a uniform volume costs one merge per level, however deep
// the volume is.
func TestEdgeCase_DeepUniformExterior(t *testing.T) {
	e := newTestEngine[string, Face[string]](t, 3)
	n := e.Volumes().Solid("stone", MaxDepth)
	if n.Size() != 1<<MaxDepth {
		t.Errorf("Size() = %d, want %d", n.Size(), 1<<MaxDepth)
	}

	for a, pair := range e.Exterior(OpaqueSurfacer(""), n, "stone") {
		for side, plane := range pair {
			v, ok := plane.Homogeneous()
			if !ok || v != (Face[string]{}) {
				t.Errorf("axis %d side %d: exterior inside stone should be empty, got %v", a, side, v)
			}
		}
	}
	if _, interiors := e.Surfaces().Len(); interiors != MaxDepth {
		t.Errorf("expected one surface node per level, got %d", interiors)
	}
}

func TestEdgeCase_TwoDimensionalSurfaceLeaves(t *testing.T) {
	e := newTestEngine[int, Transition[int]](t, 2)
	f := TransitionSurfacer[int]()
	s := e.Volumes()
	n := s.Interior(1, []*Node[int]{s.Leaf(1), s.Leaf(2), s.Leaf(3), s.Leaf(4)})

	slices := e.InteriorSlices(f, n)
	for a, levels := range slices {
		if len(levels) != 1 {
			t.Fatalf("axis %d: expected 1 level, got %d", a, len(levels))
		}
		if levels[0].Dimension() != 1 || levels[0].Size() != 2 {
			t.Errorf("axis %d: plane has dimension %d size %d", a, levels[0].Dimension(), levels[0].Size())
		}
	}
	// Along x the plane pairs (0,y) with (1,y).
	if v := slices[AxisX][0].Lookup(Pt(1, 0, 0)); v != (Transition[int]{2, 4}) {
		t.Errorf("x plane at y=1 = %v, want {2 4}", v)
	}
	if v := slices[AxisY][0].Lookup(Pt(0, 0, 0)); v != (Transition[int]{1, 2}) {
		t.Errorf("y plane at x=0 = %v, want {1 2}", v)
	}
}

func TestEdgeCase_OneDimensionalStore(t *testing.T) {
	s := newTestStore[int](t, 1)
	if s.Arity() != 2 {
		t.Fatalf("Arity() = %d, want 2", s.Arity())
	}
	n, err := s.Build(ShapeFunc[int](func(p Point) int { return p[0] / 3 }), Point{}, 3)
	if err != nil {
		t.Fatal(err)
	}
	for x := 0; x < 8; x++ {
		if got := n.Lookup(Pt(x, 0, 0)); got != x/3 {
			t.Errorf("Lookup(%d) = %d, want %d", x, got, x/3)
		}
	}
	if _, err := NewEngine[int, int](s); err == nil {
		t.Error("expected error for an engine over 1D volumes")
	}
}

func TestEdgeCase_SliceBoundaryLevels(t *testing.T) {
	e := newTestEngine[string, Face[string]](t, 3)
	f := OpaqueSurfacer("")
	g := randomGrid(3, 4, 180)
	n := buildGrid(t, e.Volumes(), g)

	for _, a := range Axes(3) {
		for _, level := range []int{0, 2} {
			plane := e.Slice(f, n, a, level)
			forEachCell(cube(4, 2), 2, func(pp Point) {
				p := volumeCoords(pp, a, level, 3)
				want := f.Surfacize(g.Lookup(p), g.Lookup(p.Step(a, 1)), a)
				if got := plane.Lookup(pp); got != want {
					t.Errorf("axis %v level %d at %v: got %v, want %v", a, level, pp, got, want)
				}
			})
		}
	}
}

func TestEdgeCase_NegativeOrigin(t *testing.T) {
	s := newTestStore[string](t, 3)
	src := Cuboid[string]{Start: Pt(-2, -2, -2), Size: Pt(2, 2, 2), Interior: "stone"}
	n, err := s.Build(src, Pt(-4, -4, -4), 3)
	if err != nil {
		t.Fatal(err)
	}
	for p, v := range n.Cells("") {
		q := p.Add(Pt(-4, -4, -4))
		if v != src.Lookup(q) {
			t.Errorf("cell %v = %q, want %q", q, v, src.Lookup(q))
		}
	}
	if got := n.Lookup(Pt(2, 2, 2)); got != "stone" {
		t.Errorf("Lookup(2, 2, 2) = %q, want stone", got)
	}
}
