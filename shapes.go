package voxtree

import "fmt"

// filledShape extends a bounded shape to all of space with a default value.
type filledShape[T any] struct {
	src BoundedShape[T]
	def T
	dim int
}

func (f *filledShape[T]) Source() BoundedShape[T] { return f.src }
func (f *filledShape[T]) Default() T              { return f.def }
func (f *filledShape[T]) Dimension() int          { return f.dim }

func (f *filledShape[T]) Lookup(p Point) T {
	if p.Within(f.src.Bound(), f.dim) {
		return f.src.Lookup(p)
	}
	return f.def
}

// orientedShape maps x onto axis of its source, cycling the other axes.
type orientedShape[T any] struct {
	src  InfiniteShape[T]
	axis Axis
	dim  int
}

func (o *orientedShape[T]) Dimension() int { return o.dim }

func (o *orientedShape[T]) Lookup(p Point) T {
	return o.src.Lookup(p.AxisOrder(o.axis, o.dim))
}

// Orient composes rotations instead of stacking wrappers.
func (o *orientedShape[T]) Orient(axis Axis) InfiniteShape[T] {
	return &orientedShape[T]{src: o.src, axis: Axis((int(o.axis) + int(axis)) % o.dim), dim: o.dim}
}

// transformedShape maps every value of its source through fn.
type transformedShape[S, T any] struct {
	src InfiniteShape[S]
	fn  func(S) T
}

func (t *transformedShape[S, T]) Dimension() int   { return dimensionOf(t.src) }
func (t *transformedShape[S, T]) Lookup(p Point) T { return t.fn(t.src.Lookup(p)) }

// Transform composes same-typed mappings instead of stacking wrappers.
func (t *transformedShape[S, T]) Transform(fn func(T) T) InfiniteShape[T] {
	inner := t.fn
	return &transformedShape[S, T]{src: t.src, fn: func(v S) T { return fn(inner(v)) }}
}

// subsectionShape is the window [start, start+size) of its source, moved to
// the origin.
type subsectionShape[T any] struct {
	src   InfiniteShape[T]
	start Point
	size  Point
}

func (s *subsectionShape[T]) Dimension() int   { return dimensionOf(s.src) }
func (s *subsectionShape[T]) Bound() Point     { return s.size }
func (s *subsectionShape[T]) Lookup(p Point) T { return s.src.Lookup(p.Add(s.start)) }

// Subsection of a subsection reads straight from the underlying source.
func (s *subsectionShape[T]) Subsection(start, size Point) BoundedShape[T] {
	return &subsectionShape[T]{src: s.src, start: s.start.Add(start), size: size}
}

// Cuboid is Interior inside the box [Start, Start+Size) and Default elsewhere.
// Every axis is tested, so lower-dimensional uses need Size 1 on unused axes.
type Cuboid[T any] struct {
	Start, Size       Point
	Interior, Default T
}

func (c Cuboid[T]) Lookup(p Point) T {
	if p.Sub(c.Start).Within(c.Size, MaxDimension) {
		return c.Interior
	}
	return c.Default
}

// Grid is a dense bounded shape backed by a flat array.
type Grid[T any] struct {
	dim   int
	bound Point
	cells []T
}

// NewGrid allocates a dim-dimensional grid covering [0, bound). Components of
// bound beyond dim are ignored. It panics on empty bounds.
func NewGrid[T any](dim int, bound Point) *Grid[T] {
	if dim < 1 || dim > MaxDimension {
		panic(fmt.Sprintf("voxtree: grid dimension %d out of range", dim))
	}
	n := 1
	for a := 0; a < MaxDimension; a++ {
		if a >= dim {
			bound[a] = 1
			continue
		}
		if bound[a] <= 0 {
			panic(fmt.Sprintf("voxtree: grid bound %v is empty", bound))
		}
		n *= bound[a]
	}
	return &Grid[T]{dim: dim, bound: bound, cells: make([]T, n)}
}

func (g *Grid[T]) Dimension() int { return g.dim }
func (g *Grid[T]) Bound() Point   { return g.bound }

func (g *Grid[T]) index(p Point) int {
	if !p.Within(g.bound, g.dim) {
		panic(fmt.Sprintf("voxtree: grid position %v outside %v", p, g.bound))
	}
	i := 0
	for a := 0; a < g.dim; a++ {
		i = i*g.bound[a] + p[a]
	}
	return i
}

func (g *Grid[T]) Lookup(p Point) T { return g.cells[g.index(p)] }
func (g *Grid[T]) Set(p Point, v T) { g.cells[g.index(p)] = v }

// Load sets every cell of g from src.
func (g *Grid[T]) Load(src InfiniteShape[T]) {
	forEachCell(g.bound, g.dim, func(p Point) {
		g.Set(p, src.Lookup(p))
	})
}

// forEachCell calls fn for every position in [0, bound) on the first dim
// axes, with the last axis varying fastest.
func forEachCell(bound Point, dim int, fn func(Point)) {
	var walk func(p Point, a int)
	walk = func(p Point, a int) {
		if a == dim {
			fn(p)
			return
		}
		for i := 0; i < bound[a]; i++ {
			p[a] = i
			walk(p, a+1)
		}
	}
	walk(Point{}, 0)
}
