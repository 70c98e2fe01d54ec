package voxtree

import (
	"fmt"
	"iter"
	"slices"
)

type borderKey struct {
	pos  Point
	axis Axis
}

// FiniteBorderSurface is an enumerable surface backed by an explicit list of
// borders. Every other border has the default value.
type FiniteBorderSurface[F any] struct {
	borders []Border[F]
	index   map[borderKey]int
	def     F
}

// NewFiniteBorderSurface copies borders. When a position and axis repeat, the
// last border wins for lookups.
func NewFiniteBorderSurface[F any](borders []Border[F], def F) *FiniteBorderSurface[F] {
	fs := &FiniteBorderSurface[F]{
		borders: slices.Clone(borders),
		index:   make(map[borderKey]int, len(borders)),
		def:     def,
	}
	for i, b := range fs.borders {
		fs.index[borderKey{b.Position, b.Axis}] = i
	}
	return fs
}

func (fs *FiniteBorderSurface[F]) Default() F { return fs.def }
func (fs *FiniteBorderSurface[F]) Len() int   { return len(fs.borders) }

func (fs *FiniteBorderSurface[F]) Borders() iter.Seq[Border[F]] {
	return slices.Values(fs.borders)
}

func (fs *FiniteBorderSurface[F]) BorderAt(p Point, axis Axis) F {
	if i, ok := fs.index[borderKey{p, axis}]; ok {
		return fs.borders[i].Value
	}
	return fs.def
}

// exhaustiveBorders visits every border touching a bounded shape, one cell at
// a time. Cells outside the bound take def.
func exhaustiveBorders[T, F comparable](src BoundedShape[T], s *Surfacer[T, F], def T, excluded F) *FiniteBorderSurface[F] {
	dim := dimensionOf(src)
	bound := src.Bound()
	var borders []Border[F]
	add := func(p Point, a Axis, v F) {
		if v != excluded {
			borders = append(borders, Border[F]{Position: p, Axis: a, Value: v})
		}
	}
	forEachCell(bound, dim, func(p Point) {
		low := src.Lookup(p)
		for _, a := range Axes(dim) {
			high := def
			if up := p.Step(a, 1); up[a] < bound[a] {
				high = src.Lookup(up)
			}
			add(p, a, s.Surfacize(low, high, a))
			if p[a] == 0 {
				add(p.Step(a, -1), a, s.Surfacize(def, low, a))
			}
		}
	})
	return NewFiniteBorderSurface(borders, excluded)
}

// pairSurface computes borders of a bounded shape directly from its cells.
// Only borders between two cells inside the bound are reported.
type pairSurface[T, F comparable] struct {
	src      BoundedShape[T]
	s        *Surfacer[T, F]
	excluded F
	dim      int
}

func (ps *pairSurface[T, F]) Default() F     { return ps.excluded }
func (ps *pairSurface[T, F]) Dimension() int { return ps.dim }

func (ps *pairSurface[T, F]) BorderAt(p Point, axis Axis) F {
	checkAxis(axis, ps.dim)
	bound := ps.src.Bound()
	if !p.Within(bound, ps.dim) || p[axis] >= bound[axis]-1 {
		return ps.excluded
	}
	return ps.s.Surfacize(ps.src.Lookup(p), ps.src.Lookup(p.Step(axis, 1)), axis)
}

func (ps *pairSurface[T, F]) Borders() iter.Seq[Border[F]] {
	return func(yield func(Border[F]) bool) {
		bound := ps.src.Bound()
		stop := false
		forEachCell(bound, ps.dim, func(p Point) {
			if stop {
				return
			}
			for _, a := range Axes(ps.dim) {
				if p[a] >= bound[a]-1 {
					continue
				}
				v := ps.s.Surfacize(ps.src.Lookup(p), ps.src.Lookup(p.Step(a, 1)), a)
				if v != ps.excluded && !yield(Border[F]{Position: p, Axis: a, Value: v}) {
					stop = true
					return
				}
			}
		})
	}
}

// pairPlane is one interior plane of a pairSurface.
type pairPlane[T, F comparable] struct {
	pairSurface[T, F]
	axis  Axis
	level int
}

func newPairPlane[T, F comparable](src BoundedShape[T], s *Surfacer[T, F], axis Axis, level int, excluded F) *pairPlane[T, F] {
	dim := dimensionOf(src)
	checkAxis(axis, dim)
	if last := src.Bound()[axis] - 2; level < 0 || level > last {
		panic(fmt.Sprintf("voxtree: slice level %d outside [0, %d]", level, last))
	}
	return &pairPlane[T, F]{
		pairSurface: pairSurface[T, F]{src: src, s: s, excluded: excluded, dim: dim},
		axis:        axis,
		level:       level,
	}
}

func (pp *pairPlane[T, F]) PlaneAxis() Axis { return pp.axis }
func (pp *pairPlane[T, F]) PlaneLevel() int { return pp.level }

func (pp *pairPlane[T, F]) PlaneBound() Point {
	b := Point{1, 1, 1}
	pb := planeCoords(pp.src.Bound(), pp.axis, pp.dim)
	copy(b[:pp.dim-1], pb[:pp.dim-1])
	return b
}

func (pp *pairPlane[T, F]) PlaneLookup(p Point) F {
	if !p.Within(pp.PlaneBound(), pp.dim-1) {
		return pp.excluded
	}
	return pp.pairSurface.BorderAt(volumeCoords(p, pp.axis, pp.level, pp.dim), pp.axis)
}

func (pp *pairPlane[T, F]) BorderAt(p Point, axis Axis) F {
	if axis != pp.axis || p[axis] != pp.level {
		return pp.excluded
	}
	return pp.pairSurface.BorderAt(p, axis)
}

func (pp *pairPlane[T, F]) Borders() iter.Seq[Border[F]] {
	return func(yield func(Border[F]) bool) {
		stop := false
		forEachCell(pp.PlaneBound(), pp.dim-1, func(p Point) {
			if stop {
				return
			}
			pos := volumeCoords(p, pp.axis, pp.level, pp.dim)
			v := pp.pairSurface.BorderAt(pos, pp.axis)
			if v != pp.excluded && !yield(Border[F]{Position: pos, Axis: pp.axis, Value: v}) {
				stop = true
			}
		})
	}
}

// formedSurface evaluates borders of an infinite shape on demand.
type formedSurface[T, F comparable] struct {
	src InfiniteShape[T]
	s   *Surfacer[T, F]
}

func (fs *formedSurface[T, F]) Dimension() int { return dimensionOf(fs.src) }

func (fs *formedSurface[T, F]) BorderAt(p Point, axis Axis) F {
	return fs.s.Surfacize(fs.src.Lookup(p), fs.src.Lookup(p.Step(axis, 1)), axis)
}

func (fs *formedSurface[T, F]) EnumerateBorders(excluded F) (EnumerableSurface[F], bool) {
	return EnumerateShapeBorders(fs.src, fs.s, excluded)
}
