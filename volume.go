package voxtree

import (
	"fmt"
	"iter"

	"gonum.org/v1/gonum/spatial/r3"
)

// Volume exposes a node of an Engine's volume store as a bounded shape with
// native border enumeration, slicing and filling. Cell (0, 0, 0) of the
// volume is the node's origin.
type Volume[T, F comparable] struct {
	engine *Engine[T, F]
	node   *Node[T]
}

// Volume wraps node. It panics if node has the wrong dimension.
func (e *Engine[T, F]) Volume(node *Node[T]) *Volume[T, F] {
	e.checkNode(node)
	return &Volume[T, F]{engine: e, node: node}
}

func (v *Volume[T, F]) Node() *Node[T]        { return v.node }
func (v *Volume[T, F]) Engine() *Engine[T, F] { return v.engine }
func (v *Volume[T, F]) Dimension() int        { return v.engine.dim }
func (v *Volume[T, F]) Lookup(p Point) T      { return v.node.Lookup(p) }

// Bound is Size() on every axis of the volume and 1 on unused axes.
func (v *Volume[T, F]) Bound() Point {
	b := Point{1, 1, 1}
	for a := 0; a < v.engine.dim; a++ {
		b[a] = v.node.Size()
	}
	return b
}

func (v *Volume[T, F]) Fill(def T) FilledShape[T] {
	return &filledShape[T]{src: v, def: def, dim: v.engine.dim}
}

func (v *Volume[T, F]) EnumerateBorders(s *Surfacer[T, F], def T, excluded F) EnumerableSurface[F] {
	return &VolumeSurface[T, F]{
		volume:   v,
		s:        s,
		def:      def,
		excluded: excluded,
	}
}

func (v *Volume[T, F]) EnumerateInteriorBorders(s *Surfacer[T, F], excluded F) EnumerableSurface[F] {
	return &InteriorSurface[T, F]{volume: v, s: s, excluded: excluded}
}

// Slice returns the plane at level along axis as a *PlaneSurface. It panics
// for levels outside [0, Size()-2].
func (v *Volume[T, F]) Slice(s *Surfacer[T, F], axis Axis, level int, excluded F) BoundedPlaneSurface[F] {
	tree := v.engine.Slice(s, v.node, axis, level)
	return NewPlaneSurface(tree, axis, level, v.engine.dim, excluded)
}

// PlaneSurface is a surface tree placed on the plane perpendicular to axis at
// level. Borders off the plane and outside the tree's extent are excluded.
type PlaneSurface[F comparable] struct {
	tree     *Node[F]
	axis     Axis
	level    int
	dim      int
	excluded F
}

// NewPlaneSurface places tree, a surface of a dim-dimensional volume, on the
// plane at level along axis.
func NewPlaneSurface[F comparable](tree *Node[F], axis Axis, level, dim int, excluded F) *PlaneSurface[F] {
	checkAxis(axis, dim)
	if tree.dim != dim-1 {
		panic(fmt.Sprintf("voxtree: surface tree of dimension %d on a plane of a %d-dimensional volume", tree.dim, dim))
	}
	return &PlaneSurface[F]{tree: tree, axis: axis, level: level, dim: dim, excluded: excluded}
}

func (p *PlaneSurface[F]) Tree() *Node[F]  { return p.tree }
func (p *PlaneSurface[F]) PlaneAxis() Axis { return p.axis }
func (p *PlaneSurface[F]) PlaneLevel() int { return p.level }
func (p *PlaneSurface[F]) Default() F      { return p.excluded }
func (p *PlaneSurface[F]) Dimension() int  { return p.dim }

func (p *PlaneSurface[F]) PlaneBound() Point {
	b := Point{1, 1, 1}
	for k := 0; k < p.dim-1; k++ {
		b[k] = p.tree.Size()
	}
	return b
}

func (p *PlaneSurface[F]) PlaneLookup(pp Point) F {
	if !pp.Within(p.PlaneBound(), p.dim-1) {
		return p.excluded
	}
	return p.tree.Lookup(pp)
}

func (p *PlaneSurface[F]) BorderAt(pos Point, axis Axis) F {
	if axis != p.axis || pos[axis] != p.level {
		return p.excluded
	}
	return p.PlaneLookup(planeCoords(pos, axis, p.dim))
}

func (p *PlaneSurface[F]) Borders() iter.Seq[Border[F]] {
	return func(yield func(Border[F]) bool) {
		planeBorders(p.tree, p.axis, p.level, p.dim, p.excluded, yield)
	}
}

// TraceRay only tests the surface's own plane.
func (p *PlaneSurface[F]) TraceRay(start, end r3.Vec, excluded F) []TraceHit[F] {
	lo, hi := crossedCells(start, end, p.axis)
	if p.level < lo || p.level >= hi {
		return nil
	}
	h := crossPlane[F](start, end, p.axis, p.level, p.dim)
	if h.Border.Value = p.BorderAt(h.Border.Position, p.axis); h.Border.Value == excluded {
		return nil
	}
	return []TraceHit[F]{h}
}

// InteriorSurface holds the borders between pairs of cells of a volume.
type InteriorSurface[T, F comparable] struct {
	volume   *Volume[T, F]
	s        *Surfacer[T, F]
	excluded F
}

func (is *InteriorSurface[T, F]) Default() F     { return is.excluded }
func (is *InteriorSurface[T, F]) Dimension() int { return is.volume.engine.dim }

// Size is the side of the volume; each axis has Size()-1 interior planes.
func (is *InteriorSurface[T, F]) Size() int { return is.volume.node.Size() }

// Slices returns the interior surface trees by axis and level. See
// Engine.InteriorSlices.
func (is *InteriorSurface[T, F]) Slices() [][]*Node[F] {
	return is.volume.engine.InteriorSlices(is.s, is.volume.node)
}

func (is *InteriorSurface[T, F]) Borders() iter.Seq[Border[F]] {
	return is.volume.engine.InteriorBorders(is.s, is.volume.node, is.excluded)
}

func (is *InteriorSurface[T, F]) BorderAt(p Point, axis Axis) F {
	e := is.volume.engine
	checkAxis(axis, e.dim)
	size := is.Size()
	if !p.Within(is.volume.Bound(), e.dim) || p[axis] > size-2 {
		return is.excluded
	}
	plane := e.Slice(is.s, is.volume.node, axis, p[axis])
	return plane.Lookup(planeCoords(p, axis, e.dim))
}

// VolumeSurface holds every border touching a volume placed in a space
// filled with a default value: the interior borders and the borders between
// the volume's outer cells and the surrounding space.
type VolumeSurface[T, F comparable] struct {
	volume   *Volume[T, F]
	s        *Surfacer[T, F]
	def      T
	excluded F
}

func (vs *VolumeSurface[T, F]) Default() F     { return vs.excluded }
func (vs *VolumeSurface[T, F]) Dimension() int { return vs.volume.engine.dim }

func (vs *VolumeSurface[T, F]) Borders() iter.Seq[Border[F]] {
	return vs.volume.engine.Borders(vs.s, vs.volume.node, vs.def, vs.excluded)
}

// BorderAt returns the border at p along axis. Borders that do not touch the
// volume are computed from the default value on both sides.
func (vs *VolumeSurface[T, F]) BorderAt(p Point, axis Axis) F {
	e := vs.volume.engine
	checkAxis(axis, e.dim)
	size := vs.volume.node.Size()
	pp := planeCoords(p, axis, e.dim)
	if !pp.Within(Point{size, size, size}, e.dim-1) || p[axis] < -1 || p[axis] > size-1 {
		return vs.s.Surfacize(vs.def, vs.def, axis)
	}
	node := vs.volume.node
	var plane *Node[F]
	switch p[axis] {
	case -1:
		plane = e.merge(vs.s, e.volumes.Solid(vs.def, node.depth), node, axis)
	case size - 1:
		plane = e.merge(vs.s, node, e.volumes.Solid(vs.def, node.depth), axis)
	default:
		plane = e.Slice(vs.s, node, axis, p[axis])
	}
	return plane.Lookup(pp)
}
