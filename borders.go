package voxtree

import (
	"fmt"
	"iter"
)

// Border is the value between cell Position and the cell one step further
// along Axis.
type Border[F any] struct {
	Position Point
	Axis     Axis
	Value    F
}

func (b Border[F]) String() string {
	return fmt.Sprintf("%v/%v=%v", b.Position, b.Axis, b.Value)
}

// planeCoords projects p onto the plane perpendicular to a.
func planeCoords(p Point, a Axis, dim int) Point {
	o := p.AxisOrder(a, dim)
	var pp Point
	copy(pp[:dim-1], o[1:dim])
	return pp
}

// volumeCoords is the inverse of planeCoords for a plane at level.
func volumeCoords(pp Point, a Axis, level, dim int) Point {
	var o Point
	o[0] = level
	copy(o[1:dim], pp[:dim-1])
	return o.AxisUnorder(a, dim)
}

// planeBorders yields the non-excluded borders of one surface tree.
func planeBorders[F comparable](plane *Node[F], a Axis, level, dim int, excluded F, yield func(Border[F]) bool) bool {
	for pp, v := range plane.Cells(excluded) {
		if !yield(Border[F]{Position: volumeCoords(pp, a, level, dim), Axis: a, Value: v}) {
			return false
		}
	}
	return true
}

// Borders yields every non-excluded border of node placed in a space filled
// with def: first the exterior planes of each axis (low side at level -1,
// high side at level size-1), then the interior planes. The sequence may be
// ranged over repeatedly; surface trees are computed on first use and
// cached.
func (e *Engine[T, F]) Borders(s *Surfacer[T, F], node *Node[T], def T, excluded F) iter.Seq[Border[F]] {
	checkSurfacer(s)
	e.checkNode(node)
	return func(yield func(Border[F]) bool) {
		size := node.Size()
		for a, planes := range e.Exterior(s, node, def) {
			if !planeBorders(planes[0], Axis(a), -1, e.dim, excluded, yield) {
				return
			}
			if !planeBorders(planes[1], Axis(a), size-1, e.dim, excluded, yield) {
				return
			}
		}
		e.interiorBorders(s, node, excluded, yield)
	}
}

// InteriorBorders yields every non-excluded border between two cells of node.
func (e *Engine[T, F]) InteriorBorders(s *Surfacer[T, F], node *Node[T], excluded F) iter.Seq[Border[F]] {
	checkSurfacer(s)
	e.checkNode(node)
	return func(yield func(Border[F]) bool) {
		e.interiorBorders(s, node, excluded, yield)
	}
}

func (e *Engine[T, F]) interiorBorders(s *Surfacer[T, F], node *Node[T], excluded F, yield func(Border[F]) bool) bool {
	for a, levels := range e.InteriorSlices(s, node) {
		for l, plane := range levels {
			if !planeBorders(plane, Axis(a), l, e.dim, excluded, yield) {
				return false
			}
		}
	}
	return true
}
