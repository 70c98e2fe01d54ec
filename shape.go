package voxtree

import (
	"iter"

	"gonum.org/v1/gonum/spatial/r3"
)

// InfiniteShape is the read interface for values defined at every cell of
// space. Implementations must be safe for concurrent Lookup calls when used
// with BuildParallel.
type InfiniteShape[T any] interface {
	// Lookup returns the value of the cell at p.
	Lookup(p Point) T
}

// BoundedShape is a shape with data in [0, Bound()) on each axis. Lookups
// outside the bound are undefined.
type BoundedShape[T any] interface {
	InfiniteShape[T]

	// Bound returns the exclusive upper corner of the region with data.
	Bound() Point
}

// FilledShape is an infinite shape that takes its values from a bounded
// source and Default() everywhere else.
type FilledShape[T any] interface {
	InfiniteShape[T]

	Source() BoundedShape[T]
	Default() T
}

// ShapeFunc adapts a plain function into an InfiniteShape.
type ShapeFunc[T any] func(p Point) T

func (f ShapeFunc[T]) Lookup(p Point) T { return f(p) }

// Dimensional is implemented by shapes and surfaces that live in fewer than
// three dimensions. Anything that does not implement it is treated as 3D.
type Dimensional interface {
	Dimension() int
}

func dimensionOf(v any) int {
	if d, ok := v.(Dimensional); ok {
		return d.Dimension()
	}
	return MaxDimension
}

// Surface is the read interface for values on the borders between cells.
type Surface[F any] interface {
	// BorderAt returns the value of the border between cell p and the cell
	// one step along axis.
	BorderAt(p Point, axis Axis) F
}

// EnumerableSurface is a surface that can list every border whose value
// differs from Default().
type EnumerableSurface[F any] interface {
	Surface[F]

	// Borders yields every non-default border. The sequence is finite and
	// may be ranged over more than once. No order is guaranteed.
	Borders() iter.Seq[Border[F]]

	// Default is the value of every border not yielded by Borders.
	Default() F
}

// BoundedPlaneSurface is an enumerable surface whose non-default borders
// all lie on one plane perpendicular to PlaneAxis at PlaneLevel.
type BoundedPlaneSurface[F any] interface {
	EnumerableSurface[F]

	PlaneAxis() Axis
	PlaneLevel() int

	// PlaneBound is the exclusive upper corner of the plane region, in plane
	// coordinates (see Point.AxisOrder).
	PlaneBound() Point

	// PlaneLookup returns the border at plane coordinates p, or Default()
	// outside PlaneBound.
	PlaneLookup(p Point) F
}

// MultiEnumerableSurface is a surface that can enumerate its borders for any
// excluded value. The boolean is false when the set would be infinite.
type MultiEnumerableSurface[F any] interface {
	Surface[F]

	EnumerateBorders(excluded F) (EnumerableSurface[F], bool)
}

// The interfaces below are optional capabilities. The functions in
// capability.go probe for them with a type assertion and fall back to a
// generic implementation when a shape does not provide one.

// BorderEnumerator is a bounded shape that can enumerate every border
// touching it, with cells outside the bound taking def.
type BorderEnumerator[T, F comparable] interface {
	EnumerateBorders(s *Surfacer[T, F], def T, excluded F) EnumerableSurface[F]
}

// ShapeBorderEnumerator is an infinite shape that can enumerate its borders.
// The boolean is false when the set would be infinite.
type ShapeBorderEnumerator[T, F comparable] interface {
	EnumerateShapeBorders(s *Surfacer[T, F], excluded F) (EnumerableSurface[F], bool)
}

// InteriorEnumerator is a bounded shape that can enumerate the borders
// between pairs of its own cells.
type InteriorEnumerator[T, F comparable] interface {
	EnumerateInteriorBorders(s *Surfacer[T, F], excluded F) EnumerableSurface[F]
}

// Slicer is a bounded shape that can produce one interior plane of borders.
type Slicer[T, F comparable] interface {
	Slice(s *Surfacer[T, F], axis Axis, level int, excluded F) BoundedPlaneSurface[F]
}

// Filler is a bounded shape that can extend itself to all of space.
type Filler[T any] interface {
	Fill(def T) FilledShape[T]
}

// Orienter is a shape that can rotate its axes so that x maps onto axis.
type Orienter[T any] interface {
	Orient(axis Axis) InfiniteShape[T]
}

// Transformer is a shape that can map its values through fn.
type Transformer[T, U any] interface {
	Transform(fn func(T) U) InfiniteShape[U]
}

// Subsectioner is a shape that can expose a finite window of itself.
type Subsectioner[T any] interface {
	Subsection(start, size Point) BoundedShape[T]
}

// SurfaceFormer is a shape that can produce the surface of all its borders.
type SurfaceFormer[T, F comparable] interface {
	FormSurface(s *Surfacer[T, F]) Surface[F]
}

// Tracer is a surface that can trace rays through itself.
type Tracer[F comparable] interface {
	TraceRay(start, end r3.Vec, excluded F) []TraceHit[F]
}
