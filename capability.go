package voxtree

// EnumerateBorders returns every non-excluded border touching src, with
// cells outside src's bound taking def. Shapes implementing BorderEnumerator
// answer natively; any other shape is scanned cell by cell.
func EnumerateBorders[T, F comparable](src BoundedShape[T], s *Surfacer[T, F], def T, excluded F) EnumerableSurface[F] {
	checkSurfacer(s)
	if be, ok := src.(BorderEnumerator[T, F]); ok {
		return be.EnumerateBorders(s, def, excluded)
	}
	return exhaustiveBorders(src, s, def, excluded)
}

// EnumerateInteriorBorders returns every non-excluded border between two
// cells of src. Shapes implementing InteriorEnumerator answer natively; any
// other shape is scanned on each enumeration.
func EnumerateInteriorBorders[T, F comparable](src BoundedShape[T], s *Surfacer[T, F], excluded F) EnumerableSurface[F] {
	checkSurfacer(s)
	if ie, ok := src.(InteriorEnumerator[T, F]); ok {
		return ie.EnumerateInteriorBorders(s, excluded)
	}
	return &pairSurface[T, F]{src: src, s: s, excluded: excluded, dim: dimensionOf(src)}
}

// SliceShape returns the interior plane of src perpendicular to axis between
// cells at level and level+1. It panics for levels outside
// [0, Bound()[axis]-2].
func SliceShape[T, F comparable](src BoundedShape[T], s *Surfacer[T, F], axis Axis, level int, excluded F) BoundedPlaneSurface[F] {
	checkSurfacer(s)
	if sl, ok := src.(Slicer[T, F]); ok {
		return sl.Slice(s, axis, level, excluded)
	}
	return newPairPlane(src, s, axis, level, excluded)
}

// Fill extends src to all of space, with def outside its bound.
func Fill[T any](src BoundedShape[T], def T) FilledShape[T] {
	if f, ok := src.(Filler[T]); ok {
		return f.Fill(def)
	}
	return &filledShape[T]{src: src, def: def, dim: dimensionOf(src)}
}

// Orient rotates src so that its x axis appears along axis. The remaining
// axes follow in cyclic order.
func Orient[T any](src InfiniteShape[T], axis Axis) InfiniteShape[T] {
	if o, ok := src.(Orienter[T]); ok {
		return o.Orient(axis)
	}
	dim := dimensionOf(src)
	checkAxis(axis, dim)
	return &orientedShape[T]{src: src, axis: axis, dim: dim}
}

// Transform maps every value of src through fn.
func Transform[T, U any](src InfiniteShape[T], fn func(T) U) InfiniteShape[U] {
	if t, ok := src.(Transformer[T, U]); ok {
		return t.Transform(fn)
	}
	return &transformedShape[T, U]{src: src, fn: fn}
}

// Subsection returns the window [start, start+size) of src as a bounded shape
// with its origin at start.
func Subsection[T any](src InfiniteShape[T], start, size Point) BoundedShape[T] {
	if d, ok := src.(Subsectioner[T]); ok {
		return d.Subsection(start, size)
	}
	return &subsectionShape[T]{src: src, start: start, size: size}
}

// FormSurface returns the surface of every border of src. The result
// implements MultiEnumerableSurface.
func FormSurface[T, F comparable](src InfiniteShape[T], s *Surfacer[T, F]) Surface[F] {
	checkSurfacer(s)
	if sf, ok := src.(SurfaceFormer[T, F]); ok {
		return sf.FormSurface(s)
	}
	return &formedSurface[T, F]{src: src, s: s}
}

// EnumerateShapeBorders enumerates the non-excluded borders of an infinite
// shape. It reports false when the set cannot be shown to be finite: a
// filled shape qualifies only if borders between two default cells are
// excluded on every axis.
func EnumerateShapeBorders[T, F comparable](src InfiniteShape[T], s *Surfacer[T, F], excluded F) (EnumerableSurface[F], bool) {
	checkSurfacer(s)
	if e, ok := src.(ShapeBorderEnumerator[T, F]); ok {
		return e.EnumerateShapeBorders(s, excluded)
	}
	f, ok := src.(FilledShape[T])
	if !ok {
		return nil, false
	}
	def := f.Default()
	for _, a := range Axes(dimensionOf(f.Source())) {
		if s.Surfacize(def, def, a) != excluded {
			return nil, false
		}
	}
	return EnumerateBorders(f.Source(), s, def, excluded), true
}
