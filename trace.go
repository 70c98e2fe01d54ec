package voxtree

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"
)

// TraceHit is a border crossed by a ray.
type TraceHit[F any] struct {
	Border Border[F]

	// Distance is the fraction of the ray, in [0, 1], at which the border
	// plane is crossed.
	Distance float64

	// At is the crossing point.
	At r3.Vec

	// Offset is where the crossing lies relative to the centre of the
	// border's face, in plane coordinates. Each component is in [-0.5, 0.5].
	Offset [MaxDimension - 1]float64
}

// Unit returns the cell containing v. Cells are centred on integer
// coordinates.
func Unit(v r3.Vec) Point {
	return Point{int(math.Round(v.X)), int(math.Round(v.Y)), int(math.Round(v.Z))}
}

func component(v r3.Vec, a Axis) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// TraceRay returns the non-excluded borders crossed by the segment from
// start to end, nearest first. Surfaces implementing Tracer trace
// themselves; any other surface is probed at every crossed plane.
func TraceRay[F comparable](surf Surface[F], start, end r3.Vec, excluded F) []TraceHit[F] {
	if t, ok := surf.(Tracer[F]); ok {
		return t.TraceRay(start, end, excluded)
	}

	dim := dimensionOf(surf)
	var hits []TraceHit[F]
	for _, a := range Axes(dim) {
		lo, hi := crossedCells(start, end, a)
		for cell := lo; cell < hi; cell++ {
			h := crossPlane[F](start, end, a, cell, dim)
			if h.Border.Value = surf.BorderAt(h.Border.Position, a); h.Border.Value != excluded {
				hits = append(hits, h)
			}
		}
	}
	sortHits(hits)
	return hits
}

// crossedCells returns the range [lo, hi) of cells whose high-side plane
// along a lies between the cells of start and end.
func crossedCells(start, end r3.Vec, a Axis) (lo, hi int) {
	lo, hi = Unit(start)[a], Unit(end)[a]
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

// crossPlane locates the crossing of the segment with the plane between
// cell and cell+1 along a. The value of the returned border is unset.
func crossPlane[F any](start, end r3.Vec, a Axis, cell, dim int) TraceHit[F] {
	delta := r3.Sub(end, start)
	dist := (float64(cell) + 0.5 - component(start, a)) / component(delta, a)
	at := r3.Add(start, r3.Scale(dist, delta))

	h := TraceHit[F]{Distance: dist, At: at}
	h.Border.Axis = a
	h.Border.Position[a] = cell
	for k := 0; k < dim-1; k++ {
		b := Axis((int(a) + 1 + k) % dim)
		c := component(at, b)
		h.Border.Position[b] = int(math.Round(c))
		h.Offset[k] = c - float64(h.Border.Position[b])
	}
	return h
}

func sortHits[F any](hits []TraceHit[F]) {
	slices.SortStableFunc(hits, func(x, y TraceHit[F]) int {
		switch {
		case x.Distance < y.Distance:
			return -1
		case x.Distance > y.Distance:
			return 1
		default:
			return 0
		}
	})
}
