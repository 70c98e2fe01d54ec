package voxtree

import "fmt"

// SurfacizeFunc computes the value of the border between two adjacent cells.
// lower is the cell with the smaller coordinate on axis. It must be pure.
type SurfacizeFunc[T, F any] func(lower, higher T, axis Axis) F

// Surfacer wraps a SurfacizeFunc with an identity. Engine caches are keyed by
// the *Surfacer, so create one per function and reuse it: two Surfacers
// wrapping the same function do not share cached results.
type Surfacer[T, F any] struct {
	fn SurfacizeFunc[T, F]
}

// NewSurfacer wraps fn. It panics if fn is nil.
func NewSurfacer[T, F any](fn SurfacizeFunc[T, F]) *Surfacer[T, F] {
	if fn == nil {
		panic("voxtree: nil SurfacizeFunc")
	}
	return &Surfacer[T, F]{fn: fn}
}

func (s *Surfacer[T, F]) Surfacize(lower, higher T, axis Axis) F {
	return s.fn(lower, higher, axis)
}

// Transition records the values on either side of a border. The zero
// Transition marks a border between equal cells.
type Transition[T comparable] struct {
	Lower, Higher T
}

// TransitionSurfacer yields a Transition for every border between unequal
// cells and the zero Transition otherwise.
func TransitionSurfacer[T comparable]() *Surfacer[T, Transition[T]] {
	return NewSurfacer[T, Transition[T]](func(lower, higher T, _ Axis) Transition[T] {
		if lower == higher {
			return Transition[T]{}
		}
		return Transition[T]{Lower: lower, Higher: higher}
	})
}

// Facing says which way a visible face points along its axis.
type Facing int8

const (
	FacingNone     Facing = 0
	FacingPositive Facing = 1
	FacingNegative Facing = -1
)

// Face is the visible side of a solid cell next to an empty one. The zero
// Face means no face is visible.
type Face[T comparable] struct {
	Material T
	Facing   Facing
}

func (f Face[T]) String() string {
	switch f.Facing {
	case FacingPositive:
		return fmt.Sprintf("%v+", f.Material)
	case FacingNegative:
		return fmt.Sprintf("%v-", f.Material)
	default:
		return "none"
	}
}

// OpaqueSurfacer treats every value other than empty as an opaque solid and
// yields the face of the solid side wherever a solid cell meets an empty one.
// A solid below an empty cell shows a positive face; an empty cell below a
// solid shows the solid's negative face.
func OpaqueSurfacer[T comparable](empty T) *Surfacer[T, Face[T]] {
	return NewSurfacer[T, Face[T]](func(lower, higher T, _ Axis) Face[T] {
		switch {
		case lower != empty && higher == empty:
			return Face[T]{Material: lower, Facing: FacingPositive}
		case lower == empty && higher != empty:
			return Face[T]{Material: higher, Facing: FacingNegative}
		default:
			return Face[T]{}
		}
	})
}
