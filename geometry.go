package voxtree

import "fmt"

// MaxDimension is the largest dimension a structure can have.
const MaxDimension = 3

// Axis names one of the coordinate axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Axes returns the axes of a dim-dimensional space in order.
func Axes(dim int) []Axis {
	axes := make([]Axis, dim)
	for i := range axes {
		axes[i] = Axis(i)
	}
	return axes
}

// Point is an integer cell position. Structures of lower dimension only read
// the leading components; the rest are carried along untouched.
type Point [MaxDimension]int

// Pt is shorthand for a Point literal.
func Pt(x, y, z int) Point { return Point{x, y, z} }

func (p Point) Add(q Point) Point {
	return Point{p[0] + q[0], p[1] + q[1], p[2] + q[2]}
}

func (p Point) Sub(q Point) Point {
	return Point{p[0] - q[0], p[1] - q[1], p[2] - q[2]}
}

func (p Point) Scale(k int) Point {
	return Point{p[0] * k, p[1] * k, p[2] * k}
}

// Step moves p by n cells along axis a.
func (p Point) Step(a Axis, n int) Point {
	p[a] += n
	return p
}

// Within reports whether 0 <= p[i] < bound[i] on the first dim axes.
func (p Point) Within(bound Point, dim int) bool {
	for i := 0; i < dim; i++ {
		if p[i] < 0 || p[i] >= bound[i] {
			return false
		}
	}
	return true
}

// AxisOrder rotates the first dim components so that axis a comes first,
// followed by the remaining axes in cyclic order. The trailing dim-1
// components are the coordinates within a plane perpendicular to a.
func (p Point) AxisOrder(a Axis, dim int) Point {
	r := p
	for i := 0; i < dim; i++ {
		r[i] = p[(int(a)+i)%dim]
	}
	return r
}

// AxisUnorder is the inverse of AxisOrder.
func (p Point) AxisUnorder(a Axis, dim int) Point {
	r := p
	for i := 0; i < dim; i++ {
		r[(int(a)+i)%dim] = p[i]
	}
	return r
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p[0], p[1], p[2])
}

// ChildOffset maps a child index to its orthant offset. Axis 0 owns the most
// significant bit of the index, so for dim 3 the index is x<<2 | y<<1 | z.
func ChildOffset(index, dim int) Point {
	var p Point
	for a := 0; a < dim; a++ {
		p[a] = (index >> (dim - 1 - a)) & 1
	}
	return p
}

// ChildIndex is the inverse of ChildOffset. Components other than 0 and 1
// are treated as 1.
func ChildIndex(offset Point, dim int) int {
	index := 0
	for a := 0; a < dim; a++ {
		if offset[a] != 0 {
			index |= 1 << (dim - 1 - a)
		}
	}
	return index
}

func checkAxis(a Axis, dim int) {
	if a < 0 || int(a) >= dim {
		panic(fmt.Sprintf("voxtree: axis %d out of range for dimension %d", int(a), dim))
	}
}
