package voxtree

import (
	"fmt"
	"iter"
)

// Node is an immutable, canonical node of a recursive spatial structure.
// A node of depth 0 is a leaf holding one value; a node of depth d > 0 has
// 2^dim children of depth d-1 and covers a cube of side 2^d.
//
// Nodes are only created by a Store. Two nodes from the same store are
// structurally equal if and only if they are the same pointer.
type Node[V comparable] struct {
	id       uint64
	hash     uint64
	depth    int
	dim      int
	value    V
	children []*Node[V]
}

// ID is the identity assigned by the owning store, unique within it.
func (n *Node[V]) ID() uint64 { return n.id }

// Hash is the structural hash used for canonicalization.
func (n *Node[V]) Hash() uint64 { return n.hash }

func (n *Node[V]) Depth() int     { return n.depth }
func (n *Node[V]) Dimension() int { return n.dim }
func (n *Node[V]) IsLeaf() bool   { return n.depth == 0 }

// Size is the side length of the covered cube, 2^Depth.
func (n *Node[V]) Size() int { return 1 << n.depth }

// Value returns the value of a leaf. It panics on interior nodes.
func (n *Node[V]) Value() V {
	if n.depth != 0 {
		panic(fmt.Sprintf("voxtree: Value called on interior node of depth %d", n.depth))
	}
	return n.value
}

// Child returns the child at index i (see ChildOffset). It panics on leaves.
func (n *Node[V]) Child(i int) *Node[V] {
	if n.depth == 0 {
		panic("voxtree: Child called on leaf node")
	}
	return n.children[i]
}

// Children returns a copy of the children of an interior node. It panics on
// leaves.
func (n *Node[V]) Children() []*Node[V] {
	if n.depth == 0 {
		panic("voxtree: Children called on leaf node")
	}
	return append([]*Node[V](nil), n.children...)
}

// Homogeneous reports whether every cell under n holds the same value, and
// returns that value if so.
func (n *Node[V]) Homogeneous() (V, bool) {
	for n.depth > 0 {
		first := n.children[0]
		for _, c := range n.children[1:] {
			if c != first {
				var zero V
				return zero, false
			}
		}
		n = first
	}
	return n.value, true
}

// Lookup returns the value of the cell at p, relative to the node's origin.
// It panics if p lies outside [0, Size()) on any axis.
func (n *Node[V]) Lookup(p Point) V {
	size := n.Size()
	for a := 0; a < n.dim; a++ {
		if p[a] < 0 || p[a] >= size {
			panic(fmt.Sprintf("voxtree: lookup %v outside node of size %d", p, size))
		}
	}
	for n.depth > 0 {
		half := 1 << (n.depth - 1)
		index := 0
		for a := 0; a < n.dim; a++ {
			if p[a] >= half {
				index |= 1 << (n.dim - 1 - a)
				p[a] -= half
			}
		}
		n = n.children[index]
	}
	return n.value
}

// Cells yields the position and value of every cell whose value is not
// excluded. Subtrees made entirely of excluded cells are skipped without
// being visited, so the cost is proportional to the non-excluded part.
func (n *Node[V]) Cells(excluded V) iter.Seq2[Point, V] {
	return func(yield func(Point, V) bool) {
		n.cells(Point{}, excluded, yield)
	}
}

func (n *Node[V]) cells(origin Point, excluded V, yield func(Point, V) bool) bool {
	if n.depth == 0 {
		if n.value == excluded {
			return true
		}
		return yield(origin, n.value)
	}
	if v, ok := n.Homogeneous(); ok && v == excluded {
		return true
	}
	half := 1 << (n.depth - 1)
	for i, c := range n.children {
		if !c.cells(origin.Add(ChildOffset(i, n.dim).Scale(half)), excluded, yield) {
			return false
		}
	}
	return true
}

func (n *Node[V]) String() string {
	if n.depth == 0 {
		return fmt.Sprintf("leaf#%d(%v)", n.id, n.value)
	}
	return fmt.Sprintf("node#%d(depth %d)", n.id, n.depth)
}
