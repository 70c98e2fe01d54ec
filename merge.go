package voxtree

import "fmt"

// Merge returns the surface tree of the borders where lower meets higher,
// with higher placed one volume size further along axis. Both volumes must
// have the same depth; the result has that depth too.
//
// Merge panics on a depth mismatch or an axis outside the engine's dimension.
func (e *Engine[T, F]) Merge(s *Surfacer[T, F], lower, higher *Node[T], axis Axis) *Node[F] {
	checkSurfacer(s)
	e.checkNode(lower)
	e.checkNode(higher)
	checkAxis(axis, e.dim)
	if lower.depth != higher.depth {
		panic(fmt.Sprintf("voxtree: merge of nodes with depths %d and %d", lower.depth, higher.depth))
	}
	return e.merge(s, lower, higher, axis)
}

func (e *Engine[T, F]) merge(s *Surfacer[T, F], lower, higher *Node[T], axis Axis) *Node[F] {
	if lower.depth == 0 {
		return e.surfaces.Leaf(s.Surfacize(lower.value, higher.value, axis))
	}
	key := mergeKey[T, F]{s: s, lower: lower, higher: higher, axis: axis}
	if n, ok := e.merges.get(key); ok {
		return n
	}
	pairs := e.pairs[axis]
	children := make([]*Node[F], len(pairs))
	for t, p := range pairs {
		children[t] = e.merge(s, lower.children[p.Hi], higher.children[p.Lo], axis)
	}
	return e.merges.put(key, e.surfaces.Interior(lower.depth, children))
}

// middle is the plane between the two halves of node along axis.
func (e *Engine[T, F]) middle(s *Surfacer[T, F], node *Node[T], axis Axis) *Node[F] {
	pairs := e.pairs[axis]
	children := make([]*Node[F], len(pairs))
	for t, p := range pairs {
		children[t] = e.merge(s, node.children[p.Lo], node.children[p.Hi], axis)
	}
	return e.surfaces.Interior(node.depth, children)
}

// Exterior returns, for each axis, the surface trees between node and a solid
// volume of def on its low side (index 0) and its high side (index 1).
func (e *Engine[T, F]) Exterior(s *Surfacer[T, F], node *Node[T], def T) [][2]*Node[F] {
	checkSurfacer(s)
	e.checkNode(node)
	solid := e.volumes.Solid(def, node.depth)
	ext := make([][2]*Node[F], e.dim)
	for a := range ext {
		ext[a][0] = e.merge(s, solid, node, Axis(a))
		ext[a][1] = e.merge(s, node, solid, Axis(a))
	}
	return ext
}
