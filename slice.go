package voxtree

import "fmt"

// Slice returns the surface tree of the single interior plane of node at
// level along axis, without computing the other planes. The result is the
// same node as InteriorSlices(s, node)[axis][level].
//
// Slice panics on leaves and for levels outside [0, node.Size()-2].
func (e *Engine[T, F]) Slice(s *Surfacer[T, F], node *Node[T], axis Axis, level int) *Node[F] {
	checkSurfacer(s)
	e.checkNode(node)
	checkAxis(axis, e.dim)
	if node.depth == 0 {
		panic("voxtree: slice of a leaf node")
	}
	if level < 0 || level > node.Size()-2 {
		panic(fmt.Sprintf("voxtree: slice level %d outside [0, %d]", level, node.Size()-2))
	}
	return e.slice(s, node, axis, level)
}

func (e *Engine[T, F]) slice(s *Surfacer[T, F], node *Node[T], axis Axis, level int) *Node[F] {
	half := 1 << (node.depth - 1)
	if level == half-1 {
		return e.middle(s, node, axis)
	}
	key := sliceKey[T, F]{s: s, node: node, axis: axis, level: level}
	if n, ok := e.slices.get(key); ok {
		return n
	}

	upper, sub := false, level
	if level >= half {
		upper, sub = true, level-half
	}
	pairs := e.pairs[axis]
	children := make([]*Node[F], len(pairs))
	for t, p := range pairs {
		c := p.Lo
		if upper {
			c = p.Hi
		}
		children[t] = e.slice(s, node.children[c], axis, sub)
	}
	return e.slices.put(key, e.surfaces.Interior(node.depth, children))
}
