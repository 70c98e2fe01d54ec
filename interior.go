package voxtree

import (
	"time"

	"go.uber.org/zap"
)

// InteriorSlices returns, for each axis a, the size-1 surface trees of the
// planes strictly inside node, ordered by level: slices[a][l] holds the
// borders between cells at level l and l+1 along a. A leaf has no interior
// planes, so every list is empty.
//
// The returned slices are shared with the engine's cache and must not be
// modified.
func (e *Engine[T, F]) InteriorSlices(s *Surfacer[T, F], node *Node[T]) [][]*Node[F] {
	checkSurfacer(s)
	e.checkNode(node)
	if ce := e.logger.Check(zap.DebugLevel, "interior slices"); ce != nil {
		began := time.Now()
		result := e.interior(s, node)
		merges, slices, interiors := e.CacheSizes()
		ce.Write(
			zap.Int("depth", node.depth),
			zap.Duration("elapsed", time.Since(began)),
			zap.Int("cached_merges", merges),
			zap.Int("cached_slices", slices),
			zap.Int("cached_interiors", interiors),
		)
		return result
	}
	return e.interior(s, node)
}

func (e *Engine[T, F]) interior(s *Surfacer[T, F], node *Node[T]) [][]*Node[F] {
	if node.depth == 0 {
		return make([][]*Node[F], e.dim)
	}
	key := interiorKey[T, F]{s: s, node: node}
	if r, ok := e.interiors.get(key); ok {
		return r
	}

	childInteriors := make([][][]*Node[F], len(node.children))
	for i, c := range node.children {
		childInteriors[i] = e.interior(s, c)
	}

	half := 1 << (node.depth - 1)
	result := make([][]*Node[F], e.dim)
	for a := range result {
		pairs := e.pairs[a]
		levels := make([]*Node[F], 2*half-1)
		low := make([]*Node[F], len(pairs))
		high := make([]*Node[F], len(pairs))
		for l := 0; l < half-1; l++ {
			for t, p := range pairs {
				low[t] = childInteriors[p.Lo][a][l]
				high[t] = childInteriors[p.Hi][a][l]
			}
			levels[l] = e.surfaces.Interior(node.depth, low)
			levels[half+l] = e.surfaces.Interior(node.depth, high)
		}
		levels[half-1] = e.middle(s, node, Axis(a))
		result[a] = levels
	}
	return e.interiors.put(key, result)
}
