package voxtree

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// MaxDepth is the deepest structure Build accepts. Sides of 2^30 cells
// already exceed any practical source.
const MaxDepth = 30

// Solid returns the canonical node of the given depth whose cells all hold v.
// It creates at most depth+1 nodes.
func (s *Store[V]) Solid(v V, depth int) *Node[V] {
	n := s.Leaf(v)
	children := make([]*Node[V], s.arity)
	for d := 1; d <= depth; d++ {
		for i := range children {
			children[i] = n
		}
		n = s.Interior(d, children)
	}
	return n
}

// Build samples src over the cube [start, start+2^depth) on each axis and
// returns the canonical node for it.
func (s *Store[V]) Build(src InfiniteShape[V], start Point, depth int) (*Node[V], error) {
	if err := checkDepth(depth); err != nil {
		return nil, err
	}
	began := time.Now()
	n := s.build(src, start, depth)
	s.logBuild("build", n, began)
	return n, nil
}

func (s *Store[V]) build(src InfiniteShape[V], origin Point, depth int) *Node[V] {
	if depth == 0 {
		return s.Leaf(src.Lookup(origin))
	}
	half := 1 << (depth - 1)
	children := make([]*Node[V], s.arity)
	for i := range children {
		children[i] = s.build(src, origin.Add(ChildOffset(i, s.dim).Scale(half)), depth-1)
	}
	return s.Interior(depth, children)
}

// BuildBounded builds the smallest structure whose cube covers src.Bound().
// Cells outside the bound hold def.
func (s *Store[V]) BuildBounded(src BoundedShape[V], def V) (*Node[V], error) {
	bound := src.Bound()
	depth, err := depthFor(bound, s.dim)
	if err != nil {
		return nil, err
	}
	return s.Build(&filledShape[V]{src: src, def: def, dim: s.dim}, Point{}, depth)
}

// depthFor returns the smallest depth whose side covers bound on the first
// dim axes.
func depthFor(bound Point, dim int) (int, error) {
	extent := 0
	for a := 0; a < dim; a++ {
		if bound[a] <= 0 {
			return 0, errors.Errorf("voxtree: bound %v is empty on axis %v", bound, Axis(a))
		}
		extent = max(extent, bound[a])
	}
	depth := 0
	for 1<<depth < extent {
		depth++
	}
	if err := checkDepth(depth); err != nil {
		return 0, errors.Wrapf(err, "bound %v", bound)
	}
	return depth, nil
}

func checkDepth(depth int) error {
	if depth < 0 || depth > MaxDepth {
		return errors.Errorf("voxtree: depth must be between 0 and %d, got %d", MaxDepth, depth)
	}
	return nil
}

func (s *Store[V]) logBuild(op string, n *Node[V], began time.Time) {
	if ce := s.logger.Check(zap.DebugLevel, op+" finished"); ce != nil {
		leaves, interiors := s.Len()
		ce.Write(
			zap.Int("depth", n.depth),
			zap.Duration("elapsed", time.Since(began)),
			zap.Int("store_leaves", leaves),
			zap.Int("store_interiors", interiors),
		)
	}
}
