package voxtree

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// FacePair names the two children of a volume node that meet across one face
// position of a plane. Lo is on the low side of the plane's axis and Hi is
// the child directly above it.
type FacePair struct {
	Lo, Hi int
}

// FacePairs returns, for each axis of a dim-dimensional structure, the child
// pairs indexed by the surface child index of the face position. Plane
// coordinates follow Point.AxisOrder: for axis a they are axes a+1, a+2, ...
// taken cyclically.
func FacePairs(dim int) [][]FacePair {
	pairs := make([][]FacePair, dim)
	for a := 0; a < dim; a++ {
		pairs[a] = make([]FacePair, 1<<(dim-1))
		for t := range pairs[a] {
			lo := 0
			for k := 0; k < dim-1; k++ {
				if t>>(dim-2-k)&1 == 1 {
					axis := (a + 1 + k) % dim
					lo |= 1 << (dim - 1 - axis)
				}
			}
			pairs[a][t] = FacePair{Lo: lo, Hi: lo | 1<<(dim-1-a)}
		}
	}
	return pairs
}

type mergeKey[T, F comparable] struct {
	s             *Surfacer[T, F]
	lower, higher *Node[T]
	axis          Axis
}

type sliceKey[T, F comparable] struct {
	s     *Surfacer[T, F]
	node  *Node[T]
	axis  Axis
	level int
}

type interiorKey[T, F comparable] struct {
	s    *Surfacer[T, F]
	node *Node[T]
}

// Engine extracts surfaces from the volumes of one Store. Surface trees are
// interned in a second store of one lower dimension, so a surface tree has
// the same depth as the volume it came from.
//
// Every result is memoized for the lifetime of the Engine. An Engine is safe
// for concurrent use.
type Engine[T, F comparable] struct {
	dim      int
	volumes  *Store[T]
	surfaces *Store[F]
	pairs    [][]FacePair
	logger   *zap.Logger
	stats    *Stats

	merges    *memo[mergeKey[T, F], *Node[F]]
	slices    *memo[sliceKey[T, F], *Node[F]]
	interiors *memo[interiorKey[T, F], [][]*Node[F]]
}

// NewEngine creates an engine for the volumes of the given store. The
// surface store shares the volume store's hasher, logger and stats.
func NewEngine[T, F comparable](volumes *Store[T]) (*Engine[T, F], error) {
	if volumes.dim < 2 {
		return nil, errors.Errorf("voxtree: surfaces need a volume dimension >= 2, got %d", volumes.dim)
	}
	cfg := volumes.config()
	cfg.Dimension = volumes.dim - 1
	surfaces, err := NewStore[F](cfg)
	if err != nil {
		return nil, errors.Wrap(err, "voxtree: creating surface store")
	}
	st := volumes.stats
	return &Engine[T, F]{
		dim:       volumes.dim,
		volumes:   volumes,
		surfaces:  surfaces,
		pairs:     FacePairs(volumes.dim),
		logger:    volumes.logger,
		stats:     st,
		merges:    newMemo[mergeKey[T, F], *Node[F]](&st.MergeHits, &st.MergeMisses),
		slices:    newMemo[sliceKey[T, F], *Node[F]](&st.SliceHits, &st.SliceMisses),
		interiors: newMemo[interiorKey[T, F], [][]*Node[F]](&st.InteriorHits, &st.InteriorMisses),
	}, nil
}

func (e *Engine[T, F]) Dimension() int      { return e.dim }
func (e *Engine[T, F]) Volumes() *Store[T]  { return e.volumes }
func (e *Engine[T, F]) Surfaces() *Store[F] { return e.surfaces }

// CacheSizes reports the number of memoized merge, slice and interior results.
func (e *Engine[T, F]) CacheSizes() (merges, slices, interiors int) {
	return e.merges.len(), e.slices.len(), e.interiors.len()
}

func (e *Engine[T, F]) checkNode(n *Node[T]) {
	if n == nil {
		panic("voxtree: nil node")
	}
	if n.dim != e.dim {
		panic(fmt.Sprintf("voxtree: node of dimension %d passed to engine of dimension %d", n.dim, e.dim))
	}
}

func checkSurfacer[T, F any](s *Surfacer[T, F]) {
	if s == nil {
		panic("voxtree: nil Surfacer")
	}
}
