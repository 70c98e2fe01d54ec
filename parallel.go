package voxtree

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// BuildParallel is Build with the top-level children sampled concurrently by
// at most Config.Workers goroutines. src must be safe for concurrent Lookup.
// If workers <= 1 or depth == 0, it falls back to single-threaded Build.
//
// The result is the same canonical node Build returns for the same input.
// Cancellation is checked before each child is sampled.
func (s *Store[V]) BuildParallel(ctx context.Context, src InfiniteShape[V], start Point, depth int) (*Node[V], error) {
	if s.workers <= 1 || depth == 0 {
		return s.Build(src, start, depth)
	}
	if err := checkDepth(depth); err != nil {
		return nil, err
	}

	began := time.Now()
	half := 1 << (depth - 1)
	children := make([]*Node[V], s.arity)

	// Each goroutine writes only its own slot of children; the store
	// serializes interning.
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := range children {
		origin := start.Add(ChildOffset(i, s.dim).Scale(half))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			children[i] = s.build(src, origin, depth-1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "voxtree: parallel build")
	}

	n := s.Interior(depth, children)
	s.logBuild("parallel build", n, began)
	return n, nil
}
