package voxtree

import (
	"iter"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

var materials = []string{"", "", "", "stone", "dirt", "glass"}

func newTestStore[V comparable](t testing.TB, dim int) *Store[V] {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Dimension = dim
	s, err := NewStore[V](cfg)
	require.NoError(t, err)
	return s
}

func newTestEngine[T, F comparable](t testing.TB, dim int) *Engine[T, F] {
	t.Helper()
	e, err := NewEngine[T, F](newTestStore[T](t, dim))
	require.NoError(t, err)
	return e
}

// randomGrid fills a dim-dimensional cube of side size with materials. Runs
// along the last axis repeat so that the resulting trees share structure.
func randomGrid(dim, size int, seed int64) *Grid[string] {
	rng := rand.New(rand.NewSource(seed))
	var bound Point
	for a := 0; a < dim; a++ {
		bound[a] = size
	}
	g := NewGrid[string](dim, bound)
	current := ""
	forEachCell(g.Bound(), dim, func(p Point) {
		if rng.Intn(3) == 0 {
			current = materials[rng.Intn(len(materials))]
		}
		g.Set(p, current)
	})
	return g
}

func buildGrid(t testing.TB, s *Store[string], g *Grid[string]) *Node[string] {
	t.Helper()
	n, err := s.BuildBounded(g, "")
	require.NoError(t, err)
	return n
}

// collectBorders gathers a border sequence into a map, failing on duplicates.
func collectBorders[F any](t testing.TB, seq iter.Seq[Border[F]]) map[borderKey]F {
	t.Helper()
	got := make(map[borderKey]F)
	for b := range seq {
		k := borderKey{b.Position, b.Axis}
		if _, dup := got[k]; dup {
			t.Fatalf("border %v yielded twice", b)
		}
		got[k] = b.Value
	}
	return got
}

func cube(size, dim int) Point {
	b := Point{1, 1, 1}
	for a := 0; a < dim; a++ {
		b[a] = size
	}
	return b
}

// bruteInteriorBorders lists the non-excluded borders between pairs of cells
// inside [0, size) of src.
func bruteInteriorBorders[T, F comparable](src InfiniteShape[T], size, dim int, s *Surfacer[T, F], excluded F) map[borderKey]F {
	want := make(map[borderKey]F)
	forEachCell(cube(size, dim), dim, func(p Point) {
		for _, a := range Axes(dim) {
			if p[a] == size-1 {
				continue
			}
			if v := s.Surfacize(src.Lookup(p), src.Lookup(p.Step(a, 1)), a); v != excluded {
				want[borderKey{p, a}] = v
			}
		}
	})
	return want
}

// bruteAllBorders lists the non-excluded borders touching [0, size) of src,
// with every cell outside it holding def.
func bruteAllBorders[T, F comparable](src InfiniteShape[T], size, dim int, s *Surfacer[T, F], def T, excluded F) map[borderKey]F {
	bound := cube(size, dim)
	at := func(p Point) T {
		if p.Within(bound, dim) {
			return src.Lookup(p)
		}
		return def
	}
	want := make(map[borderKey]F)
	forEachCell(bound, dim, func(p Point) {
		for _, a := range Axes(dim) {
			if v := s.Surfacize(at(p), at(p.Step(a, 1)), a); v != excluded {
				want[borderKey{p, a}] = v
			}
			if p[a] == 0 {
				low := p.Step(a, -1)
				if v := s.Surfacize(def, at(p), a); v != excluded {
					want[borderKey{low, a}] = v
				}
			}
		}
	})
	return want
}

// stoneAt builds a depth-1 volume of air with stone in the given child.
func stoneAt(t testing.TB, s *Store[string], child int) *Node[string] {
	t.Helper()
	children := make([]*Node[string], s.Arity())
	for i := range children {
		children[i] = s.Leaf("air")
	}
	children[child] = s.Leaf("stone")
	return s.Interior(1, children)
}
