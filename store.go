package voxtree

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"math/bits"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

// ChildHasher computes the structural hash of an interior node from the
// identities of its children, in child index order.
type ChildHasher func(ids []uint64) uint64

// FoldChildIDs folds child identities with rotation and XOR. Distinct child
// sequences may collide; stores resolve collisions by comparing children.
func FoldChildIDs(ids []uint64) uint64 {
	h := uint64(len(ids))
	for _, id := range ids {
		h = bits.RotateLeft64(h, 13) ^ id
		h *= 0x9e3779b97f4a7c15
	}
	return h
}

// XXHashChildIDs hashes the little-endian encoding of the child identities
// with xxHash64.
func XXHashChildIDs(ids []uint64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, id := range ids {
		binary.LittleEndian.PutUint64(buf[:], id)
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// Store interns nodes of a single value type and dimension so that two
// structurally equal subtrees are always the same *Node. Nodes are never
// evicted. A Store is safe for concurrent use.
type Store[V comparable] struct {
	dim     int
	arity   int
	workers int
	hasher  ChildHasher
	logger  *zap.Logger
	stats   *Stats
	seed    maphash.Seed

	mu       sync.RWMutex
	nextID   uint64
	leaves   map[V]*Node[V]
	interior map[int]map[uint64][]*Node[V] // depth -> hash -> bucket
	count    int
}

// NewStore creates an empty store for structures of cfg.Dimension axes.
func NewStore[V comparable](cfg Config) (*Store[V], error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	s := &Store[V]{
		dim:      cfg.Dimension,
		arity:    1 << cfg.Dimension,
		workers:  cfg.Workers,
		hasher:   cfg.ChildHasher,
		logger:   cfg.Logger,
		stats:    cfg.Stats,
		seed:     maphash.MakeSeed(),
		leaves:   make(map[V]*Node[V]),
		interior: make(map[int]map[uint64][]*Node[V]),
	}
	s.logger.Debug("store created",
		zap.Int("dimension", s.dim),
		zap.Int("workers", s.workers),
	)
	return s, nil
}

// config reconstructs the Config the store was created with.
func (s *Store[V]) config() Config {
	return Config{
		Dimension:   s.dim,
		Workers:     s.workers,
		ChildHasher: s.hasher,
		Logger:      s.logger,
		Stats:       s.stats,
	}
}

func (s *Store[V]) Dimension() int { return s.dim }

// Arity is the number of children of every interior node, 2^Dimension.
func (s *Store[V]) Arity() int { return s.arity }

func (s *Store[V]) Stats() *Stats { return s.stats }

// Len returns the number of distinct leaf and interior nodes interned so far.
func (s *Store[V]) Len() (leaves, interiors int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.leaves), s.count
}

// Leaf returns the canonical leaf holding v.
func (s *Store[V]) Leaf(v V) *Node[V] {
	s.mu.RLock()
	n, ok := s.leaves[v]
	s.mu.RUnlock()
	if ok {
		s.stats.InternHits.Inc()
		return n
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if n, ok := s.leaves[v]; ok {
		s.stats.InternHits.Inc()
		return n
	}
	n = &Node[V]{
		id:    s.nextID,
		hash:  maphash.Comparable(s.seed, v),
		dim:   s.dim,
		value: v,
	}
	s.nextID++
	s.leaves[v] = n
	s.stats.LeavesInterned.Inc()
	return n
}

// Interior returns the canonical node of the given depth with the given
// children. The children slice is copied when a new node is created, so the
// caller may reuse it.
//
// Interior panics if depth < 1, if len(children) != Arity(), or if any child
// is nil, belongs to another dimension, or does not have depth-1.
func (s *Store[V]) Interior(depth int, children []*Node[V]) *Node[V] {
	if depth < 1 {
		panic(fmt.Sprintf("voxtree: interior node depth must be >= 1, got %d", depth))
	}
	if len(children) != s.arity {
		panic(fmt.Sprintf("voxtree: interior node needs %d children, got %d", s.arity, len(children)))
	}
	ids := make([]uint64, len(children))
	for i, c := range children {
		if c == nil {
			panic(fmt.Sprintf("voxtree: child %d is nil", i))
		}
		if c.depth != depth-1 || c.dim != s.dim {
			panic(fmt.Sprintf("voxtree: child %d has depth %d dimension %d, want depth %d dimension %d",
				i, c.depth, c.dim, depth-1, s.dim))
		}
		ids[i] = c.id
	}
	hash := s.hasher(ids)

	s.mu.RLock()
	n := findChildren(s.interior[depth][hash], children)
	s.mu.RUnlock()
	if n != nil {
		s.stats.InternHits.Inc()
		return n
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	buckets := s.interior[depth]
	if buckets == nil {
		buckets = make(map[uint64][]*Node[V])
		s.interior[depth] = buckets
	}
	bucket := buckets[hash]
	if n := findChildren(bucket, children); n != nil {
		s.stats.InternHits.Inc()
		return n
	}
	if len(bucket) > 0 {
		s.stats.HashCollisions.Inc()
	}
	n = &Node[V]{
		id:       s.nextID,
		hash:     hash,
		depth:    depth,
		dim:      s.dim,
		children: append([]*Node[V](nil), children...),
	}
	s.nextID++
	buckets[hash] = append(bucket, n)
	s.count++
	s.stats.InteriorsInterned.Inc()
	return n
}

// findChildren returns the node in bucket whose children are identical to
// children, or nil.
func findChildren[V comparable](bucket []*Node[V], children []*Node[V]) *Node[V] {
next:
	for _, n := range bucket {
		for i, c := range n.children {
			if c != children[i] {
				continue next
			}
		}
		return n
	}
	return nil
}
