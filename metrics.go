package voxtree

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

// Stats counts interning and memoization activity. All counters are safe for
// concurrent use. A nil *Stats is never handed to stores; see Config.Stats.
type Stats struct {
	LeavesInterned    atomic.Uint64
	InteriorsInterned atomic.Uint64
	InternHits        atomic.Uint64
	HashCollisions    atomic.Uint64

	MergeHits      atomic.Uint64
	MergeMisses    atomic.Uint64
	SliceHits      atomic.Uint64
	SliceMisses    atomic.Uint64
	InteriorHits   atomic.Uint64
	InteriorMisses atomic.Uint64
}

func NewStats() *Stats { return &Stats{} }

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	LeavesInterned    uint64
	InteriorsInterned uint64
	InternHits        uint64
	HashCollisions    uint64
	MergeHits         uint64
	MergeMisses       uint64
	SliceHits         uint64
	SliceMisses       uint64
	InteriorHits      uint64
	InteriorMisses    uint64
}

func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		LeavesInterned:    s.LeavesInterned.Load(),
		InteriorsInterned: s.InteriorsInterned.Load(),
		InternHits:        s.InternHits.Load(),
		HashCollisions:    s.HashCollisions.Load(),
		MergeHits:         s.MergeHits.Load(),
		MergeMisses:       s.MergeMisses.Load(),
		SliceHits:         s.SliceHits.Load(),
		SliceMisses:       s.SliceMisses.Load(),
		InteriorHits:      s.InteriorHits.Load(),
		InteriorMisses:    s.InteriorMisses.Load(),
	}
}

// Collector exports a Stats as Prometheus counters.
type Collector struct {
	stats *Stats

	nodes      *prometheus.Desc
	internHits *prometheus.Desc
	collisions *prometheus.Desc
	cache      *prometheus.Desc
}

// NewCollector returns a prometheus.Collector reading from stats. Register it
// with a prometheus.Registry to expose the counters.
func NewCollector(namespace string, stats *Stats) *Collector {
	return &Collector{
		stats: stats,
		nodes: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "store", "nodes_interned_total"),
			"Number of distinct nodes created by the canonical store.",
			[]string{"kind"}, nil,
		),
		internHits: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "store", "intern_hits_total"),
			"Number of intern requests answered with an existing node.",
			nil, nil,
		),
		collisions: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "store", "hash_collisions_total"),
			"Number of distinct interior nodes that shared a structural hash with an existing node.",
			nil, nil,
		),
		cache: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "engine", "cache_lookups_total"),
			"Number of memo cache lookups by operation and result.",
			[]string{"op", "result"}, nil,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.nodes
	ch <- c.internHits
	ch <- c.collisions
	ch <- c.cache
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.stats.Snapshot()
	counter := func(desc *prometheus.Desc, v uint64, labels ...string) {
		ch <- prometheus.MustNewConstMetric(desc, prometheus.CounterValue, float64(v), labels...)
	}
	counter(c.nodes, s.LeavesInterned, "leaf")
	counter(c.nodes, s.InteriorsInterned, "interior")
	counter(c.internHits, s.InternHits)
	counter(c.collisions, s.HashCollisions)
	counter(c.cache, s.MergeHits, "merge", "hit")
	counter(c.cache, s.MergeMisses, "merge", "miss")
	counter(c.cache, s.SliceHits, "slice", "hit")
	counter(c.cache, s.SliceMisses, "slice", "miss")
	counter(c.cache, s.InteriorHits, "interior", "hit")
	counter(c.cache, s.InteriorMisses, "interior", "miss")
}
