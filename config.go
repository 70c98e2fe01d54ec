package voxtree

import (
	"runtime"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Config controls how a Store canonicalizes nodes and how much parallelism
// builds may use. Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Dimension is the number of axes of the structures held by the store.
	// 3 gives octrees, 2 quadtrees and 1 binary interval trees.
	// Must be between 1 and 3. Default: 3.
	Dimension int

	// Workers bounds the number of goroutines used by BuildParallel.
	// 0 means use runtime.NumCPU(). Must be >= 0. Default: 0 (auto).
	Workers int

	// ChildHasher computes the structural hash of an interior node from the
	// identities of its children. Hash matches are always confirmed by
	// comparing children, so a weak hasher only costs speed.
	// Default: FoldChildIDs.
	ChildHasher ChildHasher

	// Logger receives debug events at API boundaries (store creation, builds,
	// interior enumeration). Default: a no-op logger.
	Logger *zap.Logger

	// Stats collects intern and cache counters. Stores and engines created
	// from the same Config share it. Default: a fresh Stats.
	Stats *Stats
}

// DefaultConfig returns a Config for octrees with automatic parallelism.
func DefaultConfig() Config {
	return Config{
		Dimension: 3,
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.Dimension < 1 || cfg.Dimension > MaxDimension {
		return errors.Errorf("voxtree: Dimension must be between 1 and %d, got %d", MaxDimension, cfg.Dimension)
	}
	if cfg.Workers < 0 {
		return errors.Errorf("voxtree: Workers must be >= 0 (0 means runtime.NumCPU()), got %d", cfg.Workers)
	}
	return nil
}

// applyDefaults fills in zero-valued optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.ChildHasher == nil {
		cfg.ChildHasher = FoldChildIDs
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Stats == nil {
		cfg.Stats = NewStats()
	}
}
