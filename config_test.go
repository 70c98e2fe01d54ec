package voxtree

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewStore_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		msg  string
	}{
		{"zero dimension", Config{Dimension: 0}, "Dimension must be between 1 and 3"},
		{"four dimensions", Config{Dimension: 4}, "Dimension must be between 1 and 3"},
		{"negative workers", Config{Dimension: 3, Workers: -1}, "Workers must be >= 0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewStore[int](tc.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestNewStore_Defaults(t *testing.T) {
	s, err := NewStore[int](DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 3, s.Dimension())
	assert.Equal(t, 8, s.Arity())
	assert.NotNil(t, s.Stats())

	cfg := s.config()
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.NotNil(t, cfg.ChildHasher)
	assert.NotNil(t, cfg.Logger)

	leaves, interiors := s.Len()
	assert.Zero(t, leaves)
	assert.Zero(t, interiors)
}

func TestNewEngine_SharesConfig(t *testing.T) {
	stats := NewStats()
	cfg := DefaultConfig()
	cfg.Stats = stats
	cfg.Workers = 2
	s, err := NewStore[string](cfg)
	require.NoError(t, err)

	e, err := NewEngine[string, Face[string]](s)
	require.NoError(t, err)
	assert.Equal(t, 2, e.Surfaces().Dimension())
	assert.Same(t, stats, e.Surfaces().Stats())
	assert.Equal(t, 2, e.Surfaces().config().Workers)

	e.Merge(OpaqueSurfacer(""), s.Solid("stone", 1), s.Solid("", 1), AxisX)
	assert.Equal(t, uint64(1), stats.MergeMisses.Load())
	assert.Equal(t, uint64(3), stats.LeavesInterned.Load(), "two volume leaves and one surface leaf")
}

func TestStore_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	cfg := DefaultConfig()
	cfg.Logger = zap.New(core)
	cfg.Workers = 4
	s, err := NewStore[string](cfg)
	require.NoError(t, err)

	created := logs.FilterMessage("store created").All()
	require.Len(t, created, 1)
	assert.Equal(t, int64(3), created[0].ContextMap()["dimension"])

	_, err = s.Build(Cuboid[string]{Size: Pt(2, 2, 2), Interior: "stone"}, Point{}, 2)
	require.NoError(t, err)
	built := logs.FilterMessage("build finished").All()
	require.Len(t, built, 1)
	assert.Equal(t, int64(2), built[0].ContextMap()["depth"])
	assert.Equal(t, int64(2), built[0].ContextMap()["store_leaves"])

	_, err = s.BuildParallel(context.Background(), Cuboid[string]{Size: Pt(2, 2, 2), Interior: "stone"}, Point{}, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("parallel build finished").Len())

	e, err := NewEngine[string, Face[string]](s)
	require.NoError(t, err)
	e.InteriorSlices(OpaqueSurfacer(""), s.Solid("stone", 2))
	assert.Equal(t, 1, logs.FilterMessage("interior slices").Len())
}

func TestStore_QuietAboveDebug(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	cfg := DefaultConfig()
	cfg.Logger = zap.New(core)
	s, err := NewStore[string](cfg)
	require.NoError(t, err)

	_, err = s.Build(ShapeFunc[string](func(Point) string { return "x" }), Point{}, 3)
	require.NoError(t, err)
	assert.Zero(t, logs.Len())
}
