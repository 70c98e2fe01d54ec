package main

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/TrevorS/voxtree"
)

type face = voxtree.Face[string]

// world is a scene built into an octree together with the engine that
// extracts its faces.
type world struct {
	scene    *Scene
	stats    *voxtree.Stats
	engine   *voxtree.Engine[string, face]
	volume   *voxtree.Volume[string, face]
	surfacer *voxtree.Surfacer[string, face]
	logger   *zap.Logger
	built    time.Duration
}

func newWorld(ctx context.Context, sc *Scene, logger *zap.Logger) (*world, error) {
	stats := voxtree.NewStats()
	store, err := voxtree.NewStore[string](sc.Config(logger, stats))
	if err != nil {
		return nil, err
	}
	engine, err := voxtree.NewEngine[string, face](store)
	if err != nil {
		return nil, err
	}

	began := time.Now()
	node, err := sc.Build(ctx, store)
	if err != nil {
		return nil, errors.Wrap(err, "building scene")
	}
	w := &world{
		scene:    sc,
		stats:    stats,
		engine:   engine,
		volume:   engine.Volume(node),
		surfacer: voxtree.OpaqueSurfacer(sc.Empty),
		logger:   logger,
		built:    time.Since(began),
	}
	logger.Info("scene built",
		zap.Int("size", sc.Size),
		zap.Int("depth", node.Depth()),
		zap.Int("blocks", len(sc.Blocks)),
		zap.Duration("elapsed", w.built),
	)
	return w, nil
}

// surface is every face of the scene, including those on the faces of the
// scene cube where it meets the default material.
func (w *world) surface() voxtree.EnumerableSurface[face] {
	return w.volume.EnumerateBorders(w.surfacer, w.scene.Default, face{})
}

// summary describes the faces of a world.
type summary struct {
	Depth            int
	Size             int
	VolumeLeaves     int
	VolumeInteriors  int
	SurfaceLeaves    int
	SurfaceInteriors int
	Faces            [voxtree.MaxDimension]int
	Materials        map[string]int
	Build            time.Duration
	Extract          time.Duration
}

func (w *world) summarize() summary {
	began := time.Now()
	s := summary{
		Depth:     w.volume.Node().Depth(),
		Size:      w.volume.Node().Size(),
		Materials: make(map[string]int),
		Build:     w.built,
	}
	for b := range w.surface().Borders() {
		s.Faces[b.Axis]++
		s.Materials[b.Value.Material]++
	}
	s.Extract = time.Since(began)
	s.VolumeLeaves, s.VolumeInteriors = w.engine.Volumes().Len()
	s.SurfaceLeaves, s.SurfaceInteriors = w.engine.Surfaces().Len()
	return s
}
