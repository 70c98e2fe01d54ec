package main

import (
	"bytes"
	"context"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/TrevorS/voxtree"
)

// maxSceneSize keeps scenes small enough to sample cell by cell.
const maxSceneSize = 1 << 12

// Scene is a cubic voxel world described as layered cuboids of material.
// Later blocks overwrite earlier ones.
type Scene struct {
	// Size is the side of the scene cube in cells.
	Size int `yaml:"size"`

	// Default fills every cell not covered by a block, inside and outside
	// the scene cube.
	Default string `yaml:"default"`

	// Empty is the material faces are never drawn for. Usually "" or "air".
	Empty string `yaml:"empty"`

	Engine EngineConfig `yaml:"engine"`
	Blocks []Block      `yaml:"blocks"`
}

// EngineConfig maps onto voxtree.Config.
type EngineConfig struct {
	Workers int    `yaml:"workers"`
	Hasher  string `yaml:"hasher"` // "fold" (default) or "xxhash"
}

// Block is the box [From, To) filled with Material.
type Block struct {
	Material string `yaml:"material"`
	From     [3]int `yaml:"from"`
	To       [3]int `yaml:"to"`
}

func (b Block) cuboid() voxtree.Cuboid[string] {
	start := voxtree.Point(b.From)
	return voxtree.Cuboid[string]{
		Start:    start,
		Size:     voxtree.Point(b.To).Sub(start),
		Interior: b.Material,
	}
}

// LoadScene reads and validates a YAML scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading scene")
	}
	sc, err := ParseScene(data)
	if err != nil {
		return nil, errors.Wrapf(err, "scene %s", path)
	}
	return sc, nil
}

// ParseScene decodes a YAML scene. Unknown fields are rejected.
func ParseScene(data []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var sc Scene
	if err := dec.Decode(&sc); err != nil {
		return nil, errors.Wrap(err, "decoding scene")
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scene) validate() error {
	if sc.Size < 1 || sc.Size > maxSceneSize {
		return errors.Errorf("size must be between 1 and %d, got %d", maxSceneSize, sc.Size)
	}
	switch sc.Engine.Hasher {
	case "", "fold", "xxhash":
	default:
		return errors.Errorf("unknown hasher %q (want fold or xxhash)", sc.Engine.Hasher)
	}
	if sc.Engine.Workers < 0 {
		return errors.Errorf("workers must be >= 0, got %d", sc.Engine.Workers)
	}
	for i, b := range sc.Blocks {
		for a := 0; a < voxtree.MaxDimension; a++ {
			if b.To[a] <= b.From[a] {
				return errors.Errorf("block %d (%s) is empty along %v: from %d to %d",
					i, b.Material, voxtree.Axis(a), b.From[a], b.To[a])
			}
		}
	}
	return nil
}

// Depth is the smallest octree depth whose cube covers the scene.
func (sc *Scene) Depth() int {
	d := 0
	for 1<<d < sc.Size {
		d++
	}
	return d
}

// Config returns the store configuration described by the engine block.
func (sc *Scene) Config(logger *zap.Logger, stats *voxtree.Stats) voxtree.Config {
	cfg := voxtree.DefaultConfig()
	cfg.Workers = sc.Engine.Workers
	cfg.Logger = logger
	cfg.Stats = stats
	if sc.Engine.Hasher == "xxhash" {
		cfg.ChildHasher = voxtree.XXHashChildIDs
	}
	return cfg
}

// Shape returns the scene as an infinite shape. It is safe for concurrent
// use.
func (sc *Scene) Shape() voxtree.InfiniteShape[string] {
	blocks := make([]voxtree.Cuboid[string], len(sc.Blocks))
	for i, b := range sc.Blocks {
		blocks[i] = b.cuboid()
	}
	def := sc.Default
	return voxtree.ShapeFunc[string](func(p voxtree.Point) string {
		for i := len(blocks) - 1; i >= 0; i-- {
			if b := blocks[i]; p.Sub(b.Start).Within(b.Size, voxtree.MaxDimension) {
				return b.Interior
			}
		}
		return def
	})
}

// Build samples the scene cube into store. Blocks reaching past the cube are
// cut off at its faces.
func (sc *Scene) Build(ctx context.Context, store *voxtree.Store[string]) (*voxtree.Node[string], error) {
	side := voxtree.Pt(sc.Size, sc.Size, sc.Size)
	src := voxtree.Fill[string](voxtree.Subsection[string](sc.Shape(), voxtree.Point{}, side), sc.Default)
	return store.BuildParallel(ctx, src, voxtree.Point{}, sc.Depth())
}
