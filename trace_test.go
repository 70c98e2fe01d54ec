package voxtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// opaque hides every optional method of a surface.
type opaque[F any] struct {
	Surface[F]
}

func TestUnit(t *testing.T) {
	assert.Equal(t, Pt(0, 1, -1), Unit(r3.Vec{X: 0.49, Y: 0.51, Z: -1.2}))
	assert.Equal(t, Pt(3, -3, 0), Unit(r3.Vec{X: 2.5, Y: -2.5, Z: 0.2}))
}

func singleStone(t *testing.T) EnumerableSurface[Face[string]] {
	t.Helper()
	e := newTestEngine[string, Face[string]](t, 3)
	n, err := e.Volumes().Build(Cuboid[string]{Start: Pt(2, 2, 2), Size: Pt(1, 1, 1), Interior: "stone"}, Point{}, 3)
	require.NoError(t, err)
	return e.Volume(n).EnumerateBorders(OpaqueSurfacer(""), "", Face[string]{})
}

func TestTraceRay_ThroughBlock(t *testing.T) {
	surf := singleStone(t)

	hits := TraceRay[Face[string]](surf, r3.Vec{X: 0, Y: 2, Z: 2}, r3.Vec{X: 5, Y: 2, Z: 2}, Face[string]{})
	require.Len(t, hits, 2)

	assert.Equal(t, Border[Face[string]]{Position: Pt(1, 2, 2), Axis: AxisX, Value: Face[string]{"stone", FacingNegative}}, hits[0].Border)
	assert.InDelta(t, 0.3, hits[0].Distance, 1e-9)
	assert.InDelta(t, 1.5, hits[0].At.X, 1e-9)
	assert.Equal(t, [2]float64{0, 0}, hits[0].Offset)

	assert.Equal(t, Border[Face[string]]{Position: Pt(2, 2, 2), Axis: AxisX, Value: Face[string]{"stone", FacingPositive}}, hits[1].Border)
	assert.InDelta(t, 0.5, hits[1].Distance, 1e-9)
}

func TestTraceRay_Reversed(t *testing.T) {
	surf := singleStone(t)

	hits := TraceRay[Face[string]](surf, r3.Vec{X: 2, Y: 2, Z: 5}, r3.Vec{X: 2, Y: 2, Z: 0}, Face[string]{})
	require.Len(t, hits, 2)
	assert.Equal(t, Pt(2, 2, 2), hits[0].Border.Position)
	assert.Equal(t, AxisZ, hits[0].Border.Axis)
	assert.InDelta(t, 0.5, hits[0].Distance, 1e-9)
	assert.Equal(t, Pt(2, 2, 1), hits[1].Border.Position)
	assert.InDelta(t, 0.7, hits[1].Distance, 1e-9)
}

func TestTraceRay_Offset(t *testing.T) {
	surf := singleStone(t)

	hits := TraceRay[Face[string]](surf, r3.Vec{X: 2.2, Y: 0, Z: 1.9}, r3.Vec{X: 2.2, Y: 4, Z: 1.9}, Face[string]{})
	require.Len(t, hits, 2)
	h := hits[0]
	assert.Equal(t, Pt(2, 1, 2), h.Border.Position)
	assert.Equal(t, AxisY, h.Border.Axis)
	// Plane coordinates of y are (z, x).
	assert.InDelta(t, -0.1, h.Offset[0], 1e-9)
	assert.InDelta(t, 0.2, h.Offset[1], 1e-9)
}

func TestTraceRay_Sorted(t *testing.T) {
	e := newTestEngine[string, Face[string]](t, 3)
	g := randomGrid(3, 8, 140)
	v := e.Volume(buildGrid(t, e.Volumes(), g))
	surf := v.EnumerateBorders(OpaqueSurfacer(""), "", Face[string]{})

	hits := TraceRay[Face[string]](surf, r3.Vec{X: -1.3, Y: 0.2, Z: -0.7}, r3.Vec{X: 8.6, Y: 7.1, Z: 8.4}, Face[string]{})
	require.NotEmpty(t, hits)
	for i, h := range hits {
		assert.NotEqual(t, Face[string]{}, h.Border.Value)
		assert.Equal(t, surf.BorderAt(h.Border.Position, h.Border.Axis), h.Border.Value)
		assert.GreaterOrEqual(t, h.Distance, 0.0)
		assert.LessOrEqual(t, h.Distance, 1.0)
		if i > 0 {
			assert.LessOrEqual(t, hits[i-1].Distance, h.Distance)
		}
	}
}

func TestTraceRay_PlaneTracer(t *testing.T) {
	e := newTestEngine[string, Face[string]](t, 3)
	v := e.Volume(buildGrid(t, e.Volumes(), randomGrid(3, 8, 150)))
	plane := v.Slice(OpaqueSurfacer(""), AxisX, 3, Face[string]{})
	_, ok := plane.(Tracer[Face[string]])
	require.True(t, ok)

	rays := [][2]r3.Vec{
		{{X: 0, Y: 0, Z: 0}, {X: 7, Y: 7, Z: 7}},
		{{X: 7, Y: 1.2, Z: 6.3}, {X: 0, Y: 5.9, Z: 0.4}},
		{{X: 3.6, Y: 0, Z: 0}, {X: 3.6, Y: 7, Z: 7}},
	}
	for _, r := range rays {
		native := TraceRay[Face[string]](plane, r[0], r[1], Face[string]{})
		probed := TraceRay[Face[string]](opaque[Face[string]]{plane}, r[0], r[1], Face[string]{})
		assert.Equal(t, probed, native, "ray %v", r)
	}
}

func TestTraceRay_TwoDimensions(t *testing.T) {
	g := NewGrid[int](2, Pt(4, 4, 0))
	g.Set(Pt(1, 2, 0), 1)
	surf := FormSurface[int, Transition[int]](Fill[int](g, 0), TransitionSurfacer[int]())

	hits := TraceRay[Transition[int]](surf, r3.Vec{X: 0, Y: 2}, r3.Vec{X: 3, Y: 2}, Transition[int]{})
	require.Len(t, hits, 2)
	assert.Equal(t, Border[Transition[int]]{Position: Pt(0, 2, 0), Axis: AxisX, Value: Transition[int]{0, 1}}, hits[0].Border)
	assert.Equal(t, Border[Transition[int]]{Position: Pt(1, 2, 0), Axis: AxisX, Value: Transition[int]{1, 0}}, hits[1].Border)
}
