package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/TrevorS/voxtree"
)

// String prints the summary as two tables: totals, then faces per material.
func (s summary) String() string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"Octree depth", s.Depth},
		{"Side", s.Size},
		{"Volume nodes", fmt.Sprintf("%d leaves, %d interior", s.VolumeLeaves, s.VolumeInteriors)},
		{"Surface nodes", fmt.Sprintf("%d leaves, %d interior", s.SurfaceLeaves, s.SurfaceInteriors)},
		{"Build time", s.Build.Round(time.Microsecond)},
		{"Extraction time", s.Extract.Round(time.Microsecond)},
	})
	for a, n := range s.Faces {
		t.AppendRow(table.Row{fmt.Sprintf("Faces along %v", voxtree.Axis(a)), n})
	}

	m := table.NewWriter()
	m.AppendHeader(table.Row{"Material", "Faces"})
	for _, name := range slices.Sorted(maps.Keys(s.Materials)) {
		m.AppendRow(table.Row{name, s.Materials[name]})
	}
	return t.Render() + "\n" + m.Render()
}

// faceRune draws a face as the first letter of its material, upper case when
// the face points up its axis and lower case when it points down.
func faceRune(f face) rune {
	if f.Facing == voxtree.FacingNone {
		return '.'
	}
	r, _ := utf8.DecodeRuneInString(f.Material)
	if r == utf8.RuneError {
		r = '#'
	}
	if f.Facing == voxtree.FacingPositive {
		return unicode.ToUpper(r)
	}
	return unicode.ToLower(r)
}

// renderPlane draws a plane surface with its first plane axis running right
// and its second running down.
func renderPlane(plane voxtree.BoundedPlaneSurface[face]) string {
	bound := plane.PlaneBound()
	var sb strings.Builder
	fmt.Fprintf(&sb, "plane %v=%d (%dx%d)\n", plane.PlaneAxis(), plane.PlaneLevel(), bound[0], bound[1])
	for v := 0; v < bound[1]; v++ {
		for u := 0; u < bound[0]; u++ {
			sb.WriteRune(faceRune(plane.PlaneLookup(voxtree.Pt(u, v, 0))))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func renderTrace(hits []voxtree.TraceHit[face]) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Cell", "Axis", "Face", "Distance", "Offset"})
	for i, h := range hits {
		t.AppendRow(table.Row{
			i + 1,
			h.Border.Position,
			h.Border.Axis,
			h.Border.Value,
			fmt.Sprintf("%.3f", h.Distance),
			fmt.Sprintf("%+.2f, %+.2f", h.Offset[0], h.Offset[1]),
		})
	}
	t.AppendFooter(table.Row{"", "", "", "Hits", len(hits)})
	return t.Render()
}

// renderMetrics gathers reg and prints one row per series.
func renderMetrics(reg prometheus.Gatherer) (string, error) {
	families, err := reg.Gather()
	if err != nil {
		return "", err
	}
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Metric", "Labels", "Value"})
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			t.AppendRow(table.Row{mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue()})
		}
	}
	return t.Render(), nil
}
