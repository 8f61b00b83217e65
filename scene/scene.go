/*
Package scene is the hand-off point between the geometry core and renderers.

For every change of the control points, the core produces one immutable
Snapshot: the centerline, its samples, the critical points and everything
derived from them. Renderers consume snapshots and never call back into
the analysis; how and when they redraw is their own business.

	p := scene.NewProducer(scene.DefaultOptions())
	updates := p.Subscribe()
	p.Update(points)
	snap := <-updates

# BSD License

# Copyright (c) The tubelab authors

All rights reserved.

Please refer to the license file for more information.
*/
package scene

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/tubelab/geom/curvature"
	"github.com/tubelab/geom/layers"
	"github.com/tubelab/geom/markers"
	"github.com/tubelab/geom/polygon"
	"github.com/tubelab/geom/spline"
	"github.com/ungerik/go3d/float64/vec3"
)

// tracer writes to trace with key 'scene'
func tracer() tracing.Trace {
	return tracing.Select("scene")
}

// Snapshot is the analysed state of a centerline. Snapshots are not modified
// after Build returns and may be shared between goroutines.
type Snapshot struct {
	Curve          *spline.Curve               `json:"-"`
	Knots          []vec3.T                    `json:"knots"`
	Centerline     []vec3.T                    `json:"centerline"`
	Length         float64                     `json:"length"`
	CriticalPoints []curvature.CriticalPoint   `json:"criticalPoints"`
	Degree         float64                     `json:"degree"`
	Markers        []markers.Marker            `json:"markers"`
	Connectors     [2]markers.Connector        `json:"connectors"`
	Footprint      *polygon.Polygon            `json:"-"`
	FootprintArea  float64                     `json:"footprintArea"`
	Tubes          []layers.Tube               `json:"tubes"`
	Layers         []layers.MaterialProperties `json:"layers"`
	Options        Options                     `json:"-"`
}

// Build analyses the centerline through points. It never fails: unusable
// input results in the default centerline.
func Build(points []vec3.T, opts Options) *Snapshot {
	curve := spline.CenterlineOfKind(points, opts.Tension, opts.Kind)
	cps := curvature.FindCriticalPoints(curve, opts.Samples)
	ms := markers.ForCriticalPoints(cps)
	fp := markers.Footprint(ms, opts.FootprintEdges)
	snap := &Snapshot{
		Curve:          curve,
		Knots:          curve.Knots(),
		Centerline:     curve.Points(opts.Divisions),
		Length:         curve.Length(),
		CriticalPoints: cps,
		Degree:         curvature.Degree(curve, opts.DegreeSamples),
		Markers:        ms,
		Connectors:     markers.Connectors(curve, opts.Explode),
		Footprint:      fp,
		FootprintArea:  fp.Area(),
		Tubes:          make([]layers.Tube, len(layers.All)),
		Layers:         make([]layers.MaterialProperties, len(layers.All)),
		Options:        opts,
	}
	for i, l := range layers.All {
		snap.Tubes[i] = layers.TubeOf(l, opts.TubeWall)
		snap.Layers[i] = layers.Info(l, layers.DefaultRadius(l))
	}
	tracer().Infof("snapshot: %d knots, length %.2f, %d critical points, degree %.2f",
		len(snap.Knots), snap.Length, len(cps), snap.Degree)
	return snap
}

// Summary counts the critical points of a snapshot by severity.
func (s *Snapshot) Summary() map[curvature.Severity]int {
	m := make(map[curvature.Severity]int, 3)
	for _, cp := range s.CriticalPoints {
		m[cp.Severity]++
	}
	return m
}
