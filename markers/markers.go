/*
Package markers prepares the analysis results of a centerline for rendering:
markers for critical points, placements of the end connectors, and the
plan-view footprint of the stress risk zones.

Markers carry no geometry of their own beyond position and size. Renderers
draw them as spheres; connectors as cylinders along the local +Y axis of
their placement transform.

# BSD License

# Copyright (c) The tubelab authors

All rights reserved.

Please refer to the license file for more information.
*/
package markers

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/tubelab/geom"
	"github.com/tubelab/geom/curvature"
	"github.com/tubelab/geom/polygon"
	"github.com/ungerik/go3d/float64/vec3"
)

// tracer writes to trace with key 'markers'
func tracer() tracing.Trace {
	return tracing.Select("markers")
}

// Marker is the visual representation of a critical point.
type Marker struct {
	T        float64            `json:"t"`
	Position vec3.T             `json:"position"`
	Size     float64            `json:"size"`
	Color    string             `json:"color"`
	Type     curvature.Type     `json:"type"`
	Severity curvature.Severity `json:"severity"`
}

func (m Marker) String() string {
	return fmt.Sprintf("marker[%s %s at %s, size %g]", m.Severity, m.Type, geom.VString(m.Position), m.Size)
}

// SizeOf returns the marker radius for a severity.
func SizeOf(sv curvature.Severity) float64 {
	switch sv {
	case curvature.High:
		return 4
	case curvature.Medium:
		return 3
	}
	return 2
}

// ColorOf returns the marker color for a critical point type.
func ColorOf(tp curvature.Type) string {
	switch tp {
	case curvature.Maximum:
		return "#ff3333"
	case curvature.Minimum:
		return "#33ff33"
	}
	return "#3333ff"
}

// ForCriticalPoints creates one marker per critical point, in the same order.
func ForCriticalPoints(cps []curvature.CriticalPoint) []Marker {
	ms := make([]Marker, len(cps))
	for i, cp := range cps {
		ms[i] = Marker{
			T:        cp.T,
			Position: cp.Position,
			Size:     SizeOf(cp.Severity),
			Color:    ColorOf(cp.Type),
			Type:     cp.Type,
			Severity: cp.Severity,
		}
	}
	return ms
}

// Filter returns the markers of at least the given severity.
func Filter(ms []Marker, min curvature.Severity) []Marker {
	var out []Marker
	for _, m := range ms {
		if m.Severity >= min {
			out = append(out, m)
		}
	}
	return out
}

// Footprint projects the marker spheres onto the ground plane and merges
// them into a single plan-view region. Each sphere becomes a disc with
// the given number of edges.
func Footprint(ms []Marker, edges int) *polygon.Polygon {
	discs := make([]*polygon.Polygon, len(ms))
	for i, m := range ms {
		discs[i] = polygon.Circle(geom.PlanView(m.Position), m.Size, edges)
	}
	fp := polygon.UnionAll(discs...)
	tracer().Debugf("footprint of %d markers: %s, area %.2f", len(ms), fp, fp.Area())
	return fp
}
