package spline

import (
	"github.com/tubelab/geom"
	"github.com/ungerik/go3d/float64/vec3"
)

// An S-shaped pipe run spanning 300 units along x.
var defaultPoints = [...]vec3.T{
	{0, 0, 0},
	{60, 0, 0},
	{120, 40, 0},
	{180, 40, 60},
	{240, 0, 90},
	{300, -20, 120},
}

// DefaultPoints returns a copy of the built-in control points, used whenever
// a centerline is requested without usable points.
func DefaultPoints() []vec3.T {
	pts := make([]vec3.T, len(defaultPoints))
	copy(pts, defaultPoints[:])
	return pts
}

// Centerline creates an open centripetal Catmull-Rom curve through points.
//
// Centerline never fails: non-finite points and points repeating their
// predecessor are dropped, and if fewer than 2 points remain, DefaultPoints()
// are used instead. A single distinct point, given once or repeated, thus
// counts as unusable input. A non-finite tension is replaced by DefaultTension.
func Centerline(points []vec3.T, tension float64) *Curve {
	return CenterlineOfKind(points, tension, Centripetal)
}

// CenterlineOfKind is like Centerline, with a selectable knot parametrization.
func CenterlineOfKind(points []vec3.T, tension float64, kind Kind) *Curve {
	usable := sanitize(points)
	if len(usable) < 2 {
		if len(points) > 0 {
			tracer().Infof("%d of %d control points usable, substituting default centerline",
				len(usable), len(points))
		}
		usable = DefaultPoints()
	}
	if !geom.IsFinite(tension) {
		tension = DefaultTension
	}
	path := PathOf(usable).SetTension(tension).SetKind(kind).End()
	return MustNewCurve(path) // sanitized paths always validate
}

// Drop non-finite points and repetitions of the previous point.
func sanitize(points []vec3.T) []vec3.T {
	usable := make([]vec3.T, 0, len(points))
	for i, p := range points {
		if !finite(p) {
			tracer().Debugf("dropping non-finite control point %d", i)
			continue
		}
		if len(usable) > 0 && coincident(usable[len(usable)-1], p) {
			tracer().Debugf("dropping repeated control point %d", i)
			continue
		}
		usable = append(usable, p)
	}
	return usable
}
