package spline

import (
	"github.com/tubelab/geom"
	"github.com/ungerik/go3d/float64/vec3"
)

func newSkeletonPath(points []vec3.T) *Path {
	path := &Path{
		tension: DefaultTension,
		kind:    Centripetal,
	}
	path.points = make([]vec3.T, len(points), len(points)*2)
	copy(path.points, points)
	path.Controls = &Controls{}
	return path
}

// Nullpath creates an empty path, to be extended by subsequent builder
// calls. The following example builds an open path of three knots with a
// slightly relaxed tension:
//
//	var path *Path
//	path = Nullpath().Knot(geom.V(0,0,0)).Knot(geom.V(3,2,0)).Knot(geom.V(5,2.5,1)).
//	    SetTension(0.4).End()
//
// Calling End() returns a path. Its control point container
// (path.Controls) is empty and to be filled by FindControls(…).
func Nullpath() *Path {
	return newSkeletonPath(nil)
}

// PathOf creates a path from a slice of knots. The slice is copied.
func PathOf(points []vec3.T) *Path {
	return newSkeletonPath(points)
}

// End an open path. Part of builder functionality.
func (path *Path) End() *Path {
	return path
}

// Knot appends a knot to a path. Part of builder functionality.
func (path *Path) Knot(p vec3.T) *Path {
	path.points = append(path.points, p)
	return path
}

// Knots appends a sequence of knots to a path. Part of builder functionality.
func (path *Path) Knots(pts ...vec3.T) *Path {
	path.points = append(path.points, pts...)
	return path
}

// SetTension is a property setter. Tension scales the knot tangents by
// 2·tension; 0.5 is neutral, smaller values pull the curve towards the
// control polygon. Tensions are adapted to lie between 0 and 1.
func (path *Path) SetTension(tension float64) *Path {
	if !geom.IsFinite(tension) {
		tracer().Errorf("ignoring non-finite tension %g", tension)
		return path
	}
	path.tension = geom.Clamp(tension, 0, 1)
	return path
}

// SetKind is a property setter for the knot parametrization.
func (path *Path) SetKind(k Kind) *Path {
	path.kind = k
	return path
}

// Tension returns the tension of the path.
func (path *Path) Tension() float64 {
	return path.tension
}

// Kind returns the knot parametrization of the path.
func (path *Path) Kind() Kind {
	return path.kind
}

// N returns the length of this path (knot count).
func (path *Path) N() int {
	return len(path.points)
}

// Z returns knot i. Indices outside the path are clamped to the first or
// last knot.
func (path *Path) Z(i int) vec3.T {
	if i < 0 {
		i = 0
	} else if i >= path.N() {
		i = path.N() - 1
	}
	return path.points[i]
}
