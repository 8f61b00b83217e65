// Package spline builds smooth centerlines through 3D control points.
// It provides an implementation of centripetal Catmull-Rom interpolation.
/*

Catmull-Rom splines pass through every knot and are tangent-continuous.
The centripetal variant spaces the knot parameters by the square root of
the chord lengths, which avoids cusps and self-intersections within a
segment and keeps the curve close to the control polygon at sharp turns.
The primary sources of information are:

   Parameterization and Applications of Catmull-Rom Curves --
   C. Yuksel, S. Schaefer, J. Keyser. Computer-Aided Design 43(7), 2011

and the reference behaviour of three.js' CatmullRomCurve3, which this
package reproduces for open curves: the curve parameter t ∈ [0,1] is
mapped uniformly onto the segments, and the open ends are extended by
phantom knots mirrored at the first and last knot.

Usage

Most clients just want a centerline for a sequence of points:

   curve := Centerline(points, DefaultTension)

Centerline never fails. Non-finite points and repeated points are
dropped, and if fewer than two points remain, the built-in S-shaped
pipe run of DefaultPoints() is used instead.

Clients who want strict validation build a skeleton path and solve it:

   path := Nullpath().Knot(geom.V(0,0,0)).Knot(geom.V(60,0,0)).Knot(geom.V(120,40,0)).End()
   controls, err := FindControls(path, nil)

which returns the cubic Bézier control points of every segment:

  (0,0,0) .. controls (20.0000,0.0000,0.0000) and (40.8380,-5.8018,0.0000)
   .. (60,0,0) .. controls …

NewCurve(path) solves a path and returns an immutable Curve, which may be
evaluated for positions, derivatives and tangents.

# BSD License

# Copyright (c) The tubelab authors

All rights reserved.

Please refer to the license file for more information.
*/
package spline

import "fmt"

// AsString returns
// a path -- optionally including spline control points -- as a (debugging)
// string. The string contains newlines if control point information is present.
// Otherwise it will include the knot coordinates in one line.
//
// Example, two straight segments along x:
//
//	(0,0,0) .. controls (3.3333,0.0000,0.0000) and (6.6667,0.0000,0.0000)
//	  .. (10,0,0) .. controls (13.3333,0.0000,0.0000) and (16.6667,0.0000,0.0000)
//	  .. (20,0,0)
//
// The format is not fully equivalent to MetaPost's, but close.
func AsString(path *Path, contr *Controls) string {
	var s string
	for i := 0; i < path.N(); i++ {
		pt := path.Z(i)
		if i > 0 {
			if contr != nil {
				s += fmt.Sprintf(" and %s\n  .. ", ptstring(contr.PreControl(i), true))
			} else {
				s += " .. "
			}
		}
		s += ptstring(pt, false)
		if contr != nil && i < path.N()-1 {
			s += fmt.Sprintf(" .. controls %s", ptstring(contr.PostControl(i), true))
		}
	}
	return s
}
