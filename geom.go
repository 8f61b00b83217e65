/*
Package geom implements 3D points, plan-view pairs, affine placement transforms
and numeric helpers for pipe centerline geometry.

# BSD License

# Copyright (c) The tubelab authors

All rights reserved.

Please refer to the license file for more information.
*/
package geom

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
	"github.com/ungerik/go3d/float64/vec4"
)

// tracer writes to trace with key 'geom'
func tracer() tracing.Trace {
	return tracing.Select("geom")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// IsFinite is a predicate: is n neither NaN nor ±Inf ?
func IsFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// Clamp restricts n to [lo,hi].
func Clamp(n, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, n))
}

// === 3D Points =============================================================

// V is a quick notation for constructing a 3D point from floats.
func V(x, y, z float64) vec3.T {
	return vec3.T{x, y, z}
}

// FiniteV is a predicate: are all components of v finite?
func FiniteV(v vec3.T) bool {
	return IsFinite(v[0]) && IsFinite(v[1]) && IsFinite(v[2])
}

// ZapV rounds all components of v to Epsilon.
func ZapV(v vec3.T) vec3.T {
	return vec3.T{Zap(v[0]), Zap(v[1]), Zap(v[2])}
}

// EqualV compares two points with tolerance tol (absolute, per component).
func EqualV(a, b vec3.T, tol float64) bool {
	return math.Abs(a[0]-b[0]) <= tol && math.Abs(a[1]-b[1]) <= tol && math.Abs(a[2]-b[2]) <= tol
}

// Perpendicular returns a unit vector orthogonal to v. The axis with the
// smallest component of v is used as a helper, as three.js does for Frenet frames.
func Perpendicular(v vec3.T) vec3.T {
	ax, ay, az := math.Abs(v[0]), math.Abs(v[1]), math.Abs(v[2])
	helper := vec3.UnitX
	if ay <= ax && ay <= az {
		helper = vec3.UnitY
	} else if az <= ax && az <= ay {
		helper = vec3.UnitZ
	}
	p := vec3.Cross(&v, &helper)
	if p.LengthSqr() <= Epsilon*Epsilon {
		return vec3.UnitY
	}
	return p.Normalized()
}

// VString is a pretty Stringer for 3D points.
func VString(v vec3.T) string {
	return fmt.Sprintf("(%g,%g,%g)", v[0], v[1], v[2])
}

// === Pair Data Type ========================================================

// Pair is a 2D point, used for plan views of the centerline.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(float64(0), float64(0))

// String prints a pair as (x,y).
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// Equal compares two pairs up to Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// PlanView projects a 3D point onto the ground plane. The vertical axis is y,
// so the plan view uses (x,z).
func PlanView(v vec3.T) Pair {
	if !FiniteV(v) {
		tracer().Errorf("plan view of non-finite point %s", VString(v))
		return Origin
	}
	return P(v[0], v[2])
}

// === Affine Transformations ================================================

// AT is an affine transform in 3D, stored as a column-major 4x4 matrix.
type AT mat4.T

// Identity transform.
func Identity() AT {
	return AT(mat4.Ident)
}

// Translation transform. Translate a point by v.
func Translation(v vec3.T) AT {
	m := Identity()
	m[3] = vec4.T{v[0], v[1], v[2], 1}
	return m
}

// Rotation transform. Rotates unit vector from onto unit vector to, around
// the axis perpendicular to both. Arguments need not be normalized.
func Rotation(from, to vec3.T) AT {
	f, t := from.Normalized(), to.Normalized()
	c := vec3.Dot(&f, &t)
	if c < -1+Epsilon { // opposite directions: turn half around any perpendicular axis
		a := Perpendicular(f)
		return fromRows([3][3]float64{
			{2*a[0]*a[0] - 1, 2 * a[0] * a[1], 2 * a[0] * a[2]},
			{2 * a[1] * a[0], 2*a[1]*a[1] - 1, 2 * a[1] * a[2]},
			{2 * a[2] * a[0], 2 * a[2] * a[1], 2*a[2]*a[2] - 1},
		})
	}
	k := vec3.Cross(&f, &t)
	s := 1 / (1 + c)
	return fromRows([3][3]float64{
		{c + k[0]*k[0]*s, k[0]*k[1]*s - k[2], k[0]*k[2]*s + k[1]},
		{k[1]*k[0]*s + k[2], c + k[1]*k[1]*s, k[1]*k[2]*s - k[0]},
		{k[2]*k[0]*s - k[1], k[2]*k[1]*s + k[0], c + k[2]*k[2]*s},
	})
}

func fromRows(r [3][3]float64) AT {
	m := Identity()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			m[col][row] = r[row][col]
		}
	}
	return m
}

// Debug Stringer for an affine transform (rows of the upper 3x4 part).
func (m AT) String() string {
	s := fmt.Sprintf("[%g,%g,%g,%g|%g,%g,%g,%g|%g,%g,%g,%g]",
		m[0][0], m[1][0], m[2][0], m[3][0],
		m[0][1], m[1][1], m[2][1], m[3][1],
		m[0][2], m[1][2], m[2][2], m[3][2])
	return s
}

// Combine 2 affine transformation to a new one: first m, then n. Returns a new
// transformation without changing the argument(s).
func (m AT) Combine(n AT) AT {
	var o AT
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += n[k][row] * m[col][k]
			}
			o[col][row] = sum
		}
	}
	return o
}

// Transform a 3D point. The argument is unchanged and a new point is returned.
func (m AT) Transform(p vec3.T) vec3.T {
	mm := mat4.T(m)
	return mm.MulVec3(&p)
}
