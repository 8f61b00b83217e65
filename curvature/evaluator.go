package curvature

import (
	"errors"
	"fmt"
	"math"

	"github.com/tubelab/geom"
	"github.com/ungerik/go3d/float64/vec3"
)

// Step is the parameter step of the finite difference stencil.
const Step = 1e-4

// cross products below this mean the curve is locally straight
const crossFloor = 1e-6

// ErrParameterRange is returned for curve parameters outside [0,1].
var ErrParameterRange = errors.New("curve parameter out of range [0,1]")

// Curve is the view of a centerline this package needs. *spline.Curve
// implements it.
type Curve interface {
	Position(t float64) vec3.T
	Tangent(t float64) vec3.T
}

// Check returns an error if t is not a valid curve parameter. The estimators
// of this package clamp their stencils and do not call it; it is for clients
// who validate eagerly.
func Check(t float64) error {
	if math.IsNaN(t) || t < 0 || t > 1 {
		return fmt.Errorf("%w: t = %g", ErrParameterRange, t)
	}
	return nil
}

// The difference vectors of the stencil around t: v1 ≈ first derivative,
// v2-v1 ≈ second derivative, both up to powers of Step.
func stencil(c Curve, t float64) (d1, d2 vec3.T) {
	p0 := c.Position(math.Max(0, t-Step))
	p1 := c.Position(t)
	p2 := c.Position(math.Min(1, t+Step))
	v1 := vec3.Sub(&p1, &p0)
	v2 := vec3.Sub(&p2, &p1)
	return v1, vec3.Sub(&v2, &v1)
}

// Radius estimates the radius of curvature of c at t. Locally straight
// parts of the curve have radius +Inf.
func Radius(c Curve, t float64) float64 {
	d1, d2 := stencil(c, t)
	return radius(d1, d2)
}

func radius(d1, d2 vec3.T) float64 {
	cross := vec3.Cross(&d1, &d2)
	den := cross.Length()
	if den < crossFloor {
		return math.Inf(1)
	}
	l := d1.Length()
	return l * l * l / den
}

// Curvature estimates the curvature κ ≥ 0 of c at t. It is 0 wherever
// Radius is +Inf.
func Curvature(c Curve, t float64) float64 {
	return curvatureOf(Radius(c, t))
}

func curvatureOf(r float64) float64 {
	if math.IsInf(r, 1) {
		return 0
	}
	return 1 / r
}

// Sample holds the local geometry of a curve at parameter T.
// Normal and Binormal complete Tangent to a right-handed orthonormal frame.
type Sample struct {
	T         float64
	Position  vec3.T
	Tangent   vec3.T
	Normal    vec3.T
	Binormal  vec3.T
	Curvature float64
	Radius    float64
	Angle     float64 // deflection estimate in degrees
}

// At samples the geometry of c at t.
//
// Where the curve is locally straight, the normal is not defined by the
// curve; an arbitrary unit vector perpendicular to the tangent is used.
func At(c Curve, t float64) Sample {
	d1, d2 := stencil(c, t)
	r := radius(d1, d2)
	s := Sample{
		T:        t,
		Position: c.Position(t),
		Tangent:  c.Tangent(t),
		Radius:   r,
	}
	s.Curvature = curvatureOf(r)
	s.Angle = AngleOf(s.Curvature)
	s.Normal = normal(s.Tangent, d2, !math.IsInf(r, 1))
	s.Binormal = vec3.Cross(&s.Tangent, &s.Normal)
	return s
}

// Component of the second derivative perpendicular to the tangent.
func normal(tangent, d2 vec3.T, curved bool) vec3.T {
	if curved {
		proj := tangent.Scaled(vec3.Dot(&d2, &tangent))
		n := vec3.Sub(&d2, &proj)
		if n.LengthSqr() > 0 {
			return n.Normalized()
		}
	}
	if tangent.Length() <= geom.Epsilon {
		tracer().Debugf("curve has no tangent, frame falls back to axes")
	}
	return geom.Perpendicular(tangent)
}
