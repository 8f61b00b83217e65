package spline

import (
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// ValidateForSolve checks if a path is solvable by Catmull-Rom interpolation.
func (path *Path) ValidateForSolve() error {
	if path == nil {
		return ErrNilPath
	}
	n := path.N()
	if n < 2 {
		return fmt.Errorf("%w: open path needs at least 2 knots, got %d", ErrTooFewKnots, n)
	}
	for i := 0; i < n; i++ {
		if !finite(path.points[i]) {
			return fmt.Errorf("%w at knot %d", ErrInvalidKnot, i)
		}
	}
	for i := 0; i < n-1; i++ {
		if coincident(path.points[i], path.points[i+1]) {
			return fmt.Errorf("%w between knots %d and %d", ErrDegenerateSegment, i, i+1)
		}
	}
	return nil
}

// FindControls finds the cubic Bézier control points of a Catmull-Rom
// spline through the knots of a path.
// It validates the path and returns an error for empty/invalid geometry.
//
// Clients may provide a container for the spline control points. If none
// is provided, i.e. controls == nil, this function will allocate one.
//
// Each segment is a cubic Hermite curve between knots i and i+1, with the
// tangents of a (possibly non-uniform) Catmull-Rom spline. Open ends get
// phantom knots, mirrored at the first and last knot.
func FindControls(path *Path, controls *Controls) (*Controls, error) {
	if err := path.ValidateForSolve(); err != nil {
		return nil, err
	}
	if controls == nil {
		controls = &Controls{}
	}
	setControls(path, controls)
	return controls, nil
}

// MustFindControls is a compatibility helper which panics on validation errors.
func MustFindControls(path *Path, controls *Controls) *Controls {
	c, err := FindControls(path, controls)
	if err != nil {
		panic(err)
	}
	return c
}

func setControls(path *Path, controls *Controls) *Controls {
	n := path.N()
	for i := 0; i < n-1; i++ {
		p0, p1, p2, p3 := neighbourhood(path, i)
		m1, m2 := tangents(p0, p1, p2, p3, path.kind, path.tension)
		controls.SetPostControl(i, vec3.T{p1[0] + m1[0]/3, p1[1] + m1[1]/3, p1[2] + m1[2]/3})
		controls.SetPreControl(i+1, vec3.T{p2[0] - m2[0]/3, p2[1] - m2[1]/3, p2[2] - m2[2]/3})
	}
	tracer().Debugf("%s", AsString(path, controls))
	return controls
}

// The four knots influencing segment i.
func neighbourhood(path *Path, i int) (p0, p1, p2, p3 vec3.T) {
	n := path.N()
	p1, p2 = path.Z(i), path.Z(i+1)
	if i > 0 {
		p0 = path.Z(i - 1)
	} else {
		p0 = reflect(p2, p1)
	}
	if i+2 < n {
		p3 = path.Z(i + 2)
	} else {
		p3 = reflect(p1, p2)
	}
	return
}

// Hermite tangents at p1 and p2, already scaled to the unit parameter
// interval of the segment p1 → p2.
func tangents(p0, p1, p2, p3 vec3.T, kind Kind, tension float64) (m1, m2 vec3.T) {
	if kind == Uniform {
		for k := 0; k < 3; k++ {
			m1[k] = tension * (p2[k] - p0[k])
			m2[k] = tension * (p3[k] - p1[k])
		}
		return
	}
	pow := kind.power()
	dt0 := math.Pow(vec3.SquareDistance(&p0, &p1), pow)
	dt1 := math.Pow(vec3.SquareDistance(&p1, &p2), pow)
	dt2 := math.Pow(vec3.SquareDistance(&p2, &p3), pow)
	if dt1 < minChordWeight {
		dt1 = 1.0
	}
	if dt0 < minChordWeight {
		dt0 = dt1
	}
	if dt2 < minChordWeight {
		dt2 = dt1
	}
	scale := 2 * tension * dt1
	for k := 0; k < 3; k++ {
		t1 := (p1[k]-p0[k])/dt0 - (p2[k]-p0[k])/(dt0+dt1) + (p2[k]-p1[k])/dt1
		t2 := (p2[k]-p1[k])/dt1 - (p3[k]-p1[k])/(dt1+dt2) + (p3[k]-p2[k])/dt2
		m1[k], m2[k] = t1*scale, t2*scale
	}
	return
}
