package spline

import (
	"fmt"
	"math"

	"github.com/tubelab/geom"
	"github.com/ungerik/go3d/float64/vec3"
)

// NaN point, marking control points not yet calculated.
func unknown() vec3.T {
	nan := math.NaN()
	return vec3.T{nan, nan, nan}
}

func isUnknown(p vec3.T) bool {
	return math.IsNaN(p[0]) || math.IsNaN(p[1]) || math.IsNaN(p[2])
}

// Extend a slice of points to make room for index i.
// Will do nothing if the slice is already large enough.
func extendC(arr []vec3.T, i int, deflt vec3.T) []vec3.T {
	l := len(arr)
	if i >= l {
		arr = append(arr, make([]vec3.T, i-l+1)...)
		for ; i >= l; i-- {
			arr[i] = deflt
		}
	}
	return arr
}

// Get a value from a slice if present, default value deflt otherwise.
func getC(arr []vec3.T, i int, deflt vec3.T) vec3.T {
	if i < 0 || i >= len(arr) {
		return deflt
	}
	return arr[i]
}

// Reflect a across b: 2b - a. Used for phantom knots at open ends.
func reflect(a, b vec3.T) vec3.T {
	return vec3.T{2*b[0] - a[0], 2*b[1] - a[1], 2*b[2] - a[2]}
}

// Cubic Bézier point at u.
func bezier(b0, b1, b2, b3 vec3.T, u float64) vec3.T {
	v := 1 - u
	w0, w1, w2, w3 := v*v*v, 3*v*v*u, 3*v*u*u, u*u*u
	var p vec3.T
	for k := 0; k < 3; k++ {
		p[k] = w0*b0[k] + w1*b1[k] + w2*b2[k] + w3*b3[k]
	}
	return p
}

// First derivative of a cubic Bézier at u, with respect to u.
func bezierDeriv(b0, b1, b2, b3 vec3.T, u float64) vec3.T {
	v := 1 - u
	w0, w1, w2 := 3*v*v, 6*v*u, 3*u*u
	var d vec3.T
	for k := 0; k < 3; k++ {
		d[k] = w0*(b1[k]-b0[k]) + w1*(b2[k]-b1[k]) + w2*(b3[k]-b2[k])
	}
	return d
}

func ptstring(p vec3.T, iscontrol bool) string {
	if isUnknown(p) {
		return "(<unknown>)"
	}
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f,%.4f)", round(p[0]), round(p[1]), round(p[2]))
	}
	return fmt.Sprintf("(%.4g,%.4g,%.4g)", round(p[0]), round(p[1]), round(p[2]))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}

func coincident(a, b vec3.T) bool {
	return vec3.Distance(&a, &b) <= _epsilon
}

func finite(p vec3.T) bool {
	return geom.FiniteV(p)
}
