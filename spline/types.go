package spline

import (
	"errors"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/ungerik/go3d/float64/vec3"
)

// tracer writes to trace with key 'spline'
func tracer() tracing.Trace {
	return tracing.Select("spline")
}

const _epsilon = 0.0000001

// DefaultTension is the neutral tension: the curve is the plain centripetal
// Catmull-Rom spline.
const DefaultTension = 0.5

// chord weights below this are replaced, as coincident knots would divide by zero
const minChordWeight = 1e-4

var (
	// ErrNilPath indicates a nil path pointer.
	ErrNilPath = errors.New("path must not be nil")
	// ErrTooFewKnots indicates path knot count is insufficient for solving.
	ErrTooFewKnots = errors.New("path has too few knots")
	// ErrInvalidKnot indicates a knot coordinate contains NaN/Inf.
	ErrInvalidKnot = errors.New("path has invalid knot coordinate")
	// ErrDegenerateSegment indicates two consecutive knots collapse to one point.
	ErrDegenerateSegment = errors.New("path has degenerate segment")
)

// Kind selects the knot parametrization of a Catmull-Rom path.
type Kind int8

// Knot parametrizations. Centripetal uses the square root of chord lengths,
// chordal the chord lengths themselves, uniform a constant knot spacing.
const (
	Centripetal Kind = iota
	Chordal
	Uniform
)

func (k Kind) String() string {
	switch k {
	case Chordal:
		return "chordal"
	case Uniform:
		return "uniform"
	}
	return "centripetal"
}

// ParseKind finds a parametrization kind from a string. Unknown strings
// yield Centripetal and false.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "centripetal", "":
		return Centripetal, true
	case "chordal":
		return Chordal, true
	case "uniform", "catmullrom":
		return Uniform, true
	}
	return Centripetal, false
}

// exponent on squared chord lengths
func (k Kind) power() float64 {
	if k == Chordal {
		return 0.5
	}
	return 0.25
}

// Path is the concrete type for building open centerline paths.
// To construct a path, start with Nullpath(), which creates an empty
// path, and then extend it.
type Path struct {
	points   []vec3.T  // knot i
	tension  float64   // tangent scale, 0.5 is neutral
	kind     Kind      // knot parametrization
	Controls *Controls // control points to be calculated
}

// Controls collects calculated cubic Bézier control points.
// Segment i runs from knot i over PostControl(i) and PreControl(i+1) to knot i+1.
type Controls struct {
	prec  []vec3.T // control point i-, to be calculated
	postc []vec3.T // control point i+, to be calculated
}
