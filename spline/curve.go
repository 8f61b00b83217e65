package spline

import (
	"math"
	"sort"

	"github.com/tubelab/geom"
	"github.com/ungerik/go3d/float64/vec3"
)

// ArcLengthDivisions is the number of chords used to approximate the arc
// length of a curve.
const ArcLengthDivisions = 200

// tangentDelta is the parameter step for tangents where the derivative vanishes.
const tangentDelta = 0.0001

// Curve is an immutable open centerline curve, parametrized over t ∈ [0,1].
// A Curve is safe for concurrent use.
type Curve struct {
	knots   []vec3.T
	post    []vec3.T  // post[i]: first inner control point of segment i
	pre     []vec3.T  // pre[i]: second inner control point of segment i
	kind    Kind      // parametrization used for construction
	tension float64   // tension used for construction
	lengths []float64 // cumulative chord lengths at t = j/ArcLengthDivisions
}

// NewCurve solves a path and creates a curve from it. The path is not
// referenced by the curve; later changes to the path do not affect it.
func NewCurve(path *Path) (*Curve, error) {
	controls, err := FindControls(path, nil)
	if err != nil {
		return nil, err
	}
	n := path.N()
	c := &Curve{
		knots:   make([]vec3.T, n),
		post:    make([]vec3.T, n-1),
		pre:     make([]vec3.T, n-1),
		kind:    path.kind,
		tension: path.tension,
	}
	copy(c.knots, path.points)
	for i := 0; i < n-1; i++ {
		c.post[i] = controls.PostControl(i)
		c.pre[i] = controls.PreControl(i + 1)
	}
	c.lengths = c.chordLengths(ArcLengthDivisions)
	tracer().Debugf("created curve of %d segments, length %.4f", c.Segments(), c.Length())
	return c, nil
}

// MustNewCurve is like NewCurve, but panics on validation errors.
func MustNewCurve(path *Path) *Curve {
	c, err := NewCurve(path)
	if err != nil {
		panic(err)
	}
	return c
}

// Knots returns a copy of the knots the curve passes through.
func (c *Curve) Knots() []vec3.T {
	k := make([]vec3.T, len(c.knots))
	copy(k, c.knots)
	return k
}

// Segments returns the number of cubic segments.
func (c *Curve) Segments() int {
	return len(c.knots) - 1
}

// Kind returns the knot parametrization the curve has been built with.
func (c *Curve) Kind() Kind {
	return c.kind
}

// Tension returns the tension the curve has been built with.
func (c *Curve) Tension() float64 {
	return c.tension
}

// Control returns the Bézier polygon of segment i.
func (c *Curve) Control(i int) (b0, b1, b2, b3 vec3.T) {
	return c.knots[i], c.post[i], c.pre[i], c.knots[i+1]
}

// Map t ∈ [0,1] uniformly onto segments. t is clamped to [0,1].
func (c *Curve) locate(t float64) (int, float64) {
	t = geom.Clamp(t, 0, 1)
	p := float64(c.Segments()) * t
	seg := int(math.Floor(p))
	u := p - float64(seg)
	if seg >= c.Segments() {
		seg, u = c.Segments()-1, 1
	}
	return seg, u
}

// Position returns the point on the curve at t. Parameters outside [0,1]
// are clamped.
func (c *Curve) Position(t float64) vec3.T {
	i, u := c.locate(t)
	b0, b1, b2, b3 := c.Control(i)
	return bezier(b0, b1, b2, b3, u)
}

// Derivative returns dP/dt at t.
func (c *Curve) Derivative(t float64) vec3.T {
	i, u := c.locate(t)
	b0, b1, b2, b3 := c.Control(i)
	d := bezierDeriv(b0, b1, b2, b3, u)
	return d.Scaled(float64(c.Segments()))
}

// Tangent returns the unit direction of travel at t. At the ends of the
// curve this is the one-sided tangent. If the derivative vanishes, the
// direction of a small chord around t is used.
func (c *Curve) Tangent(t float64) vec3.T {
	d := c.Derivative(t)
	if d.Length() > _epsilon {
		return d.Normalized()
	}
	t1 := math.Max(0, t-tangentDelta)
	t2 := math.Min(1, t+tangentDelta)
	p1, p2 := c.Position(t1), c.Position(t2)
	chord := vec3.Sub(&p2, &p1)
	if chord.Length() <= _epsilon {
		tracer().Errorf("curve has no direction at t=%g", t)
		return vec3.Zero
	}
	return chord.Normalized()
}

// Points samples the curve at divisions+1 parameters, uniformly spaced in t.
func (c *Curve) Points(divisions int) []vec3.T {
	if divisions < 1 {
		divisions = 1
	}
	pts := make([]vec3.T, divisions+1)
	for j := 0; j <= divisions; j++ {
		pts[j] = c.Position(float64(j) / float64(divisions))
	}
	return pts
}

func (c *Curve) chordLengths(divisions int) []float64 {
	lengths := make([]float64, divisions+1)
	last := c.Position(0)
	for j := 1; j <= divisions; j++ {
		p := c.Position(float64(j) / float64(divisions))
		lengths[j] = lengths[j-1] + vec3.Distance(&p, &last)
		last = p
	}
	return lengths
}

// Length returns the approximate arc length of the curve.
func (c *Curve) Length() float64 {
	return c.lengths[len(c.lengths)-1]
}

// ArcParam maps a fraction u ∈ [0,1] of the arc length to the curve
// parameter t at which this length is reached.
func (c *Curve) ArcParam(u float64) float64 {
	u = geom.Clamp(u, 0, 1)
	total := c.Length()
	if total <= _epsilon {
		return u
	}
	target := u * total
	n := len(c.lengths) - 1
	j := sort.SearchFloat64s(c.lengths, target) // first j with lengths[j] >= target
	if j == 0 {
		return 0
	}
	if j > n {
		return 1
	}
	before, after := c.lengths[j-1], c.lengths[j]
	frac := 0.0
	if after > before {
		frac = (target - before) / (after - before)
	}
	return (float64(j-1) + frac) / float64(n)
}

// SpacedPoints samples the curve at divisions+1 points, uniformly spaced
// in arc length.
func (c *Curve) SpacedPoints(divisions int) []vec3.T {
	if divisions < 1 {
		divisions = 1
	}
	pts := make([]vec3.T, divisions+1)
	for j := 0; j <= divisions; j++ {
		pts[j] = c.Position(c.ArcParam(float64(j) / float64(divisions)))
	}
	return pts
}
