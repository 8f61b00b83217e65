/*
Package polygon implements plan-view polygons, i.e. regions of the
horizontal x/z plane below a pipe run.

A polygon consists of one or more closed contours. Nested contours are holes,
following the even-odd rule. Boolean operations are delegated to polyclip-go,
an implementation of the Martinez-Rueda-Feito clipping algorithm.

# BSD License

# Copyright (c) The tubelab authors

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"bytes"
	"fmt"
	"math"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/tubelab/geom"
)

// L writes to trace with key 'polygon'
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// DefaultCircleSegments is the number of edges approximating a circle.
const DefaultCircleSegments = 32

// Polygon is an immutable plan-view region.
type Polygon struct {
	contours polyclip.Polygon
}

// Builder collects the knots of a single closed contour.
type Builder struct {
	contour polyclip.Contour
}

// NullPolygon starts an empty contour.
func NullPolygon() *Builder {
	return &Builder{contour: polyclip.Contour{}}
}

// Knot appends a vertex to the contour.
func (b *Builder) Knot(p geom.Pair) *Builder {
	b.contour.Add(pt(p))
	return b
}

// Cycle closes the contour and returns it as a polygon. Contours with fewer
// than 3 knots enclose no area and result in the empty polygon.
func (b *Builder) Cycle() *Polygon {
	if len(b.contour) < 3 {
		if len(b.contour) > 0 {
			L().Debugf("contour of %d knots is degenerate", len(b.contour))
		}
		return &Polygon{}
	}
	c := make(polyclip.Contour, len(b.contour))
	copy(c, b.contour)
	return &Polygon{contours: polyclip.Polygon{c}}
}

// Box creates an axis-aligned rectangle from two opposite corners.
func Box(a, b geom.Pair) *Polygon {
	x0, x1 := math.Min(a.X(), b.X()), math.Max(a.X(), b.X())
	y0, y1 := math.Min(a.Y(), b.Y()), math.Max(a.Y(), b.Y())
	return NullPolygon().Knot(geom.P(x0, y0)).Knot(geom.P(x1, y0)).
		Knot(geom.P(x1, y1)).Knot(geom.P(x0, y1)).Cycle()
}

// Circle approximates a disc by a regular polygon with the given number of
// edges, inscribed into the circle. Fewer than 3 edges are raised to 3.
func Circle(center geom.Pair, radius float64, edges int) *Polygon {
	if radius <= 0 || !geom.IsFinite(radius) {
		return &Polygon{}
	}
	if edges < 3 {
		edges = 3
	}
	b := NullPolygon()
	for i := 0; i < edges; i++ {
		a := 2 * math.Pi * float64(i) / float64(edges)
		b.Knot(center + geom.P(radius*math.Cos(a), radius*math.Sin(a)))
	}
	return b.Cycle()
}

// N returns the number of vertices over all contours.
func (pg *Polygon) N() int {
	return pg.contours.NumVertices()
}

// Contours returns the number of closed contours.
func (pg *Polygon) Contours() int {
	return len(pg.contours)
}

// IsEmpty is a predicate: does the polygon enclose no area?
func (pg *Polygon) IsEmpty() bool {
	return len(pg.contours) == 0
}

// Pt returns vertex i of contour c.
func (pg *Polygon) Pt(c, i int) geom.Pair {
	p := pg.contours[c][i]
	return geom.P(p.X, p.Y)
}

// BoundingBox returns the lower-left and upper-right corner of the polygon.
func (pg *Polygon) BoundingBox() (geom.Pair, geom.Pair) {
	if pg.IsEmpty() {
		return geom.Origin, geom.Origin
	}
	r := pg.contours.BoundingBox()
	return geom.P(r.Min.X, r.Min.Y), geom.P(r.Max.X, r.Max.Y)
}

// Contains is a predicate: is p inside the polygon (even-odd rule)?
func (pg *Polygon) Contains(p geom.Pair) bool {
	inside := false
	for _, c := range pg.contours {
		if c.Contains(pt(p)) {
			inside = !inside
		}
	}
	return inside
}

// Area returns the enclosed area. Contours nested an odd number of times
// are holes and are subtracted.
func (pg *Polygon) Area() float64 {
	var area float64
	for i, c := range pg.contours {
		a := math.Abs(shoelace(c))
		if pg.depth(i)%2 == 1 {
			a = -a
		}
		area += a
	}
	return area
}

// number of other contours enclosing contour i
func (pg *Polygon) depth(i int) int {
	probe := pg.contours[i][0]
	d := 0
	for j, c := range pg.contours {
		if j != i && c.Contains(probe) {
			d++
		}
	}
	return d
}

func shoelace(c polyclip.Contour) float64 {
	var s float64
	for i := range c {
		p, q := c[i], c[(i+1)%len(c)]
		s += p.X*q.Y - q.X*p.Y
	}
	return s / 2
}

// Union returns the region covered by pg or other.
func (pg *Polygon) Union(other *Polygon) *Polygon {
	switch {
	case other.IsEmpty():
		return pg
	case pg.IsEmpty():
		return other
	}
	return pg.construct(polyclip.UNION, other)
}

// Intersection returns the region covered by both pg and other.
func (pg *Polygon) Intersection(other *Polygon) *Polygon {
	if pg.IsEmpty() || other.IsEmpty() {
		return &Polygon{}
	}
	return pg.construct(polyclip.INTERSECTION, other)
}

// Difference returns the region covered by pg but not by other.
func (pg *Polygon) Difference(other *Polygon) *Polygon {
	if pg.IsEmpty() || other.IsEmpty() {
		return pg
	}
	return pg.construct(polyclip.DIFFERENCE, other)
}

func (pg *Polygon) construct(op polyclip.Op, other *Polygon) *Polygon {
	result := pg.contours.Construct(op, other.contours)
	L().Debugf("clipping %d and %d contours yields %d", len(pg.contours), len(other.contours), len(result))
	return &Polygon{contours: result}
}

// UnionAll merges a set of polygons into one.
func UnionAll(pgs ...*Polygon) *Polygon {
	u := &Polygon{}
	for _, pg := range pgs {
		u = u.Union(pg)
	}
	return u
}

// AsString returns a polygon as a (debugging) string, one contour per line.
func AsString(pg *Polygon) string {
	if pg.IsEmpty() {
		return "<empty>"
	}
	var buf bytes.Buffer
	for i, c := range pg.contours {
		if i > 0 {
			buf.WriteString("\n")
		}
		for _, p := range c {
			buf.WriteString(geom.P(p.X, p.Y).String())
			buf.WriteString(" -- ")
		}
		buf.WriteString("cycle")
	}
	return buf.String()
}

func (pg *Polygon) String() string {
	return fmt.Sprintf("polygon[%d contours, %d vertices]", pg.Contours(), pg.N())
}

func pt(p geom.Pair) polyclip.Point {
	return polyclip.Point{X: p.X(), Y: p.Y()}
}
