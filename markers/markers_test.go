package markers

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tubelab/geom"
	"github.com/tubelab/geom/curvature"
	"github.com/tubelab/geom/polygon"
	"github.com/tubelab/geom/spline"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestMarkerStyle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, 4.0, SizeOf(curvature.High))
	assert.Equal(t, 3.0, SizeOf(curvature.Medium))
	assert.Equal(t, 2.0, SizeOf(curvature.Low))
	assert.Equal(t, "#ff3333", ColorOf(curvature.Maximum))
	assert.Equal(t, "#33ff33", ColorOf(curvature.Minimum))
	assert.Equal(t, "#3333ff", ColorOf(curvature.Inflection))
}

func TestForCriticalPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := spline.Centerline(nil, spline.DefaultTension)
	cps := curvature.FindCriticalPoints(c, curvature.DefaultSamples)
	ms := ForCriticalPoints(cps)
	require.Len(t, ms, len(cps))
	for i, m := range ms {
		assert.Equal(t, cps[i].Position, m.Position)
		assert.Equal(t, cps[i].T, m.T)
		assert.Equal(t, SizeOf(cps[i].Severity), m.Size)
		assert.Equal(t, ColorOf(cps[i].Type), m.Color)
	}
	high := Filter(ms, curvature.High)
	for _, m := range high {
		assert.Equal(t, curvature.High, m.Severity)
	}
	assert.Len(t, Filter(ms, curvature.Low), len(ms))
	assert.Empty(t, ForCriticalPoints(nil))
}

func TestFootprint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	disc := polygon.Circle(geom.Origin, 4, 24).Area()
	apart := []Marker{
		{Position: geom.V(0, 50, 0), Size: 4},
		{Position: geom.V(100, -20, 100), Size: 4},
	}
	fp := Footprint(apart, 24)
	assert.Equal(t, 2, fp.Contours())
	assert.InDelta(t, 2*disc, fp.Area(), 1e-6)
	assert.True(t, fp.Contains(geom.P(100, 100)))

	overlapping := []Marker{
		{Position: geom.V(0, 0, 0), Size: 4},
		{Position: geom.V(3, 10, 0), Size: 4},
	}
	fp = Footprint(overlapping, 24)
	assert.Equal(t, 1, fp.Contours())
	assert.Less(t, fp.Area(), 2*disc)
	assert.Greater(t, fp.Area(), disc)
	assert.True(t, Footprint(nil, 24).IsEmpty())
}

func TestConnectorsOnStraightLine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := spline.Centerline([]vec3.T{geom.V(0, 0, 0), geom.V(10, 0, 0), geom.V(20, 0, 0)}, spline.DefaultTension)
	conn := Connectors(c, 5)
	assert.Equal(t, Start, conn[0].End)
	assert.Equal(t, Finish, conn[1].End)
	assert.True(t, geom.EqualV(conn[0].Anchor, geom.V(0, 0, 0), 1e-9))
	assert.True(t, geom.EqualV(conn[0].Position, geom.V(5, 0, 0), 1e-9))
	assert.True(t, geom.EqualV(conn[1].Position, geom.V(25, 0, 0), 1e-9))
	assert.True(t, geom.EqualV(conn[0].Flange(), geom.V(17, 0, 0), 1e-9), "flange %v", conn[0].Flange())
}

func TestConnectorPlacement(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := spline.Centerline(nil, spline.DefaultTension)
	for _, conn := range Connectors(c, 0) {
		assert.Equal(t, conn.Anchor, conn.Position)
		assert.InDelta(t, 1, conn.Direction.Length(), 1e-9)
		origin := conn.Placement.Transform(vec3.Zero)
		assert.True(t, geom.EqualV(origin, conn.Position, 1e-9))
		up := conn.Placement.Transform(vec3.UnitY)
		axis := vec3.Sub(&up, &origin)
		assert.True(t, geom.EqualV(axis, conn.Direction, 1e-9), "axis %v vs %v", axis, conn.Direction)
	}
	conn := Connectors(c, math.NaN())
	assert.Equal(t, conn[1].Anchor, conn[1].Position)
}
