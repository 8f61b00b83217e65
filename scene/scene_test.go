package scene

import (
	"encoding/json"
	"math"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tubelab/geom"
	"github.com/tubelab/geom/curvature"
	"github.com/tubelab/geom/spline"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestOptionsFrom(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	conf := testconfig.Conf{
		KeyTension:       "0.3",
		KeyKind:          "chordal",
		KeySamples:       120,
		KeyDegreeSamples: "50",
		KeyDivisions:     -4,
		KeyExplode:       12.5,
		KeyTubeWall:      "thick",
	}
	opts := OptionsFrom(conf)
	assert.Equal(t, 0.3, opts.Tension)
	assert.Equal(t, spline.Chordal, opts.Kind)
	assert.Equal(t, 120, opts.Samples)
	assert.Equal(t, 50, opts.DegreeSamples)
	assert.Equal(t, DefaultDivisions, opts.Divisions)
	assert.Equal(t, 12.5, opts.Explode)
	assert.Equal(t, DefaultFootprintEdges, opts.FootprintEdges)
	assert.Equal(t, 0.0, opts.TubeWall)
}

func TestOptionsDefaults(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, DefaultOptions(), OptionsFrom(nil))
	assert.Equal(t, DefaultOptions(), OptionsFrom(testconfig.Conf{}))
	opts := OptionsFrom(testconfig.Conf{KeyKind: "bspline"})
	assert.Equal(t, spline.Centripetal, opts.Kind)
}

func TestBuildDefaultScene(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	snap := Build(nil, DefaultOptions())
	assert.Equal(t, spline.DefaultPoints(), snap.Knots)
	require.Len(t, snap.Centerline, DefaultDivisions+1)
	assert.Equal(t, snap.Curve.Position(0), snap.Centerline[0])
	assert.NotEmpty(t, snap.CriticalPoints)
	assert.Len(t, snap.Markers, len(snap.CriticalPoints))
	assert.Greater(t, snap.Degree, 0.0)
	assert.Less(t, snap.Degree, 10.0)
	assert.Greater(t, snap.FootprintArea, 0.0)
	assert.InDelta(t, snap.Footprint.Area(), snap.FootprintArea, 1e-12)
	assert.Len(t, snap.Layers, 4)
	assert.Len(t, snap.Tubes, 4)
	assert.Equal(t, 16.0, snap.Layers[0].OuterDiameter)
	assert.True(t, geom.EqualV(snap.Connectors[1].Anchor, geom.V(300, -20, 120), 1e-9))
	var total int
	for _, n := range snap.Summary() {
		total += n
	}
	assert.Equal(t, len(snap.CriticalPoints), total)
}

func TestBuildStraightScene(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	snap := Build([]vec3.T{geom.V(0, 0, 0), geom.V(100, 0, 0)}, DefaultOptions())
	assert.Empty(t, snap.CriticalPoints)
	assert.Empty(t, snap.Markers)
	assert.Equal(t, 0.0, snap.Degree)
	assert.Equal(t, 0.0, snap.FootprintArea)
	assert.True(t, snap.Footprint.IsEmpty())
	assert.InDelta(t, 100, snap.Length, 1e-6)
}

func TestSnapshotJSON(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	snap := Build(nil, DefaultOptions())
	b, err := json.Marshal(snap)
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &doc))
	for _, key := range []string{"knots", "centerline", "criticalPoints", "degree", "markers", "connectors", "layers", "tubes"} {
		assert.Contains(t, doc, key)
	}
	cps := doc["criticalPoints"].([]interface{})
	assert.Len(t, cps, len(snap.CriticalPoints))
}

func TestProducer(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := NewProducer(DefaultOptions())
	assert.Equal(t, spline.DefaultPoints(), p.Current().Knots)
	updates := p.Subscribe()

	pts := []vec3.T{geom.V(0, 0, 0), geom.V(50, 10, 0), geom.V(100, 0, 20)}
	snap := p.Update(pts)
	assert.Same(t, snap, <-updates)
	assert.Equal(t, pts, p.Points())
	assert.Equal(t, pts, p.Current().Knots)

	// a subscriber lagging behind only sees the latest snapshot
	p.Update(spline.DefaultPoints())
	latest := p.Update(pts[:2])
	assert.Same(t, latest, <-updates)

	opts := DefaultOptions()
	opts.Samples = 50
	reconf := p.Configure(opts)
	assert.Equal(t, 50, reconf.Options.Samples)
	assert.Equal(t, pts[:2], reconf.Knots)
	<-updates

	p.Close()
	_, ok := <-updates
	assert.False(t, ok)
	_, ok = <-p.Subscribe()
	assert.False(t, ok)
	p.Update(pts)
	assert.Equal(t, pts, p.Current().Knots)
}

func TestProducerConcurrentUpdates(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := NewProducer(DefaultOptions())
	updates := p.Subscribe()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			x := float64(10 * (i + 1))
			p.Update([]vec3.T{geom.V(0, 0, 0), geom.V(x, x, 0), geom.V(2*x, 0, x)})
		}(i)
	}
	wg.Wait()
	snap := <-updates
	assert.Same(t, p.Current(), snap)
	d := curvature.Degree(snap.Curve, curvature.DefaultDegreeSamples)
	assert.False(t, math.IsNaN(d))
}
