package scene

import (
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/tubelab/geom/curvature"
	"github.com/tubelab/geom/spline"
)

// Configuration keys read by OptionsFrom.
const (
	KeyTension        = "curve.tension"
	KeyKind           = "curve.kind"
	KeySamples        = "analysis.samples"
	KeyDegreeSamples  = "analysis.degreesamples"
	KeyDivisions      = "centerline.divisions"
	KeyExplode        = "connectors.explode"
	KeyFootprintEdges = "footprint.edges"
	KeyTubeWall       = "tube.wall"
)

// DefaultDivisions is the number of centerline chords handed to renderers.
const DefaultDivisions = 200

// DefaultFootprintEdges is the number of edges of a marker disc in the
// plan-view footprint.
const DefaultFootprintEdges = 24

// Options control how a snapshot is built from control points.
type Options struct {
	Tension        float64     // curve tension, 0.5 is neutral
	Kind           spline.Kind // knot parametrization
	Samples        int         // resolution of the critical point scan
	DegreeSamples  int         // resolution of the complexity score
	Divisions      int         // centerline samples are Divisions+1 points
	Explode        float64     // connector offset along the end tangents
	FootprintEdges int         // edges per marker disc
	TubeWall       float64     // rendered wall thickness of the tubes
}

// DefaultOptions returns the options of the standard pipe viewer.
func DefaultOptions() Options {
	return Options{
		Tension:        spline.DefaultTension,
		Kind:           spline.Centripetal,
		Samples:        curvature.DefaultSamples,
		DegreeSamples:  curvature.DefaultDegreeSamples,
		Divisions:      DefaultDivisions,
		FootprintEdges: DefaultFootprintEdges,
	}
}

// OptionsFrom reads options from a configuration. Keys which are not set,
// or hold unusable values, keep their default.
func OptionsFrom(conf schuko.Configuration) Options {
	opts := DefaultOptions()
	if conf == nil {
		return opts
	}
	if f, ok := getFloat(conf, KeyTension); ok {
		opts.Tension = f
	}
	if conf.IsSet(KeyKind) {
		if k, ok := spline.ParseKind(conf.GetString(KeyKind)); ok {
			opts.Kind = k
		} else {
			tracer().Errorf("unknown curve kind %q, using %s", conf.GetString(KeyKind), opts.Kind)
		}
	}
	if n, ok := getPositive(conf, KeySamples); ok {
		opts.Samples = n
	}
	if n, ok := getPositive(conf, KeyDegreeSamples); ok {
		opts.DegreeSamples = n
	}
	if n, ok := getPositive(conf, KeyDivisions); ok {
		opts.Divisions = n
	}
	if f, ok := getFloat(conf, KeyExplode); ok {
		opts.Explode = f
	}
	if n, ok := getPositive(conf, KeyFootprintEdges); ok {
		opts.FootprintEdges = n
	}
	if f, ok := getFloat(conf, KeyTubeWall); ok {
		opts.TubeWall = f
	}
	return opts
}

// schuko configurations have no float getter
func getFloat(conf schuko.Configuration, key string) (float64, bool) {
	if !conf.IsSet(key) {
		return 0, false
	}
	s := strings.TrimSpace(conf.GetString(key))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		tracer().Errorf("configuration %s = %q is not a number", key, s)
		return 0, false
	}
	return f, true
}

func getPositive(conf schuko.Configuration, key string) (int, bool) {
	if !conf.IsSet(key) {
		return 0, false
	}
	n := conf.GetInt(key)
	if n <= 0 {
		tracer().Errorf("configuration %s = %q is not a positive integer", key, conf.GetString(key))
		return 0, false
	}
	return n, true
}
