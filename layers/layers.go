/*
Package layers describes the concentric layers of a pipe wall and their
nominal material properties.

# BSD License

# Copyright (c) The tubelab authors

All rights reserved.

Please refer to the license file for more information.
*/
package layers

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'layers'
func tracer() tracing.Trace {
	return tracing.Select("layers")
}

// Layer identifies a wall layer, from the outside in.
type Layer int8

// Wall layers.
const (
	Outer Layer = iota
	Middle
	Barrier
	Inner
)

// All lists the layers from the outside in.
var All = []Layer{Outer, Middle, Barrier, Inner}

var layerNames = [...]string{"outer", "middle", "barrier", "inner"}

func (l Layer) String() string {
	if l < 0 || int(l) >= len(layerNames) {
		return fmt.Sprintf("Layer(%d)", int8(l))
	}
	return layerNames[l]
}

// MarshalText encodes a layer as its name.
func (l Layer) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Parse finds a layer by name. Unknown names yield Outer and false.
func Parse(s string) (Layer, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range layerNames {
		if name == s {
			return Layer(i), true
		}
	}
	return Outer, false
}

// WallThickness is the nominal thickness of every layer.
const WallThickness = 0.5

var defaultRadius = [...]float64{8, 7.2, 6.6, 6.2}

// DefaultRadius returns the tube radius a layer is rendered with.
func DefaultRadius(l Layer) float64 {
	if l < 0 || int(l) >= len(defaultRadius) {
		return defaultRadius[Outer]
	}
	return defaultRadius[l]
}

var colors = [...]string{"#3ba", "#e7b", "#f5d142", "#49f"}

// Color returns the display color of a layer.
func Color(l Layer) string {
	if l < 0 || int(l) >= len(colors) {
		return colors[Outer]
	}
	return colors[l]
}

// DefaultTubeWall is the rendered wall thickness of a tube.
const DefaultTubeWall = 1.0

// minTubeBore keeps the inner surface of thick tubes from collapsing.
const minTubeBore = 0.1

// Tube describes the hollow tube a layer is rendered as.
type Tube struct {
	Layer       Layer   `json:"layer"`
	Radius      float64 `json:"radius"`
	InnerRadius float64 `json:"innerRadius"`
	Color       string  `json:"color"`
}

// TubeOf returns the tube of a layer at its default radius with the given
// wall thickness. Non-positive thickness yields DefaultTubeWall.
func TubeOf(l Layer, wall float64) Tube {
	if !(wall > 0) {
		wall = DefaultTubeWall
	}
	r := DefaultRadius(l)
	return Tube{
		Layer:       l,
		Radius:      r,
		InnerRadius: math.Max(minTubeBore, r-wall),
		Color:       Color(l),
	}
}

// MaterialProperties are the nominal ratings of a layer.
type MaterialProperties struct {
	Layer         Layer   `json:"layer"`
	Material      string  `json:"material"`
	OuterDiameter float64 `json:"outerDiameter"`
	InnerDiameter float64 `json:"innerDiameter"`
	WallThickness float64 `json:"wallThickness"`
	Pressure      float64 `json:"pressure"`    // psi
	Temperature   float64 `json:"temperature"` // °F
	FlowRate      float64 `json:"flowRate"`    // GPM
}

type rating struct {
	material              string
	pressure, temp, flows float64
}

var ratings = [...]rating{
	Outer:   {"Aço Inoxidável 316L", 150, 450, 100},
	Middle:  {"Aço Carbono A106", 200, 400, 120},
	Barrier: {"Revestimento PTFE", 100, 350, 80},
	Inner:   {"Inconel 625", 300, 600, 150},
}

// Info returns the material properties of a layer of the given radius.
// Unknown layers are reported as Outer.
func Info(l Layer, radius float64) MaterialProperties {
	if l < 0 || int(l) >= len(ratings) {
		tracer().Debugf("unknown layer %d, using outer", int8(l))
		l = Outer
	}
	r := ratings[l]
	return MaterialProperties{
		Layer:         l,
		Material:      r.material,
		OuterDiameter: 2 * radius,
		InnerDiameter: 2 * (radius - WallThickness),
		WallThickness: WallThickness,
		Pressure:      r.pressure,
		Temperature:   r.temp,
		FlowRate:      r.flows,
	}
}

// InfoByName is Info for a layer name, as found in client requests.
func InfoByName(name string, radius float64) MaterialProperties {
	l, _ := Parse(name)
	return Info(l, radius)
}

// Table returns the properties of all layers at their default radius.
func Table() []MaterialProperties {
	t := make([]MaterialProperties, len(All))
	for i, l := range All {
		t[i] = Info(l, DefaultRadius(l))
	}
	return t
}
