package markers

import (
	"github.com/tubelab/geom"
	"github.com/tubelab/geom/curvature"
	"github.com/ungerik/go3d/float64/vec3"
)

// Dimensions of an end connector, in local coordinates.
const (
	ConnectorRadius = 10
	ConnectorLength = 30
	FlangeOffset    = 12 // flange center along the connector axis
)

// End identifies the end of a centerline a connector sits on.
type End int8

// Centerline ends.
const (
	Start End = iota
	Finish
)

func (e End) String() string {
	if e == Finish {
		return "finish"
	}
	return "start"
}

// MarshalText encodes an end as its name.
func (e End) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// Connector is the placement of an end connector.
//
// Placement maps local connector coordinates to world coordinates: the
// local +Y axis runs along Direction and the local origin is Position.
type Connector struct {
	End       End     `json:"end"`
	Anchor    vec3.T  `json:"anchor"`    // end point of the centerline
	Position  vec3.T  `json:"position"`  // anchor shifted by the explode distance
	Direction vec3.T  `json:"direction"` // unit tangent of the centerline
	Placement geom.AT `json:"-"`
}

// Flange returns the world position of the connector flange.
func (c Connector) Flange() vec3.T {
	return c.Placement.Transform(geom.V(0, FlangeOffset, 0))
}

// Connectors places the connectors at t=0 and t=1 of a centerline. Both are
// oriented along the direction of travel and shifted by explode along it.
func Connectors(c curvature.Curve, explode float64) [2]Connector {
	if !geom.IsFinite(explode) {
		explode = 0
	}
	return [2]Connector{
		connector(c, Start, 0, explode),
		connector(c, Finish, 1, explode),
	}
}

func connector(c curvature.Curve, end End, t, explode float64) Connector {
	anchor := c.Position(t)
	dir := c.Tangent(t)
	if dir.Length() <= geom.Epsilon {
		tracer().Errorf("centerline has no direction at %s, connector points up", end)
		dir = vec3.UnitY
	}
	shift := dir.Scaled(explode)
	pos := vec3.Add(&anchor, &shift)
	return Connector{
		End:       end,
		Anchor:    anchor,
		Position:  pos,
		Direction: dir,
		Placement: geom.Rotation(vec3.UnitY, dir).Combine(geom.Translation(pos)),
	}
}
