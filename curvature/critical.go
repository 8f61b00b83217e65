package curvature

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/ungerik/go3d/float64/vec3"
)

// DefaultSamples is the default resolution of the curvature profile.
const DefaultSamples = 200

// Calibration of the critical point detector.
const (
	MaximumFloor    = 0.001 // maxima with κ at or below are noise
	HighCurvature   = 0.01  // κ above is high severity
	MediumCurvature = 0.005 // κ above is medium severity
	angleScale      = 10    // κ·angleScale is the sine of the deflection angle
)

// Type classifies the shape of the curvature profile at a sample.
type Type int8

// Profile shapes. Ordinary samples are not critical points.
const (
	Ordinary Type = iota
	Maximum
	Minimum
	Inflection
)

var typeNames = [...]string{"ordinary", "maximum", "minimum", "inflection"}

func (tp Type) String() string {
	if tp < 0 || int(tp) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int8(tp))
	}
	return typeNames[tp]
}

// MarshalText encodes a type as its name.
func (tp Type) MarshalText() ([]byte, error) {
	if tp < 0 || int(tp) >= len(typeNames) {
		return nil, fmt.Errorf("cannot marshal invalid critical point type %d", int8(tp))
	}
	return []byte(tp.String()), nil
}

// UnmarshalText decodes a type name.
func (tp *Type) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))
	for i, name := range typeNames {
		if name == s {
			*tp = Type(i)
			return nil
		}
	}
	return fmt.Errorf("unknown critical point type %q", s)
}

// Severity grades the stress risk at a critical point.
type Severity int8

// Severity levels, ordered.
const (
	Low Severity = iota
	Medium
	High
)

var severityNames = [...]string{"low", "medium", "high"}

func (sv Severity) String() string {
	if sv < 0 || int(sv) >= len(severityNames) {
		return fmt.Sprintf("Severity(%d)", int8(sv))
	}
	return severityNames[sv]
}

// MarshalText encodes a severity as its name.
func (sv Severity) MarshalText() ([]byte, error) {
	if sv < 0 || int(sv) >= len(severityNames) {
		return nil, fmt.Errorf("cannot marshal invalid severity %d", int8(sv))
	}
	return []byte(sv.String()), nil
}

// UnmarshalText decodes a severity name.
func (sv *Severity) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))
	for i, name := range severityNames {
		if name == s {
			*sv = Severity(i)
			return nil
		}
	}
	return fmt.Errorf("unknown severity %q", s)
}

// SeverityOf grades a curvature value.
func SeverityOf(kappa float64) Severity {
	switch {
	case kappa > HighCurvature:
		return High
	case kappa > MediumCurvature:
		return Medium
	}
	return Low
}

// AngleOf returns the deflection angle estimate in degrees for a curvature
// value. It saturates at 90° for κ ≥ 0.1.
func AngleOf(kappa float64) float64 {
	return math.Asin(math.Min(1, kappa*angleScale)) * 180 / math.Pi
}

// Classify determines the shape of a curvature profile at curr, given its
// neighbours. The first matching rule wins: maximum (above MaximumFloor),
// minimum, inflection. Otherwise the sample is Ordinary.
func Classify(prev, curr, next float64) Type {
	if curr > prev && curr > next && curr > MaximumFloor {
		return Maximum
	}
	if curr < prev && curr < next {
		return Minimum
	}
	if (prev-curr)*(curr-next) < 0 {
		return Inflection
	}
	return Ordinary
}

// CriticalPoint is a classified sample of the curvature profile.
type CriticalPoint struct {
	T         float64
	Position  vec3.T
	Tangent   vec3.T
	Curvature float64
	Radius    float64 // +Inf where the curve is locally straight
	Angle     float64 // degrees
	Type      Type
	Severity  Severity
}

func (cp CriticalPoint) String() string {
	return fmt.Sprintf("%s@%.3f[κ=%.5f,%s]", cp.Type, cp.T, cp.Curvature, cp.Severity)
}

type criticalPointJSON struct {
	T         float64  `json:"t"`
	Position  vec3.T   `json:"position"`
	Tangent   vec3.T   `json:"tangent"`
	Curvature float64  `json:"curvature"`
	Radius    *float64 `json:"curvatureRadius"`
	Angle     float64  `json:"angle"`
	Type      Type     `json:"type"`
	Severity  Severity `json:"severity"`
}

// MarshalJSON encodes a critical point. An infinite radius is encoded as null.
func (cp CriticalPoint) MarshalJSON() ([]byte, error) {
	j := criticalPointJSON{
		T:         cp.T,
		Position:  cp.Position,
		Tangent:   cp.Tangent,
		Curvature: cp.Curvature,
		Angle:     cp.Angle,
		Type:      cp.Type,
		Severity:  cp.Severity,
	}
	if !math.IsInf(cp.Radius, 0) && !math.IsNaN(cp.Radius) {
		r := cp.Radius
		j.Radius = &r
	}
	return json.Marshal(j)
}

// UnmarshalJSON decodes a critical point. A null radius decodes to +Inf.
func (cp *CriticalPoint) UnmarshalJSON(data []byte) error {
	var j criticalPointJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*cp = CriticalPoint{
		T:         j.T,
		Position:  j.Position,
		Tangent:   j.Tangent,
		Curvature: j.Curvature,
		Radius:    math.Inf(1),
		Angle:     j.Angle,
		Type:      j.Type,
		Severity:  j.Severity,
	}
	if j.Radius != nil {
		cp.Radius = *j.Radius
	}
	return nil
}

// Profile samples the curvature of c at samples+1 parameters t = i/samples.
// samples < 1 is raised to 1.
func Profile(c Curve, samples int) []float64 {
	if samples < 1 {
		samples = 1
	}
	kappa := make([]float64, samples+1)
	for i := range kappa {
		kappa[i] = Curvature(c, float64(i)/float64(samples))
	}
	return kappa
}

// FindCriticalPoints scans the curvature profile of c for maxima, minima
// and inflections. The result is ordered by ascending T; it is empty for
// curves with flat curvature. The end samples of the profile are never
// classified, so samples < 2 yields no critical points.
func FindCriticalPoints(c Curve, samples int) []CriticalPoint {
	if samples < 1 {
		samples = 1
	}
	kappa := Profile(c, samples)
	cps := make([]CriticalPoint, 0)
	for i := 1; i < samples; i++ {
		tp := Classify(kappa[i-1], kappa[i], kappa[i+1])
		if tp == Ordinary {
			continue
		}
		t := float64(i) / float64(samples)
		cps = append(cps, CriticalPoint{
			T:         t,
			Position:  c.Position(t),
			Tangent:   c.Tangent(t),
			Curvature: kappa[i],
			Radius:    Radius(c, t),
			Angle:     AngleOf(kappa[i]),
			Type:      tp,
			Severity:  SeverityOf(kappa[i]),
		})
	}
	tracer().Debugf("found %d critical points in %d samples", len(cps), samples+1)
	return cps
}
