/*
Package curvature samples centerline curves for differential-geometry
quantities and detects critical points of their curvature profile.

Curvature is estimated locally by finite differences with a fixed parameter
step (Step). This is an approximation, not a closed-form curvature of the
underlying spline. The classification thresholds of the critical point
detector are calibrated against this estimate; switching to analytic
derivatives requires re-tuning them.

The cross product floor of the estimator is absolute. For curves whose
parameter speed is small, i.e. short curves, mild bends fall below it and
report a curvature of 0.

Critical points are local features of the sampled curvature profile:

	maximum     κ[i] > κ[i-1], κ[i] > κ[i+1], κ[i] > 0.001
	minimum     κ[i] < κ[i-1], κ[i] < κ[i+1]
	inflection  (κ[i-1] - κ[i]) * (κ[i] - κ[i+1]) < 0

checked in this order; the first matching rule decides. Minima carry no
noise floor: dips towards 0 mark straight sections.

# BSD License

# Copyright (c) The tubelab authors

All rights reserved.

Please refer to the license file for more information.
*/
package curvature

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'curvature'
func tracer() tracing.Trace {
	return tracing.Select("curvature")
}
