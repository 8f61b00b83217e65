package spline

import (
	"github.com/ungerik/go3d/float64/vec3"
)

// SetPreControl sets the incoming control point of knot i.
func (ctrls *Controls) SetPreControl(i int, c vec3.T) {
	ctrls.prec = extendC(ctrls.prec, i, unknown())
	ctrls.prec[i] = c
}

// SetPostControl sets the outgoing control point of knot i.
func (ctrls *Controls) SetPostControl(i int, c vec3.T) {
	ctrls.postc = extendC(ctrls.postc, i, unknown())
	ctrls.postc[i] = c
}

// PreControl returns the incoming control point of knot i, or a NaN point
// if it has not been calculated.
func (ctrls *Controls) PreControl(i int) vec3.T {
	return getC(ctrls.prec, i, unknown())
}

// PostControl returns the outgoing control point of knot i, or a NaN point
// if it has not been calculated.
func (ctrls *Controls) PostControl(i int) vec3.T {
	return getC(ctrls.postc, i, unknown())
}
