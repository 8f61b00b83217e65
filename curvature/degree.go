package curvature

import "math"

// DefaultDegreeSamples is the default resolution of Degree.
const DefaultDegreeSamples = 100

// MaxDegree is the upper bound of the complexity score.
const MaxDegree = 10

// Degree scores the overall complexity of a curve: the mean curvature over
// samples+1 parameters, scaled by 1000 and capped at MaxDegree.
func Degree(c Curve, samples int) float64 {
	kappa := Profile(c, samples)
	var total float64
	for _, k := range kappa {
		total += k
	}
	return math.Min(MaxDegree, total/float64(len(kappa))*1000)
}
