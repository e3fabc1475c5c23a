package systems

import (
	"math"

	"github.com/sgfost/pedestrians-with-cognitive-heuristics/geom"
)

// Decision is the outcome of the direction heuristic: the chosen relative
// angle and the obstacle distance seen along it.
type Decision struct {
	Alpha    float64
	Distance float64
}

// ChooseDirection picks the sampled angle minimizing
//
//	d(alpha) = dmax^2 + f^2 - 2*dmax*f*cos(alpha)
//
// which trades closeness to the destination direction (alpha = 0 in the
// local frame) against the free distance f along alpha. Ties go to the
// first minimum in ascending angle order.
func ChooseDirection(samples []VisionSample, dmax float64) Decision {
	best := Decision{Distance: dmax}
	bestScore := math.Inf(1)
	for _, s := range samples {
		score := dmax*dmax + s.Distance*s.Distance - 2*dmax*s.Distance*math.Cos(s.Alpha)
		if score < bestScore {
			bestScore = score
			best = Decision{Alpha: s.Alpha, Distance: s.Distance}
		}
	}
	return best
}

// ChooseSpeed caps the desired speed so the agent could stop within the
// free distance in one relaxation time.
func ChooseSpeed(desiredSpeed, freeDistance, tau float64) float64 {
	if tau < geom.Eps {
		return desiredSpeed
	}
	return math.Min(desiredSpeed, freeDistance/tau)
}

// DesiredVelocity composes the two heuristics into the velocity the agent
// tries to relax toward.
func DesiredVelocity(heading float64, dec Decision, desiredSpeed, tau float64) geom.Vec {
	return geom.Polar(heading+dec.Alpha, ChooseSpeed(desiredSpeed, dec.Distance, tau))
}
