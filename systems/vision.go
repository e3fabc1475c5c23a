// Package systems implements the per-step stages of the pedestrian model:
// the vision function, the two behavioral heuristics, and the contact
// force pass. Every function here is a pure function of its inputs.
package systems

import (
	"math"

	"github.com/sgfost/pedestrians-with-cognitive-heuristics/geom"
	"github.com/sgfost/pedestrians-with-cognitive-heuristics/model"
)

// VisionSample is one sampled heading and the distance the agent could
// travel along it before an unavoidable collision.
type VisionSample struct {
	Alpha    float64 // relative to the agent's heading, in radians
	Distance float64 // in [0, HorizonDistance]
}

// SampleAngles returns the sampled relative angles covering
// [-half, half] at the given spacing, in ascending order.
func SampleAngles(half, resolution float64) []float64 {
	n := int(2*half/resolution+geom.Eps) + 1
	angles := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		angles = append(angles, -half+float64(i)*resolution)
	}
	return angles
}

// Distances evaluates the vision function of p for every sampled angle
// around the given heading. Other agents are seen at their nearest torus
// image when the boundary is periodic; the heading itself is never
// affected by wrapping.
func Distances(p *model.Pedestrian, heading float64, peds []*model.Pedestrian, env *model.Environment, par model.Params) []VisionSample {
	angles := SampleAngles(par.VisionHalfAngle, par.AngularResolution)
	samples := make([]VisionSample, len(angles))
	for i, alpha := range angles {
		dir := geom.Polar(heading+alpha, 1)
		dist := par.HorizonDistance
		for _, q := range peds {
			if q == p || !q.Active {
				continue
			}
			if d := agentObstacleDistance(p, dir, q, env, par.HorizonDistance); d < dist {
				dist = d
			}
		}
		for _, w := range env.Walls {
			if d := wallObstacleDistance(p.Pos, dir, p.Radius, w, par.HorizonDistance); d < dist {
				dist = d
			}
		}
		samples[i] = VisionSample{Alpha: alpha, Distance: dist}
	}
	return samples
}

// agentObstacleDistance returns how far p could travel along dir (at its
// desired speed, while q keeps its current velocity) before the two disks
// touch, capped at dmax.
func agentObstacleDistance(p *model.Pedestrian, dir geom.Vec, q *model.Pedestrian, env *model.Environment, dmax float64) float64 {
	d := q.Pos.Sub(p.Pos)
	if env.Boundary == model.Periodic {
		d = geom.MinimumImage(d, env.Bounds.Width(), env.Bounds.Height())
	}
	cand := dir.Scale(p.DesiredSpeed)
	rel := q.Vel.Sub(cand)
	combined := p.Radius + q.Radius

	a := rel.NormSq()
	c := d.NormSq() - combined*combined

	if c < 0 {
		// Already overlapping: blocked only when moving toward q.
		if cand.Dot(d) > 0 {
			return 0
		}
		return dmax
	}
	if a < geom.Eps {
		// Zero relative speed and not overlapping: never touches.
		return dmax
	}

	b := 2 * d.Dot(rel)
	disc := b*b - 4*a*c
	if disc < 0 {
		return dmax
	}
	sq := math.Sqrt(disc)
	t := (-b - sq) / (2 * a)
	if t <= 0 {
		t = (-b + sq) / (2 * a)
	}
	if t <= 0 {
		return dmax
	}
	return math.Min(p.DesiredSpeed*t, dmax)
}

// wallObstacleDistance returns how far a disk of the given radius could
// travel from pos along the unit direction dir before touching the wall,
// capped at dmax.
func wallObstacleDistance(pos, dir geom.Vec, radius float64, w *model.Wall, dmax float64) float64 {
	seg := w.P2.Sub(w.P1)
	cross := dir.Cross(seg)
	if math.Abs(cross) < geom.Eps {
		// Ray parallel to the wall: blocked at the perpendicular
		// distance only when heading into the wall's line.
		side := w.SignedDistance(pos)
		toward := dir.Dot(w.Normal)
		if side*toward < -geom.Eps {
			return geom.Clamp(math.Abs(side)-radius, 0, dmax)
		}
		return dmax
	}

	dp := w.P1.Sub(pos)
	t := dp.Cross(seg) / cross
	s := dp.Cross(dir) / cross
	if t < 0 {
		return dmax
	}
	if s < 0 || s > 1 {
		// Off the end of the segment: still a hit when the intersection
		// point grazes an endpoint within the body radius.
		end := w.P1
		if s > 1 {
			end = w.P2
		}
		hit := pos.Add(dir.Scale(t))
		if hit.Sub(end).Norm() > radius {
			return dmax
		}
	}
	return geom.Clamp(t-radius, 0, dmax)
}
