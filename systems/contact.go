package systems

import (
	"github.com/sgfost/pedestrians-with-cognitive-heuristics/geom"
	"github.com/sgfost/pedestrians-with-cognitive-heuristics/model"
)

// ContactResult holds the output of one whole-population force pass.
// Forces and Compression are indexed like the input slice; inactive
// agents get zero entries.
type ContactResult struct {
	Forces      []geom.Vec
	Compression []float64
}

// ContactForces runs the penalty-force pass over the pre-step state.
// Each overlapping agent pair contributes k*overlap along the line of
// centers, equal and opposite; each agent-wall overlap contributes
// k*overlap along the wall normal, oriented away from the wall.
// Compression accumulates the overlap depths per agent.
func ContactForces(peds []*model.Pedestrian, env *model.Environment, k float64) ContactResult {
	res := ContactResult{
		Forces:      make([]geom.Vec, len(peds)),
		Compression: make([]float64, len(peds)),
	}

	for i, p := range peds {
		if !p.Active {
			continue
		}
		for j := i + 1; j < len(peds); j++ {
			q := peds[j]
			if !q.Active {
				continue
			}
			d := q.Pos.Sub(p.Pos)
			if env.Boundary == model.Periodic {
				d = geom.MinimumImage(d, env.Bounds.Width(), env.Bounds.Height())
			}
			dist := d.Norm()
			overlap := p.Radius + q.Radius - dist
			if overlap <= 0 {
				continue
			}
			res.Compression[i] += overlap
			res.Compression[j] += overlap
			if dist < geom.Eps {
				// Coincident centers: depth is recorded but there is
				// no direction to push along.
				continue
			}
			f := d.Scale(k * overlap / dist)
			res.Forces[i] = res.Forces[i].Sub(f)
			res.Forces[j] = res.Forces[j].Add(f)
		}

		for _, w := range env.Walls {
			dist, _ := w.DistanceTo(p.Pos)
			overlap := p.Radius - dist
			if overlap <= 0 {
				continue
			}
			res.Compression[i] += overlap
			n := w.Normal
			if w.SignedDistance(p.Pos) < 0 {
				n = n.Scale(-1)
			}
			res.Forces[i] = res.Forces[i].Add(n.Scale(k * overlap))
		}
	}
	return res
}
