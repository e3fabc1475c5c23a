package sim

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/sgfost/pedestrians-with-cognitive-heuristics/systems"
)

// Metrics is an aggregate snapshot of the current state.
type Metrics struct {
	Time            float64
	Active          int
	MeanSpeed       float64
	Occupancy       float64 // summed body area over bounds area
	MeanCompression float64 // mean summed overlap depth per active agent
}

// Metrics derives the aggregate snapshot from the current state. It is a
// pure read: nothing is mutated and no step state is consumed.
func (s *Simulation) Metrics() Metrics {
	m := Metrics{Time: s.time}

	contact := systems.ContactForces(s.agents, s.env, s.params.ContactStiffness)

	var speeds []float64
	var bodyArea, compression float64
	for i, p := range s.agents {
		if !p.Active {
			continue
		}
		m.Active++
		speeds = append(speeds, p.Speed())
		bodyArea += math.Pi * p.Radius * p.Radius
		compression += contact.Compression[i]
	}
	if m.Active == 0 {
		return m
	}

	m.MeanSpeed = stat.Mean(speeds, nil)
	if area := s.env.Bounds.Area(); area > 0 {
		m.Occupancy = bodyArea / area
	}
	m.MeanCompression = compression / float64(m.Active)
	return m
}
