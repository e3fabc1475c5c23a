// Package model holds the entities of the pedestrian simulation: agents,
// walls, the environment and the tunable parameters.
package model

import "github.com/sgfost/pedestrians-with-cognitive-heuristics/geom"

// MassToRadius converts body mass in kg to a body radius in metres.
// An 80 kg pedestrian has a 0.25 m radius.
const MassToRadius = 320.0

// MinDesiredSpeed is the floor applied to sampled desired speeds, in m/s.
const MinDesiredSpeed = 0.5

// Pedestrian is one simulated agent. Mass and Radius are set once at
// creation and never change; Radius is always Mass / MassToRadius.
// Inactive agents are excluded from every interaction but stay in storage
// so their identity remains stable for collaborators.
type Pedestrian struct {
	ID           int
	Pos          geom.Vec
	Vel          geom.Vec
	Mass         float64
	Radius       float64
	DesiredSpeed float64
	Dest         geom.Vec
	Direction    int // +1 or -1, only used for heading under periodic flow
	Active       bool
}

// NewPedestrian builds an agent with the derived radius and the desired
// speed floor applied. The id is assigned by the caller's factory.
func NewPedestrian(id int, pos, dest geom.Vec, mass, desiredSpeed float64, vel geom.Vec, direction int) *Pedestrian {
	if desiredSpeed < MinDesiredSpeed {
		desiredSpeed = MinDesiredSpeed
	}
	if direction >= 0 {
		direction = 1
	} else {
		direction = -1
	}
	return &Pedestrian{
		ID:           id,
		Pos:          pos,
		Vel:          vel,
		Mass:         mass,
		Radius:       mass / MassToRadius,
		DesiredSpeed: desiredSpeed,
		Dest:         dest,
		Direction:    direction,
		Active:       true,
	}
}

// Speed returns the magnitude of the agent's velocity.
func (p *Pedestrian) Speed() float64 {
	return p.Vel.Norm()
}
