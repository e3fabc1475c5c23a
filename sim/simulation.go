// Package sim owns the agent population and the environment and advances
// them one fixed time step at a time. A step computes contact forces from
// a consistent pre-step snapshot, runs vision and the two heuristics per
// agent, then integrates with explicit Euler. The caller decides pacing;
// Step performs no I/O and never blocks.
package sim

import (
	"math"

	"github.com/sgfost/pedestrians-with-cognitive-heuristics/geom"
	"github.com/sgfost/pedestrians-with-cognitive-heuristics/model"
	"github.com/sgfost/pedestrians-with-cognitive-heuristics/systems"
)

// destTolerance is how close to the destination an agent must be before
// the heading falls back to its current velocity direction.
const destTolerance = 0.1

// Hook is a scenario-supplied callback invoked after every step with the
// post-step state. Hooks may deactivate agents, retarget destinations or
// add agents; they run in registration order.
type Hook func(*Simulation)

// Simulation is the step orchestrator. Agents and the environment are
// supplied by a scenario; the simulation never constructs agents itself.
type Simulation struct {
	env    *model.Environment
	agents []*model.Pedestrian
	params model.Params

	pending []func(*model.Params)
	hooks   []Hook
	time    float64
}

// New builds a simulation for the given environment. Invalid parameters
// are rejected here, never during stepping.
func New(env *model.Environment, params model.Params) (*Simulation, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Simulation{env: env, params: params}, nil
}

// AddPedestrians appends agents to the population.
func (s *Simulation) AddPedestrians(peds []*model.Pedestrian) {
	s.agents = append(s.agents, peds...)
}

// Agents returns the live agent slice. Collaborators read per-agent state
// from it each step; step hooks may mutate it.
func (s *Simulation) Agents() []*model.Pedestrian {
	return s.agents
}

// Env returns the environment the simulation runs in.
func (s *Simulation) Env() *model.Environment {
	return s.env
}

// Params returns the current parameter snapshot.
func (s *Simulation) Params() model.Params {
	return s.params
}

// Time returns the simulated time in seconds.
func (s *Simulation) Time() float64 {
	return s.time
}

// OnStep registers a post-step hook.
func (s *Simulation) OnStep(h Hook) {
	s.hooks = append(s.hooks, h)
}

// UpdateParams queues a parameter mutation. Queued mutations are applied
// atomically at the start of the next step, never mid-step. Mutations that
// leave the parameters invalid are discarded.
func (s *Simulation) UpdateParams(mutate func(*model.Params)) {
	s.pending = append(s.pending, mutate)
}

// Reset replaces the environment and population and rewinds time.
func (s *Simulation) Reset(env *model.Environment, peds []*model.Pedestrian) {
	s.env = env
	s.agents = append(s.agents[:0:0], peds...)
	s.time = 0
}

// Step advances the simulation by one time step.
func (s *Simulation) Step() {
	s.applyPending()
	par := s.params

	// Forces come from the pre-step state, before anything moves.
	contact := systems.ContactForces(s.agents, s.env, par.ContactStiffness)

	// Decide accelerations for every agent against the same snapshot, so
	// the result is independent of iteration order.
	acc := make([]geom.Vec, len(s.agents))
	for i, p := range s.agents {
		if !p.Active {
			continue
		}
		heading := s.heading(p)
		samples := systems.Distances(p, heading, s.agents, s.env, par)
		dec := systems.ChooseDirection(samples, par.HorizonDistance)
		vdes := systems.DesiredVelocity(heading, dec, p.DesiredSpeed, par.Tau)

		relax := vdes.Sub(p.Vel).Scale(1 / par.Tau)
		acc[i] = relax.Add(contact.Forces[i].Scale(1 / p.Mass))
	}

	// Explicit Euler, then wrap.
	for i, p := range s.agents {
		if !p.Active {
			continue
		}
		p.Vel = p.Vel.Add(acc[i].Scale(par.TimeStep))
		p.Pos = p.Pos.Add(p.Vel.Scale(par.TimeStep))
		if s.env.Boundary == model.Periodic {
			p.Pos = s.env.Bounds.Wrap(p.Pos)
		}
	}

	s.time += par.TimeStep

	for _, h := range s.hooks {
		h(s)
	}
}

// heading returns the frame-center direction for one agent. Under
// periodic flow the heading is pinned by the agent's direction sign so it
// keeps walking through the crowd instead of shortcutting around the
// torus toward its destination's nearest image.
func (s *Simulation) heading(p *model.Pedestrian) float64 {
	if s.env.Boundary == model.Periodic {
		if p.Direction < 0 {
			return math.Pi
		}
		return 0
	}
	to := p.Dest.Sub(p.Pos)
	if to.Norm() < destTolerance {
		if p.Vel.Norm() > geom.Eps {
			return p.Vel.Angle()
		}
		return 0
	}
	return to.Angle()
}

func (s *Simulation) applyPending() {
	if len(s.pending) == 0 {
		return
	}
	next := s.params
	for _, mutate := range s.pending {
		mutate(&next)
	}
	s.pending = s.pending[:0]
	if next.Validate() != nil {
		return
	}
	s.params = next
}
