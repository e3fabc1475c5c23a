// Package scenario supplies the agent-creation facility and the built-in
// scenario definitions. Scenarios are data (walls, boundary kind, initial
// agents, optional step hooks) handed to the simulation, not behavior the
// core depends on.
package scenario

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sgfost/pedestrians-with-cognitive-heuristics/geom"
	"github.com/sgfost/pedestrians-with-cognitive-heuristics/model"
)

// Sampling defaults for pedestrians, after Moussaid et al.
const (
	defaultMassMin    = 60.0 // kg
	defaultMassMax    = 100.0
	defaultSpeedMean  = 1.3 // m/s
	defaultSpeedSigma = 0.2
)

// placementMargin is the extra clearance required between freshly placed
// bodies, in metres.
const placementMargin = 0.05

// Options overrides the sampled defaults when creating a pedestrian.
// Zero values mean "use the default": sample mass and desired speed, start
// at rest, walk in the +1 direction.
type Options struct {
	Mass         float64
	DesiredSpeed float64
	Velocity     geom.Vec
	Direction    int
}

// Factory creates pedestrians. It owns the identity counter and the
// seeded random source, so runs are reproducible and parallel tests stay
// independent. Reset restarts both; a scenario calls it whenever it
// reinitializes.
type Factory struct {
	seed  uint64
	rng   *rand.Rand
	mass  distuv.Uniform
	speed distuv.Normal
	next  int
}

// NewFactory returns a factory with a fresh counter and a source seeded
// from seed.
func NewFactory(seed uint64) *Factory {
	f := &Factory{seed: seed}
	f.Reset()
	return f
}

// Reset restarts the identity counter and reseeds the random source.
func (f *Factory) Reset() {
	f.rng = rand.New(rand.NewPCG(f.seed, f.seed^0x9e3779b97f4a7c15))
	f.mass = distuv.Uniform{Min: defaultMassMin, Max: defaultMassMax, Src: f.rng}
	f.speed = distuv.Normal{Mu: defaultSpeedMean, Sigma: defaultSpeedSigma, Src: f.rng}
	f.next = 0
}

// NewPedestrian creates one agent at pos walking toward dest, assigning
// the next identity. Unset options are sampled: mass from U[60,100] kg,
// desired speed from max(0.5, N(1.3, 0.2)) m/s.
func (f *Factory) NewPedestrian(pos, dest geom.Vec, o Options) *model.Pedestrian {
	mass := o.Mass
	if mass <= 0 {
		mass = f.mass.Rand()
	}
	speed := o.DesiredSpeed
	if speed <= 0 {
		speed = f.speed.Rand()
	}
	dir := o.Direction
	if dir == 0 {
		dir = 1
	}
	id := f.next
	f.next++
	return model.NewPedestrian(id, pos, dest, mass, speed, o.Velocity, dir)
}

// PlaceInArea rejection-samples count agents inside area without body
// overlap (including the placement margin) against previously placed
// agents. Placement is bounded to count*100 position attempts overall and
// may return fewer agents than requested when packing fails; callers must
// check the returned length.
func (f *Factory) PlaceInArea(count int, area geom.Rect, destFn func(geom.Vec) geom.Vec, o Options) []*model.Pedestrian {
	placed := make([]*model.Pedestrian, 0, count)
	budget := count * 100
	for len(placed) < count {
		opts := o
		if opts.Mass <= 0 {
			opts.Mass = f.mass.Rand()
		}
		if opts.DesiredSpeed <= 0 {
			opts.DesiredSpeed = f.speed.Rand()
		}
		pos, ok := f.findSpot(&budget, area, opts.Mass/model.MassToRadius, placed)
		if !ok {
			break
		}
		placed = append(placed, f.NewPedestrian(pos, destFn(pos), opts))
	}
	return placed
}

// findSpot draws positions until one clears all placed bodies or the
// attempt budget runs out.
func (f *Factory) findSpot(budget *int, area geom.Rect, radius float64, placed []*model.Pedestrian) (geom.Vec, bool) {
	for *budget > 0 {
		*budget--
		pos := geom.Vec{
			X: area.Min.X + f.rng.Float64()*area.Width(),
			Y: area.Min.Y + f.rng.Float64()*area.Height(),
		}
		clear := true
		for _, q := range placed {
			if pos.Sub(q.Pos).Norm() < radius+q.Radius+placementMargin {
				clear = false
				break
			}
		}
		if clear {
			return pos, true
		}
	}
	return geom.Vec{}, false
}
