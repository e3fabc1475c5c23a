package scenario

import (
	"fmt"

	"github.com/sgfost/pedestrians-with-cognitive-heuristics/config"
	"github.com/sgfost/pedestrians-with-cognitive-heuristics/geom"
	"github.com/sgfost/pedestrians-with-cognitive-heuristics/model"
	"github.com/sgfost/pedestrians-with-cognitive-heuristics/sim"
)

// spawnInset keeps spawn areas clear of the bounding walls.
const spawnInset = 0.5

// Result is everything a scenario hands to the simulation.
type Result struct {
	Env    *model.Environment
	Agents []*model.Pedestrian
	Hooks  []sim.Hook
}

// Build dispatches on the scenario name from the config.
func Build(f *Factory, cfg *config.Config) (*Result, error) {
	switch cfg.Scenario.Name {
	case "corridor":
		return Corridor(f, cfg)
	case "room":
		return Room(f, cfg)
	case "open":
		return Open(f, cfg)
	}
	return nil, fmt.Errorf("unknown scenario %q", cfg.Scenario.Name)
}

// Corridor is a periodic bidirectional corridor: two horizontal walls,
// half the agents walking each way. The setting for lane formation and
// stop-and-go waves.
func Corridor(f *Factory, cfg *config.Config) (*Result, error) {
	f.Reset()
	w, h := cfg.World.Width, cfg.World.Height
	env := &model.Environment{
		Boundary: model.Periodic,
		Bounds:   geom.NewRect(0, 0, w, h),
		Walls: []*model.Wall{
			model.MustWall(geom.Vec{X: 0, Y: 0}, geom.Vec{X: w, Y: 0}),
			model.MustWall(geom.Vec{X: 0, Y: h}, geom.Vec{X: w, Y: h}),
		},
	}

	area := geom.NewRect(0, spawnInset, w, h-spawnInset)
	count := cfg.Population.Count
	right := f.PlaceInArea(count/2, area,
		func(p geom.Vec) geom.Vec { return p.Add(geom.Vec{X: w}) },
		Options{Direction: 1})
	left := f.PlaceInArea(count-count/2, area,
		func(p geom.Vec) geom.Vec { return p.Sub(geom.Vec{X: w}) },
		Options{Direction: -1})

	return &Result{Env: env, Agents: append(right, left...)}, nil
}

// Room is a closed room with a door in the right wall. Agents head for
// the door; a step hook despawns everyone who has left through it.
func Room(f *Factory, cfg *config.Config) (*Result, error) {
	f.Reset()
	w, h := cfg.World.Width, cfg.World.Height
	door := cfg.Scenario.DoorWidth
	if door <= 0 || door >= h {
		return nil, fmt.Errorf("door width %g does not fit a %g m wall", door, h)
	}

	env := &model.Environment{
		Boundary: model.Closed,
		Bounds:   geom.NewRect(0, 0, w, h),
		Walls: []*model.Wall{
			model.MustWall(geom.Vec{X: 0, Y: 0}, geom.Vec{X: w, Y: 0}),
			model.MustWall(geom.Vec{X: 0, Y: h}, geom.Vec{X: w, Y: h}),
			model.MustWall(geom.Vec{X: 0, Y: 0}, geom.Vec{X: 0, Y: h}),
			model.MustWall(geom.Vec{X: w, Y: 0}, geom.Vec{X: w, Y: (h - door) / 2}),
			model.MustWall(geom.Vec{X: w, Y: (h + door) / 2}, geom.Vec{X: w, Y: h}),
		},
	}

	// Everyone aims past the door so they actually walk through it.
	exit := geom.Vec{X: w + 1, Y: h / 2}
	area := geom.NewRect(spawnInset, spawnInset, w/2, h-spawnInset)
	agents := f.PlaceInArea(cfg.Population.Count, area,
		func(geom.Vec) geom.Vec { return exit }, Options{})

	despawn := func(s *sim.Simulation) {
		for _, p := range s.Agents() {
			if p.Active && p.Pos.X > w+0.5 {
				p.Active = false
			}
		}
	}

	return &Result{Env: env, Agents: agents, Hooks: []sim.Hook{despawn}}, nil
}

// Open is an unbounded field: no walls, agents crossing from the left
// edge to the right.
func Open(f *Factory, cfg *config.Config) (*Result, error) {
	f.Reset()
	w, h := cfg.World.Width, cfg.World.Height
	env := &model.Environment{
		Boundary: model.Open,
		Bounds:   geom.NewRect(0, 0, w, h),
	}

	area := geom.NewRect(0, 0, w/4, h)
	agents := f.PlaceInArea(cfg.Population.Count, area,
		func(p geom.Vec) geom.Vec { return geom.Vec{X: w, Y: p.Y} }, Options{})

	return &Result{Env: env, Agents: agents}, nil
}
