package scenario

import (
	"testing"

	"github.com/sgfost/pedestrians-with-cognitive-heuristics/geom"
	"github.com/sgfost/pedestrians-with-cognitive-heuristics/model"
)

func TestFactoryDefaults(t *testing.T) {
	f := NewFactory(42)
	for i := 0; i < 50; i++ {
		p := f.NewPedestrian(geom.Vec{}, geom.Vec{X: 10}, Options{})
		if p.Mass < 60 || p.Mass > 100 {
			t.Errorf("mass %g outside [60, 100]", p.Mass)
		}
		if p.DesiredSpeed < model.MinDesiredSpeed {
			t.Errorf("desired speed %g below floor", p.DesiredSpeed)
		}
		if p.Radius != p.Mass/model.MassToRadius {
			t.Errorf("radius %g != mass/%g", p.Radius, model.MassToRadius)
		}
		if p.Direction != 1 {
			t.Errorf("default direction = %d, want +1", p.Direction)
		}
		if !p.Active {
			t.Error("new agent not active")
		}
	}
}

func TestFactoryIDsSequentialAndReset(t *testing.T) {
	f := NewFactory(7)
	for i := 0; i < 5; i++ {
		p := f.NewPedestrian(geom.Vec{}, geom.Vec{}, Options{})
		if p.ID != i {
			t.Errorf("id = %d, want %d", p.ID, i)
		}
	}
	f.Reset()
	if p := f.NewPedestrian(geom.Vec{}, geom.Vec{}, Options{}); p.ID != 0 {
		t.Errorf("id after reset = %d, want 0", p.ID)
	}
}

func TestFactoryDeterministic(t *testing.T) {
	a := NewFactory(99)
	b := NewFactory(99)
	for i := 0; i < 20; i++ {
		pa := a.NewPedestrian(geom.Vec{}, geom.Vec{}, Options{})
		pb := b.NewPedestrian(geom.Vec{}, geom.Vec{}, Options{})
		if pa.Mass != pb.Mass || pa.DesiredSpeed != pb.DesiredSpeed {
			t.Fatalf("draw %d differs between identically seeded factories", i)
		}
	}
}

func TestFactoryExplicitOptions(t *testing.T) {
	f := NewFactory(1)
	p := f.NewPedestrian(geom.Vec{X: 1}, geom.Vec{X: 9}, Options{
		Mass:         80,
		DesiredSpeed: 1.5,
		Velocity:     geom.Vec{X: 0.3},
		Direction:    -1,
	})
	if p.Mass != 80 || p.DesiredSpeed != 1.5 || p.Direction != -1 {
		t.Errorf("options not honored: %+v", p)
	}
	if p.Vel.X != 0.3 {
		t.Errorf("velocity = %v, want (0.3, 0)", p.Vel)
	}
}

func TestPlaceInAreaNoOverlap(t *testing.T) {
	f := NewFactory(3)
	area := geom.NewRect(0, 0, 20, 20)
	peds := f.PlaceInArea(40, area, func(p geom.Vec) geom.Vec { return p.Add(geom.Vec{X: 5}) }, Options{})

	if len(peds) != 40 {
		t.Fatalf("placed %d agents, want 40", len(peds))
	}
	for i, p := range peds {
		if !area.Contains(p.Pos) {
			t.Errorf("agent %d at %v outside area", i, p.Pos)
		}
		for _, q := range peds[:i] {
			if gap := p.Pos.Sub(q.Pos).Norm() - p.Radius - q.Radius; gap < placementMargin-1e-9 {
				t.Errorf("agents %d and %d overlap (gap %g)", p.ID, q.ID, gap)
			}
		}
	}
}

func TestPlaceInAreaExhaustion(t *testing.T) {
	f := NewFactory(3)
	// A 1x1 m cell cannot hold 50 bodies; the bounded sampler must return
	// fewer rather than loop forever or fail.
	area := geom.NewRect(0, 0, 1, 1)
	peds := f.PlaceInArea(50, area, func(p geom.Vec) geom.Vec { return p }, Options{})

	if len(peds) >= 50 {
		t.Fatalf("placed %d agents in 1 m^2", len(peds))
	}
	if len(peds) == 0 {
		t.Fatal("placed no agents at all")
	}
}
