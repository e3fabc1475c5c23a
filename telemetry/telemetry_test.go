package telemetry

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sgfost/pedestrians-with-cognitive-heuristics/geom"
	"github.com/sgfost/pedestrians-with-cognitive-heuristics/model"
	"github.com/sgfost/pedestrians-with-cognitive-heuristics/sim"
)

func TestCollectorWindows(t *testing.T) {
	c := NewCollector(1.0)
	// Two windows: [0,1) with speeds 1 and 2, [1,2) with speed 4.
	c.Record(sim.Metrics{Time: 0.2, Active: 10, MeanSpeed: 1})
	c.Record(sim.Metrics{Time: 0.7, Active: 10, MeanSpeed: 2})
	c.Record(sim.Metrics{Time: 1.3, Active: 8, MeanSpeed: 4})

	ws := c.Windows()
	if len(ws) != 2 {
		t.Fatalf("window count = %d, want 2", len(ws))
	}
	if ws[0].Samples != 2 || math.Abs(ws[0].MeanSpeed-1.5) > 1e-12 {
		t.Errorf("window 0 = %+v, want 2 samples, mean speed 1.5", ws[0])
	}
	if ws[0].WindowEnd != 1.0 {
		t.Errorf("window 0 end = %v, want 1.0", ws[0].WindowEnd)
	}
	if ws[1].Samples != 1 || ws[1].MeanSpeed != 4 {
		t.Errorf("window 1 = %+v, want 1 sample, mean speed 4", ws[1])
	}
	if ws[1].MeanActive != 8 {
		t.Errorf("window 1 mean active = %v, want 8", ws[1].MeanActive)
	}
}

func TestCollectorSkipsEmptyWindows(t *testing.T) {
	c := NewCollector(1.0)
	c.Record(sim.Metrics{Time: 0.5, MeanSpeed: 1})
	c.Record(sim.Metrics{Time: 3.5, MeanSpeed: 2})

	ws := c.Windows()
	if len(ws) != 2 {
		t.Fatalf("window count = %d, want 2 (gaps skipped)", len(ws))
	}
	if ws[1].WindowEnd != 4.0 {
		t.Errorf("second window end = %v, want 4.0", ws[1].WindowEnd)
	}
}

func TestCollectorSpeedStdDev(t *testing.T) {
	c := NewCollector(10)
	for _, v := range []float64{1, 2, 3, 4, 5} {
		c.Record(sim.Metrics{Time: v * 0.1, MeanSpeed: v})
	}
	ws := c.Windows()
	if len(ws) != 1 {
		t.Fatalf("window count = %d, want 1", len(ws))
	}
	// Sample standard deviation of 1..5.
	if want := math.Sqrt(2.5); math.Abs(ws[0].SpeedStdDev-want) > 1e-12 {
		t.Errorf("stddev = %v, want %v", ws[0].SpeedStdDev, want)
	}
}

func TestLocalDensity(t *testing.T) {
	peds := []*model.Pedestrian{
		model.NewPedestrian(0, geom.Vec{X: 5, Y: 5}, geom.Vec{}, 80, 1.3, geom.Vec{}, 1),
		model.NewPedestrian(1, geom.Vec{X: 5.5, Y: 5}, geom.Vec{}, 80, 1.3, geom.Vec{}, 1),
		model.NewPedestrian(2, geom.Vec{X: 50, Y: 50}, geom.Vec{}, 80, 1.3, geom.Vec{}, 1),
	}

	near := LocalDensity(peds, geom.Vec{X: 5, Y: 5}, 1)
	far := LocalDensity(peds, geom.Vec{X: 30, Y: 30}, 1)
	if near <= far {
		t.Errorf("density near cluster (%v) not above empty space (%v)", near, far)
	}

	peds[1].Active = false
	less := LocalDensity(peds, geom.Vec{X: 5, Y: 5}, 1)
	if less >= near {
		t.Error("inactive agent still counted")
	}
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatal(err)
	}
	if om != nil {
		t.Fatal("empty dir should disable output")
	}
	// All methods are no-ops on nil.
	if err := om.WriteRows([]Row{{Time: 1}}); err != nil {
		t.Errorf("WriteRows on nil: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil: %v", err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run1")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	rows := []Row{
		{Time: 0.5, Active: 10, MeanSpeed: 1.1},
		{Time: 1.0, Active: 9, MeanSpeed: 1.2},
	}
	if err := om.WriteRows(rows[:1]); err != nil {
		t.Fatal(err)
	}
	if err := om.WriteRows(rows[1:]); err != nil {
		t.Fatal(err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "rows.csv"))
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if got := strings.Count(content, "mean_speed"); got != 1 {
		t.Errorf("header written %d times, want once", got)
	}
	lines := strings.Split(strings.TrimSpace(content), "\n")
	if len(lines) != 3 {
		t.Errorf("line count = %d, want header + 2 rows", len(lines))
	}
}
