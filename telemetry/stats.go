package telemetry

import (
	"gonum.org/v1/gonum/stat"

	"github.com/sgfost/pedestrians-with-cognitive-heuristics/geom"
	"github.com/sgfost/pedestrians-with-cognitive-heuristics/model"
)

// WindowStats summarizes one aggregation window.
type WindowStats struct {
	WindowEnd       float64 `csv:"window_end"`
	Samples         int     `csv:"samples"`
	MeanActive      float64 `csv:"mean_active"`
	MeanSpeed       float64 `csv:"mean_speed"`
	SpeedStdDev     float64 `csv:"speed_stddev"`
	MeanOccupancy   float64 `csv:"mean_occupancy"`
	MeanCompression float64 `csv:"mean_compression"`
}

// summarize reduces a non-empty window of rows to its stats.
func summarize(rows []Row, windowEnd float64) WindowStats {
	speeds := make([]float64, len(rows))
	occ := make([]float64, len(rows))
	comp := make([]float64, len(rows))
	active := make([]float64, len(rows))
	for i, r := range rows {
		speeds[i] = r.MeanSpeed
		occ[i] = r.Occupancy
		comp[i] = r.MeanCompression
		active[i] = float64(r.Active)
	}

	ws := WindowStats{
		WindowEnd:       windowEnd,
		Samples:         len(rows),
		MeanActive:      stat.Mean(active, nil),
		MeanSpeed:       stat.Mean(speeds, nil),
		MeanOccupancy:   stat.Mean(occ, nil),
		MeanCompression: stat.Mean(comp, nil),
	}
	if len(rows) > 1 {
		ws.SpeedStdDev = stat.StdDev(speeds, nil)
	}
	return ws
}

// LocalDensity estimates the crowd density around a point as a
// Gaussian-kernel weighted count of active agents, in agents per m^2.
// External compression-field tooling samples this on a grid.
func LocalDensity(peds []*model.Pedestrian, at geom.Vec, sigma float64) float64 {
	if sigma < geom.Eps {
		return 0
	}
	var sum float64
	for _, p := range peds {
		if !p.Active {
			continue
		}
		d := p.Pos.Sub(at)
		sum += geom.Gaussian(d.X, sigma) * geom.Gaussian(d.Y, sigma)
	}
	return sum
}
